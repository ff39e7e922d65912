package store

import (
	"finconnect/internal/core"
	"finconnect/internal/log"
)

// EntryUpdate is a field mask for UpdateEntry. Nil fields are left untouched.
type EntryUpdate struct {
	Date        *core.Date
	Title       *string
	Description *string
	Category    *string
	Amount      *core.Money
	Currency    *string
	ReceiptURL  *string
	Notes       *string
}

// AddEntry assigns a fresh id and creation time and appends the entry. The
// projectId is taken as given; referential integrity is only enforced by the
// cascade at project deletion.
func (s *Store) AddEntry(e core.SpendingEntry) core.SpendingEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = newID("spend")
	e.CreatedAt = s.now()
	if e.AuthorID == "" {
		e.AuthorID = s.currentUserID()
	}
	s.entries = append(s.entries, e)

	s.debug("Entry added",
		log.FieldEntryID, e.ID,
		log.FieldProjectID, e.ProjectID,
		log.FieldAmountCents, e.Amount.Cents)
	return e
}

// UpdateEntry merges the masked fields into the matching entry. Returns false
// when the id is unknown.
func (s *Store) UpdateEntry(id string, upd EntryUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID != id {
			continue
		}
		e := &s.entries[i]
		if upd.Date != nil {
			e.Date = *upd.Date
		}
		if upd.Title != nil {
			e.Title = *upd.Title
		}
		if upd.Description != nil {
			e.Description = *upd.Description
		}
		if upd.Category != nil {
			e.Category = *upd.Category
		}
		if upd.Amount != nil {
			e.Amount = *upd.Amount
		}
		if upd.Currency != nil {
			e.Currency = *upd.Currency
		}
		if upd.ReceiptURL != nil {
			e.ReceiptURL = *upd.ReceiptURL
		}
		if upd.Notes != nil {
			e.Notes = *upd.Notes
		}
		s.debug("Entry updated", log.FieldEntryID, id)
		return true
	}
	return false
}

// DeleteEntry removes the entry with the given id. Returns false when the id
// is unknown.
func (s *Store) DeleteEntry(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.debug("Entry deleted", log.FieldEntryID, id)
			return true
		}
	}
	return false
}

// Entry returns the entry with the given id.
func (s *Store) Entry(id string) (core.SpendingEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return core.SpendingEntry{}, false
}

// EntriesByProject returns the project's entries in insertion order.
func (s *Store) EntriesByProject(projectID string) []core.SpendingEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []core.SpendingEntry
	for _, e := range s.entries {
		if e.ProjectID == projectID {
			out = append(out, e)
		}
	}
	return out
}

// Entries returns every entry in insertion order.
func (s *Store) Entries() []core.SpendingEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]core.SpendingEntry(nil), s.entries...)
}
