package core

import (
	"errors"
	"strings"
	"time"
)

const (
	CategoryBusiness  ProjectCategory = "business"
	CategoryHoliday   ProjectCategory = "holiday"
	CategoryPersonal  ProjectCategory = "personal"
	CategoryHousehold ProjectCategory = "household"
	CategoryOther     ProjectCategory = "other"
)

const (
	RoleOwner  MemberRole = "owner"
	RoleEditor MemberRole = "editor"
	RoleViewer MemberRole = "viewer"
)

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

type (
	ProjectCategory string

	MemberRole string

	MessageRole string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64 `json:"cents"`
	}

	User struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		AvatarURL string `json:"avatar_url,omitempty"`
	}

	Member struct {
		UserID   string     `json:"user_id"`
		Role     MemberRole `json:"role"`
		JoinedAt Date       `json:"joined_at"`
	}

	Project struct {
		ID        string          `json:"id"`
		Name      string          `json:"name"`
		Category  ProjectCategory `json:"category"`
		Budget    *Money          `json:"budget,omitempty"`
		Currency  string          `json:"currency"`
		StartDate Date            `json:"start_date"`
		EndDate   Date            `json:"end_date"`
		Members   []Member        `json:"members"`
		CreatedAt time.Time       `json:"created_at"`
		CreatedBy string          `json:"created_by"`
	}

	SpendingEntry struct {
		ID          string    `json:"id"`
		ProjectID   string    `json:"project_id"`
		Date        Date      `json:"date"`
		Title       string    `json:"title"`
		Description string    `json:"description,omitempty"`
		Category    string    `json:"category"`
		Amount      Money     `json:"amount"`
		Currency    string    `json:"currency"`
		AuthorID    string    `json:"author_id"`
		ReceiptURL  string    `json:"receipt_url,omitempty"`
		Notes       string    `json:"notes,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}

	PlannedBudget struct {
		ID        string `json:"id"`
		ProjectID string `json:"project_id"`
		Category  string `json:"category"`
		Planned   Money  `json:"planned_amount"`
		Notes     string `json:"notes,omitempty"`
	}

	Reaction struct {
		Type  string `json:"type"`
		Count int    `json:"count"`
	}

	Comment struct {
		ID        string    `json:"id"`
		AuthorID  string    `json:"author_id"`
		Content   string    `json:"content"`
		CreatedAt time.Time `json:"created_at"`
	}

	CommunityPost struct {
		ID         string     `json:"id"`
		AuthorID   string     `json:"author_id"`
		Content    string     `json:"content"`
		ProjectTag string     `json:"project_tag,omitempty"`
		ImageURL   string     `json:"image_url,omitempty"`
		Reactions  []Reaction `json:"reactions"`
		Comments   []Comment  `json:"comments"`
		CreatedAt  time.Time  `json:"created_at"`
	}

	AssistantMessage struct {
		ID             string      `json:"id"`
		Role           MessageRole `json:"role"`
		Content        string      `json:"content"`
		Timestamp      time.Time   `json:"timestamp"`
		ProjectContext string      `json:"project_context,omitempty"`
	}

	Session struct {
		User      User      `json:"user"`
		StartedAt time.Time `json:"started_at"`
	}
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrEmptyName       = errors.New("empty name")
	ErrEmptyTitle      = errors.New("empty title")
	ErrEmptyContent    = errors.New("empty content")
	ErrEmptyCategory   = errors.New("empty category")
	ErrEmptyProjectID  = errors.New("empty project id")
	ErrInvalidCategory = errors.New("invalid project category")
	ErrInvalidRole     = errors.New("invalid member role")
	ErrInvalidDates    = errors.New("end date before start date")
)

// NewDate creates a new Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) Validate() error {
	if d.IsZero() {
		return errors.New("date cannot be zero")
	}
	return nil
}

// InMonth reports whether the date falls in the given calendar month.
func (d Date) InMonth(year, month int) bool {
	return d.Year() == year && int(d.Month()) == month
}

func (c ProjectCategory) Validate() error {
	switch c {
	case CategoryBusiness, CategoryHoliday, CategoryPersonal, CategoryHousehold, CategoryOther:
		return nil
	}
	return ErrInvalidCategory
}

func (r MemberRole) Validate() error {
	switch r {
	case RoleOwner, RoleEditor, RoleViewer:
		return nil
	}
	return ErrInvalidRole
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Validate checks the business rules the entry form enforces before a store
// call: required fields and a positive amount. The store itself stays
// permissive and accepts whatever it is handed.
func (e SpendingEntry) Validate() error {
	if strings.TrimSpace(e.ProjectID) == "" {
		return ErrEmptyProjectID
	}
	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyTitle
	}
	if len(e.Title) > 200 {
		return errors.New("title too long (max 200 characters)")
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	return e.Date.Validate()
}

func (p Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if len(p.Name) > 120 {
		return errors.New("name too long (max 120 characters)")
	}
	if err := p.Category.Validate(); err != nil {
		return err
	}
	if p.Budget != nil && p.Budget.Cents < 0 {
		return ErrInvalidAmount
	}
	if !p.StartDate.IsZero() && !p.EndDate.IsZero() && p.EndDate.Before(p.StartDate.Time) {
		return ErrInvalidDates
	}
	for _, m := range p.Members {
		if err := m.Role.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (b PlannedBudget) Validate() error {
	if strings.TrimSpace(b.ProjectID) == "" {
		return ErrEmptyProjectID
	}
	if strings.TrimSpace(b.Category) == "" {
		return ErrEmptyCategory
	}
	return b.Planned.Validate()
}

func (p CommunityPost) Validate() error {
	if strings.TrimSpace(p.Content) == "" {
		return ErrEmptyContent
	}
	if len(p.Content) > 2000 {
		return errors.New("content too long (max 2000 characters)")
	}
	return nil
}
