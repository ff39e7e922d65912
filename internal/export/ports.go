package export

import (
	"context"

	"finconnect/internal/core"
)

// Ports for outbound export adapters.
type (
	// EntryAppender mirrors a spending entry to an external ledger and
	// returns a reference to the written row.
	EntryAppender interface {
		Append(ctx context.Context, e core.SpendingEntry) (rowRef string, err error)
	}
)
