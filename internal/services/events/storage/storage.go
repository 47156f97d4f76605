// Package storage defines the persistence boundary for event ledgers.
package storage

import (
	"context"

	domainerrors "github.com/hardluck-games/streetlife/internal/errors"
	"github.com/hardluck-games/streetlife/internal/services/events/domain/ledger"
)

// ErrNotFound indicates no ledger has been persisted for the player yet.
// Callers treat it as "start fresh", not as a failure.
var ErrNotFound = domainerrors.New(domainerrors.CodeLedgerNotFound)

// LedgerStore loads and saves one ledger per player. Implementations are
// best-effort: the engine keeps operating on its in-memory ledger when a
// save fails.
type LedgerStore interface {
	Load(ctx context.Context, playerID string) (*ledger.Ledger, error)
	Save(ctx context.Context, led *ledger.Ledger) error
}
