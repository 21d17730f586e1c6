package dedup

import (
	"context"
	"log/slog"

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/entity"
)

// TransactionStore is the slice of the record store the deduplicator needs.
// The insert must be atomic at the store boundary: two concurrent inserts of
// the same (case, hash) resolve to exactly one stored row.
type TransactionStore interface {
	InsertIfAbsent(ctx context.Context, t *entity.Transaction) (inserted bool, err error)
}

type Deduplicator struct {
	store  TransactionStore
	logger *slog.Logger
}

func New(store TransactionStore, logger *slog.Logger) *Deduplicator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Deduplicator{store: store, logger: logger}
}

// Apply hashes the normalized transaction and inserts it unless the case
// already holds the same content. Duplicate detection is a normal outcome,
// not an error; correctness does not depend on interleaving because the
// store's uniqueness constraint is the deciding mechanism.
func (d *Deduplicator) Apply(ctx context.Context, t *entity.Transaction) (inserted bool, err error) {
	t.TxHash = Hash(t)
	inserted, err = d.store.InsertIfAbsent(ctx, t)
	if err != nil {
		return false, err
	}
	if !inserted {
		d.logger.Debug("duplicate transaction skipped", "case_id", t.CaseID, "tx_hash", t.TxHash)
	}
	return inserted, nil
}
