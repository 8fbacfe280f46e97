package ledger

import "context"

type Repository interface {
	Append(ctx context.Context, t *Transaction) error
	ListByUser(ctx context.Context, userID string, page, limit int) ([]Transaction, int64, error)
	Count(ctx context.Context) (int64, error)
}
