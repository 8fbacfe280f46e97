package audit

import "context"

type Repository interface {
	Append(ctx context.Context, l *Log) error
	List(ctx context.Context, limit, offset int) ([]Log, int64, error)
}
