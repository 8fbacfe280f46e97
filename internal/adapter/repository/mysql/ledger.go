package mysql

import (
	"context"

	"gorm.io/gorm"

	ledgerDomain "fundbridge-backend/internal/domain/ledger"
)

type LedgerRepository struct{ db *gorm.DB }

func NewLedgerRepository(db *gorm.DB) *LedgerRepository { return &LedgerRepository{db: db} }

func (r *LedgerRepository) Append(ctx context.Context, t *ledgerDomain.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *LedgerRepository) ListByUser(ctx context.Context, userID string, page, limit int) ([]ledgerDomain.Transaction, int64, error) {
	q := r.db.WithContext(ctx).Model(&ledgerDomain.Transaction{}).Where("user_id = ?", userID)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	var out []ledgerDomain.Transaction
	err := q.Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&out).Error
	return out, total, err
}

func (r *LedgerRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&ledgerDomain.Transaction{}).Count(&n).Error
	return n, err
}
