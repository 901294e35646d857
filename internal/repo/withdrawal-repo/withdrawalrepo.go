package withdrawalrepo

import (
	"context"

	"github.com/helapesa/helapesa/internal/domain"
	"github.com/helapesa/helapesa/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error) {
	query := `
		INSERT INTO withdrawals (user_id, amount, phone_number, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, withdrawal.UserID, withdrawal.Amount, withdrawal.PhoneNumber, withdrawal.Status).
		Scan(&withdrawal.ID, &withdrawal.CreatedAt)
	if err != nil {
		zap.L().Error("can't save withdrawal", zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

func (r *Repository) GetWithdrawalsByUserID(ctx context.Context, userID int) ([]domain.Withdrawal, error) {
	query := `
		SELECT id, user_id, amount, phone_number, status, created_at
		FROM withdrawals
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, userID)
}

func (r *Repository) List(ctx context.Context) ([]domain.Withdrawal, error) {
	query := `
		SELECT id, user_id, amount, phone_number, status, created_at
		FROM withdrawals
		ORDER BY created_at DESC
	`
	return r.list(ctx, query)
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Withdrawal, error) {
	query := `
		SELECT id, user_id, amount, phone_number, status, created_at
		FROM withdrawals
		WHERE id = $1
	`
	var wd domain.Withdrawal
	err := r.db.QueryRow(ctx, query, id).Scan(&wd.ID, &wd.UserID, &wd.Amount, &wd.PhoneNumber, &wd.Status, &wd.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get withdrawal", zap.Error(err))
		return nil, err
	}
	return &wd, nil
}

// UpdateStatus only moves pending withdrawals, so a decision is terminal.
func (r *Repository) UpdateStatus(ctx context.Context, id int, status string) (bool, error) {
	query := `
		UPDATE withdrawals
		SET status = $2
		WHERE id = $1 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		zap.L().Error("can't update withdrawal status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Withdrawal, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var wd domain.Withdrawal
		if err := rows.Scan(&wd.ID, &wd.UserID, &wd.Amount, &wd.PhoneNumber, &wd.Status, &wd.CreatedAt); err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, wd)
	}

	return withdrawals, nil
}
