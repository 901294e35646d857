package savingsrepo

import (
	"context"

	"github.com/helapesa/helapesa/internal/domain"
	"github.com/helapesa/helapesa/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const depositColumns = `id, user_id, amount, mpesa_message, transaction_code, verified, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreateDeposit(ctx context.Context, d *domain.SavingsDeposit) (*domain.SavingsDeposit, error) {
	query := `
		INSERT INTO savings_deposits (user_id, amount, mpesa_message, transaction_code, verified)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, d.UserID, d.Amount, d.MpesaMessage, d.TransactionCode, d.Verified).
		Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		zap.L().Error("can't save deposit", zap.Error(err))
		return nil, err
	}
	return d, nil
}

func (r *Repository) GetDepositsByUserID(ctx context.Context, userID int) ([]domain.SavingsDeposit, error) {
	query := `SELECT ` + depositColumns + ` FROM savings_deposits WHERE user_id = $1 ORDER BY created_at DESC`
	return r.listDeposits(ctx, query, userID)
}

func (r *Repository) ListDeposits(ctx context.Context) ([]domain.SavingsDeposit, error) {
	query := `SELECT ` + depositColumns + ` FROM savings_deposits ORDER BY created_at DESC`
	return r.listDeposits(ctx, query)
}

// MarkVerifiedByID flips verified exactly once and returns the row needed to
// credit the balance. A second call finds nothing and reports ok=false.
func (r *Repository) MarkVerifiedByID(ctx context.Context, id int) (userID int, amount float64, ok bool, err error) {
	query := `
		UPDATE savings_deposits
		SET verified = TRUE
		WHERE id = $1 AND verified = FALSE
		RETURNING user_id, amount
	`
	err = r.db.QueryRow(ctx, query, id).Scan(&userID, &amount)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, 0, false, nil
		}
		zap.L().Error("can't verify deposit", zap.Error(err))
		return 0, 0, false, err
	}
	return userID, amount, true, nil
}

// MarkVerifiedByCode is the webhook-path twin of MarkVerifiedByID, keyed by
// the unique transaction reference.
func (r *Repository) MarkVerifiedByCode(ctx context.Context, code string) (userID int, amount float64, ok bool, err error) {
	query := `
		UPDATE savings_deposits
		SET verified = TRUE
		WHERE transaction_code = $1 AND verified = FALSE
		RETURNING user_id, amount
	`
	err = r.db.QueryRow(ctx, query, code).Scan(&userID, &amount)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, 0, false, nil
		}
		zap.L().Error("can't verify deposit", zap.Error(err))
		return 0, 0, false, err
	}
	return userID, amount, true, nil
}

// MarkFailedByCode never touches a verified deposit, so a stale failure
// event cannot reopen a charge that already succeeded and was credited.
func (r *Repository) MarkFailedByCode(ctx context.Context, code string) error {
	query := `UPDATE savings_deposits SET verified = FALSE WHERE transaction_code = $1 AND verified = FALSE`
	if _, err := r.db.Exec(ctx, query, code); err != nil {
		zap.L().Error("can't mark deposit failed", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetBalance(ctx context.Context, userID int) (*domain.UserSavings, error) {
	query := `SELECT id, user_id, balance FROM user_savings WHERE user_id = $1`
	var savings domain.UserSavings
	err := r.db.QueryRow(ctx, query, userID).Scan(&savings.ID, &savings.UserID, &savings.Balance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get user savings", zap.Error(err))
		return nil, err
	}
	return &savings, nil
}

func (r *Repository) CreateBalance(ctx context.Context, userID int) (*domain.UserSavings, error) {
	query := `
		INSERT INTO user_savings (user_id, balance)
		VALUES ($1, 0)
		ON CONFLICT (user_id) DO NOTHING
		RETURNING id, user_id, balance
	`
	var savings domain.UserSavings
	err := r.db.QueryRow(ctx, query, userID).Scan(&savings.ID, &savings.UserID, &savings.Balance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return r.GetBalance(ctx, userID)
		}
		zap.L().Error("can't create user savings", zap.Error(err))
		return nil, err
	}
	return &savings, nil
}

// CreditBalance is a single atomic upsert, safe under concurrent credits.
func (r *Repository) CreditBalance(ctx context.Context, userID int, amount float64) error {
	query := `
		INSERT INTO user_savings (user_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET balance = user_savings.balance + EXCLUDED.balance
	`
	if _, err := r.db.Exec(ctx, query, userID, amount); err != nil {
		zap.L().Error("can't credit user savings", zap.Error(err))
		return err
	}
	return nil
}

// DebitBalance only succeeds while the balance covers the amount, so the
// balance can never go negative even under concurrent approvals.
func (r *Repository) DebitBalance(ctx context.Context, userID int, amount float64) (bool, error) {
	query := `
		UPDATE user_savings
		SET balance = balance - $2
		WHERE user_id = $1 AND balance >= $2
	`
	tag, err := r.db.Exec(ctx, query, userID, amount)
	if err != nil {
		zap.L().Error("can't debit user savings", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) listDeposits(ctx context.Context, query string, args ...any) ([]domain.SavingsDeposit, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't fetch deposits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var deposits []domain.SavingsDeposit
	for rows.Next() {
		var d domain.SavingsDeposit
		if err := rows.Scan(&d.ID, &d.UserID, &d.Amount, &d.MpesaMessage, &d.TransactionCode, &d.Verified, &d.CreatedAt); err != nil {
			zap.L().Error("can't scan deposit row", zap.Error(err))
			return nil, err
		}
		deposits = append(deposits, d)
	}
	return deposits, nil
}
