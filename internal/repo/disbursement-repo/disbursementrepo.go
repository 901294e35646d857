package disbursementrepo

import (
	"context"

	"github.com/helapesa/helapesa/internal/domain"
	"github.com/helapesa/helapesa/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const disbursementColumns = `id, application_id, loan_amount, processing_fee, transaction_code, payment_verified, disbursed, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, d *domain.LoanDisbursement) (*domain.LoanDisbursement, error) {
	query := `
		INSERT INTO loan_disbursements (application_id, loan_amount, processing_fee, transaction_code, payment_verified, disbursed)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, d.ApplicationID, d.LoanAmount, d.ProcessingFee, d.TransactionCode, d.PaymentVerified, d.Disbursed).
		Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		zap.L().Error("can't save disbursement", zap.Error(err))
		return nil, err
	}
	return d, nil
}

func (r *Repository) GetByTransactionCode(ctx context.Context, code string) (*domain.LoanDisbursement, error) {
	query := `SELECT ` + disbursementColumns + ` FROM loan_disbursements WHERE transaction_code = $1`
	var d domain.LoanDisbursement
	err := r.db.QueryRow(ctx, query, code).
		Scan(&d.ID, &d.ApplicationID, &d.LoanAmount, &d.ProcessingFee, &d.TransactionCode, &d.PaymentVerified, &d.Disbursed, &d.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get disbursement", zap.Error(err))
		return nil, err
	}
	return &d, nil
}

// MarkPaymentVerified flips payment_verified once; replayed webhook events
// find zero unverified rows and report false.
func (r *Repository) MarkPaymentVerified(ctx context.Context, code string) (bool, error) {
	query := `
		UPDATE loan_disbursements
		SET payment_verified = TRUE
		WHERE transaction_code = $1 AND payment_verified = FALSE
	`
	tag, err := r.db.Exec(ctx, query, code)
	if err != nil {
		zap.L().Error("can't mark disbursement verified", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// MarkDisbursed is only reachable from a payment-verified row.
func (r *Repository) MarkDisbursed(ctx context.Context, id int) (bool, error) {
	query := `
		UPDATE loan_disbursements
		SET disbursed = TRUE
		WHERE id = $1 AND payment_verified = TRUE AND disbursed = FALSE
	`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't mark disbursement disbursed", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) FindPayoutReady(ctx context.Context, limit uint32) ([]domain.LoanDisbursement, error) {
	query := `
		SELECT ` + disbursementColumns + `
		FROM loan_disbursements
		WHERE payment_verified = TRUE AND disbursed = FALSE
		ORDER BY created_at
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't fetch payout-ready disbursements", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []domain.LoanDisbursement
	for rows.Next() {
		var d domain.LoanDisbursement
		if err := rows.Scan(&d.ID, &d.ApplicationID, &d.LoanAmount, &d.ProcessingFee, &d.TransactionCode, &d.PaymentVerified, &d.Disbursed, &d.CreatedAt); err != nil {
			zap.L().Error("can't scan disbursement row", zap.Error(err))
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.LoanDisbursement, error) {
	query := `SELECT ` + disbursementColumns + ` FROM loan_disbursements ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't fetch disbursements", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []domain.LoanDisbursement
	for rows.Next() {
		var d domain.LoanDisbursement
		if err := rows.Scan(&d.ID, &d.ApplicationID, &d.LoanAmount, &d.ProcessingFee, &d.TransactionCode, &d.PaymentVerified, &d.Disbursed, &d.CreatedAt); err != nil {
			zap.L().Error("can't scan disbursement row", zap.Error(err))
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
