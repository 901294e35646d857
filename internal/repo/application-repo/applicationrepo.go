package applicationrepo

import (
	"context"

	"github.com/helapesa/helapesa/internal/domain"
	"github.com/helapesa/helapesa/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const applicationColumns = `id, user_id, full_name, id_number, whatsapp_number, mpesa_number,
	next_of_kin_name, next_of_kin_contact, income_level, employment_status, occupation,
	contact_person_name, contact_person_phone, loan_reason, loan_limit, status, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, app *domain.LoanApplication) (*domain.LoanApplication, error) {
	query := `
		INSERT INTO loan_applications (user_id, full_name, id_number, whatsapp_number, mpesa_number,
			next_of_kin_name, next_of_kin_contact, income_level, employment_status, occupation,
			contact_person_name, contact_person_phone, loan_reason, loan_limit, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		app.UserID, app.FullName, app.IDNumber, app.WhatsappNumber, app.MpesaNumber,
		app.NextOfKinName, app.NextOfKinContact, app.IncomeLevel, app.EmploymentStatus, app.Occupation,
		app.ContactPersonName, app.ContactPersonPhone, app.LoanReason, app.LoanLimit, app.Status,
	).Scan(&app.ID, &app.CreatedAt)
	if err != nil {
		zap.L().Error("can't save loan application", zap.Error(err))
		return nil, err
	}
	return app, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.LoanApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM loan_applications WHERE id = $1`
	row := r.db.QueryRow(ctx, query, id)
	app, err := scanApplication(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get loan application", zap.Error(err))
		return nil, err
	}
	return app, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) ([]domain.LoanApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM loan_applications WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

func (r *Repository) List(ctx context.Context) ([]domain.LoanApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM loan_applications ORDER BY created_at DESC`
	return r.list(ctx, query)
}

// UpdateStatus performs the only legal transitions, pending to approved or
// rejected. It reports false when the application was not pending anymore,
// so concurrent decisions cannot overwrite each other.
func (r *Repository) UpdateStatus(ctx context.Context, id int, status string) (bool, error) {
	query := `
		UPDATE loan_applications
		SET status = $2
		WHERE id = $1 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		zap.L().Error("can't update application status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.LoanApplication, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't fetch loan applications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var apps []domain.LoanApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			zap.L().Error("can't scan loan application row", zap.Error(err))
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, nil
}

func scanApplication(row pgx.Row) (*domain.LoanApplication, error) {
	var app domain.LoanApplication
	err := row.Scan(
		&app.ID, &app.UserID, &app.FullName, &app.IDNumber, &app.WhatsappNumber, &app.MpesaNumber,
		&app.NextOfKinName, &app.NextOfKinContact, &app.IncomeLevel, &app.EmploymentStatus, &app.Occupation,
		&app.ContactPersonName, &app.ContactPersonPhone, &app.LoanReason, &app.LoanLimit, &app.Status, &app.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &app, nil
}
