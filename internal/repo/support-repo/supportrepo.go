package supportrepo

import (
	"context"

	"github.com/helapesa/helapesa/internal/domain"
	"github.com/helapesa/helapesa/internal/pg"
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

func (r *Repository) Create(ctx context.Context, req *domain.SupportRequest) (*domain.SupportRequest, error) {
	query := `
		INSERT INTO support_requests (user_id, message, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, req.UserID, req.Message, req.Status).Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		zap.L().Error("can't save support request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) ([]domain.SupportRequest, error) {
	query := `
		SELECT id, user_id, message, admin_reply, status, created_at
		FROM support_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, userID)
}

func (r *Repository) List(ctx context.Context) ([]domain.SupportRequest, error) {
	query := `
		SELECT id, user_id, message, admin_reply, status, created_at
		FROM support_requests
		ORDER BY created_at DESC
	`
	return r.list(ctx, query)
}

// Reply sets admin_reply and resolves the request in the same write, and
// only once. Two admins answering simultaneously cannot both win.
func (r *Repository) Reply(ctx context.Context, id int, reply string) (bool, error) {
	query := `
		UPDATE support_requests
		SET admin_reply = $2, status = 'resolved'
		WHERE id = $1 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, id, reply)
	if err != nil {
		zap.L().Error("can't reply to support request", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.SupportRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't fetch support requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.SupportRequest
	for rows.Next() {
		var req domain.SupportRequest
		if err := rows.Scan(&req.ID, &req.UserID, &req.Message, &req.AdminReply, &req.Status, &req.CreatedAt); err != nil {
			zap.L().Error("can't scan support request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}
