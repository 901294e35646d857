package userrepo

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

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, login, password_hash FROM users WHERE login = $1", login).Scan(&user.ID, &user.Login, &user.PasswordHash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (login, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Login, user.PasswordHash).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) UpdatePassword(ctx context.Context, userID int, passwordHash string) error {
	_, err := repo.db.Exec(ctx, "UPDATE users SET password_hash = $1 WHERE id = $2", passwordHash, userID)
	if err != nil {
		zap.L().Error("can't update password", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) AssignRole(ctx context.Context, userID int, role string) error {
	query := `
		INSERT INTO user_roles (user_id, role)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET role = EXCLUDED.role
	`
	_, err := repo.db.Exec(ctx, query, userID, role)
	if err != nil {
		zap.L().Error("can't assign role", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) FindRole(ctx context.Context, userID int) (string, error) {
	var role string
	err := repo.db.QueryRow(ctx, "SELECT role FROM user_roles WHERE user_id = $1", userID).Scan(&role)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.RoleUser, nil
		}
		zap.L().Error("can't find role", zap.Error(err))
		return "", err
	}
	return role, nil
}
