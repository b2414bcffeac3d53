package repository

import (
	"context"
	"strings"
	"time"

	"janseva/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var adminColumns = []string{"id", "username", "password", "role", "last_login_at", "created_at", "updated_at"}

type AdminRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewAdminRepository(db *pgxpool.Pool, logger *zap.Logger) *AdminRepository {
	return &AdminRepository{
		db:     db,
		logger: logger,
	}
}

func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	query := squirrel.Insert("admins").
		Columns(adminColumns...).
		Values(admin.ID, admin.Username, admin.Password, admin.Role, admin.LastLoginAt, admin.CreatedAt, admin.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// GetByUsername looks an admin up by lowercased username.
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	query := squirrel.Select(adminColumns...).
		From("admins").
		Where(squirrel.Eq{"username": strings.ToLower(strings.TrimSpace(username))}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var admin models.Admin
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&admin.ID, &admin.Username, &admin.Password, &admin.Role, &admin.LastLoginAt, &admin.CreatedAt, &admin.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &admin, nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	query := squirrel.Select(adminColumns...).
		From("admins").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var admin models.Admin
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&admin.ID, &admin.Username, &admin.Password, &admin.Role, &admin.LastLoginAt, &admin.CreatedAt, &admin.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &admin, nil
}

func (r *AdminRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := squirrel.Update("admins").
		Set("last_login_at", at).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
