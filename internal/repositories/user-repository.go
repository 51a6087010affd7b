package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"smart-gmao/internal/entities"
	apperrors "smart-gmao/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const userTable = "users"

var userColumns = []string{
	"id", "last_name", "first_name", "email", "password", "role", "phone", "photo", "is_active", "created_at", "updated_at",
}

var userConstraints = map[string]string{
	"users_email_key": "email",
}

type UserRepositoryInterface interface {
	FindUserByID(ctx context.Context, id string) (*entities.User, error)
	FindUserByEmail(ctx context.Context, email string) (*entities.User, error)
	CreateUser(ctx context.Context, user *entities.User) (*entities.User, error)
	SetUserActive(ctx context.Context, id string, active bool) (*entities.User, error)
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	var role string
	var phone null.String
	err := row.Scan(&u.ID, &u.LastName, &u.FirstName, &u.Email, &u.Password, &role, &phone, &u.Photo, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	u.Role = entities.Role(role)
	u.Phone = phone.Ptr()
	return &u, nil
}

func (r *UserRepository) findOne(ctx context.Context, where sq.Eq) (*entities.User, error) {
	return scanUser(queryRowBuilder(ctx, r.storage, psql.Select(userColumns...).From(userTable).Where(where)))
}

func (r *UserRepository) FindUserByID(ctx context.Context, id string) (*entities.User, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, sq.Eq{"email": entities.NormalizeEmail(email)})
}

func (r *UserRepository) CreateUser(ctx context.Context, user *entities.User) (*entities.User, error) {
	u := *user
	if err := prepareUserCreate(&u, time.Now()); err != nil {
		return nil, err
	}

	insert := psql.Insert(userTable).SetMap(map[string]interface{}{
		"id":         u.ID,
		"last_name":  u.LastName,
		"first_name": u.FirstName,
		"email":      u.Email,
		"password":   u.Password,
		"role":       string(u.Role),
		"phone":      u.Phone,
		"photo":      u.Photo,
		"is_active":  u.IsActive,
		"created_at": u.CreatedAt,
		"updated_at": u.UpdatedAt,
	})
	if _, err := execBuilder(ctx, r.storage, insert); err != nil {
		return nil, mapPgError(err, userConstraints, u.Email)
	}
	r.logger.Info("пользователь создан", zap.String("id", u.ID), zap.String("email", u.Email))
	return &u, nil
}

func (r *UserRepository) SetUserActive(ctx context.Context, id string, active bool) (*entities.User, error) {
	update := psql.Update(userTable).
		SetMap(map[string]interface{}{"is_active": active, "updated_at": time.Now()}).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(userColumns, ", "))
	u, err := scanUser(queryRowBuilder(ctx, r.storage, update))
	if err != nil {
		return nil, err
	}
	r.logger.Info("статус пользователя изменён", zap.String("id", id), zap.Bool("active", active))
	return u, nil
}
