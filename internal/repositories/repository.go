package repositories

import (
	"errors"
	"time"

	"smart-gmao/internal/dto"
	"smart-gmao/internal/entities"
	apperrors "smart-gmao/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const pgUniqueViolation = "23505"

// mapPgError переводит нарушение уникального индекса в ConflictError.
func mapPgError(err error, fieldsByConstraint map[string]string, value string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		field, ok := fieldsByConstraint[pgErr.ConstraintName]
		if !ok {
			field = pgErr.ConstraintName
		}
		return apperrors.NewConflictError(field, value)
	}
	return err
}

func newID() string {
	return uuid.NewString()
}

// Хуки жизненного цикла, общие для всех реализаций хранилища.

func prepareEquipmentCreate(e *entities.Equipment, actorID string, now time.Time) error {
	e.ID = newID()
	e.CreatedBy = actorID
	e.ApplyDefaults()
	e.Touch(now)
	entities.RecomputeNextMaintenance(e, now)
	return e.Validate()
}

func prepareEquipmentUpdate(e *entities.Equipment, patch dto.UpdateEquipmentDTO, now time.Time) error {
	if err := patch.CheckEnums(); err != nil {
		return err
	}
	patch.ApplyTo(e)
	e.ApplyDefaults()
	e.Touch(now)
	entities.RecomputeNextMaintenance(e, now)
	return e.Validate()
}

func prepareTicketCreate(t *entities.Ticket, actorID string, now time.Time) error {
	t.ID = newID()
	t.CreatedBy = actorID
	t.ApplyDefaults()
	t.Touch(now)
	entities.ApplyStatusSideEffects(t, now)
	return t.Validate()
}

func prepareTicketUpdate(t *entities.Ticket, patch dto.UpdateTicketDTO, now time.Time) error {
	if err := patch.CheckEnums(); err != nil {
		return err
	}
	patch.ApplyTo(t, now)
	t.ApplyDefaults()
	t.Touch(now)
	entities.ApplyStatusSideEffects(t, now)
	return t.Validate()
}

func prepareUserCreate(u *entities.User, now time.Time) error {
	if u.ID == "" {
		u.ID = newID()
	}
	u.ApplyDefaults()
	// новая учётная запись всегда активна, отключение - через SetUserActive
	u.IsActive = true
	u.Touch(now)
	return u.Validate()
}

func serialValue(e *entities.Equipment) string {
	if e.SerialNumber == nil {
		return ""
	}
	return *e.SerialNumber
}
