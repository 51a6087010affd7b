package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"smart-gmao/internal/dto"
	"smart-gmao/internal/entities"
	apperrors "smart-gmao/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const ticketTable = "tickets"

var ticketColumns = []string{
	"id", "title", "description", "equipment_id", "type", "priority", "status", "created_by", "assigned_to",
	"start_date", "end_date", "due_date",
	"estimated_hours", "actual_hours", "estimated_cost", "actual_cost",
	"parts_used", "comments", "solution", "photos",
	"is_scheduled", "scheduled_date", "created_at", "updated_at",
}

type TicketRepositoryInterface interface {
	GetTickets(ctx context.Context, filter entities.TicketFilter) ([]*entities.Ticket, error)
	FindTicket(ctx context.Context, id string) (*entities.Ticket, error)
	CreateTicket(ctx context.Context, ticket *entities.Ticket, actorID string) (*entities.Ticket, error)
	// UpdateTicket возвращает и статус до изменения, прочитанный в той же транзакции.
	UpdateTicket(ctx context.Context, id string, patch dto.UpdateTicketDTO) (*entities.Ticket, entities.TicketStatus, error)
	AddComment(ctx context.Context, id string, comment entities.Comment) (*entities.Ticket, error)
	AddPhoto(ctx context.Context, id string, photo entities.Photo) (*entities.Ticket, error)
	DeleteTicket(ctx context.Context, id string) error
	GetTicketStats(ctx context.Context) (entities.TicketStats, error)
}

type TicketRepository struct {
	storage   *pgxpool.Pool
	txManager TxManagerInterface
	logger    *zap.Logger
}

func NewTicketRepository(storage *pgxpool.Pool, logger *zap.Logger) TicketRepositoryInterface {
	return &TicketRepository{
		storage:   storage,
		txManager: NewTxManager(storage),
		logger:    logger,
	}
}

func scanTicket(row pgx.Row) (*entities.Ticket, error) {
	var (
		t                                    entities.Ticket
		ticketType, priority, status         string
		assignedTo                           null.String
		startDate, endDate, dueDate          null.Time
		estHours, actHours, estCost, actCost null.Float64
		parts, comments, photos              []byte
		scheduledDate                        null.Time
	)
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.EquipmentID, &ticketType, &priority, &status, &t.CreatedBy, &assignedTo,
		&startDate, &endDate, &dueDate,
		&estHours, &actHours, &estCost, &actCost,
		&parts, &comments, &t.Solution, &photos,
		&t.IsScheduled, &scheduledDate, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	t.Type = entities.MaintenanceType(ticketType)
	t.Priority = entities.TicketPriority(priority)
	t.Status = entities.TicketStatus(status)
	t.AssignedTo = assignedTo.Ptr()
	t.StartDate = startDate.Ptr()
	t.EndDate = endDate.Ptr()
	t.DueDate = dueDate.Ptr()
	t.EstimatedHours = estHours.Ptr()
	t.ActualHours = actHours.Ptr()
	t.EstimatedCost = estCost.Ptr()
	t.ActualCost = actCost.Ptr()
	t.ScheduledDate = scheduledDate.Ptr()

	if err := unmarshalJSONB(parts, &t.PartsUsed); err != nil {
		return nil, fmt.Errorf("parts_used: %w", err)
	}
	if err := unmarshalJSONB(comments, &t.Comments); err != nil {
		return nil, fmt.Errorf("comments: %w", err)
	}
	if err := unmarshalJSONB(photos, &t.Photos); err != nil {
		return nil, fmt.Errorf("photos: %w", err)
	}
	t.ApplyDefaults()
	return &t, nil
}

func unmarshalJSONB(raw []byte, dst interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

func ticketValues(t *entities.Ticket) (map[string]interface{}, error) {
	parts, err := json.Marshal(t.PartsUsed)
	if err != nil {
		return nil, err
	}
	comments, err := json.Marshal(t.Comments)
	if err != nil {
		return nil, err
	}
	photos, err := json.Marshal(t.Photos)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"title":           t.Title,
		"description":     t.Description,
		"equipment_id":    t.EquipmentID,
		"type":            string(t.Type),
		"priority":        string(t.Priority),
		"status":          string(t.Status),
		"created_by":      t.CreatedBy,
		"assigned_to":     t.AssignedTo,
		"start_date":      t.StartDate,
		"end_date":        t.EndDate,
		"due_date":        t.DueDate,
		"estimated_hours": t.EstimatedHours,
		"actual_hours":    t.ActualHours,
		"estimated_cost":  t.EstimatedCost,
		"actual_cost":     t.ActualCost,
		"parts_used":      parts,
		"comments":        comments,
		"solution":        t.Solution,
		"photos":          photos,
		"is_scheduled":    t.IsScheduled,
		"scheduled_date":  t.ScheduledDate,
		"updated_at":      t.UpdatedAt,
	}, nil
}

func (r *TicketRepository) GetTickets(ctx context.Context, filter entities.TicketFilter) ([]*entities.Ticket, error) {
	where := sq.Eq{}
	if filter.Status != "" {
		where["status"] = string(filter.Status)
	}
	if filter.Priority != "" {
		where["priority"] = string(filter.Priority)
	}
	if filter.EquipmentID != "" {
		where["equipment_id"] = filter.EquipmentID
	}

	query, args, err := psql.Select(ticketColumns...).
		From(ticketTable).
		Where(where).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*entities.Ticket, 0)
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *TicketRepository) findTicket(ctx context.Context, q querier, id string, forUpdate bool) (*entities.Ticket, error) {
	builder := psql.Select(ticketColumns...).From(ticketTable).Where(sq.Eq{"id": id})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}
	return scanTicket(queryRowBuilder(ctx, q, builder))
}

func (r *TicketRepository) FindTicket(ctx context.Context, id string) (*entities.Ticket, error) {
	return r.findTicket(ctx, r.storage, id, false)
}

func (r *TicketRepository) CreateTicket(ctx context.Context, ticket *entities.Ticket, actorID string) (*entities.Ticket, error) {
	t := ticket.Clone()
	if err := prepareTicketCreate(t, actorID, time.Now()); err != nil {
		return nil, err
	}

	values, err := ticketValues(t)
	if err != nil {
		return nil, err
	}
	values["id"] = t.ID
	values["created_at"] = t.CreatedAt

	if _, err := execBuilder(ctx, r.storage, psql.Insert(ticketTable).SetMap(values)); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *TicketRepository) UpdateTicket(ctx context.Context, id string, patch dto.UpdateTicketDTO) (*entities.Ticket, entities.TicketStatus, error) {
	var updated *entities.Ticket
	var previous entities.TicketStatus
	err := r.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		t, err := r.findTicket(ctx, tx, id, true)
		if err != nil {
			return err
		}
		previous = t.Status
		if err := prepareTicketUpdate(t, patch, time.Now()); err != nil {
			return err
		}

		values, err := ticketValues(t)
		if err != nil {
			return err
		}
		if _, err := execBuilder(ctx, tx, psql.Update(ticketTable).SetMap(values).Where(sq.Eq{"id": id})); err != nil {
			return err
		}
		updated = t
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	return updated, previous, nil
}

func (r *TicketRepository) AddComment(ctx context.Context, id string, comment entities.Comment) (*entities.Ticket, error) {
	return r.appendJSONB(ctx, id, "comments", comment, comment.Date)
}

func (r *TicketRepository) AddPhoto(ctx context.Context, id string, photo entities.Photo) (*entities.Ticket, error) {
	return r.appendJSONB(ctx, id, "photos", photo, photo.AddedAt)
}

// appendJSONB дописывает элемент в JSONB-массив одним UPDATE, без чтения строки.
func (r *TicketRepository) appendJSONB(ctx context.Context, id, column string, item interface{}, at time.Time) (*entities.Ticket, error) {
	raw, err := json.Marshal([]interface{}{item})
	if err != nil {
		return nil, err
	}

	builder := psql.Update(ticketTable).
		Set(column, sq.Expr(column+" || ?::jsonb", string(raw))).
		Set("updated_at", at).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(ticketColumns, ", "))
	return scanTicket(queryRowBuilder(ctx, r.storage, builder))
}

func (r *TicketRepository) DeleteTicket(ctx context.Context, id string) error {
	result, err := execBuilder(ctx, r.storage, psql.Delete(ticketTable).Where(sq.Eq{"id": id}))
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// GetTicketStats - одна группировка по паре (статус, приоритет), свёрнутая в обе разбивки.
func (r *TicketRepository) GetTicketStats(ctx context.Context) (entities.TicketStats, error) {
	stats := entities.NewTicketStats()

	query, args, err := psql.Select("status", "priority", "COUNT(*)").
		From(ticketTable).
		GroupBy("status", "priority").
		ToSql()
	if err != nil {
		return stats, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return stats, err
	}
	defer rows.Close()

	for rows.Next() {
		var status, priority string
		var count int
		if err := rows.Scan(&status, &priority, &count); err != nil {
			return stats, err
		}
		stats.Add(entities.TicketStatus(status), entities.TicketPriority(priority), count)
	}
	return stats, rows.Err()
}
