package repositories

import (
	"context"
	"errors"
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

const equipmentTable = "equipments"

var equipmentColumns = []string{
	"id", "name", "category", "brand", "model", "serial_number", "description", "location",
	"purchase_date", "warranty_end_date", "purchase_price", "status", "priority", "photo",
	"maintenance_interval_days", "last_maintenance", "next_maintenance",
	"created_by", "notes", "is_active", "created_at", "updated_at",
}

var equipmentConstraints = map[string]string{
	"equipments_serial_number_key": "serialNumber",
}

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, filter entities.EquipmentFilter) ([]*entities.Equipment, error)
	FindEquipment(ctx context.Context, id string) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, equipment *entities.Equipment, actorID string) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id string, patch dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id string) error
}

type EquipmentRepository struct {
	storage   *pgxpool.Pool
	txManager TxManagerInterface
	logger    *zap.Logger
}

func NewEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{
		storage:   storage,
		txManager: NewTxManager(storage),
		logger:    logger,
	}
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var (
		e                                entities.Equipment
		brand, model, serial             null.String
		purchaseDate, warrantyEnd        null.Time
		price                            null.Float64
		lastMaintenance, nextMaintenance null.Time
		category, status, priority       string
	)
	err := row.Scan(
		&e.ID, &e.Name, &category, &brand, &model, &serial, &e.Description, &e.Location,
		&purchaseDate, &warrantyEnd, &price, &status, &priority, &e.Photo,
		&e.MaintenanceIntervalDays, &lastMaintenance, &nextMaintenance,
		&e.CreatedBy, &e.Notes, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	e.Category = entities.EquipmentCategory(category)
	e.Status = entities.EquipmentStatus(status)
	e.Priority = entities.EquipmentPriority(priority)
	e.Brand = brand.Ptr()
	e.Model = model.Ptr()
	e.SerialNumber = serial.Ptr()
	e.PurchaseDate = purchaseDate.Ptr()
	e.WarrantyEndDate = warrantyEnd.Ptr()
	e.PurchasePrice = price.Ptr()
	e.LastMaintenance = lastMaintenance.Ptr()
	e.NextMaintenance = nextMaintenance.Ptr()
	return &e, nil
}

func equipmentValues(e *entities.Equipment) map[string]interface{} {
	return map[string]interface{}{
		"name":                      e.Name,
		"category":                  string(e.Category),
		"brand":                     e.Brand,
		"model":                     e.Model,
		"serial_number":             e.SerialNumber,
		"description":               e.Description,
		"location":                  e.Location,
		"purchase_date":             e.PurchaseDate,
		"warranty_end_date":         e.WarrantyEndDate,
		"purchase_price":            e.PurchasePrice,
		"status":                    string(e.Status),
		"priority":                  string(e.Priority),
		"photo":                     e.Photo,
		"maintenance_interval_days": e.MaintenanceIntervalDays,
		"last_maintenance":          e.LastMaintenance,
		"next_maintenance":          e.NextMaintenance,
		"created_by":                e.CreatedBy,
		"notes":                     e.Notes,
		"is_active":                 e.IsActive,
		"updated_at":                e.UpdatedAt,
	}
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context, filter entities.EquipmentFilter) ([]*entities.Equipment, error) {
	where := sq.Eq{}
	if filter.Status != "" {
		where["status"] = string(filter.Status)
	}
	if filter.Category != "" {
		where["category"] = string(filter.Category)
	}

	query, args, err := psql.Select(equipmentColumns...).
		From(equipmentTable).
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

	list := make([]*entities.Equipment, 0)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *EquipmentRepository) findEquipment(ctx context.Context, q querier, id string, forUpdate bool) (*entities.Equipment, error) {
	builder := psql.Select(equipmentColumns...).From(equipmentTable).Where(sq.Eq{"id": id})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}
	return scanEquipment(queryRowBuilder(ctx, q, builder))
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	return r.findEquipment(ctx, r.storage, id, false)
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, equipment *entities.Equipment, actorID string) (*entities.Equipment, error) {
	e := equipment.Clone()
	if err := prepareEquipmentCreate(e, actorID, time.Now()); err != nil {
		return nil, err
	}

	values := equipmentValues(e)
	values["id"] = e.ID
	values["created_at"] = e.CreatedAt

	if _, err := execBuilder(ctx, r.storage, psql.Insert(equipmentTable).SetMap(values)); err != nil {
		return nil, mapPgError(err, equipmentConstraints, serialValue(e))
	}
	return e, nil
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id string, patch dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	var updated *entities.Equipment
	err := r.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		e, err := r.findEquipment(ctx, tx, id, true)
		if err != nil {
			return err
		}
		if err := prepareEquipmentUpdate(e, patch, time.Now()); err != nil {
			return err
		}

		builder := psql.Update(equipmentTable).SetMap(equipmentValues(e)).Where(sq.Eq{"id": id})
		if _, err := execBuilder(ctx, tx, builder); err != nil {
			return mapPgError(err, equipmentConstraints, serialValue(e))
		}
		updated = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id string) error {
	result, err := execBuilder(ctx, r.storage, psql.Delete(equipmentTable).Where(sq.Eq{"id": id}))
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	r.logger.Debug("оборудование удалено", zap.String("id", id))
	return nil
}
