package entities

import (
	"strings"
	"time"

	apperrors "smart-gmao/pkg/errors"
	"smart-gmao/pkg/types"
)

const (
	DefaultEquipmentPhoto      = "default-equipment.png"
	DefaultMaintenanceInterval = 90
)

type Equipment struct {
	ID           string            `json:"id" db:"id"`
	Name         string            `json:"name" db:"name"`
	Category     EquipmentCategory `json:"category" db:"category"`
	Brand        *string           `json:"brand" db:"brand"`
	Model        *string           `json:"model" db:"model"`
	SerialNumber *string           `json:"serialNumber" db:"serial_number"`
	Description  string            `json:"description" db:"description"`
	Location     string            `json:"location" db:"location"`

	PurchaseDate    *time.Time `json:"purchaseDate" db:"purchase_date"`
	WarrantyEndDate *time.Time `json:"warrantyEndDate" db:"warranty_end_date"`
	PurchasePrice   *float64   `json:"purchasePrice" db:"purchase_price"`

	Status   EquipmentStatus   `json:"status" db:"status"`
	Priority EquipmentPriority `json:"priority" db:"priority"`
	Photo    string            `json:"photo" db:"photo"`

	// Интервал профилактики в днях
	MaintenanceIntervalDays int        `json:"maintenanceIntervalDays" db:"maintenance_interval_days"`
	LastMaintenance         *time.Time `json:"lastMaintenance" db:"last_maintenance"`
	NextMaintenance         *time.Time `json:"nextMaintenance" db:"next_maintenance"`

	CreatedBy string `json:"createdBy" db:"created_by"`
	Notes     string `json:"notes" db:"notes"`
	IsActive  bool   `json:"isActive" db:"is_active"`

	types.BaseEntity
}

// EquipmentFilter - условия выборки, пустые поля не участвуют.
type EquipmentFilter struct {
	Status   EquipmentStatus
	Category EquipmentCategory
}

func (f EquipmentFilter) Match(e *Equipment) bool {
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	return true
}

// ApplyDefaults заполняет поля, не переданные при создании.
func (e *Equipment) ApplyDefaults() {
	if e.Status == "" {
		e.Status = EquipmentInService
	}
	if e.Priority == "" {
		e.Priority = EquipmentPriorityMedium
	}
	if e.Photo == "" {
		e.Photo = DefaultEquipmentPhoto
	}
	if e.MaintenanceIntervalDays == 0 {
		e.MaintenanceIntervalDays = DefaultMaintenanceInterval
	}
	if e.SerialNumber != nil {
		sn := strings.TrimSpace(*e.SerialNumber)
		if sn == "" {
			e.SerialNumber = nil
		} else {
			e.SerialNumber = &sn
		}
	}
}

func (e *Equipment) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return apperrors.NewValidationError("name", "обязательное поле")
	}
	if e.Category == "" {
		return apperrors.NewValidationError("category", "обязательное поле")
	}
	if !e.Category.IsValid() {
		return apperrors.NewValidationError("category", "недопустимое значение '%s'", e.Category)
	}
	if strings.TrimSpace(e.Location) == "" {
		return apperrors.NewValidationError("location", "обязательное поле")
	}
	if !e.Status.IsValid() {
		return apperrors.NewValidationError("status", "недопустимое значение '%s'", e.Status)
	}
	if !e.Priority.IsValid() {
		return apperrors.NewValidationError("priority", "недопустимое значение '%s'", e.Priority)
	}
	if e.PurchasePrice != nil && *e.PurchasePrice < 0 {
		return apperrors.NewValidationError("purchasePrice", "значение не может быть отрицательным")
	}
	if e.MaintenanceIntervalDays < 1 {
		return apperrors.NewValidationError("maintenanceIntervalDays", "минимальное значение 1")
	}
	if e.CreatedBy == "" {
		return apperrors.NewValidationError("createdBy", "обязательное поле")
	}
	return nil
}

// UnderWarranty - дата окончания гарантии задана и ещё не наступила.
func (e *Equipment) UnderWarranty(now time.Time) bool {
	return e.WarrantyEndDate != nil && e.WarrantyEndDate.After(now)
}

// MaintenanceDue - дата следующего обслуживания задана и уже наступила.
func (e *Equipment) MaintenanceDue(now time.Time) bool {
	return e.NextMaintenance != nil && !e.NextMaintenance.After(now)
}

func (e *Equipment) Clone() *Equipment {
	c := *e
	c.Brand = clonePtr(e.Brand)
	c.Model = clonePtr(e.Model)
	c.SerialNumber = clonePtr(e.SerialNumber)
	c.PurchaseDate = clonePtr(e.PurchaseDate)
	c.WarrantyEndDate = clonePtr(e.WarrantyEndDate)
	c.PurchasePrice = clonePtr(e.PurchasePrice)
	c.LastMaintenance = clonePtr(e.LastMaintenance)
	c.NextMaintenance = clonePtr(e.NextMaintenance)
	return &c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
