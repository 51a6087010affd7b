package dto

import (
	"time"

	"smart-gmao/internal/entities"
)

type CreateEquipmentDTO struct {
	Name         string  `json:"name" validate:"required"`
	Category     string  `json:"category" validate:"required,equipment_category"`
	Brand        *string `json:"brand"`
	Model        *string `json:"model"`
	SerialNumber *string `json:"serialNumber"`
	Description  string  `json:"description"`
	Location     string  `json:"location" validate:"required"`

	PurchaseDate    *time.Time `json:"purchaseDate"`
	WarrantyEndDate *time.Time `json:"warrantyEndDate"`
	PurchasePrice   *float64   `json:"purchasePrice" validate:"omitempty,gte=0"`

	Status   string `json:"status" validate:"omitempty,equipment_status"`
	Priority string `json:"priority" validate:"omitempty,equipment_priority"`
	Photo    string `json:"photo"`

	MaintenanceIntervalDays *int       `json:"maintenanceIntervalDays" validate:"omitempty,gte=1"`
	LastMaintenance         *time.Time `json:"lastMaintenance"`
	NextMaintenance         *time.Time `json:"nextMaintenance"`

	Notes    string `json:"notes"`
	IsActive *bool  `json:"isActive"`
}

func (d CreateEquipmentDTO) ToEntity() *entities.Equipment {
	e := &entities.Equipment{
		Name:            d.Name,
		Category:        parseEnum(d.Category, entities.ParseEquipmentCategory),
		Brand:           d.Brand,
		Model:           d.Model,
		SerialNumber:    d.SerialNumber,
		Description:     d.Description,
		Location:        d.Location,
		PurchaseDate:    d.PurchaseDate,
		WarrantyEndDate: d.WarrantyEndDate,
		PurchasePrice:   d.PurchasePrice,
		Status:          parseEnum(d.Status, entities.ParseEquipmentStatus),
		Priority:        parseEnum(d.Priority, entities.ParseEquipmentPriority),
		Photo:           d.Photo,
		LastMaintenance: d.LastMaintenance,
		NextMaintenance: d.NextMaintenance,
		Notes:           d.Notes,
		IsActive:        true,
	}
	if d.MaintenanceIntervalDays != nil {
		e.MaintenanceIntervalDays = *d.MaintenanceIntervalDays
	}
	if d.IsActive != nil {
		e.IsActive = *d.IsActive
	}
	return e
}

// UpdateEquipmentDTO - частичное обновление, nil означает "не менять".
type UpdateEquipmentDTO struct {
	Name         *string `json:"name" validate:"omitempty,min=1"`
	Category     *string `json:"category" validate:"omitnil,equipment_category"`
	Brand        *string `json:"brand"`
	Model        *string `json:"model"`
	SerialNumber *string `json:"serialNumber"`
	Description  *string `json:"description"`
	Location     *string `json:"location" validate:"omitempty,min=1"`

	PurchaseDate    *time.Time `json:"purchaseDate"`
	WarrantyEndDate *time.Time `json:"warrantyEndDate"`
	PurchasePrice   *float64   `json:"purchasePrice" validate:"omitempty,gte=0"`

	Status   *string `json:"status" validate:"omitnil,equipment_status"`
	Priority *string `json:"priority" validate:"omitnil,equipment_priority"`
	Photo    *string `json:"photo"`

	MaintenanceIntervalDays *int       `json:"maintenanceIntervalDays" validate:"omitempty,gte=1"`
	LastMaintenance         *time.Time `json:"lastMaintenance"`
	NextMaintenance         *time.Time `json:"nextMaintenance"`

	Notes    *string `json:"notes"`
	IsActive *bool   `json:"isActive"`
}

// CheckEnums проверяет перечисления патча до наложения на сущность.
func (d UpdateEquipmentDTO) CheckEnums() error {
	return firstError(
		checkEnum("category", d.Category, entities.ParseEquipmentCategory),
		checkEnum("status", d.Status, entities.ParseEquipmentStatus),
		checkEnum("priority", d.Priority, entities.ParseEquipmentPriority),
	)
}

// ApplyTo накладывает патч на копию сущности из хранилища.
func (d UpdateEquipmentDTO) ApplyTo(e *entities.Equipment) {
	setIf(&e.Name, d.Name)
	if d.Category != nil {
		e.Category = parseEnum(*d.Category, entities.ParseEquipmentCategory)
	}
	setPtrIf(&e.Brand, d.Brand)
	setPtrIf(&e.Model, d.Model)
	setPtrIf(&e.SerialNumber, d.SerialNumber)
	setIf(&e.Description, d.Description)
	setIf(&e.Location, d.Location)
	setPtrIf(&e.PurchaseDate, d.PurchaseDate)
	setPtrIf(&e.WarrantyEndDate, d.WarrantyEndDate)
	setPtrIf(&e.PurchasePrice, d.PurchasePrice)
	if d.Status != nil {
		e.Status = parseEnum(*d.Status, entities.ParseEquipmentStatus)
	}
	if d.Priority != nil {
		e.Priority = parseEnum(*d.Priority, entities.ParseEquipmentPriority)
	}
	setIf(&e.Photo, d.Photo)
	setIf(&e.MaintenanceIntervalDays, d.MaintenanceIntervalDays)
	setPtrIf(&e.LastMaintenance, d.LastMaintenance)
	setPtrIf(&e.NextMaintenance, d.NextMaintenance)
	setIf(&e.Notes, d.Notes)
	setIf(&e.IsActive, d.IsActive)
}

// EquipmentDTO - оборудование с вычисляемыми полями.
type EquipmentDTO struct {
	*entities.Equipment
	UnderWarranty  bool `json:"underWarranty"`
	MaintenanceDue bool `json:"maintenanceDue"`
}

func NewEquipmentDTO(e *entities.Equipment, now time.Time) EquipmentDTO {
	return EquipmentDTO{
		Equipment:      e,
		UnderWarranty:  e.UnderWarranty(now),
		MaintenanceDue: e.MaintenanceDue(now),
	}
}

func NewEquipmentDTOs(list []*entities.Equipment, now time.Time) []EquipmentDTO {
	res := make([]EquipmentDTO, 0, len(list))
	for _, e := range list {
		res = append(res, NewEquipmentDTO(e, now))
	}
	return res
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setPtrIf[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}
