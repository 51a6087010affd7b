package dto

import (
	"time"

	"smart-gmao/internal/entities"
)

type PartUsedDTO struct {
	Name     string  `json:"name" validate:"required"`
	Quantity int     `json:"quantity" validate:"gte=0"`
	UnitCost float64 `json:"unitCost" validate:"gte=0"`
}

type PhotoDTO struct {
	URL         string `json:"url" validate:"required"`
	Description string `json:"description"`
}

type CreateTicketDTO struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	EquipmentID string  `json:"equipmentId" validate:"required"`
	Type        string  `json:"type" validate:"omitempty,maintenance_type"`
	Priority    string  `json:"priority" validate:"omitempty,ticket_priority"`
	Status      string  `json:"status" validate:"omitempty,ticket_status"`
	AssignedTo  *string `json:"assignedTo"`

	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	DueDate   *time.Time `json:"dueDate"`

	EstimatedHours *float64 `json:"estimatedHours" validate:"omitempty,gte=0"`
	ActualHours    *float64 `json:"actualHours" validate:"omitempty,gte=0"`
	EstimatedCost  *float64 `json:"estimatedCost" validate:"omitempty,gte=0"`
	ActualCost     *float64 `json:"actualCost" validate:"omitempty,gte=0"`

	PartsUsed []PartUsedDTO `json:"partsUsed" validate:"omitempty,dive"`
	Solution  string        `json:"solution"`
	Photos    []PhotoDTO    `json:"photos" validate:"omitempty,dive"`

	IsScheduled   bool       `json:"isScheduled"`
	ScheduledDate *time.Time `json:"scheduledDate"`
}

func (d CreateTicketDTO) ToEntity(now time.Time) *entities.Ticket {
	return &entities.Ticket{
		Title:          d.Title,
		Description:    d.Description,
		EquipmentID:    d.EquipmentID,
		Type:           parseEnum(d.Type, entities.ParseMaintenanceType),
		Priority:       parseEnum(d.Priority, entities.ParseTicketPriority),
		Status:         parseEnum(d.Status, entities.ParseTicketStatus),
		AssignedTo:     d.AssignedTo,
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		DueDate:        d.DueDate,
		EstimatedHours: d.EstimatedHours,
		ActualHours:    d.ActualHours,
		EstimatedCost:  d.EstimatedCost,
		ActualCost:     d.ActualCost,
		PartsUsed:      toParts(d.PartsUsed),
		Solution:       d.Solution,
		Photos:         toPhotos(d.Photos, now),
		IsScheduled:    d.IsScheduled,
		ScheduledDate:  d.ScheduledDate,
	}
}

type UpdateTicketDTO struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	EquipmentID *string `json:"equipmentId" validate:"omitempty,min=1"`
	Type        *string `json:"type" validate:"omitnil,maintenance_type"`
	Priority    *string `json:"priority" validate:"omitnil,ticket_priority"`
	Status      *string `json:"status" validate:"omitnil,ticket_status"`
	AssignedTo  *string `json:"assignedTo"`

	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	DueDate   *time.Time `json:"dueDate"`

	EstimatedHours *float64 `json:"estimatedHours" validate:"omitempty,gte=0"`
	ActualHours    *float64 `json:"actualHours" validate:"omitempty,gte=0"`
	EstimatedCost  *float64 `json:"estimatedCost" validate:"omitempty,gte=0"`
	ActualCost     *float64 `json:"actualCost" validate:"omitempty,gte=0"`

	// Списки заменяются целиком
	PartsUsed *[]PartUsedDTO `json:"partsUsed" validate:"omitempty,dive"`
	Solution  *string        `json:"solution"`
	Photos    *[]PhotoDTO    `json:"photos" validate:"omitempty,dive"`

	IsScheduled   *bool      `json:"isScheduled"`
	ScheduledDate *time.Time `json:"scheduledDate"`
}

// CheckEnums проверяет перечисления патча до наложения на сущность.
func (d UpdateTicketDTO) CheckEnums() error {
	return firstError(
		checkEnum("type", d.Type, entities.ParseMaintenanceType),
		checkEnum("priority", d.Priority, entities.ParseTicketPriority),
		checkEnum("status", d.Status, entities.ParseTicketStatus),
	)
}

func (d UpdateTicketDTO) ApplyTo(t *entities.Ticket, now time.Time) {
	setIf(&t.Title, d.Title)
	setIf(&t.Description, d.Description)
	setIf(&t.EquipmentID, d.EquipmentID)
	if d.Type != nil {
		t.Type = parseEnum(*d.Type, entities.ParseMaintenanceType)
	}
	if d.Priority != nil {
		t.Priority = parseEnum(*d.Priority, entities.ParseTicketPriority)
	}
	if d.Status != nil {
		t.Status = parseEnum(*d.Status, entities.ParseTicketStatus)
	}
	setPtrIf(&t.AssignedTo, d.AssignedTo)
	setPtrIf(&t.StartDate, d.StartDate)
	setPtrIf(&t.EndDate, d.EndDate)
	setPtrIf(&t.DueDate, d.DueDate)
	setPtrIf(&t.EstimatedHours, d.EstimatedHours)
	setPtrIf(&t.ActualHours, d.ActualHours)
	setPtrIf(&t.EstimatedCost, d.EstimatedCost)
	setPtrIf(&t.ActualCost, d.ActualCost)
	if d.PartsUsed != nil {
		t.PartsUsed = toParts(*d.PartsUsed)
	}
	setIf(&t.Solution, d.Solution)
	if d.Photos != nil {
		t.Photos = toPhotos(*d.Photos, now)
	}
	setIf(&t.IsScheduled, d.IsScheduled)
	setPtrIf(&t.ScheduledDate, d.ScheduledDate)
}

type AddCommentDTO struct {
	Content string `json:"content" validate:"required"`
}

type FinishInterventionDTO struct {
	Solution    *string  `json:"solution"`
	ActualHours *float64 `json:"actualHours" validate:"omitempty,gte=0"`
	ActualCost  *float64 `json:"actualCost" validate:"omitempty,gte=0"`
}

// ToUpdate переводит завершение работ в обычный патч со статусом "done".
func (d FinishInterventionDTO) ToUpdate() UpdateTicketDTO {
	done := string(entities.TicketDone)
	return UpdateTicketDTO{
		Status:      &done,
		Solution:    d.Solution,
		ActualHours: d.ActualHours,
		ActualCost:  d.ActualCost,
	}
}

// TicketDTO - тикет с вычисляемыми полями.
type TicketDTO struct {
	*entities.Ticket
	Duration *int64 `json:"duration"`
	Overdue  bool   `json:"overdue"`
}

func NewTicketDTO(t *entities.Ticket, now time.Time) TicketDTO {
	return TicketDTO{
		Ticket:   t,
		Duration: t.DurationHours(),
		Overdue:  t.Overdue(now),
	}
}

func NewTicketDTOs(list []*entities.Ticket, now time.Time) []TicketDTO {
	res := make([]TicketDTO, 0, len(list))
	for _, t := range list {
		res = append(res, NewTicketDTO(t, now))
	}
	return res
}

func toParts(in []PartUsedDTO) []entities.PartUsed {
	out := make([]entities.PartUsed, 0, len(in))
	for _, p := range in {
		out = append(out, entities.PartUsed{Name: p.Name, Quantity: p.Quantity, UnitCost: p.UnitCost})
	}
	return out
}

func toPhotos(in []PhotoDTO, now time.Time) []entities.Photo {
	out := make([]entities.Photo, 0, len(in))
	for _, p := range in {
		out = append(out, entities.Photo{URL: p.URL, Description: p.Description, AddedAt: now})
	}
	return out
}
