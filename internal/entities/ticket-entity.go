package entities

import (
	"math"
	"strings"
	"time"

	apperrors "smart-gmao/pkg/errors"
	"smart-gmao/pkg/types"
)

type PartUsed struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	UnitCost float64 `json:"unitCost"`
}

type Comment struct {
	Author  string    `json:"author"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
}

type Photo struct {
	URL         string    `json:"url"`
	Description string    `json:"description"`
	AddedAt     time.Time `json:"addedAt"`
}

type Ticket struct {
	ID          string          `json:"id" db:"id"`
	Title       string          `json:"title" db:"title"`
	Description string          `json:"description" db:"description"`
	EquipmentID string          `json:"equipmentId" db:"equipment_id"`
	Type        MaintenanceType `json:"type" db:"type"`
	Priority    TicketPriority  `json:"priority" db:"priority"`
	Status      TicketStatus    `json:"status" db:"status"`
	CreatedBy   string          `json:"createdBy" db:"created_by"`
	AssignedTo  *string         `json:"assignedTo" db:"assigned_to"`

	StartDate *time.Time `json:"startDate" db:"start_date"`
	EndDate   *time.Time `json:"endDate" db:"end_date"`
	DueDate   *time.Time `json:"dueDate" db:"due_date"`

	EstimatedHours *float64 `json:"estimatedHours" db:"estimated_hours"`
	ActualHours    *float64 `json:"actualHours" db:"actual_hours"`
	EstimatedCost  *float64 `json:"estimatedCost" db:"estimated_cost"`
	ActualCost     *float64 `json:"actualCost" db:"actual_cost"`

	PartsUsed []PartUsed `json:"partsUsed" db:"parts_used"`
	Comments  []Comment  `json:"comments" db:"comments"`
	Solution  string     `json:"solution" db:"solution"`
	Photos    []Photo    `json:"photos" db:"photos"`

	IsScheduled   bool       `json:"isScheduled" db:"is_scheduled"`
	ScheduledDate *time.Time `json:"scheduledDate" db:"scheduled_date"`

	types.BaseEntity
}

type TicketFilter struct {
	Status      TicketStatus
	Priority    TicketPriority
	EquipmentID string
}

func (f TicketFilter) Match(t *Ticket) bool {
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.Priority != "" && t.Priority != f.Priority {
		return false
	}
	if f.EquipmentID != "" && t.EquipmentID != f.EquipmentID {
		return false
	}
	return true
}

func (t *Ticket) ApplyDefaults() {
	if t.Type == "" {
		t.Type = MaintenanceCurative
	}
	if t.Priority == "" {
		t.Priority = TicketPriorityMedium
	}
	if t.Status == "" {
		t.Status = TicketPending
	}
	if t.PartsUsed == nil {
		t.PartsUsed = []PartUsed{}
	}
	if t.Comments == nil {
		t.Comments = []Comment{}
	}
	if t.Photos == nil {
		t.Photos = []Photo{}
	}
}

func (t *Ticket) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return apperrors.NewValidationError("title", "обязательное поле")
	}
	if strings.TrimSpace(t.Description) == "" {
		return apperrors.NewValidationError("description", "обязательное поле")
	}
	if t.EquipmentID == "" {
		return apperrors.NewValidationError("equipmentId", "обязательное поле")
	}
	if !t.Type.IsValid() {
		return apperrors.NewValidationError("type", "недопустимое значение '%s'", t.Type)
	}
	if !t.Priority.IsValid() {
		return apperrors.NewValidationError("priority", "недопустимое значение '%s'", t.Priority)
	}
	if !t.Status.IsValid() {
		return apperrors.NewValidationError("status", "недопустимое значение '%s'", t.Status)
	}
	if t.CreatedBy == "" {
		return apperrors.NewValidationError("createdBy", "обязательное поле")
	}
	nonNegative := map[string]*float64{
		"estimatedHours": t.EstimatedHours,
		"actualHours":    t.ActualHours,
		"estimatedCost":  t.EstimatedCost,
		"actualCost":     t.ActualCost,
	}
	for _, field := range []string{"estimatedHours", "actualHours", "estimatedCost", "actualCost"} {
		if v := nonNegative[field]; v != nil && *v < 0 {
			return apperrors.NewValidationError(field, "значение не может быть отрицательным")
		}
	}
	for _, p := range t.PartsUsed {
		if p.Quantity < 0 {
			return apperrors.NewValidationError("partsUsed.quantity", "значение не может быть отрицательным")
		}
		if p.UnitCost < 0 {
			return apperrors.NewValidationError("partsUsed.unitCost", "значение не может быть отрицательным")
		}
	}
	return nil
}

// DurationHours - длительность в часах от создания до завершения, nil пока тикет не закрыт.
func (t *Ticket) DurationHours() *int64 {
	if t.EndDate == nil {
		return nil
	}
	h := int64(math.Round(t.EndDate.Sub(t.CreatedAt).Hours()))
	return &h
}

// Overdue - срок задан, тикет не завершён и срок прошёл.
func (t *Ticket) Overdue(now time.Time) bool {
	if t.DueDate == nil || t.Status == TicketDone {
		return false
	}
	return now.After(*t.DueDate)
}

func (t *Ticket) Clone() *Ticket {
	c := *t
	c.AssignedTo = clonePtr(t.AssignedTo)
	c.StartDate = clonePtr(t.StartDate)
	c.EndDate = clonePtr(t.EndDate)
	c.DueDate = clonePtr(t.DueDate)
	c.EstimatedHours = clonePtr(t.EstimatedHours)
	c.ActualHours = clonePtr(t.ActualHours)
	c.EstimatedCost = clonePtr(t.EstimatedCost)
	c.ActualCost = clonePtr(t.ActualCost)
	c.ScheduledDate = clonePtr(t.ScheduledDate)
	c.PartsUsed = append([]PartUsed{}, t.PartsUsed...)
	c.Comments = append([]Comment{}, t.Comments...)
	c.Photos = append([]Photo{}, t.Photos...)
	return &c
}

// TicketStats - количество тикетов по статусам и приоритетам.
type TicketStats struct {
	Total      int                    `json:"total"`
	ByStatus   map[TicketStatus]int   `json:"byStatus"`
	ByPriority map[TicketPriority]int `json:"byPriority"`
}

// NewTicketStats возвращает статистику, где присутствуют все значения перечислений.
func NewTicketStats() TicketStats {
	s := TicketStats{
		ByStatus:   make(map[TicketStatus]int, len(TicketStatuses)),
		ByPriority: make(map[TicketPriority]int, len(TicketPriorities)),
	}
	for _, st := range TicketStatuses {
		s.ByStatus[st] = 0
	}
	for _, p := range TicketPriorities {
		s.ByPriority[p] = 0
	}
	return s
}

func (s *TicketStats) Add(status TicketStatus, priority TicketPriority, n int) {
	s.Total += n
	s.ByStatus[status] += n
	s.ByPriority[priority] += n
}
