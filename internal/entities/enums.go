package entities

import "strings"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleTechnician Role = "technician"
	RoleUser       Role = "user"
)

var Roles = []Role{RoleAdmin, RoleTechnician, RoleUser}

var roleLabels = map[Role]string{
	RoleAdmin:      "admin",
	RoleTechnician: "technicien",
	RoleUser:       "utilisateur",
}

var roleAliases = map[string]Role{
	"standard-user": RoleUser,
}

type EquipmentCategory string

const (
	CategoryIndustrialMachine EquipmentCategory = "industrial-machine"
	CategoryVehicle           EquipmentCategory = "vehicle"
	CategoryIT                EquipmentCategory = "it-equipment"
	CategoryMedical           EquipmentCategory = "medical-equipment"
	CategoryOffice            EquipmentCategory = "office-equipment"
	CategoryOther             EquipmentCategory = "other"
)

var EquipmentCategories = []EquipmentCategory{
	CategoryIndustrialMachine, CategoryVehicle, CategoryIT, CategoryMedical, CategoryOffice, CategoryOther,
}

var equipmentCategoryLabels = map[EquipmentCategory]string{
	CategoryIndustrialMachine: "Machine industrielle",
	CategoryVehicle:           "Véhicule",
	CategoryIT:                "Équipement IT",
	CategoryMedical:           "Équipement médical",
	CategoryOffice:            "Équipement bureautique",
	CategoryOther:             "Autre",
}

type EquipmentStatus string

const (
	EquipmentInService        EquipmentStatus = "in-service"
	EquipmentBrokenDown       EquipmentStatus = "broken-down"
	EquipmentUnderMaintenance EquipmentStatus = "under-maintenance"
	EquipmentDecommissioned   EquipmentStatus = "decommissioned"
	EquipmentPending          EquipmentStatus = "pending"
)

var EquipmentStatuses = []EquipmentStatus{
	EquipmentInService, EquipmentBrokenDown, EquipmentUnderMaintenance, EquipmentDecommissioned, EquipmentPending,
}

var equipmentStatusLabels = map[EquipmentStatus]string{
	EquipmentInService:        "En service",
	EquipmentBrokenDown:       "En panne",
	EquipmentUnderMaintenance: "En maintenance",
	EquipmentDecommissioned:   "Hors service",
	EquipmentPending:          "En attente",
}

type EquipmentPriority string

const (
	EquipmentPriorityLow      EquipmentPriority = "low"
	EquipmentPriorityMedium   EquipmentPriority = "medium"
	EquipmentPriorityHigh     EquipmentPriority = "high"
	EquipmentPriorityCritical EquipmentPriority = "critical"
)

var EquipmentPriorities = []EquipmentPriority{
	EquipmentPriorityLow, EquipmentPriorityMedium, EquipmentPriorityHigh, EquipmentPriorityCritical,
}

var equipmentPriorityLabels = map[EquipmentPriority]string{
	EquipmentPriorityLow:      "Faible",
	EquipmentPriorityMedium:   "Moyenne",
	EquipmentPriorityHigh:     "Haute",
	EquipmentPriorityCritical: "Critique",
}

type MaintenanceType string

const (
	MaintenancePreventive  MaintenanceType = "preventive"
	MaintenanceCurative    MaintenanceType = "curative"
	MaintenanceCorrective  MaintenanceType = "corrective"
	MaintenanceImprovement MaintenanceType = "improvement"
)

var MaintenanceTypes = []MaintenanceType{
	MaintenancePreventive, MaintenanceCurative, MaintenanceCorrective, MaintenanceImprovement,
}

var maintenanceTypeLabels = map[MaintenanceType]string{
	MaintenancePreventive:  "Préventive",
	MaintenanceCurative:    "Curative",
	MaintenanceCorrective:  "Corrective",
	MaintenanceImprovement: "Amélioration",
}

type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

var TicketPriorities = []TicketPriority{
	TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityUrgent,
}

var ticketPriorityLabels = map[TicketPriority]string{
	TicketPriorityLow:    "Faible",
	TicketPriorityMedium: "Moyenne",
	TicketPriorityHigh:   "Haute",
	TicketPriorityUrgent: "Urgente",
}

type TicketStatus string

const (
	TicketPending    TicketStatus = "pending"
	TicketInProgress TicketStatus = "in-progress"
	TicketDone       TicketStatus = "done"
	TicketCancelled  TicketStatus = "cancelled"
	TicketPaused     TicketStatus = "paused"
)

var TicketStatuses = []TicketStatus{
	TicketPending, TicketInProgress, TicketDone, TicketCancelled, TicketPaused,
}

var ticketStatusLabels = map[TicketStatus]string{
	TicketPending:    "En attente",
	TicketInProgress: "En cours",
	TicketDone:       "Terminé",
	TicketCancelled:  "Annulé",
	TicketPaused:     "En pause",
}

// parseEnum принимает как код ("in-progress"), так и французскую метку ("En cours"), без учёта регистра.
func parseEnum[T ~string](s string, values []T, labels map[T]string) (T, bool) {
	s = strings.TrimSpace(s)
	for _, v := range values {
		if strings.EqualFold(string(v), s) || strings.EqualFold(labels[v], s) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func ParseRole(s string) (Role, bool) {
	if r, ok := roleAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return r, true
	}
	return parseEnum(s, Roles, roleLabels)
}

func ParseEquipmentCategory(s string) (EquipmentCategory, bool) {
	return parseEnum(s, EquipmentCategories, equipmentCategoryLabels)
}
func ParseEquipmentStatus(s string) (EquipmentStatus, bool) {
	return parseEnum(s, EquipmentStatuses, equipmentStatusLabels)
}
func ParseEquipmentPriority(s string) (EquipmentPriority, bool) {
	return parseEnum(s, EquipmentPriorities, equipmentPriorityLabels)
}
func ParseMaintenanceType(s string) (MaintenanceType, bool) {
	return parseEnum(s, MaintenanceTypes, maintenanceTypeLabels)
}
func ParseTicketPriority(s string) (TicketPriority, bool) {
	return parseEnum(s, TicketPriorities, ticketPriorityLabels)
}
func ParseTicketStatus(s string) (TicketStatus, bool) {
	return parseEnum(s, TicketStatuses, ticketStatusLabels)
}

func (r Role) Label() string              { return roleLabels[r] }
func (c EquipmentCategory) Label() string { return equipmentCategoryLabels[c] }
func (s EquipmentStatus) Label() string   { return equipmentStatusLabels[s] }
func (p EquipmentPriority) Label() string { return equipmentPriorityLabels[p] }
func (t MaintenanceType) Label() string   { return maintenanceTypeLabels[t] }
func (p TicketPriority) Label() string    { return ticketPriorityLabels[p] }
func (s TicketStatus) Label() string      { return ticketStatusLabels[s] }

func (r Role) IsValid() bool {
	_, ok := roleLabels[r]
	return ok
}
func (c EquipmentCategory) IsValid() bool {
	_, ok := equipmentCategoryLabels[c]
	return ok
}
func (s EquipmentStatus) IsValid() bool {
	_, ok := equipmentStatusLabels[s]
	return ok
}
func (p EquipmentPriority) IsValid() bool {
	_, ok := equipmentPriorityLabels[p]
	return ok
}
func (t MaintenanceType) IsValid() bool {
	_, ok := maintenanceTypeLabels[t]
	return ok
}
func (p TicketPriority) IsValid() bool {
	_, ok := ticketPriorityLabels[p]
	return ok
}
func (s TicketStatus) IsValid() bool {
	_, ok := ticketStatusLabels[s]
	return ok
}
