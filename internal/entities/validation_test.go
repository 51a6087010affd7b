package entities

import (
	"testing"

	apperrors "smart-gmao/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEquipment() *Equipment {
	e := &Equipment{Name: "Pump-1", Category: CategoryIndustrialMachine, Location: "Bay-2", CreatedBy: "u1"}
	e.ApplyDefaults()
	return e
}

func assertFieldError(t *testing.T, err error, field string) {
	t.Helper()
	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, field, vErr.Field)
}

func TestEquipment_DefaultsAndValidate(t *testing.T) {
	e := validEquipment()

	assert.Equal(t, EquipmentInService, e.Status)
	assert.Equal(t, EquipmentPriorityMedium, e.Priority)
	assert.Equal(t, DefaultMaintenanceInterval, e.MaintenanceIntervalDays)
	assert.Equal(t, DefaultEquipmentPhoto, e.Photo)
	assert.NoError(t, e.Validate())
}

func TestEquipment_ValidateRejects(t *testing.T) {
	negative := -1.0

	e := validEquipment()
	e.Name = " "
	assertFieldError(t, e.Validate(), "name")

	e = validEquipment()
	e.Category = "spaceship"
	assertFieldError(t, e.Validate(), "category")

	e = validEquipment()
	e.Location = ""
	assertFieldError(t, e.Validate(), "location")

	e = validEquipment()
	e.PurchasePrice = &negative
	assertFieldError(t, e.Validate(), "purchasePrice")

	e = validEquipment()
	e.MaintenanceIntervalDays = -3
	assertFieldError(t, e.Validate(), "maintenanceIntervalDays")
}

func TestEquipment_BlankSerialNumberIsDropped(t *testing.T) {
	blank := "   "
	e := &Equipment{SerialNumber: &blank}
	e.ApplyDefaults()
	assert.Nil(t, e.SerialNumber)
}

func TestTicket_DefaultsAndValidate(t *testing.T) {
	tk := &Ticket{Title: "Fuite", Description: "Joint HS", EquipmentID: "e1", CreatedBy: "u1"}
	tk.ApplyDefaults()

	assert.Equal(t, MaintenanceCurative, tk.Type)
	assert.Equal(t, TicketPriorityMedium, tk.Priority)
	assert.Equal(t, TicketPending, tk.Status)
	assert.NoError(t, tk.Validate())

	negative := -2.5
	tk.ActualCost = &negative
	assertFieldError(t, tk.Validate(), "actualCost")
}

func TestUser_Validate(t *testing.T) {
	u := &User{LastName: "Derradji", FirstName: "Imad", Email: "  Admin@SmartGMAO.com ", Password: "hash"}
	u.ApplyDefaults()

	assert.Equal(t, "admin@smartgmao.com", u.Email)
	assert.Equal(t, RoleUser, u.Role)
	assert.NoError(t, u.Validate())

	u.Email = "not-an-email"
	assertFieldError(t, u.Validate(), "email")
}

func TestParseEnums_AcceptCodesAndLabels(t *testing.T) {
	st, ok := ParseTicketStatus("En cours")
	assert.True(t, ok)
	assert.Equal(t, TicketInProgress, st)

	st, ok = ParseTicketStatus("done")
	assert.True(t, ok)
	assert.Equal(t, TicketDone, st)

	p, ok := ParseTicketPriority("Urgente")
	assert.True(t, ok)
	assert.Equal(t, TicketPriorityUrgent, p)

	c, ok := ParseEquipmentCategory("Équipement IT")
	assert.True(t, ok)
	assert.Equal(t, CategoryIT, c)

	_, ok = ParseTicketStatus("unknown")
	assert.False(t, ok)
}

func TestParseEnums_CaseInsensitiveCodesAndAliases(t *testing.T) {
	c, ok := ParseEquipmentCategory("IT-equipment")
	assert.True(t, ok)
	assert.Equal(t, CategoryIT, c)

	st, ok := ParseTicketStatus(" IN-PROGRESS ")
	assert.True(t, ok)
	assert.Equal(t, TicketInProgress, st)

	r, ok := ParseRole("standard-user")
	assert.True(t, ok)
	assert.Equal(t, RoleUser, r)

	r, ok = ParseRole("Technicien")
	assert.True(t, ok)
	assert.Equal(t, RoleTechnician, r)

	_, ok = ParseTicketStatus("")
	assert.False(t, ok)
}

func TestTicketStats_ContainsEveryKey(t *testing.T) {
	s := NewTicketStats()
	s.Add(TicketDone, TicketPriorityHigh, 2)

	assert.Len(t, s.ByStatus, len(TicketStatuses))
	assert.Len(t, s.ByPriority, len(TicketPriorities))
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 0, s.ByStatus[TicketPaused])
}
