package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecomputeNextMaintenance_FromLastMaintenance(t *testing.T) {
	last := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	e := &Equipment{MaintenanceIntervalDays: 30, LastMaintenance: &last}

	RecomputeNextMaintenance(e, time.Now())

	require.NotNil(t, e.NextMaintenance)
	assert.Equal(t, last.AddDate(0, 0, 30), *e.NextMaintenance)
}

func TestRecomputeNextMaintenance_FromNow(t *testing.T) {
	now := time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)
	e := &Equipment{MaintenanceIntervalDays: 90}

	RecomputeNextMaintenance(e, now)

	require.NotNil(t, e.NextMaintenance)
	assert.Equal(t, now.AddDate(0, 0, 90), *e.NextMaintenance)
}

func TestRecomputeNextMaintenance_KeepsExistingDate(t *testing.T) {
	fixed := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	e := &Equipment{MaintenanceIntervalDays: 10, LastMaintenance: &last, NextMaintenance: &fixed}

	RecomputeNextMaintenance(e, time.Now())
	RecomputeNextMaintenance(e, time.Now().Add(48*time.Hour))

	assert.Equal(t, fixed, *e.NextMaintenance)
}

func TestApplyStatusSideEffects_DoneStampsEndDateOnce(t *testing.T) {
	first := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	tk := &Ticket{Status: TicketDone}

	ApplyStatusSideEffects(tk, first)
	require.NotNil(t, tk.EndDate)
	assert.Equal(t, first, *tk.EndDate)

	ApplyStatusSideEffects(tk, first.Add(5*time.Hour))
	assert.Equal(t, first, *tk.EndDate)
	assert.Nil(t, tk.StartDate)
}

func TestApplyStatusSideEffects_InProgressStampsStartDate(t *testing.T) {
	now := time.Now()
	tk := &Ticket{Status: TicketInProgress}

	ApplyStatusSideEffects(tk, now)

	require.NotNil(t, tk.StartDate)
	assert.Equal(t, now, *tk.StartDate)
	assert.Nil(t, tk.EndDate)
}

func TestApplyStatusSideEffects_OtherStatusesUntouched(t *testing.T) {
	for _, st := range []TicketStatus{TicketPending, TicketPaused, TicketCancelled} {
		tk := &Ticket{Status: st}
		ApplyStatusSideEffects(tk, time.Now())
		assert.Nil(t, tk.StartDate, st)
		assert.Nil(t, tk.EndDate, st)
	}
}

func TestTicket_Overdue(t *testing.T) {
	now := time.Now()
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	assert.False(t, (&Ticket{Status: TicketPending}).Overdue(now), "без срока")
	assert.True(t, (&Ticket{Status: TicketPending, DueDate: &past}).Overdue(now))
	assert.False(t, (&Ticket{Status: TicketPending, DueDate: &future}).Overdue(now))
	assert.False(t, (&Ticket{Status: TicketDone, DueDate: &past}).Overdue(now), "завершённый тикет не просрочен")
}

func TestTicket_DurationHours(t *testing.T) {
	created := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	tk := &Ticket{}
	tk.CreatedAt = created
	assert.Nil(t, tk.DurationHours())

	end := created.Add(26*time.Hour + 40*time.Minute)
	tk.EndDate = &end
	require.NotNil(t, tk.DurationHours())
	assert.Equal(t, int64(27), *tk.DurationHours())
}

func TestEquipment_DerivedPredicates(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.False(t, (&Equipment{}).UnderWarranty(now))
	assert.True(t, (&Equipment{WarrantyEndDate: &future}).UnderWarranty(now))
	assert.False(t, (&Equipment{WarrantyEndDate: &past}).UnderWarranty(now))

	assert.False(t, (&Equipment{}).MaintenanceDue(now))
	assert.True(t, (&Equipment{NextMaintenance: &past}).MaintenanceDue(now))
	assert.True(t, (&Equipment{NextMaintenance: &now}).MaintenanceDue(now))
	assert.False(t, (&Equipment{NextMaintenance: &future}).MaintenanceDue(now))
}
