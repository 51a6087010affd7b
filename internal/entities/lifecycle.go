package entities

import "time"

// RecomputeNextMaintenance выставляет дату следующего обслуживания, если она не задана:
// (последнее обслуживание или now) + интервал. Уже заданную дату не трогает.
func RecomputeNextMaintenance(e *Equipment, now time.Time) {
	if e.NextMaintenance != nil {
		return
	}
	base := now
	if e.LastMaintenance != nil {
		base = *e.LastMaintenance
	}
	next := base.AddDate(0, 0, e.MaintenanceIntervalDays)
	e.NextMaintenance = &next
}

// ApplyStatusSideEffects проставляет даты начала и окончания работ по текущему статусу.
// Вызывается при каждом сохранении, уже заданные даты не перезаписываются.
func ApplyStatusSideEffects(t *Ticket, now time.Time) {
	switch t.Status {
	case TicketDone:
		if t.EndDate == nil {
			stamp := now
			t.EndDate = &stamp
		}
	case TicketInProgress:
		if t.StartDate == nil {
			stamp := now
			t.StartDate = &stamp
		}
	}
}
