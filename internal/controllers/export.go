package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"smart-gmao/internal/entities"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
)

const dateFmt = "02.01.2006"

var equipmentHeaders = []interface{}{
	"Nom", "Catégorie", "Marque", "Modèle", "N° de série", "Localisation", "Statut", "Priorité",
	"Date d'achat", "Fin de garantie", "Prix d'achat", "Intervalle (jours)", "Dernière maintenance", "Prochaine maintenance",
}

var ticketHeaders = []interface{}{
	"Titre", "Équipement", "Type", "Priorité", "Statut", "Assigné à", "Date de début", "Date de fin",
	"Échéance", "Heures estimées", "Heures réelles", "Coût estimé", "Coût réel", "Solution", "Créé le",
}

func exportEquipments(ctx echo.Context, list []*entities.Equipment) error {
	rows := make([][]interface{}, 0, len(list))
	for _, e := range list {
		rows = append(rows, []interface{}{
			e.Name, e.Category.Label(), str(e.Brand), str(e.Model), str(e.SerialNumber), e.Location,
			e.Status.Label(), e.Priority.Label(), date(e.PurchaseDate), date(e.WarrantyEndDate),
			num(e.PurchasePrice), e.MaintenanceIntervalDays, date(e.LastMaintenance), date(e.NextMaintenance),
		})
	}
	return respondWithXLSX(ctx, "Équipements", "equipements", equipmentHeaders, rows)
}

func exportTickets(ctx echo.Context, list []*entities.Ticket) error {
	rows := make([][]interface{}, 0, len(list))
	for _, t := range list {
		rows = append(rows, []interface{}{
			t.Title, t.EquipmentID, t.Type.Label(), t.Priority.Label(), t.Status.Label(), str(t.AssignedTo),
			date(t.StartDate), date(t.EndDate), date(t.DueDate),
			num(t.EstimatedHours), num(t.ActualHours), num(t.EstimatedCost), num(t.ActualCost),
			t.Solution, t.CreatedAt.Format(dateFmt),
		})
	}
	return respondWithXLSX(ctx, "Tickets", "tickets", ticketHeaders, rows)
}

func respondWithXLSX(ctx echo.Context, sheet, filePrefix string, headers []interface{}, rows [][]interface{}) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	_ = f.SetCellStyle(sheet, "A1", lastHeader, style)

	for i := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	_ = f.SetColWidth(sheet, "A", lastCol, 20)

	fileName := fmt.Sprintf("%s_%s.xlsx", filePrefix, time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func date(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateFmt)
}

func num(f *float64) interface{} {
	if f == nil {
		return ""
	}
	return *f
}
