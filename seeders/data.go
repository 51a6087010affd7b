package seeders

import (
	"time"

	"smart-gmao/internal/entities"
	"smart-gmao/pkg/types"
)

const (
	adminLastName  = "Derradji"
	adminFirstName = "Imad"
)

func day(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func text(s string) *string { return &s }

func created(at string) types.BaseEntity {
	return types.BaseEntity{CreatedAt: *day(at)}
}

func sampleEquipments() []*entities.Equipment {
	return []*entities.Equipment{
		{
			Name:         "Compresseur A",
			Category:     entities.CategoryIndustrialMachine,
			Brand:        text("Atlas Copco"),
			Model:        text("GA75"),
			SerialNumber: text("AC-2023-001"),
			Description:  "Compresseur principal atelier A",
			Location:     "Atelier A",
			PurchaseDate: day("2022-03-15"),
			Status:       entities.EquipmentInService,
			Priority:     entities.EquipmentPriorityHigh,
			IsActive:     true,
			BaseEntity:   created("2022-03-15"),
		},
		{
			Name:         "Serveur Web 01",
			Category:     entities.CategoryIT,
			Brand:        text("Dell"),
			Model:        text("PowerEdge R740"),
			SerialNumber: text("DELL-2023-WEB01"),
			Description:  "Serveur web principal",
			Location:     "Salle serveur",
			PurchaseDate: day("2023-01-10"),
			Status:       entities.EquipmentInService,
			Priority:     entities.EquipmentPriorityCritical,
			IsActive:     true,
			BaseEntity:   created("2023-01-10"),
		},
		{
			Name:         "Robot KUKA R20",
			Category:     entities.CategoryIndustrialMachine,
			Brand:        text("KUKA"),
			Model:        text("KR 20 R1810"),
			SerialNumber: text("KUKA-2021-R20"),
			Description:  "Robot de soudure chaîne 2",
			Location:     "Chaîne production 2",
			PurchaseDate: day("2021-06-20"),
			Status:       entities.EquipmentUnderMaintenance,
			Priority:     entities.EquipmentPriorityMedium,
			IsActive:     true,
			BaseEntity:   created("2021-06-20"),
		},
		{
			Name:         "Camion Renault Master",
			Category:     entities.CategoryVehicle,
			Brand:        text("Renault"),
			Model:        text("Master Z.E."),
			SerialNumber: text("REN-2022-MAS01"),
			Description:  "Camion de livraison électrique",
			Location:     "Parking",
			PurchaseDate: day("2022-09-01"),
			Status:       entities.EquipmentBrokenDown,
			Priority:     entities.EquipmentPriorityMedium,
			IsActive:     true,
			BaseEntity:   created("2022-09-01"),
		},
	}
}

type sampleTicket struct {
	equipment string
	ticket    *entities.Ticket
}

func sampleTickets() []sampleTicket {
	return []sampleTicket{
		{"Compresseur A", &entities.Ticket{
			Title:       "Surchauffe moteur principal",
			Description: "Vibrations détectées en zone B",
			Type:        entities.MaintenanceCurative,
			Priority:    entities.TicketPriorityUrgent,
			Status:      entities.TicketInProgress,
			DueDate:     day("2023-10-12"),
			BaseEntity:  created("2023-10-10"),
		}},
		{"Camion Renault Master", &entities.Ticket{
			Title:       "Fuite d'huile hydraulique",
			Description: "Joint d'étanchéité défectueux",
			Type:        entities.MaintenanceCurative,
			Priority:    entities.TicketPriorityHigh,
			Status:      entities.TicketPending,
			DueDate:     day("2023-10-13"),
			BaseEntity:  created("2023-10-11"),
		}},
		{"Robot KUKA R20", &entities.Ticket{
			Title:       "Calibration capteur optique",
			Description: "Maintenance préventive trimestrielle",
			Type:        entities.MaintenancePreventive,
			Priority:    entities.TicketPriorityMedium,
			Status:      entities.TicketDone,
			DueDate:     day("2023-10-10"),
			BaseEntity:  created("2023-10-08"),
		}},
		{"Serveur Web 01", &entities.Ticket{
			Title:       "Bruit anormal ventilateur",
			Description: "Zone de refroidissement Nord",
			Type:        entities.MaintenanceCurative,
			Priority:    entities.TicketPriorityLow,
			Status:      entities.TicketInProgress,
			DueDate:     day("2023-10-15"),
			BaseEntity:  created("2023-10-12"),
		}},
	}
}
