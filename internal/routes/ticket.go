package routes

import (
	"smart-gmao/internal/authz"
	"smart-gmao/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runTicketRouter(api *echo.Group, ticketCtrl *controllers.TicketController, can func(string) []echo.MiddlewareFunc) {
	api.GET("/tickets", ticketCtrl.GetTickets, can(authz.TicketsView)...)
	// /stats регистрируется раньше /:id
	api.GET("/tickets/stats", ticketCtrl.GetTicketStats, can(authz.TicketsView)...)
	api.GET("/tickets/:id", ticketCtrl.FindTicket, can(authz.TicketsView)...)
	api.POST("/tickets", ticketCtrl.CreateTicket, can(authz.TicketsCreate)...)
	api.PUT("/tickets/:id", ticketCtrl.UpdateTicket, can(authz.TicketsUpdate)...)
	api.DELETE("/tickets/:id", ticketCtrl.DeleteTicket, can(authz.TicketsDelete)...)

	api.POST("/tickets/:id/comments", ticketCtrl.AddComment, can(authz.TicketsComment)...)
	api.POST("/tickets/:id/photos", ticketCtrl.AddPhoto, can(authz.TicketsUpdate)...)
	api.POST("/tickets/:id/start", ticketCtrl.StartIntervention, can(authz.TicketsIntervene)...)
	api.POST("/tickets/:id/finish", ticketCtrl.FinishIntervention, can(authz.TicketsIntervene)...)
}
