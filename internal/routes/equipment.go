package routes

import (
	"smart-gmao/internal/authz"
	"smart-gmao/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runEquipmentRouter(api *echo.Group, equipmentCtrl *controllers.EquipmentController, can func(string) []echo.MiddlewareFunc) {
	api.GET("/equipments", equipmentCtrl.GetEquipments, can(authz.EquipmentsView)...)
	api.GET("/equipments/:id", equipmentCtrl.FindEquipment, can(authz.EquipmentsView)...)
	api.POST("/equipments", equipmentCtrl.CreateEquipment, can(authz.EquipmentsCreate)...)
	api.PUT("/equipments/:id", equipmentCtrl.UpdateEquipment, can(authz.EquipmentsUpdate)...)
	api.DELETE("/equipments/:id", equipmentCtrl.DeleteEquipment, can(authz.EquipmentsDelete)...)
}
