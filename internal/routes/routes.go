package routes

import (
	"context"

	"smart-gmao/internal/authz"
	"smart-gmao/internal/controllers"
	"smart-gmao/internal/repositories"
	"smart-gmao/internal/services"
	"smart-gmao/pkg/config"
	"smart-gmao/pkg/eventbus"
	"smart-gmao/pkg/filestorage"
	"smart-gmao/pkg/middleware"
	"smart-gmao/pkg/service"
	"smart-gmao/pkg/websocket"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type Loggers struct {
	Main      *zap.Logger
	Auth      *zap.Logger
	Equipment *zap.Logger
	Ticket    *zap.Logger
}

// Repositories - выбранная реализация хранилища (память или PostgreSQL).
type Repositories struct {
	Users      repositories.UserRepositoryInterface
	Equipments repositories.EquipmentRepositoryInterface
	Tickets    repositories.TicketRepositoryInterface
	Cache      repositories.CacheRepositoryInterface
}

// HealthCheck проверяет доступность внешней зависимости (БД, Redis).
type HealthCheck func(ctx context.Context) error

type Dependencies struct {
	Repos        Repositories
	JWT          service.JWTService
	Bus          *eventbus.Bus
	Files        filestorage.FileStorageInterface
	Hub          *websocket.Hub
	Config       *config.Config
	Loggers      *Loggers
	HealthChecks map[string]HealthCheck
}

func InitRouter(e *echo.Echo, deps *Dependencies) {
	loggers := deps.Loggers
	loggers.Main.Info("InitRouter: Начало создания маршрутов")

	e.HTTPErrorHandler = NewHTTPErrorHandler(loggers.Main)

	// --- 0. ОБЩИЕ КОМПОНЕНТЫ ---
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(deps.JWT, loggers.Auth)
	gatekeeper := authz.NewGatekeeper()

	// --- 1. СЕРВИСЫ ---
	authService := services.NewAuthService(deps.Repos.Users, deps.Repos.Cache, loggers.Auth, &deps.Config.Auth)
	equipmentService := services.NewEquipmentService(deps.Repos.Equipments, loggers.Equipment)
	ticketService := services.NewTicketService(deps.Repos.Tickets, deps.Repos.Equipments, deps.Files, deps.Bus, loggers.Ticket)

	// --- 2. КОНТРОЛЛЕРЫ ---
	authCtrl := controllers.NewAuthController(authService, deps.JWT, deps.Config.Auth.CookieSecure, loggers.Auth)
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, loggers.Equipment)
	ticketCtrl := controllers.NewTicketController(ticketService, loggers.Ticket)

	// --- 3. РОУТЕРЫ ---
	runWelcomeRouter(e, api, deps.HealthChecks, loggers.Main)
	runAuthRouter(api, authCtrl, authMW)

	// Auth вешается на каждый маршрут: middleware группы echo ставит и на её 404,
	// и неизвестные /api/* отвечали бы 401.
	can := requirePermission(authMW, gatekeeper)
	runEquipmentRouter(api, equipmentCtrl, can)
	runTicketRouter(api, ticketCtrl, can)
	if deps.Hub != nil {
		feedCtrl := controllers.NewFeedController(deps.Hub, deps.Config.Server.CORSAllowedOrigins, loggers.Ticket)
		api.GET("/ws", feedCtrl.Connect, can(authz.TicketsView)...)
	}

	loggers.Main.Info("INIT_ROUTER: Создание маршрутов завершено")
}

// requirePermission строит цепочку Auth + Authorize для ролей, у которых есть пермишен.
func requirePermission(authMW *middleware.AuthMiddleware, gk *authz.Gatekeeper) func(permission string) []echo.MiddlewareFunc {
	return func(permission string) []echo.MiddlewareFunc {
		return []echo.MiddlewareFunc{authMW.Auth, authMW.Authorize(gk.RolesWith(permission)...)}
	}
}
