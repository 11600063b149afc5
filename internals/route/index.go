package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"akademiku_backend/internals/constants"
	"akademiku_backend/internals/middlewares"
	authMw "akademiku_backend/internals/middlewares/auth"
	routeDetails "akademiku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== BASE =====================
	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Montando rutas de auth...")
	routeDetails.AuthRoutes(app, db)

	// ===================== GRUPOS =====================
	// /api/public queda reservado: hoy lo único sin token es /health.
	api := app.Group("/api", middlewares.GlobalRateLimiter())

	// /api/u → cualquier rol autenticado
	user := api.Group("/u", authMw.AuthMiddleware(db))

	// /api/a → solo administrador
	admin := api.Group("/a",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles("Recurso restringido al administrador", constants.AdminOnly...),
	)

	// /api/i → personal: administrador o instructor
	staff := api.Group("/i",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles("Recurso restringido al personal", constants.StaffRoles...),
	)

	// ===================== MONTAJE =====================
	log.Println("[INFO] Montando rutas de usuarios...")
	routeDetails.UsersAdminRoutes(admin, db)
	routeDetails.UsersSelfRoutes(user, db)

	log.Println("[INFO] Montando rutas académicas...")
	routeDetails.AcademicAdminRoutes(admin, db)
	routeDetails.AcademicStaffRoutes(staff, db)
	routeDetails.AcademicUserRoutes(user, db)

	log.Println("[INFO] Montando rutas de asistencia...")
	routeDetails.AttendanceStaffRoutes(staff, db)
	routeDetails.AttendanceUserRoutes(user, db)

	log.Println("[INFO] Montando rutas de actividades...")
	routeDetails.ActivitiesStaffRoutes(staff, db)
	routeDetails.ActivitiesUserRoutes(user, db)

	log.Println("[INFO] Montando rutas de comité...")
	routeDetails.CommitteeStaffRoutes(staff, db)
	routeDetails.CommitteeUserRoutes(user, db)

	log.Println("[INFO] Montando rutas de notificaciones...")
	routeDetails.NotificationsAdminRoutes(admin, db)
	routeDetails.NotificationsStaffRoutes(staff, db)
	routeDetails.NotificationsUserRoutes(user, db)

	log.Println("[INFO] Montando resumen de inicio...")
	routeDetails.HomeUserRoutes(user, db)
}
