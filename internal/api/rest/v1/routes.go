package v1

import (
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/auth"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/cleaning"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/demo"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/finance"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/ocr"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/owners"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/properties"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/quotations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reports"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reservations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Services groups the use cases exposed over REST
type Services struct {
	Auth         auth.AuthService
	Owners       owners.OwnerService
	Properties   properties.PropertyService
	Reservations reservations.ReservationService
	Teams        cleaning.TeamService
	Schedules    cleaning.ScheduleService
	Documents    finance.DocumentService
	Quotations   quotations.QuotationService
	OCR          ocr.OCRService
	Reports      reports.ReportService
	Statistics   reports.StatisticsService
	Demo         demo.DemoService
	HealthChecks map[string]HealthCheck
}

// SetupRoutes sets up all the API routes for version 1.
// Reads require the viewer role, writes the manager role and demo data the admin role.
func SetupRoutes(r *gin.Engine, services Services, logger logger.Logger) {
	api := r.Group(BasePath)

	healthHandler := NewHealthHandler(services.HealthChecks, logger)
	api.GET("/health", healthHandler.Health)

	// Auth Routes
	authHandler := NewAuthHandler(services.Auth, logger)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/register", OptionalAuthenticate(services.Auth), authHandler.Register)

	authenticated := api.Group("", Authenticate(services.Auth))
	authenticated.POST("/auth/logout", authHandler.Logout)
	authenticated.GET("/auth/me", authHandler.Me)

	read := authenticated.Group("", RequireRole(auth.RoleViewer))
	write := authenticated.Group("", RequireRole(auth.RoleManager))
	admin := authenticated.Group("", RequireRole(auth.RoleAdmin))

	// Owners Routes
	ownerHandler := NewOwnerHandler(services.Owners, logger)
	write.POST("/owners", ownerHandler.Create)
	read.GET("/owners", ownerHandler.List)
	read.GET("/owners/:id", ownerHandler.GetByID)
	write.PUT("/owners/:id", ownerHandler.Update)
	write.DELETE("/owners/:id", ownerHandler.DeleteByID)

	// Properties Routes
	propertyHandler := NewPropertyHandler(services.Properties, logger)
	write.POST("/properties", propertyHandler.Create)
	read.GET("/properties", propertyHandler.List)
	read.GET("/properties/:id", propertyHandler.GetByID)
	write.PUT("/properties/:id", propertyHandler.Update)
	write.DELETE("/properties/:id", propertyHandler.DeleteByID)

	// Reservations Routes
	reservationHandler := NewReservationHandler(services.Reservations, logger)
	write.POST("/reservations", reservationHandler.Create)
	read.GET("/reservations", reservationHandler.List)
	read.GET("/reservations/upcoming", reservationHandler.Upcoming)
	read.GET("/reservations/:id", reservationHandler.GetByID)
	write.PUT("/reservations/:id", reservationHandler.Update)
	write.PATCH("/reservations/:id/status", reservationHandler.UpdateStatus)
	write.DELETE("/reservations/:id", reservationHandler.DeleteByID)

	// Cleaning Routes
	cleaningHandler := NewCleaningHandler(services.Teams, services.Schedules, logger)
	write.POST("/cleaning-teams", cleaningHandler.CreateTeam)
	read.GET("/cleaning-teams", cleaningHandler.ListTeams)
	read.GET("/cleaning-teams/:id", cleaningHandler.GetTeamByID)
	write.PUT("/cleaning-teams/:id", cleaningHandler.UpdateTeam)
	write.DELETE("/cleaning-teams/:id", cleaningHandler.DeleteTeamByID)
	read.GET("/cleaning-schedules", cleaningHandler.ListSchedules)
	write.POST("/cleaning-schedules/:id/complete", cleaningHandler.CompleteSchedule)
	write.POST("/cleaning-schedules/:id/cancel", cleaningHandler.CancelSchedule)

	// Financial Documents Routes
	financeHandler := NewFinanceHandler(services.Documents, logger)
	write.POST("/financial-documents", financeHandler.Create)
	read.GET("/financial-documents", financeHandler.List)
	read.GET("/financial-documents/summary", financeHandler.Summary)
	read.GET("/financial-documents/:id", financeHandler.GetByID)
	write.PUT("/financial-documents/:id", financeHandler.Update)
	write.DELETE("/financial-documents/:id", financeHandler.DeleteByID)
	write.POST("/financial-documents/:id/items", financeHandler.AddItem)
	write.DELETE("/financial-documents/:id/items/:itemId", financeHandler.RemoveItem)
	write.POST("/financial-documents/:id/payments", financeHandler.RegisterPayment)

	// Quotations Routes
	quotationHandler := NewQuotationHandler(services.Quotations, logger)
	read.POST("/quotations/calculate", quotationHandler.Calculate)
	write.POST("/quotations", quotationHandler.Create)
	read.GET("/quotations", quotationHandler.List)
	read.GET("/quotations/:id", quotationHandler.GetByID)
	write.PUT("/quotations/:id", quotationHandler.Update)
	write.PATCH("/quotations/:id/status", quotationHandler.UpdateStatus)
	write.DELETE("/quotations/:id", quotationHandler.DeleteByID)
	read.GET("/quotations/:id/pdf", quotationHandler.DownloadPDF)
	write.POST("/quotations/:id/send", quotationHandler.Send)

	// OCR Routes
	ocrHandler := NewOCRHandler(services.OCR, logger)
	write.POST("/simple-ocr/process", ocrHandler.Process)
	write.POST("/simple-ocr/reservations", ocrHandler.CreateReservation)
	read.GET("/simple-ocr/providers", ocrHandler.Providers)

	// Reports Routes
	reportHandler := NewReportHandler(services.Reports, services.Statistics, logger)
	read.GET("/reports/owners/:id", reportHandler.OwnerReport)
	write.POST("/reports/owners/:id/send", reportHandler.SendToOwner)
	read.GET("/statistics", reportHandler.Statistics)

	// Demo Routes
	demoHandler := NewDemoHandler(services.Demo, logger)
	admin.POST("/demo/generate", demoHandler.Generate)
	admin.POST("/demo/reset", demoHandler.Reset)
}
