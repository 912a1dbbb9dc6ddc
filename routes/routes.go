package routes

import (
	"crypto/rsa"

	"github.com/gofiber/fiber/v2"

	"github.com/zsmartex/passbook/controllers"
	"github.com/zsmartex/passbook/controllers/regulation_controllers"
	"github.com/zsmartex/passbook/controllers/report_controllers"
	"github.com/zsmartex/passbook/routes/middlewares"
	"github.com/zsmartex/passbook/services/regulation_service"
	"github.com/zsmartex/passbook/services/report_service"
	"github.com/zsmartex/passbook/types"
)

type Services struct {
	Regulations *regulation_service.RegulationService
	Reports     *report_service.ReportService
}

func SetupRouter(services Services, public_key *rsa.PublicKey) *fiber.App {
	app := fiber.New()
	app.Use(middlewares.RequestLogger)

	regulations := regulation_controllers.NewRegulationController(services.Regulations)
	reports := report_controllers.NewReportController(services.Reports)

	app.Get("/api/v2/public/timestamp", controllers.GetTimestamp)

	private := app.Group("/api/v2", middlewares.Authenticate(public_key))
	private.Get("/regulations", regulations.GetRegulations)
	private.Get("/regulations/rates", regulations.GetRegulationRates)

	report := private.Group("/reports", middlewares.RoleVaildator(types.RoleAccountant))
	report.Get("/daily", reports.GetDailyReport)
	report.Get("/daily/transactions", reports.GetDailyTransactionStatistics)
	report.Get("/monthly", reports.GetMonthlyReport)

	admin := private.Group("/admin", middlewares.AdminVaildator)
	admin.Put("/regulations", regulations.UpdateRegulations)
	admin.Put("/regulations/rates", regulations.UpdateRegulationRates)

	return app
}
