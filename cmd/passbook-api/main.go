package main

import (
	"fmt"

	"github.com/zsmartex/passbook/config"
	"github.com/zsmartex/passbook/repositories"
	"github.com/zsmartex/passbook/routes"
	"github.com/zsmartex/passbook/routes/middlewares"
	"github.com/zsmartex/passbook/services/regulation_service"
	"github.com/zsmartex/passbook/services/report_service"
)

func main() {
	dotenv_err := config.LoadDotEnv()

	if err := config.InitializeConfig(); err != nil {
		fmt.Println(err.Error())
		return
	}

	if dotenv_err != nil {
		config.Logger.Warnf("Failed to load .env: %v", dotenv_err)
	}

	public_key, err := middlewares.ParsePublicKey(config.Env.JWTPublicKey)
	if err != nil {
		config.Logger.Fatalf("Failed to parse JWT public key: %v", err)
	}

	type_savings := repositories.NewTypeSavingRepository(config.DataBase)
	reports := repositories.NewCachedReportRepository(
		repositories.NewReportRepository(config.DataBase),
		type_savings,
		config.Redis,
		config.Env.ReportCacheTTL,
	)

	r := routes.SetupRouter(routes.Services{
		Regulations: regulation_service.NewRegulationService(type_savings, config.Env.RegulationAnchor),
		Reports:     report_service.NewReportService(reports),
	}, public_key)

	if err := r.Listen(":" + config.Env.Port); err != nil {
		config.Logger.Fatalf("Failed to start server: %v", err)
	}
}
