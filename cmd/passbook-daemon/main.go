package main

import (
	"fmt"
	"os"

	"github.com/zsmartex/passbook/config"
	"github.com/zsmartex/passbook/jobs/cron"
	"github.com/zsmartex/passbook/repositories"
	"github.com/zsmartex/passbook/services/report_service"
	"github.com/zsmartex/passbook/workers/daemons"
)

func CreateWorker(id string) daemons.Worker {
	switch id {
	case "cron_job":
		reports := report_service.NewReportService(repositories.NewReportRepository(config.DataBase))

		return daemons.NewCronJob(&cron.DailyReportJob{
			Reports: reports,
			Points:  config.InfluxDB,
			At:      config.Env.DailyReportAt,
		})
	default:
		return nil
	}
}

func main() {
	dotenv_err := config.LoadDotEnv()

	if err := config.InitializeConfig(); err != nil {
		fmt.Println(err.Error())
		return
	}

	if dotenv_err != nil {
		config.Logger.Warnf("Failed to load .env: %v", dotenv_err)
	}

	ARVG := os.Args[1:]

	for _, id := range ARVG {
		worker := CreateWorker(id)
		if worker == nil {
			config.Logger.Errorf("Unknown worker: %s", id)
			continue
		}

		config.Logger.Infof("Start passbook-daemon: %s", id)
		worker.Start()
	}
}
