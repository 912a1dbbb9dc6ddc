package cron

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jasonlvhit/gocron"
	"github.com/sirupsen/logrus"

	"github.com/zsmartex/passbook/calendar"
	"github.com/zsmartex/passbook/config"
	"github.com/zsmartex/passbook/services/report_service"
)

const DailyReportMeasurement = "daily_reports"

// PointWriter is satisfied by config.InfluxClient.
type PointWriter interface {
	WritePoint(name string, tags map[string]string, fields map[string]interface{}, at time.Time) error
}

// DailyReportJob stores the previous day's report as time series points, one
// per type saving plus one summary point.
type DailyReportJob struct {
	Reports *report_service.ReportService
	Points  PointWriter
	At      string
}

func (j *DailyReportJob) Process() {
	s, err := j.Schedule()
	if err != nil {
		config.Logger.Fatalf("Failed to schedule daily report at %q: %v", j.At, err)
	}

	<-s.Start()
}

// Schedule registers the daily snapshot without starting the scheduler.
func (j *DailyReportJob) Schedule() (*gocron.Scheduler, error) {
	at := j.At
	if len(at) == 0 {
		at = "00:05:00"
	}

	s := gocron.NewScheduler()
	if err := s.Every(1).Day().At(at).Do(j.snapshotYesterday); err != nil {
		return nil, err
	}

	return s, nil
}

func (j *DailyReportJob) snapshotYesterday() {
	yesterday := calendar.DateOf(time.Now()).AddDays(-1)

	if err := j.Snapshot(context.Background(), yesterday); err != nil {
		config.Logger.WithField("date", yesterday.String()).Errorf("Failed to snapshot daily report: %v", err)
	}
}

func (j *DailyReportJob) Snapshot(ctx context.Context, date calendar.Date) error {
	report, err := j.Reports.GetDailyReport(ctx, date.String())
	if err != nil {
		return err
	}

	run_id := uuid.New().String()
	at := date.Time(time.Local)

	for _, row := range report.ByTypeSaving {
		tags := map[string]string{
			"type_saving_id": strconv.FormatInt(row.TypeSavingID, 10),
			"type_name":      row.TypeName,
		}
		fields := map[string]interface{}{
			"run_id":            run_id,
			"total_deposits":    row.TotalDeposits.InexactFloat64(),
			"total_withdrawals": row.TotalWithdrawals.InexactFloat64(),
			"difference":        row.Difference.InexactFloat64(),
		}

		if err := j.Points.WritePoint(DailyReportMeasurement, tags, fields, at); err != nil {
			return err
		}
	}

	summary := map[string]interface{}{
		"run_id":            run_id,
		"total_deposits":    report.Summary.TotalDeposits.InexactFloat64(),
		"total_withdrawals": report.Summary.TotalWithdrawals.InexactFloat64(),
		"difference":        report.Summary.Difference.InexactFloat64(),
	}

	if err := j.Points.WritePoint(DailyReportMeasurement, map[string]string{"type_saving_id": "all"}, summary, at); err != nil {
		return err
	}

	config.Logger.WithFields(logrus.Fields{
		"date":   date.String(),
		"run_id": run_id,
		"types":  len(report.ByTypeSaving),
	}).Info("Daily report snapshot stored")

	return nil
}
