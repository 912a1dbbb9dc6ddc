package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

var Env *Settings

type Settings struct {
	Port     string           `envconfig:"PORT" default:"3000"`
	Database DatabaseSettings `envconfig:"DATABASE"`
	Redis    RedisSettings    `envconfig:"REDIS"`
	InfluxDB InfluxSettings   `envconfig:"INFLUXDB"`

	// RegulationAnchor is the type saving name holding the global regulations.
	RegulationAnchor string        `envconfig:"REGULATION_ANCHOR" default:"No term"`
	ReportCacheTTL   time.Duration `envconfig:"REPORT_CACHE_TTL" default:"10m"`
	DailyReportAt    string        `envconfig:"DAILY_REPORT_AT" default:"00:05:00"`
	JWTPublicKey     string        `envconfig:"JWT_PUBLIC_KEY"`
}

type DatabaseSettings struct {
	Host    string `envconfig:"HOST" default:"localhost"`
	Port    string `envconfig:"PORT" default:"5432"`
	User    string `envconfig:"USER" default:"postgres"`
	Pass    string `envconfig:"PASS"`
	Name    string `envconfig:"NAME" default:"passbook"`
	SSLMode string `envconfig:"SSLMODE" default:"require"`
}

type RedisSettings struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"6379"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
}

type InfluxSettings struct {
	URL      string `envconfig:"URL" default:"http://localhost:8086"`
	Database string `envconfig:"DATABASE" default:"passbook"`
}

func LoadSettings() error {
	settings := &Settings{}
	if err := envconfig.Process("", settings); err != nil {
		return err
	}

	if err := validateClock(settings.DailyReportAt); err != nil {
		return err
	}

	Env = settings

	return nil
}

// validateClock accepts HH:MM or HH:MM:SS, the formats the cron scheduler takes.
func validateClock(value string) error {
	layout := "15:04:05"
	if strings.Count(value, ":") == 1 {
		layout = "15:04"
	}

	if _, err := time.Parse(layout, value); err != nil {
		return fmt.Errorf("invalid DAILY_REPORT_AT %q, expected HH:MM or HH:MM:SS", value)
	}

	return nil
}
