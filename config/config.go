package config

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// It is composed of smaller structs that represent different concerns of the
// system: report/merge settings, HTTP server settings and Postgres
// connection details.
//
// Example ENV equivalent:
//
//	REPORT_PERIOD=2025-09
//	REPORT_CLIENT=acme
//	REPORT_MARKETS=DE,FR,PL
//	REPORT_INPUT_DIR=./data/input
//	REPORT_OUTPUT_FILE=./data/output/consolidated.xlsx
//	REPORT_TRANSLATION_WB=./data/translations.xlsx
//	REPORT_FX_RATES=PLN=0.235,SEK=0.088
//	REPORT_CONVERT=true
//	REPORT_PERSIST=false
//	SERVER_PORT=8080
//	POSTGRES_HOST=localhost
type Config struct {
	Server   ServerConfig   // HTTP server configuration (api mode)
	Postgres PostgresConfig // PostgreSQL connection settings
	Report   ReportConfig   // Merge pipeline settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// PostgresConfig defines connection details for PostgreSQL.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string // computed DSN used by database/sql to connect
}

// ReportConfig drives the merge pipeline.
//
// Fields:
//   - Period: reporting period as "YYYY-MM"; year and month select input files.
//   - Client: client slug used in report file names.
//   - Markets: two-letter marketplace codes to consolidate.
//   - InputDir: directory holding the per-marketplace payment report CSVs.
//   - OutputFile: path of the consolidated xlsx artifact.
//   - TranslationWB: path of the reference translation workbook.
//   - Rates: reference-currency units per 1 unit of native currency,
//     keyed by currency code (e.g. PLN=0.235).
//   - Convert: append converted monetary columns to the output.
//   - Persist: bulk-load the consolidated rows into Postgres.
type ReportConfig struct {
	Period        string
	Client        string
	Markets       []string
	InputDir      string
	OutputFile    string
	TranslationWB string
	Rates         map[string]float64
	Convert       bool
	Persist       bool
}

// Year returns the numeric year of the configured period, 0 if malformed.
func (r ReportConfig) Year() int {
	if len(r.Period) < 7 {
		return 0
	}
	y, _ := strconv.Atoi(r.Period[:4])
	return y
}

// Month returns the numeric month of the configured period, 0 if malformed.
func (r ReportConfig) Month() int {
	if len(r.Period) < 7 {
		return 0
	}
	m, _ := strconv.Atoi(r.Period[5:7])
	return m
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All packages should read from AppConfig instead of reloading environment
// variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from a .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or malformed, validateConfig()
//     terminates the app with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "paymerge")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	viper.SetDefault("REPORT_PERIOD", "")
	viper.SetDefault("REPORT_CLIENT", "")
	viper.SetDefault("REPORT_MARKETS", "DE,FR,ES,IT,NL,PL")
	viper.SetDefault("REPORT_INPUT_DIR", "./data/input")
	viper.SetDefault("REPORT_OUTPUT_FILE", "./data/output/consolidated.xlsx")
	viper.SetDefault("REPORT_TRANSLATION_WB", "./data/translations.xlsx")
	viper.SetDefault("REPORT_FX_RATES", "")
	viper.SetDefault("REPORT_CONVERT", false)
	viper.SetDefault("REPORT_PERSIST", false)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
		Report: ReportConfig{
			Period:        strings.TrimSpace(viper.GetString("REPORT_PERIOD")),
			Client:        strings.TrimSpace(viper.GetString("REPORT_CLIENT")),
			Markets:       splitList(viper.GetString("REPORT_MARKETS")),
			InputDir:      viper.GetString("REPORT_INPUT_DIR"),
			OutputFile:    viper.GetString("REPORT_OUTPUT_FILE"),
			TranslationWB: viper.GetString("REPORT_TRANSLATION_WB"),
			Rates:         parseRates(viper.GetString("REPORT_FX_RATES")),
			Convert:       viper.GetBool("REPORT_CONVERT"),
			Persist:       viper.GetBool("REPORT_PERSIST"),
		},
	}

	// Construct Postgres DSN (used by database/sql)
	AppConfig.Postgres.URL = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		AppConfig.Postgres.User,
		AppConfig.Postgres.Password,
		AppConfig.Postgres.Host,
		AppConfig.Postgres.Port,
		AppConfig.Postgres.DBName,
		AppConfig.Postgres.SSLMode,
	)

	// Validate critical fields
	validateConfig()
}

// splitList turns a comma-separated value into a slice of trimmed,
// uppercased entries, dropping empties.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.ToUpper(strings.TrimSpace(part)); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseRates parses "PLN=0.235,SEK=0.088" into a currency→rate map.
// Malformed entries are skipped; validation of completeness happens later,
// against the active marketplaces.
func parseRates(raw string) map[string]float64 {
	rates := make(map[string]float64)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}
		code := strings.ToUpper(strings.TrimSpace(kv[0]))
		rate, err := strconv.ParseFloat(strings.TrimSpace(kv[1]), 64)
		if err != nil || code == "" {
			continue
		}
		rates[code] = rate
	}
	return rates
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete configuration.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if AppConfig.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if AppConfig.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if AppConfig.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}
	if len(AppConfig.Report.Markets) == 0 {
		missing = append(missing, "REPORT_MARKETS")
	}

	if len(missing) > 0 {
		log.Fatalf("Missing required environment variables: %v\n", missing)
	}
}
