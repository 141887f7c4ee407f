package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"ilm-dashboard/internal/sheets"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	Sheets      sheets.Config
	VAWorksheet string
	TAWorksheet string
	ExcelPath   string

	CacheTTL    time.Duration
	ListenAddr  string
	Password    string
	OpenBrowser bool

	DataPath string
	LogDir   string
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory (highest priority when
	// the dashboard runs as an installed binary).
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	// 3. Resolve data paths
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}

	logDir := filepath.Join(dataPath, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Warn().Err(err).Str("path", logDir).Msg("Failed to create log directory")
	}

	ttlSecs, _ := strconv.Atoi(getEnv("CACHE_TTL_SECONDS", "300"))

	cfg := &AppConfig{
		Sheets: sheets.Config{
			BaseURL:       getEnv("SHEETS_BASE_URL", ""),
			SpreadsheetID: getEnv("SHEETS_SPREADSHEET_ID", ""),
			Token:         getEnv("SHEETS_API_TOKEN", ""),
		},
		VAWorksheet: getEnv("VA_WORKSHEET", "ILM_Connector"),
		TAWorksheet: getEnv("TA_WORKSHEET", "ILM_Connector_TA"),
		ExcelPath:   getEnv("EXCEL_PATH", filepath.Join(dataPath, "ILM_Python_2.xlsx")),
		CacheTTL:    time.Duration(ttlSecs) * time.Second,
		ListenAddr:  getEnv("LISTEN_ADDR", ":8501"),
		Password:    getEnv("DASHBOARD_PASSWORD", ""),
		OpenBrowser: getEnvBool("OPEN_BROWSER", false),
		DataPath:    dataPath,
		LogDir:      logDir,
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
