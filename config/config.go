// Package config loads service settings from the environment and an optional .env file.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/radhian/reservation-reconciliation/consts"
)

type Config struct {
	DbHost     string
	DbPort     string
	DbUser     string
	DbName     string
	DbPassword string
	Port       string

	AutoLinkThreshold int
	DefaultDateOrder  consts.DateOrder
	MaxImportRows     int
	MaxFileSize       int64

	CronInterval time.Duration
	CronWorkers  int
	LogLevel     log.Lvl
}

// Load reads .env when present; variables already set in the environment win.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("[Config] failed to load .env: %v", err)
	}
	return FromEnv()
}

func FromEnv() Config {
	return Config{
		DbHost:     os.Getenv("DB_HOST"),
		DbPort:     os.Getenv("DB_PORT"),
		DbUser:     os.Getenv("DB_USER"),
		DbName:     os.Getenv("DB_NAME"),
		DbPassword: os.Getenv("DB_PASSWORD"),
		Port:       stringEnv("PORT", "8080"),

		AutoLinkThreshold: intEnv("AUTO_LINK_THRESHOLD", consts.DefaultAutoLinkThreshold),
		DefaultDateOrder:  dateOrderEnv("DEFAULT_DATE_ORDER", consts.MonthFirst),
		MaxImportRows:     intEnv("MAX_IMPORT_ROWS", consts.DefaultMaxImportRows),
		MaxFileSize:       int64(intEnv("MAX_FILE_SIZE", consts.DefaultMaxFileSize)),

		CronInterval: time.Duration(intEnv("CRON_INTERVAL_SEC", consts.DefaultIntervalInSec)) * time.Second,
		CronWorkers:  intEnv("CRON_WORKERS", consts.DefaultWorkerNumber),
		LogLevel:     logLevelEnv("LOG_LEVEL", log.INFO),
	}
}

// ParseDateOrder accepts MDY or DMY in any case; anything else is rejected.
func ParseDateOrder(s string) (consts.DateOrder, bool) {
	switch consts.DateOrder(strings.ToUpper(strings.TrimSpace(s))) {
	case consts.MonthFirst:
		return consts.MonthFirst, true
	case consts.DayFirst:
		return consts.DayFirst, true
	}
	return "", false
}

func stringEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Warnf("[Config] invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func dateOrderEnv(key string, def consts.DateOrder) consts.DateOrder {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	order, ok := ParseDateOrder(v)
	if !ok {
		log.Warnf("[Config] invalid %s=%q, using %s", key, v, def)
		return def
	}
	return order
}

func logLevelEnv(key string, def log.Lvl) log.Lvl {
	switch strings.ToUpper(strings.TrimSpace(os.Getenv(key))) {
	case "DEBUG":
		return log.DEBUG
	case "INFO":
		return log.INFO
	case "WARN":
		return log.WARN
	case "ERROR":
		return log.ERROR
	case "OFF":
		return log.OFF
	}
	return def
}
