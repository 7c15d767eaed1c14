package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORE_DRIVER", "SALES_TRACKING_MODE", "SALES_TIMEZONE", "TOKEN_TTL", "RATE_LIMIT"} {
		t.Setenv(key, "")
	}

	cfg := Load("8083")

	assert.Equal(t, "8083", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.StoreDriver)
	assert.Equal(t, TrackingSync, cfg.Sales.TrackingMode)
	assert.Equal(t, time.UTC, cfg.Sales.Location)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "120-M", cfg.HTTP.RateLimit)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_DRIVER", "MEMORY")
	t.Setenv("SALES_TRACKING_MODE", "Async")
	t.Setenv("SALES_TIMEZONE", "Not/AZone")
	t.Setenv("TOKEN_TTL", "90m")
	t.Setenv("OTP_TTL", "soon")

	cfg := Load("8083")

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, DriverMemory, cfg.StoreDriver)
	assert.Equal(t, TrackingAsync, cfg.Sales.TrackingMode)
	assert.Equal(t, time.UTC, cfg.Sales.Location)
	assert.Equal(t, 90*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, 5*time.Minute, cfg.Auth.OTPTTL)
}

func TestLoad_WarnsThroughLogger(t *testing.T) {
	hook := test.NewLocal(GetLogger())
	t.Cleanup(hook.Reset)
	t.Setenv("SALES_TIMEZONE", "Not/AZone")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("OTP_TTL", "soon")

	Load("8083")

	var warnings []*logrus.Entry
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warnings = append(warnings, entry)
		}
	}
	if assert.Len(t, warnings, 2) {
		assert.Contains(t, warnings[0].Message, "SALES_TIMEZONE")
		assert.Equal(t, "OTP_TTL", warnings[1].Data["key"])
		assert.Equal(t, "soon", warnings[1].Data["value"])
	}
}

func TestNewLogger_SetsLevel(t *testing.T) {
	t.Cleanup(func() { GetLogger().SetLevel(logrus.InfoLevel) })

	assert.Equal(t, logrus.DebugLevel, NewLogger("debug").GetLevel())
	assert.Equal(t, logrus.InfoLevel, NewLogger("loud").GetLevel())
}

func TestDBConfig_ConnString(t *testing.T) {
	cfg := DBConfig{Host: "db", Port: "5432", User: "pp", Password: "secret", Name: "sales"}
	assert.Contains(t, cfg.ConnString(), "host=db")
	assert.Contains(t, cfg.ConnString(), "dbname=sales")
}

func TestLogError(t *testing.T) {
	logger, hook := test.NewNullLogger()

	LogError(logger, "sales", "RecordDelivery", "update sales ledger", "order-a", assert.AnError)

	entry := hook.LastEntry()
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "sales", entry.Data["module"])
	assert.Equal(t, "order-a", entry.Data["data"])
	assert.Equal(t, assert.AnError.Error(), entry.Message)
}
