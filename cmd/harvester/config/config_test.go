package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MichalMitros/abcp-harvester/cmd/harvester/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitLoadDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err, "shouldn't fail without env file")
	assert.Equal(t, "https://www.abcp.ru", cfg.BaseURL, "should use default base url")
	assert.Equal(t, 3, cfg.MaxWorkers, "should use default workers number")
	assert.Equal(t, 5, cfg.RetryAttempts, "should use default retry attempts")
	assert.Equal(t, 5*time.Second, cfg.RetryDelay, "should use default retry delay")
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout, "should use default http timeout")
	assert.Equal(t, "abcp_suppliers_full.csv", cfg.Output.CSVFilename, "should use default csv file name")
	assert.Equal(t, "abcp_suppliers_full.json", cfg.Output.JSONFilename, "should use default json file name")
	assert.Empty(t, cfg.Output.XLSXFilename, "shouldn't write spreadsheet by default")
	assert.Empty(t, cfg.Countries, "should harvest all countries by default")
	assert.Equal(t, map[string]string{"User-Agent": "Mozilla/5.0"}, cfg.Headers(), "should send default user agent")
}

func TestUnitLoadFromEnv(t *testing.T) {
	t.Setenv("MAX_WORKERS", "8")
	t.Setenv("RETRY_DELAY", "250ms")
	t.Setenv("HARVEST_COUNTRIES", "Россия,Казахстан")
	t.Setenv("HTTP_HEADERS", "Accept-Language:ru,X-Trace:1")
	t.Setenv("LOG_PRETTY", "true")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, 8, cfg.MaxWorkers, "should read workers number")
	assert.Equal(t, 250*time.Millisecond, cfg.RetryDelay, "should read retry delay")
	assert.Equal(t, []string{"Россия", "Казахстан"}, cfg.Countries, "should read countries list")
	assert.True(t, cfg.Log.Pretty, "should read pretty logging flag")
	assert.Equal(t, map[string]string{
		"User-Agent":      "Mozilla/5.0",
		"Accept-Language": "ru",
		"X-Trace":         "1",
	}, cfg.Headers(), "should merge custom headers")
}

func TestUnitLoadEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("CSV_FILENAME=out.csv\n"), 0o600), "can't write env file")
	t.Cleanup(func() {
		_ = os.Unsetenv("CSV_FILENAME")
	})

	cfg, err := config.Load(envFile)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, "out.csv", cfg.Output.CSVFilename, "should read variables from env file")
}

func TestUnitLoadInvalid(t *testing.T) {
	t.Setenv("MAX_WORKERS", "many")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))

	require.Error(t, err, "should return parsing error")
}
