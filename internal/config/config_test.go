package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644)
	require.NoError(t, err)
	return dir
}

func TestLoadConfig(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "9090"
  mode: debug
database:
  host: db.internal
  port: 3306
  user: tutorhub
  dbname: tutorhub
jwt:
  secret: dev-secret
storage:
  type: minio
  minio_endpoint: localhost:9000
  minio_bucket: tutorhub
ai:
  base_url: https://api.deepseek.com
  model: deepseek-chat
rate_limit:
  max_requests: 200
  window_minutes: 5
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "minio", cfg.Storage.Type)
	assert.Equal(t, "tutorhub", cfg.Storage.MinioBucket)
	assert.Equal(t, 5*time.Minute, cfg.RateWindow())
	// 未配置时回退到公共 Jitsi 实例
	assert.Equal(t, "https://meet.jit.si", cfg.Meeting.BaseURL)
}

func TestLoadConfigRejectsWeakSecretInRelease(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "8080"
  mode: release
jwt:
  secret: short
`)

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestRateWindowDefault(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, time.Minute, cfg.RateWindow())
}
