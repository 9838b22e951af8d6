package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "https://s3.amazonaws.com/", cfg.S3.BaseURL)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadSize)
	assert.Equal(t, "X-Api-Key", cfg.Auth.APIKeyHeader)
	assert.False(t, cfg.UsesS3())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DSN", "postgres://localhost/cats")
	t.Setenv("S3_BUCKET", "catcollector")
	t.Setenv("S3_USE_PATH_STYLE", "true")
	t.Setenv("S3_UPLOAD_TIMEOUT", "2s")
	t.Setenv("AUTH_IAM_URL", "https://iam.internal")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "postgres://localhost/cats", cfg.DatabaseDSN)
	assert.True(t, cfg.UsesS3())
	assert.True(t, cfg.S3.UsePathStyle)
	assert.Equal(t, 2*time.Second, cfg.S3.UploadTimeout)
	assert.Equal(t, "https://iam.internal", cfg.Auth.URL)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_NonPositiveUploadSize(t *testing.T) {
	t.Setenv("MAX_UPLOAD_SIZE", "0")
	_, err := Load()
	assert.Error(t, err)
}
