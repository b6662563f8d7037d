package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func getenvFrom(env map[string]string) func(string) string {
	return func(k string) string { return env[k] }
}

func TestLoad_Defaults(t *testing.T) {
	cfg := Load(getenvFrom(nil))

	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, []string{"http://localhost:3000", "http://localhost:3001"}, cfg.AllowedOrigins)
	require.Equal(t, int64(DefaultMaxFileSize), cfg.Upload.MaxFileSize)
	require.Equal(t, []string{"image/jpeg", "image/png", "image/webp"}, cfg.Upload.AllowedTypes)
	require.Equal(t, "local", cfg.Storage.Driver)
	require.Empty(t, cfg.Stripe.SecretKey)
}

func TestLoad_Overrides(t *testing.T) {
	cfg := Load(getenvFrom(map[string]string{
		"ADDR":                  ":9000",
		"ALLOWED_ORIGINS":       "https://shop.example.com, https://admin.example.com",
		"STRIPE_SECRET_KEY":     "sk_test_abc",
		"STRIPE_WEBHOOK_SECRET": "whsec_123",
		"STORAGE_DRIVER":        "s3",
		"S3_REGION":             "eu-central-1",
		"S3_BUCKET":             "product-images",
		"S3_PUBLIC_BASE_URL":    "https://cdn.example.com",
		"MAX_FILE_SIZE":         "1048576",
		"ALLOWED_IMAGE_TYPES":   "image/png",
	}))

	require.Equal(t, ":9000", cfg.Addr)
	require.Equal(t, []string{"https://shop.example.com", "https://admin.example.com"}, cfg.AllowedOrigins)
	require.Equal(t, "sk_test_abc", cfg.Stripe.SecretKey)
	require.Equal(t, "whsec_123", cfg.Stripe.WebhookSecret)
	require.Equal(t, "s3", cfg.Storage.Driver)
	require.Equal(t, "eu-central-1", cfg.Storage.Region)
	require.Equal(t, int64(1048576), cfg.Upload.MaxFileSize)
	require.Equal(t, []string{"image/png"}, cfg.Upload.AllowedTypes)
}

func TestLoad_BadMaxFileSizeFallsBack(t *testing.T) {
	cfg := Load(getenvFrom(map[string]string{"MAX_FILE_SIZE": "not-a-number"}))
	require.Equal(t, int64(DefaultMaxFileSize), cfg.Upload.MaxFileSize)
}
