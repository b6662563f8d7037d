// Package config loads process-wide configuration from the environment,
// once at startup. Components receive the resulting struct explicitly;
// nothing reads env vars after boot.
package config

import (
	"strconv"
	"strings"
)

const DefaultMaxFileSize = 5 * 1024 * 1024 // 5MB

type Stripe struct {
	SecretKey      string
	PublishableKey string
	WebhookSecret  string
}

type Storage struct {
	Driver string // local|s3

	// s3
	Region        string
	Bucket        string
	Prefix        string
	PublicBaseURL string

	// local
	LocalDir       string
	LocalURLPrefix string
}

type Upload struct {
	MaxFileSize  int64
	AllowedTypes []string
}

type Config struct {
	Addr           string
	AllowedOrigins []string
	Stripe         Stripe
	Storage        Storage
	Upload         Upload
}

func Load(getenv func(string) string) Config {
	return Config{
		Addr:           envOr(getenv, "ADDR", ":8080"),
		AllowedOrigins: splitList(envOr(getenv, "ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3001")),
		Stripe: Stripe{
			SecretKey:      getenv("STRIPE_SECRET_KEY"),
			PublishableKey: getenv("STRIPE_PUBLISHABLE_KEY"),
			WebhookSecret:  getenv("STRIPE_WEBHOOK_SECRET"),
		},
		Storage: Storage{
			Driver:         envOr(getenv, "STORAGE_DRIVER", "local"),
			Region:         getenv("S3_REGION"),
			Bucket:         getenv("S3_BUCKET"),
			Prefix:         envOr(getenv, "S3_PREFIX", "products"),
			PublicBaseURL:  getenv("S3_PUBLIC_BASE_URL"),
			LocalDir:       envOr(getenv, "LOCAL_UPLOAD_DIR", "./storage/uploads"),
			LocalURLPrefix: envOr(getenv, "LOCAL_UPLOAD_URL_PREFIX", "/uploads"),
		},
		Upload: Upload{
			MaxFileSize:  envInt64(getenv, "MAX_FILE_SIZE", DefaultMaxFileSize),
			AllowedTypes: splitList(envOr(getenv, "ALLOWED_IMAGE_TYPES", "image/jpeg,image/png,image/webp")),
		},
	}
}

func envOr(getenv func(string) string, k, def string) string {
	if v := getenv(k); v != "" {
		return v
	}
	return def
}

func envInt64(getenv func(string) string, k string, def int64) int64 {
	v := getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
