package config

import (
	"os"
	"strconv"
	"strings"
)

// Config captures service level configuration. Collaborator endpoints are
// independently optional: an empty URL or broker list leaves the corresponding
// pipeline stage or side effect unconfigured.
type Config struct {
	Addr          string
	PostgresDSN   string
	RedisURL      string
	KafkaBrokers  []string
	NotifyTopic   string
	AuditTopic    string
	JWTSigningKey string

	BureauURL     string
	EmploymentURL string
	DocumentsURL  string

	// MinCreditScore of 0 keeps the pipeline default.
	MinCreditScore int
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	jwtSigningKey := getenv("LENDFLOW_JWT_SIGNING_KEY", "")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	return Config{
		Addr:           getenv("LENDFLOW_ADDR", ":8080"),
		PostgresDSN:    getenv("LENDFLOW_POSTGRES_DSN", ""),
		RedisURL:       getenv("LENDFLOW_REDIS_URL", ""),
		KafkaBrokers:   splitList(getenv("LENDFLOW_KAFKA_BROKERS", "")),
		NotifyTopic:    getenv("LENDFLOW_NOTIFY_TOPIC", "loan.notifications"),
		AuditTopic:     getenv("LENDFLOW_AUDIT_TOPIC", "loan.audit"),
		JWTSigningKey:  jwtSigningKey,
		BureauURL:      getenv("LENDFLOW_BUREAU_URL", ""),
		EmploymentURL:  getenv("LENDFLOW_EMPLOYMENT_URL", ""),
		DocumentsURL:   getenv("LENDFLOW_DOCUMENTS_URL", ""),
		MinCreditScore: getint("LENDFLOW_MIN_CREDIT_SCORE", 0),
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getint(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}

func splitList(val string) []string {
	if val == "" {
		return nil
	}
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
