package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

type Config struct {
	Port           int
	MaxPortRetries int
	CORSOrigins    []string

	JWT    JWT
	Admin  Admin
	Speech Speech
	SMTP   SMTP
	Kafka  Kafka
	Redis  Redis

	DraftTTL     time.Duration
	SimSendDelay time.Duration
}

type JWT struct {
	Secret    string
	Issuer    string
	Audience  string
	AccessExp time.Duration
}

type Admin struct {
	Email    string
	Password string
}

type Speech struct {
	APIKey        string
	BaseURL       string
	VoiceID       string
	ModelID       string
	FallbackModel string
	Stability     float64
	Similarity    float64
	Style         float64
	SpeakerBoost  bool
}

type SMTP struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type Kafka struct {
	Brokers []string
	Topic   string
}

type Redis struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

func Load(log *zap.Logger) *Config {
	c := &Config{
		Port:           atoiDefault(getEnvDefault("APP_PORT", "3000"), 3000),
		MaxPortRetries: atoiDefault(getEnvDefault("PORT_RETRIES", "10"), 10),
		CORSOrigins:    splitAndTrim(getEnvDefault("CORS_ORIGINS", "*")),
		JWT: JWT{
			Secret:    getEnv("JWT_SECRET", log),
			Issuer:    getEnv("JWT_ISSUER", log),
			Audience:  getEnv("JWT_AUDIENCE", log),
			AccessExp: parseDurationWithDays(getEnvDefault("ACCESS_EXP", "12h")),
		},
		Admin: Admin{
			Email:    getEnv("ADMIN_EMAIL", log),
			Password: getEnv("ADMIN_PASSWORD", log),
		},
		Speech: Speech{
			APIKey:        os.Getenv("ELEVENLABS_API_KEY"),
			BaseURL:       getEnvDefault("ELEVENLABS_BASE_URL", "https://api.elevenlabs.io"),
			VoiceID:       getEnvDefault("ELEVENLABS_VOICE_ID", "EXAVITQu4vr4xnSDxMaL"),
			ModelID:       getEnvDefault("ELEVENLABS_MODEL_ID", "eleven_multilingual_v2"),
			FallbackModel: getEnvDefault("ELEVENLABS_FALLBACK_MODEL", "eleven_turbo_v2"),
			Stability:     floatDefault(os.Getenv("ELEVENLABS_STABILITY"), 0.5),
			Similarity:    floatDefault(os.Getenv("ELEVENLABS_SIMILARITY"), 0.75),
			Style:         floatDefault(os.Getenv("ELEVENLABS_STYLE"), 0),
			SpeakerBoost:  getEnvDefault("ELEVENLABS_SPEAKER_BOOST", "true") == "true",
		},
		SMTP: SMTP{
			Enabled:  os.Getenv("SMTP_ENABLED") == "true",
			Host:     os.Getenv("SMTP_HOST"),
			Port:     atoiDefault(os.Getenv("SMTP_PORT"), 465),
			User:     os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("SMTP_FROM"),
		},
		Kafka: Kafka{
			Brokers: splitAndTrim(os.Getenv("KAFKA_BROKERS")),
			Topic:   getEnvDefault("KAFKA_TOPIC_EMAIL", "aimee.email.sent"),
		},
		Redis: Redis{
			Enabled:  os.Getenv("REDIS_ENABLED") == "true",
			Addr:     getEnvDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       atoiDefault(os.Getenv("REDIS_DB"), 0),
		},
		DraftTTL:     parseDurationWithDays(getEnvDefault("DRAFT_TTL", "15m")),
		SimSendDelay: parseDurationWithDays(getEnvDefault("SIM_SEND_DELAY", "800ms")),
	}
	return c
}

func getEnv(key string, log *zap.Logger) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	log.Error("Обязательная переменная окружения не установлена", zap.String("key", key))
	panic("missing required environment variable: " + key)
}

func getEnvDefault(key, def string) string {
	if val, exists := os.LookupEnv(key); exists && val != "" {
		return val
	}
	return def
}

// parseDurationWithDays поддерживает суффикс "d" (дни) поверх time.ParseDuration.
func parseDurationWithDays(s string) time.Duration {
	if strings.HasSuffix(s, "d") {
		daysStr := strings.TrimSuffix(s, "d")
		if days, err := strconv.Atoi(daysStr); err == nil {
			return time.Duration(days) * 24 * time.Hour
		}
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		panic("invalid duration value: " + s)
	}
	return d
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func floatDefault(s string, def float64) float64 {
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := []string{}
	for _, p := range strings.Split(s, ",") {
		pt := strings.TrimSpace(p)
		if pt != "" {
			parts = append(parts, pt)
		}
	}
	return parts
}
