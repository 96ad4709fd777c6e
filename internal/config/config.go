package config

import (
	"log"
	"os"
)

type Config struct {
	HTTPPort         string
	DatabaseDSN      string
	JWTSecret        string
	CORSOrigins      string
	RobotposAPIURL   string
	RobotposAPIToken string
	QueryPath        string // SQL sorgu şablonlarının bulunduğu klasör
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:      getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=tdinvoice port=5432 sslmode=disable"),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		CORSOrigins:      getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		RobotposAPIURL:   getEnv("ROBOTPOS_API_URL", ""),
		RobotposAPIToken: getEnv("ROBOTPOS_API_TOKEN", ""),
		QueryPath:        getEnv("QUERY_PATH", "./queries"),
	}

	// Production güvenlik kontrolleri
	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET environment değişkeni tanımlanmamış! Production için zorunludur.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET en az 32 karakter olmalıdır! Güvenlik riski.")
	}
	if cfg.RobotposAPIURL == "" || cfg.RobotposAPIToken == "" {
		log.Fatal("[FATAL] ROBOTPOS_API_URL ve ROBOTPOS_API_TOKEN tanımlanmalıdır, belge sorguları bu API üzerinden çalışır.")
	}
	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=tdinvoice port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN varsayılan değer kullanılıyor, production için mutlaka kendi Postgres bağlantı bilgisini tanımla.")
	}
	if cfg.CORSOrigins == "http://localhost:3000" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS varsayılan değer kullanılıyor, production için mutlaka kendi domain'ini tanımla.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
