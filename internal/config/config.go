package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBDSN         string
	UploadDir     string
	PublicBaseURL string
	LogFile       string
	JWTSecret     string
	JWTIssuer     string
	JWTExpiry     time.Duration
}

func Load() Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "stylebay.db"
	} // sqlite file in project root
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./upload/images"
	}
	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:" + port
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./stylebay.log" // default log sink in project root
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret"
		log.Printf("[warn] JWT_SECRET not set, using development secret")
	}
	issuer := os.Getenv("JWT_ISSUER")

	// Tokens do not expire unless JWT_EXPIRY is set.
	var expiry time.Duration
	if raw := os.Getenv("JWT_EXPIRY"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("[warn] invalid JWT_EXPIRY %q: %v", raw, err)
		} else {
			expiry = d
		}
	}

	cfg := Config{
		Port:          port,
		DBDSN:         dsn,
		UploadDir:     uploadDir,
		PublicBaseURL: baseURL,
		LogFile:       logFile,
		JWTSecret:     secret,
		JWTIssuer:     issuer,
		JWTExpiry:     expiry,
	}
	log.Printf("[config] PORT=%s DB_DSN=%s UPLOAD_DIR=%s PUBLIC_BASE_URL=%s LOG_FILE=%s JWT_EXPIRY=%s",
		cfg.Port, cfg.DBDSN, cfg.UploadDir, cfg.PublicBaseURL, cfg.LogFile, cfg.JWTExpiry)
	return cfg
}
