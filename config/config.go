package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBName    string
	JWTKey    string
	SaltRound int

	EmailSender    string
	SendgridApiKey string

	StorageEndpoint  string // S3-compatible endpoint
	StorageRegion    string
	StorageAccessKey string
	StorageSecretKey string
	FontBucket       string // bucket holding embedded-font assets
	CertBucket       string // bucket receiving generated certificate PDFs
	PublicStorageURL string // base URL for public object access

	CertTemplateURL string // HTTP location of the certificate PDF template
	UnidocKey       string // metered license key for unipdf

	BackfillSchedule string // cron spec for the certificate backfill sweep
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	// Initialize AppConfig with values from environment variables
	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		DBName:    getEnv("DB_NAME", "certhub"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		EmailSender:    getEnv("EMAIL_SENDER", "no-reply@certhub.local"),
		SendgridApiKey: getEnv("SENDGRID_API_KEY", ""),

		StorageEndpoint:  getEnv("STORAGE_ENDPOINT", ""),
		StorageRegion:    getEnv("STORAGE_REGION", "us-east-1"),
		StorageAccessKey: getEnv("STORAGE_ACCESS_KEY", ""),
		StorageSecretKey: getEnv("STORAGE_SECRET_KEY", ""),
		FontBucket:       getEnv("FONT_BUCKET", "certificate-fonts"),
		CertBucket:       getEnv("CERTIFICATE_BUCKET", "certificates"),
		PublicStorageURL: getEnv("PUBLIC_STORAGE_URL", ""),

		CertTemplateURL: getEnv("CERT_TEMPLATE_URL", ""),
		UnidocKey:       getEnv("UNIDOC_LICENSE_API_KEY", ""),

		BackfillSchedule: getEnv("BACKFILL_CRON", "@every 10m"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.SendgridApiKey == "" {
		log.Println("Warning: SENDGRID_API_KEY not set. Emails will fail to send.")
	}
	if AppConfig.CertTemplateURL == "" {
		log.Println("Warning: CERT_TEMPLATE_URL not set. Certificate generation is disabled.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
