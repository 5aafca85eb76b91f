package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	Port          string
	StoreBackend  string
	RedisURL      string
	MongoURI      string
	MongoDatabase string
	GeminiAPIKey  string
	JWTSecret     string

	// AdminPassphrase gates the cosmetic admin overlay. It is a UI easter
	// egg, not an access-control feature; the default mirrors the
	// storefront's original hard-coded value. AdminPassphraseHash, when
	// set, is a bcrypt hash checked instead of the plain value.
	AdminPassphrase     string
	AdminPassphraseHash string

	AWSRegion     string
	AWSBucketName string
)

// LoadConfig loads environment variables from .env file
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "8080"
	}

	StoreBackend = os.Getenv("STORE_BACKEND")
	if StoreBackend == "" {
		StoreBackend = "memory"
	}

	RedisURL = os.Getenv("REDIS_URL")
	if RedisURL == "" {
		RedisURL = "redis://localhost:6379/0"
	}

	MongoURI = os.Getenv("MONGO_URI")
	if MongoURI == "" {
		MongoURI = "mongodb://localhost:27017/"
	}

	MongoDatabase = os.Getenv("MONGO_DATABASE")
	if MongoDatabase == "" {
		MongoDatabase = "nomad"
	}

	GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	JWTSecret = os.Getenv("JWT_SECRET")

	AdminPassphrase = os.Getenv("ADMIN_PASSPHRASE")
	if AdminPassphrase == "" {
		AdminPassphrase = "12345"
	}
	AdminPassphraseHash = os.Getenv("ADMIN_PASSPHRASE_HASH")

	AWSRegion = os.Getenv("AWS_REGION")
	if AWSRegion == "" {
		AWSRegion = "us-east-1"
	}
	AWSBucketName = os.Getenv("AWS_BUCKET_NAME")
}
