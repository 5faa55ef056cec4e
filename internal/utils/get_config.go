package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server
	Port string `yaml:"PORT"`

	// Admin credentials
	AdminUsername string `yaml:"ADMIN_USERNAME"`
	AdminPassword string `yaml:"ADMIN_PASSWORD"`
	JWTSecret     string `yaml:"JWT_SECRET"`

	// Storage backend selection: "postgres" (default) or "supabase"
	StorageBackend string `yaml:"STORAGE_BACKEND"`

	// Database configuration (postgres backend)
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Hosted backend (supabase) connection string
	SupabaseDBURL string `yaml:"SUPABASE_DB_URL"`

	// Blob backend selection: "local" (default) or "s3"
	BlobBackend string `yaml:"BLOB_BACKEND"`
	UploadDir   string `yaml:"UPLOAD_DIR"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	// Keys that should also be reachable via os.Getenv
	os.Setenv("JWT_SECRET", config.JWTSecret)
	os.Setenv("ADMIN_USERNAME", config.AdminUsername)
	os.Setenv("ADMIN_PASSWORD", config.AdminPassword)
	os.Setenv("AWS_S3_BUCKET", config.AWSS3Bucket)
	os.Setenv("AWS_S3_REGION", config.AWSS3Region)
	os.Setenv("AWS_ACCESS_KEY", config.AWSAccessKey)
	os.Setenv("AWS_SECRET_KEY", config.AWSSecretKey)
}

// GetConfig resolves a key from config.yaml, falling back to the process
// environment so .env deployments keep working without a yaml file.
func GetConfig(key string) string {
	if v := getConfigFile(key); v != "" {
		return v
	}
	return os.Getenv(key)
}

func getConfigFile(key string) string {
	switch key {
	case "PORT":
		return config.Port
	case "ADMIN_USERNAME":
		return config.AdminUsername
	case "ADMIN_PASSWORD":
		return config.AdminPassword
	case "JWT_SECRET":
		return config.JWTSecret
	case "STORAGE_BACKEND":
		return config.StorageBackend
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "SUPABASE_DB_URL":
		return config.SupabaseDBURL
	case "BLOB_BACKEND":
		return config.BlobBackend
	case "UPLOAD_DIR":
		return config.UploadDir
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	default:
		return ""
	}
}
