package config

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// dbEnvPrefix ánh xạ ENV sang prefix biến môi trường của database
func dbEnvPrefix(env string) string {
	switch env {
	case "dev":
		return "DEV_DB_"
	case "prod":
		return "PROD_DB_"
	default:
		log.Fatalf("Unknown environment: %s", env)
		return ""
	}
}

func buildDSN(env string) string {
	prefix := dbEnvPrefix(env)

	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "require"
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Asia/Kolkata",
		os.Getenv(prefix+"HOST"),
		os.Getenv(prefix+"USER"),
		os.Getenv(prefix+"PASSWORD"),
		os.Getenv(prefix+"NAME"),
		os.Getenv(prefix+"PORT"),
		sslmode,
	)
}

// ConnectDB mở kết nối Postgres theo môi trường trong ENV
func ConnectDB() {
	var err error
	dsn := buildDSN(os.Getenv("ENV"))

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Fail to connect to db : %v", err)
	}

	fmt.Println("Successfully connected to db")
}
