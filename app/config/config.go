package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
)

type Config struct {
	DB       *sql.DB
	Timezone *time.Location
}

var AppConfig *Config

// InitDB opens the Postgres connection described by the environment
// and loads the campus timezone used to render balance timestamps.
func InitDB() {
	psqlInfo := os.Getenv("DATABASE_URL")
	if psqlInfo == "" {
		host := getenv("DB_HOST", "localhost")
		port := getenv("DB_PORT", "5432")
		user := getenv("DB_USER", "postgres")
		dbname := getenv("DB_NAME", "portal")
		psqlInfo = fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable connect_timeout=60",
			host, port, user, dbname)
		if password := os.Getenv("DB_PASSWORD"); password != "" {
			psqlInfo += " password=" + password
		}
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	tz := getenv("CAMPUS_TZ", "America/New_York")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Fatalf("Unknown campus timezone %q: %v", tz, err)
	}

	AppConfig = &Config{DB: db, Timezone: loc}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GMTOffset renders the campus offset west of GMT at t, e.g. "04:00"
// during daylight saving and "05:00" otherwise. Balance timestamps are
// suffixed with "-" + this value.
func GMTOffset(loc *time.Location, t time.Time) string {
	_, seconds := t.In(loc).Zone()
	hours := seconds / 3600
	if hours < 0 {
		hours = -hours
	}
	return fmt.Sprintf("%02d:00", hours)
}
