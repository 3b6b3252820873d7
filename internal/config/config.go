package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Published CSV exports of the three sheets. The sheet is maintained
// externally; these are the production defaults and can be overridden per
// deployment via environment variables.
const (
	defaultNegociosURL  = "https://docs.google.com/spreadsheets/d/e/2PACX-1vSlW4nMl5_NutZ13UESh9P7J8CVgjoaNfJGwngCmSjnMTWiDKPeg_05x4Wm4llSNl46s1qzwFc5IF1r/pub?gid=874763755&single=true&output=csv"
	defaultProductosURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vSlW4nMl5_NutZ13UESh9P7J8CVgjoaNfJGwngCmSjnMTWiDKPeg_05x4Wm4llSNl46s1qzwFc5IF1r/pub?gid=1126609695&single=true&output=csv"
	defaultMuroURL      = "https://docs.google.com/spreadsheets/d/e/2PACX-1vSlW4nMl5_NutZ13UESh9P7J8CVgjoaNfJGwngCmSjnMTWiDKPeg_05x4Wm4llSNl46s1qzwFc5IF1r/pub?gid=150919361&single=true&output=csv"

	defaultRegistroURL = "https://forms.gle/tZaxyqDWtYFbfGUV6"
	defaultPublicarURL = "https://docs.google.com/forms/d/e/1FAIpQLSfHqC6Cbq4mTLGt0CyO_qgEHQUf1HeBDIbw9sgcvbJNzWqgtA/viewform?usp=header"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Addr string

	NegociosCSVURL  string
	ProductosCSVURL string
	MuroCSVURL      string

	// CountryCode prefixes phone numbers in wa.me deep links.
	CountryCode string

	// RegistroFormURL and PublicarFormURL are the external write paths:
	// business registration and classified posting happen on Google Forms,
	// never through this API.
	RegistroFormURL string
	PublicarFormURL string

	// Variant selects the map preset: "guira" (town-centered) or "cuba"
	// (island-wide, with the province gate on the welcome screen).
	Variant string

	// SnapshotTTL bounds how long a fetched sheet snapshot is served before
	// the next request triggers a re-fetch.
	SnapshotTTL time.Duration

	// FetchRatePerSec throttles outbound requests to the published sheet.
	FetchRatePerSec int
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		Addr: getEnv("PLAZA_ADDR", ":8080"),

		NegociosCSVURL:  getEnv("NEGOCIOS_CSV_URL", defaultNegociosURL),
		ProductosCSVURL: getEnv("PRODUCTOS_CSV_URL", defaultProductosURL),
		MuroCSVURL:      getEnv("MURO_CSV_URL", defaultMuroURL),

		CountryCode: getEnv("COUNTRY_CODE", "53"),

		RegistroFormURL: getEnv("REGISTRO_FORM_URL", defaultRegistroURL),
		PublicarFormURL: getEnv("PUBLICAR_FORM_URL", defaultPublicarURL),

		Variant: getEnv("APP_VARIANT", "guira"),

		SnapshotTTL:     time.Duration(getEnvInt("SNAPSHOT_TTL_SECONDS", 300)) * time.Second,
		FetchRatePerSec: getEnvInt("FETCH_RATE_PER_SEC", 2),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
