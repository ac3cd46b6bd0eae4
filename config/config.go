package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all application-level configuration
type Config struct {
	// Input
	RoomIDsFile string

	// Probing
	MaxDays      int // max probe days per listing, 0 = all available days
	WindowDays   int // matrix window span in days, inclusive of both ends
	Currency     string
	Language     string
	Adults       int
	MaxRetries   int
	ProbeDelay   time.Duration // after every pricing probe
	ListingDelay time.Duration // after every completed listing

	// Output
	OutputDir           string
	IncludeFailedProbes bool
	Publish             bool

	// Airbnb
	AirbnbURL string
	ProxyURL  string

	// RunStamp is taken once at startup and stamps the output filenames,
	// so a run never mixes files from two invocations.
	RunStamp time.Time
}

// Load reads configuration from environment variables or falls back to defaults
func Load() *Config {
	return &Config{
		RoomIDsFile:         getEnv("ROOM_IDS_FILE", "room_ids.txt"),
		MaxDays:             getEnvInt("MAX_DAYS", 30),
		WindowDays:          getEnvInt("WINDOW_DAYS", 365),
		Currency:            getEnv("CURRENCY", "AED"),
		Language:            getEnv("LANGUAGE", "en"),
		Adults:              getEnvInt("ADULTS", 2),
		MaxRetries:          getEnvInt("MAX_RETRIES", 3),
		ProbeDelay:          time.Duration(getEnvInt("DELAY_BETWEEN_DETAILS_MS", 1500)) * time.Millisecond,
		ListingDelay:        time.Duration(getEnvInt("DELAY_BETWEEN_LISTINGS_MS", 3000)) * time.Millisecond,
		OutputDir:           getEnv("OUTPUT_DIR", "."),
		IncludeFailedProbes: getEnvBool("INCLUDE_FAILED_PROBES", true),
		Publish:             getEnvBool("PUBLISH", false),
		AirbnbURL:           getEnv("AIRBNB_URL", "https://www.airbnb.com"),
		ProxyURL:            getEnv("PROXY_URL", ""),
		RunStamp:            time.Now(),
	}
}

// DetailCSVPath is the timestamped path of the detail-view report.
func (c *Config) DetailCSVPath() string {
	return filepath.Join(c.OutputDir, fmt.Sprintf("prices_%s.csv", c.stamp()))
}

// MatrixCSVPath is the timestamped path of the matrix-view report.
func (c *Config) MatrixCSVPath() string {
	return filepath.Join(c.OutputDir, fmt.Sprintf("price_matrix_%s.csv", c.stamp()))
}

func (c *Config) stamp() string {
	return c.RunStamp.Format("20060102_150405")
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}
