package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

type Config struct {
	JWTSecret  string
	JWTExpires time.Duration

	StoreDriver string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	LoginRateLimit  int
	LoginRateWindow time.Duration

	OTPTTL        time.Duration
	PruneSchedule string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
}

/*
* Load the .env file if present
* Read every setting from the environment with a fallback
 */
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Error in loading the ENV")
	}
	return FromEnv()
}

func FromEnv() Config {
	return Config{
		JWTSecret:           getenv("JWT_SECRET", ""),
		JWTExpires:          getenvDuration("JWT_EXPIRES_IN", 7*24*time.Hour),
		StoreDriver:         getenv("STORE_DRIVER", StoreMongo),
		RedisAddr:           getenv("REDIS_ADDR", ""),
		RedisPassword:       getenv("REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("REDIS_DB", 0),
		LoginRateLimit:      getenvInt("LOGIN_RATE_LIMIT", 5),
		LoginRateWindow:     getenvDuration("LOGIN_RATE_WINDOW", time.Minute),
		OTPTTL:              getenvDuration("OTP_TTL", 10*time.Minute),
		PruneSchedule:       getenv("LIMITER_PRUNE_SCHEDULE", "*/5 * * * *"),
		SMTPHost:            getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:            getenvInt("SMTP_PORT", 465),
		SMTPUser:            getenv("SMTP_USER", os.Getenv("MY_GMAIL")),
		SMTPPassword:        getenv("SMTP_PASSWORD", os.Getenv("MY_PASSWORD")),
		MailFrom:            getenv("MAIL_FROM", os.Getenv("MY_GMAIL")),
		CloudinaryCloudName: getenv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getenv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getenv("CLOUDINARY_API_SECRET", ""),
	}
}

var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")

/*
* The mongo driver never runs without JWT_SECRET
* The memory driver gets a random secret that dies with the process
 */
func (c *Config) Validate() error {
	if c.JWTSecret != "" {
		return nil
	}
	if c.StoreDriver != StoreMemory {
		return ErrMissingJWTSecret
	}
	secret, err := randomSecret()
	if err != nil {
		return err
	}
	log.Println("JWT_SECRET not set, using a random secret for the memory driver")
	c.JWTSecret = secret
	return nil
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func getenv(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
		log.Println("Invalid integer for", key, ", using default")
	}
	return fallback
}

// getenvDuration accepts Go durations ("90s", "12h") and day counts ("7d").
func getenvDuration(key string, fallback time.Duration) time.Duration {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	if d, err := ParseDuration(val); err == nil {
		return d
	}
	log.Println("Invalid duration for", key, ", using default")
	return fallback
}

func ParseDuration(val string) (time.Duration, error) {
	if strings.HasSuffix(val, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(val, "d"))
		if err != nil {
			return 0, err
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	return time.ParseDuration(val)
}
