package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultBufferSize     = 1024
	defaultMaxRequestSize = 1 << 20
	defaultReadTimeout    = 250 * time.Millisecond
)

type config struct {
	httpPort string

	bufferSize     int
	maxRequestSize int64
	readTimeout    time.Duration
	maxConnections int

	requireHost    bool
	allowedMethods []string

	pprofEnabled bool
	pprofPort    string
}

func parse() (*config, error) {
	httpPort := getenv("HTTP_PORT", "8080")

	bufferSize := parseBufferSize()

	maxRequestSize, err := parseMaxRequestSize()
	if err != nil {
		return nil, err
	}

	readTimeout, err := parseReadTimeout()
	if err != nil {
		return nil, err
	}

	maxConnections, err := parseMaxConnections()
	if err != nil {
		return nil, err
	}

	requireHost := getenvBool("REQUIRE_HOST", false)
	allowedMethods := parseAllowedMethods()

	pprofEnabled := getenvBool("PPROF_ENABLED", false)
	pprofPort := getenv("PPROF_PORT", "6060")

	return &config{
		httpPort:       httpPort,
		bufferSize:     bufferSize,
		maxRequestSize: maxRequestSize,
		readTimeout:    readTimeout,
		maxConnections: maxConnections,
		requireHost:    requireHost,
		allowedMethods: allowedMethods,
		pprofEnabled:   pprofEnabled,
		pprofPort:      pprofPort,
	}, nil
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}

func parseBufferSize() int {
	raw := getenv("BUFFER_SIZE", strconv.Itoa(defaultBufferSize))
	size, err := strconv.Atoi(raw)
	if err != nil || size < 512 || size > 1048576 {
		log.Printf("Invalid BUFFER_SIZE, falling back to %d", defaultBufferSize)
		return defaultBufferSize
	}
	return size
}

func parseMaxRequestSize() (int64, error) {
	raw := getenv("MAX_REQUEST_SIZE", "")
	if raw == "" {
		return defaultMaxRequestSize, nil
	}

	size, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid MAX_REQUEST_SIZE: %w", err)
	}
	if size <= 0 {
		return 0, fmt.Errorf("MAX_REQUEST_SIZE must be positive")
	}
	return size, nil
}

func parseReadTimeout() (time.Duration, error) {
	raw := getenv("READ_TIMEOUT", "")
	if raw == "" {
		return defaultReadTimeout, nil
	}

	timeout, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid READ_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return 0, fmt.Errorf("READ_TIMEOUT must be positive")
	}
	return timeout, nil
}

func parseMaxConnections() (int, error) {
	raw := getenv("MAX_CONNECTIONS", "0")
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid MAX_CONNECTIONS: %w", err)
	}
	if n < 0 {
		return 0, fmt.Errorf("MAX_CONNECTIONS must not be negative")
	}
	return n, nil
}

func parseAllowedMethods() []string {
	raw := getenv("ALLOWED_METHODS", "")
	if raw == "" {
		return nil
	}

	var methods []string
	for _, m := range strings.Split(raw, ",") {
		if m = strings.TrimSpace(m); m != "" {
			methods = append(methods, strings.ToUpper(m))
		}
	}
	return methods
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val == "true"
}
