package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetenv(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		val      string
		def      string
		expected string
	}{
		{
			name:     "returns existing env",
			key:      "TEST_ENV_EXIST",
			val:      "value",
			def:      "default",
			expected: "value",
		},
		{
			name:     "returns default when env missing",
			key:      "TEST_ENV_MISSING",
			val:      "",
			def:      "default",
			expected: "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.val != "" {
				t.Setenv(tt.key, tt.val)
			} else {
				os.Unsetenv(tt.key)
			}
			assert.Equal(t, tt.expected, getenv(tt.key, tt.def))
		})
	}
}

func TestGetenvBool(t *testing.T) {
	tests := []struct {
		name     string
		val      string
		def      bool
		expected bool
	}{
		{"true", "true", false, true},
		{"false", "false", true, false},
		{"missing uses default", "", true, true},
		{"anything else is false", "yes", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.val != "" {
				t.Setenv("TEST_BOOL", tt.val)
			} else {
				os.Unsetenv("TEST_BOOL")
			}
			assert.Equal(t, tt.expected, getenvBool("TEST_BOOL", tt.def))
		})
	}
}

func TestParseBufferSize(t *testing.T) {
	tests := []struct {
		name   string
		val    string
		expect int
	}{
		{"valid size", "8192", 8192},
		{"default size", "", 1024},
		{"too small", "16", 1024},
		{"too large", "2000000", 1024},
		{"invalid format", "abc", 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.val != "" {
				t.Setenv("BUFFER_SIZE", tt.val)
			} else {
				os.Unsetenv("BUFFER_SIZE")
			}
			assert.Equal(t, tt.expect, parseBufferSize())
		})
	}
}

func TestParseMaxRequestSize(t *testing.T) {
	tests := []struct {
		name      string
		val       string
		expect    int64
		expectErr bool
	}{
		{"default", "", 1 << 20, false},
		{"valid", "4096", 4096, false},
		{"zero", "0", 0, true},
		{"invalid", "big", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.val != "" {
				t.Setenv("MAX_REQUEST_SIZE", tt.val)
			} else {
				os.Unsetenv("MAX_REQUEST_SIZE")
			}
			size, err := parseMaxRequestSize()
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expect, size)
			}
		})
	}
}

func TestParseReadTimeout(t *testing.T) {
	tests := []struct {
		name      string
		val       string
		expect    time.Duration
		expectErr bool
	}{
		{"default", "", 250 * time.Millisecond, false},
		{"valid", "2s", 2 * time.Second, false},
		{"negative", "-1s", 0, true},
		{"invalid", "soon", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.val != "" {
				t.Setenv("READ_TIMEOUT", tt.val)
			} else {
				os.Unsetenv("READ_TIMEOUT")
			}
			timeout, err := parseReadTimeout()
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expect, timeout)
			}
		})
	}
}

func TestParseMaxConnections(t *testing.T) {
	tests := []struct {
		name      string
		val       string
		expect    int
		expectErr bool
	}{
		{"default unlimited", "", 0, false},
		{"valid", "64", 64, false},
		{"negative", "-2", 0, true},
		{"invalid", "many", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.val != "" {
				t.Setenv("MAX_CONNECTIONS", tt.val)
			} else {
				os.Unsetenv("MAX_CONNECTIONS")
			}
			n, err := parseMaxConnections()
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expect, n)
			}
		})
	}
}

func TestParseAllowedMethods(t *testing.T) {
	tests := []struct {
		name   string
		val    string
		expect []string
	}{
		{"unset", "", nil},
		{"list", "GET, head,,POST ", []string{"GET", "HEAD", "POST"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.val != "" {
				t.Setenv("ALLOWED_METHODS", tt.val)
			} else {
				os.Unsetenv("ALLOWED_METHODS")
			}
			assert.Equal(t, tt.expect, parseAllowedMethods())
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		envs      map[string]string
		expectErr bool
	}{
		{
			name:      "defaults",
			envs:      map[string]string{},
			expectErr: false,
		},
		{
			name:      "invalid request size",
			envs:      map[string]string{"MAX_REQUEST_SIZE": "-1"},
			expectErr: true,
		},
		{
			name:      "invalid timeout",
			envs:      map[string]string{"READ_TIMEOUT": "x"},
			expectErr: true,
		},
		{
			name:      "invalid connections",
			envs:      map[string]string{"MAX_CONNECTIONS": "x"},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.envs {
				t.Setenv(k, v)
			}
			cfg, err := parse()
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

func TestGetters(t *testing.T) {
	envs := map[string]string{
		"HTTP_PORT":        "9090",
		"BUFFER_SIZE":      "4096",
		"MAX_REQUEST_SIZE": "65536",
		"READ_TIMEOUT":     "1s",
		"MAX_CONNECTIONS":  "10",
		"REQUIRE_HOST":     "true",
		"ALLOWED_METHODS":  "GET,POST",
		"PPROF_ENABLED":    "true",
		"PPROF_PORT":       "7070",
	}

	os.Clearenv()
	for k, v := range envs {
		t.Setenv(k, v)
	}

	cfg, err := parse()
	assert.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort())
	assert.Equal(t, 4096, cfg.BufferSize())
	assert.Equal(t, int64(65536), cfg.MaxRequestSize())
	assert.Equal(t, time.Second, cfg.ReadTimeout())
	assert.Equal(t, 10, cfg.MaxConnections())
	assert.Equal(t, true, cfg.RequireHost())
	assert.Equal(t, []string{"GET", "POST"}, cfg.AllowedMethods())
	assert.Equal(t, true, cfg.PprofEnabled())
	assert.Equal(t, "7070", cfg.PprofPort())
}

func TestMustLoad(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		os.Clearenv()
		cfg, err := MustLoad()
		assert.NoError(t, err)
		assert.NotNil(t, cfg)
	})

	t.Run("loadEnvFile error", func(t *testing.T) {
		err := os.Mkdir(".env", 0755)
		assert.NoError(t, err)
		defer os.Remove(".env")

		cfg, err := MustLoad()
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("parse error", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("READ_TIMEOUT", "never")
		cfg, err := MustLoad()
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("file exists", func(t *testing.T) {
		err := os.WriteFile(".env", []byte("TEST_ENV_FILE=true"), 0644)
		assert.NoError(t, err)
		defer os.Remove(".env")

		err = loadEnvFile()
		assert.NoError(t, err)
		assert.Equal(t, "true", os.Getenv("TEST_ENV_FILE"))
	})

	t.Run("file missing", func(t *testing.T) {
		_ = os.Remove(".env")
		err := loadEnvFile()
		assert.NoError(t, err)
	})
}
