package config

import "time"

type Config interface {
	HTTPPort() string

	BufferSize() int
	MaxRequestSize() int64
	ReadTimeout() time.Duration
	MaxConnections() int

	RequireHost() bool
	AllowedMethods() []string

	PprofEnabled() bool
	PprofPort() string
}

func MustLoad() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg, err := parse()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) HTTPPort() string           { return c.httpPort }
func (c *config) BufferSize() int            { return c.bufferSize }
func (c *config) MaxRequestSize() int64      { return c.maxRequestSize }
func (c *config) ReadTimeout() time.Duration { return c.readTimeout }
func (c *config) MaxConnections() int        { return c.maxConnections }
func (c *config) RequireHost() bool          { return c.requireHost }
func (c *config) AllowedMethods() []string   { return c.allowedMethods }
func (c *config) PprofEnabled() bool         { return c.pprofEnabled }
func (c *config) PprofPort() string          { return c.pprofPort }
