package postgres

import "time"

// ClientOption configures Client.
type ClientOption func(*ClientConfig)

// ClientConfig holds PostgreSQL connection configuration.
type ClientConfig struct {
	Host         string
	Port         int
	Database     string
	User         string
	Password     string
	SSLMode      string
	MaxConns     int
	MinConns     int
	ConnLifetime time.Duration
	DialTimeout  time.Duration
}

// WithHost sets database host.
func WithHost(host string) ClientOption {
	return func(c *ClientConfig) {
		c.Host = host
	}
}

// WithPort sets database port.
func WithPort(port int) ClientOption {
	return func(c *ClientConfig) {
		if port > 0 {
			c.Port = port
		}
	}
}

// WithDatabase sets database name.
func WithDatabase(database string) ClientOption {
	return func(c *ClientConfig) {
		c.Database = database
	}
}

// WithCredentials sets user and password.
func WithCredentials(user, password string) ClientOption {
	return func(c *ClientConfig) {
		c.User = user
		c.Password = password
	}
}

// WithSSLMode sets the sslmode DSN parameter.
func WithSSLMode(mode string) ClientOption {
	return func(c *ClientConfig) {
		if mode != "" {
			c.SSLMode = mode
		}
	}
}

// WithPoolSize sets pool bounds.
func WithPoolSize(maxConns, minConns int) ClientOption {
	return func(c *ClientConfig) {
		if maxConns > 0 {
			c.MaxConns = maxConns
		}
		if minConns > 0 {
			c.MinConns = minConns
		}
	}
}

// WithConnLifetime sets maximum connection lifetime.
func WithConnLifetime(d time.Duration) ClientOption {
	return func(c *ClientConfig) {
		if d > 0 {
			c.ConnLifetime = d
		}
	}
}

// WithDialTimeout sets connect timeout.
func WithDialTimeout(d time.Duration) ClientOption {
	return func(c *ClientConfig) {
		if d > 0 {
			c.DialTimeout = d
		}
	}
}
