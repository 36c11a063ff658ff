package device

import (
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultReceiveTimeout bounds a ReceiveSimple call when no explicit
// timeout is supplied.
const DefaultReceiveTimeout = 100 * time.Millisecond

// FinalizeTimeout is the raised timeout to apply around a transfer's
// close step, where the brain may spend several seconds committing the
// file to persistent storage before replying.
const FinalizeTimeout = 15 * time.Second

// Config holds the dispatcher configuration.
type Config struct {
	// ReceiveTimeout is the default timeout for receive operations
	ReceiveTimeout time.Duration

	// Logger receives frame traffic at debug level
	Logger *logrus.Logger
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		ReceiveTimeout: DefaultReceiveTimeout,
		Logger:         logrus.StandardLogger(),
	}
}

// Option is a functional option for configuring the Dispatcher.
type Option func(*Config)

// WithTimeout sets the default receive timeout.
//
// Example:
//
//	disp := device.New(stream, device.WithTimeout(time.Second))
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if timeout > 0 {
			c.ReceiveTimeout = timeout
		}
	}
}

// WithLogger sets the logger used for frame traffic.
//
// Example:
//
//	log := logrus.New()
//	log.SetLevel(logrus.DebugLevel)
//	disp := device.New(stream, device.WithLogger(log))
func WithLogger(logger *logrus.Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}
