package transfer

import "github.com/sirupsen/logrus"

// Config holds the transfer engine configuration.
type Config struct {
	// ProgressCallback is called after each chunk (optional)
	ProgressCallback ProgressCallback

	// Logger receives a transfer summary at info level
	Logger *logrus.Logger
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Logger: logrus.StandardLogger(),
	}
}

// Option is a functional option for configuring a chunked write.
type Option func(*Config)

// WithProgressCallback sets a callback invoked after each chunk.
//
// Example:
//
//	n, err := transfer.WriteChunked(h, data,
//	    transfer.WithProgressCallback(func(p transfer.Progress) {
//	        fmt.Printf("\r%.1f%%", p.Percentage)
//	    }),
//	)
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}

// WithLogger sets the logger used for the transfer summary.
func WithLogger(logger *logrus.Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}
