package padder

// Logger is an optional logging interface; *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}

// Config holds the padding configuration.
type Config struct {
	// Fill is the byte appended to the image (default 0x00)
	Fill byte

	// Logger receives one entry per processed file (optional)
	Logger Logger
}

func defaultConfig() Config {
	return Config{
		Fill:   0x00,
		Logger: nopLogger{},
	}
}

// Option is a functional option for PadFile.
type Option func(*Config)

// WithFill sets the padding byte. Erased flash reads as 0xFF, so some
// targets prefer that over the default zero.
//
// Example:
//
//	res, err := padder.PadFile("app.bin", 3328, padder.WithFill(0xFF))
func WithFill(fill byte) Option {
	return func(c *Config) {
		c.Fill = fill
	}
}

// WithLogger sets a logger for padding operations.
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}
