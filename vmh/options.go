package vmh

// DefaultBytesPerWord is the lane count of a 32-bit memory word.
const DefaultBytesPerWord = 4

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

// Config holds the splitter configuration.
type Config struct {
	// BytesPerWord is the number of byte lanes per memory word
	BytesPerWord int

	// Lenient emits best-effort tokens for malformed words instead of failing
	Lenient bool

	// Logger is used for logging operations (optional)
	Logger Logger
}

func defaultConfig() Config {
	return Config{
		BytesPerWord: DefaultBytesPerWord,
		Logger:       nopLogger{},
	}
}

// Option is a functional option for Split and SplitFile.
type Option func(*Config)

// WithBytesPerWord sets the number of byte lanes. Values below 1 make Split
// fail with *LaneCountError.
//
// Example:
//
//	lanes, err := vmh.Split(f, vmh.WithBytesPerWord(2)) // 16-bit memory
func WithBytesPerWord(n int) Option {
	return func(c *Config) {
		c.BytesPerWord = n
	}
}

// WithLenient enables best-effort splitting of malformed words.
func WithLenient(lenient bool) Option {
	return func(c *Config) {
		c.Lenient = lenient
	}
}

// WithLogger sets a logger for split operations.
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}
