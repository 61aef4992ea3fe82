package refill

// DefaultWidth is the column budget used when no WithWidth option is given.
const DefaultWidth = 80

const defaultLineSeparator = "\n"

// Option configures a Wrapper.
type Option func(*config)

type config struct {
	width         int
	lineSeparator string
}

// WithWidth sets the column budget lines are wrapped to. Values below 1 are
// treated as 1.
func WithWidth(width int) Option {
	return func(cfg *config) {
		cfg.width = width
	}
}

// WithLineSeparator sets the terminator appended to lines the Wrapper
// produces. Input may use \n or \r\n regardless; this only affects emission.
func WithLineSeparator(sep string) Option {
	return func(cfg *config) {
		cfg.lineSeparator = sep
	}
}
