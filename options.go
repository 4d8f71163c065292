package cubekit

// Option configures Cube behavior.
type Option func(*config)

type config struct {
	moveHistory bool
}

func defaultConfig() *config {
	return &config{
		moveHistory: true,
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), applied moves are recorded and accessible via
// History(), and Undo() can revert them. Disable this for long-running
// sequences to avoid the history allocation.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}
