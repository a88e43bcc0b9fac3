package art

// BackendKind selects how payload envelopes are placed in the carrier.
type BackendKind string

const (
	// BackendAuto uses OutGuess when it is installed, otherwise falls
	// back to the built-in spatial engine.
	BackendAuto BackendKind = "auto"
	// BackendOutGuess delegates embedding to the external OutGuess tool.
	BackendOutGuess BackendKind = "outguess"
	// BackendFallback uses the built-in permutation-based bit-plane
	// engine.
	BackendFallback BackendKind = "fallback"
)

const (
	// MinQuality is the lowest accepted JPEG output quality.
	MinQuality = 75
	// MaxQuality is the highest accepted JPEG output quality.
	MaxQuality = 95

	defaultQuality      = 90
	defaultOutGuessName = "outguess"
)

// sessionConfig holds configuration for a session.
type sessionConfig struct {
	backend      BackendKind
	quality      int
	outGuessPath string
}

// Option configures a session.
type Option func(*sessionConfig)

// WithBackend pins the embedding backend instead of probing for
// OutGuess at session creation.
func WithBackend(kind BackendKind) Option {
	return func(c *sessionConfig) {
		c.backend = kind
	}
}

// WithQuality sets the JPEG output quality. Values are clamped to
// [MinQuality, MaxQuality]. Default: 90.
func WithQuality(quality int) Option {
	return func(c *sessionConfig) {
		c.quality = quality
	}
}

// WithOutGuessPath sets the OutGuess executable path. Default: resolve
// "outguess" on PATH.
func WithOutGuessPath(path string) Option {
	return func(c *sessionConfig) {
		c.outGuessPath = path
	}
}

// clampQuality bounds a quality value to the supported range.
func clampQuality(q int) int {
	if q < MinQuality {
		return MinQuality
	}
	if q > MaxQuality {
		return MaxQuality
	}
	return q
}
