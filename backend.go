package art

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/phon3x/art-go/internal/keys"
)

// Backend places encoded payload envelopes into carriers and recovers
// them. Implementations receive the envelope wire form (iv ||
// ciphertext) and never see the plaintext payload; how bits land in the
// image is entirely the backend's business.
type Backend interface {
	// Name identifies the backend ("fallback" or "outguess").
	Name() string

	// Embed writes the envelope into the cover image at coverPath and
	// stores the result at outPath.
	Embed(ctx context.Context, coverPath string, envelope []byte, outPath string) (*EmbedResult, error)

	// Extract recovers and validates a payload from the image at
	// stegoPath, returning ErrNoHiddenData when none is found.
	Extract(ctx context.Context, stegoPath string) ([]byte, error)
}

// EmbedResult reports what an embed wrote.
type EmbedResult struct {
	// Backend is the name of the backend that performed the embed.
	Backend string
	// EnvelopeBytes is the size of the encrypted envelope.
	EnvelopeBytes int

	// BitsWritten, SlotsAvailable and ChannelsModified describe the
	// fallback engine's slot usage. They are zero for OutGuess embeds,
	// whose bit placement is opaque.
	BitsWritten      int
	SlotsAvailable   int
	ChannelsModified int
}

// newBackend resolves the configured backend kind. BackendAuto is a
// runtime capability probe: OutGuess when installed, the built-in
// spatial engine otherwise.
func newBackend(cfg *sessionConfig, material keys.Material, password string) (Backend, error) {
	lookup := cfg.outGuessPath
	if lookup == "" {
		lookup = defaultOutGuessName
	}

	switch cfg.backend {
	case BackendFallback:
		return &FallbackBackend{material: material, quality: cfg.quality}, nil

	case BackendOutGuess:
		path, err := exec.LookPath(lookup)
		if err != nil {
			return nil, fmt.Errorf("locate outguess: %w", err)
		}
		return &OutGuessBackend{path: path, password: password, material: material}, nil

	case BackendAuto, "":
		if path, err := exec.LookPath(lookup); err == nil {
			return &OutGuessBackend{path: path, password: password, material: material}, nil
		}
		return &FallbackBackend{material: material, quality: cfg.quality}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.backend)
	}
}
