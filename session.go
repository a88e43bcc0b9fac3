package art

import (
	"context"

	"github.com/phon3x/art-go/internal/frame"
	"github.com/phon3x/art-go/internal/keys"
)

// Session owns the key material derived from one password and the
// backend selected for it. All secrecy flows from the password given to
// New; nothing is cached process-wide.
type Session struct {
	material keys.Material
	backend  Backend
}

// New derives key material from the password and selects an embedding
// backend. Any password, including the empty string, is accepted.
//
// With the default BackendAuto, OutGuess is probed on PATH once, here;
// the choice does not change for the life of the session.
func New(password string, opts ...Option) (*Session, error) {
	cfg := &sessionConfig{
		backend: BackendAuto,
		quality: defaultQuality,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.quality = clampQuality(cfg.quality)

	material := keys.Derive(password)

	backend, err := newBackend(cfg, material, password)
	if err != nil {
		return nil, err
	}

	return &Session{
		material: material,
		backend:  backend,
	}, nil
}

// Embed hides payload inside the image at coverPath and writes the
// stego image to outPath. The cover file is never modified. A payload
// that does not fit fails with a CapacityError before any output is
// produced.
func (s *Session) Embed(ctx context.Context, coverPath string, payload []byte, outPath string) (*EmbedResult, error) {
	envelope, err := frame.Encode(payload, s.material.EncryptionKey)
	if err != nil {
		return nil, err
	}
	return s.backend.Embed(ctx, coverPath, envelope, outPath)
}

// Extract recovers a payload hidden at stegoPath. It returns
// ErrNoHiddenData when the image holds no payload recoverable with this
// session's password.
func (s *Session) Extract(ctx context.Context, stegoPath string) ([]byte, error) {
	return s.backend.Extract(ctx, stegoPath)
}

// BackendName reports which backend the session selected.
func (s *Session) BackendName() string {
	return s.backend.Name()
}
