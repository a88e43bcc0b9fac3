package art

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/phon3x/art-go/internal/frame"
	"github.com/phon3x/art-go/internal/keys"
)

// OutGuessBackend delegates bit placement to the external OutGuess
// tool. The envelope is handed over as an opaque data file together
// with the password; nothing is assumed about the tool's internal
// embedding strategy. Extraction output still has to pass the frame
// checks before any bytes reach the caller.
type OutGuessBackend struct {
	path     string
	password string
	material keys.Material
}

// NewOutGuessBackend returns a backend invoking the OutGuess executable
// at path.
func NewOutGuessBackend(path, password string) *OutGuessBackend {
	return &OutGuessBackend{
		path:     path,
		password: password,
		material: keys.Derive(password),
	}
}

// Name identifies the backend.
func (b *OutGuessBackend) Name() string { return "outguess" }

// Embed writes the envelope to a scratch file and runs
// "outguess -d <data> -k <password> <cover> <out>". The scratch file is
// removed on every exit path.
func (b *OutGuessBackend) Embed(ctx context.Context, coverPath string, envelope []byte, outPath string) (*EmbedResult, error) {
	dataPath, err := writeScratch("art-embed-*.dat", envelope)
	if err != nil {
		return nil, err
	}
	defer os.Remove(dataPath)

	if err := b.run(ctx, "embed", "-d", dataPath, "-k", b.password, coverPath, outPath); err != nil {
		return nil, err
	}

	return &EmbedResult{
		Backend:       b.Name(),
		EnvelopeBytes: len(envelope),
	}, nil
}

// Extract runs "outguess -r -k <password> <stego> <out>", reads the
// recovered byte stream and validates it as a frame. Tool failure and
// checksum failure stay distinct: the former is a CollaboratorError,
// the latter ErrNoHiddenData.
func (b *OutGuessBackend) Extract(ctx context.Context, stegoPath string) ([]byte, error) {
	outFile, err := os.CreateTemp("", "art-extract-*.out")
	if err != nil {
		return nil, fmt.Errorf("create scratch file: %w", err)
	}
	outPath := outFile.Name()
	outFile.Close()
	defer os.Remove(outPath)

	if err := b.run(ctx, "extract", "-r", "-k", b.password, stegoPath, outPath); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("read extracted data: %w", err)
	}

	payload, err := frame.Decode(raw, b.material.EncryptionKey)
	if err != nil {
		return nil, ErrNoHiddenData
	}
	return payload, nil
}

// run executes OutGuess synchronously, capturing stderr for the error
// report.
func (b *OutGuessBackend) run(ctx context.Context, op string, args ...string) error {
	cmd := exec.CommandContext(ctx, b.path, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return &CollaboratorError{
			Op:     op,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return nil
}

// writeScratch stores data in a fresh temp file and returns its path.
func writeScratch(pattern string, data []byte) (string, error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("create scratch file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("write scratch file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("close scratch file: %w", err)
	}
	return f.Name(), nil
}
