package art

import (
	"context"
	"fmt"

	"github.com/phon3x/art-go/internal/bits"
	"github.com/phon3x/art-go/internal/carrier"
	"github.com/phon3x/art-go/internal/frame"
	"github.com/phon3x/art-go/internal/keys"
	"github.com/phon3x/art-go/internal/permute"
)

// alignmentOffsets is the number of byte-boundary offsets tried during
// extraction. The encode path writes no synchronization marker outside
// the encrypted envelope, so extraction scans all eight possible bit
// offsets within a byte. Kept for compatibility with existing stego
// images; a new format would carry an explicit marker instead.
const alignmentOffsets = 8

// FallbackBackend is the built-in spatial-domain engine: the envelope
// is 2x repetition coded and written into the 2nd-least-significant bit
// of (pixel, channel) slots in password-seeded permutation order.
type FallbackBackend struct {
	material keys.Material
	quality  int
}

// NewFallbackBackend returns a fallback backend for the given key
// material and JPEG output quality.
func NewFallbackBackend(material keys.Material, quality int) *FallbackBackend {
	return &FallbackBackend{material: material, quality: clampQuality(quality)}
}

// Name identifies the backend.
func (b *FallbackBackend) Name() string { return "fallback" }

// Embed writes the envelope into the carrier's bit plane. Capacity is
// checked before any slot is touched and before the output file is
// created.
func (b *FallbackBackend) Embed(ctx context.Context, coverPath string, envelope []byte, outPath string) (*EmbedResult, error) {
	grid, err := carrier.Load(coverPath)
	if err != nil {
		return nil, err
	}

	stream := bits.Expand(envelope)
	n := grid.Slots()
	if len(stream) > n {
		return nil, &CapacityError{NeededBits: len(stream), AvailableBits: n}
	}

	perm := permute.Generate(b.material.PermutationSeed, n)

	modified := 0
	for i, bit := range stream {
		slot := perm[i]
		if grid.Bit(slot) != bit {
			modified++
		}
		grid.SetBit(slot, bit)
	}
	// Slots beyond the stream stay untouched.

	if err := grid.Save(outPath, b.quality); err != nil {
		return nil, fmt.Errorf("save stego image: %w", err)
	}

	return &EmbedResult{
		Backend:          b.Name(),
		EnvelopeBytes:    len(envelope),
		BitsWritten:      len(stream),
		SlotsAvailable:   n,
		ChannelsModified: modified,
	}, nil
}

// Extract reads the full permutation's worth of bits, decodes the
// repetition code and brute-forces the byte alignment until a valid
// frame appears. The true bitstream length is unknown at this point, so
// the whole slot space is read and trailing garbage is tolerated; the
// frame checksum is what separates payload from noise.
func (b *FallbackBackend) Extract(ctx context.Context, stegoPath string) ([]byte, error) {
	grid, err := carrier.Load(stegoPath)
	if err != nil {
		return nil, err
	}

	n := grid.Slots()
	perm := permute.Generate(b.material.PermutationSeed, n)

	raw := make([]byte, n)
	for i, slot := range perm {
		raw[i] = grid.Bit(slot)
	}

	decoded := bits.Collapse(raw)

	for offset := 0; offset < alignmentOffsets; offset++ {
		candidate := bits.Pack(decoded, offset)
		payload, err := frame.Decode(candidate, b.material.EncryptionKey)
		if err == nil {
			return payload, nil
		}
	}

	return nil, ErrNoHiddenData
}
