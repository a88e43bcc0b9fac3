// Package carrier handles the pixel grid a payload is hidden in.
//
// A carrier is addressed as a flat slot space of width*height*3: one
// slot per (pixel, RGB channel), row-major, alpha excluded. Bits are
// written to the second-least-significant bit of a channel value, not
// the LSB — mild insurance against 1-bit rounding when the image is
// recompressed.
package carrier

import (
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// Channels is the number of embeddable channels per pixel.
const Channels = 3

// slotBit is the bit of a channel value used for embedding (2nd LSB).
const slotBit = 1 << 1

// Grid is a decoded image normalized to an RGBA working copy. It is
// always a fresh copy; mutating it never aliases the caller's source
// image or file.
type Grid struct {
	img *image.RGBA
}

// Load decodes the image at path into a working copy. JPEG, PNG and
// BMP are supported.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open carrier: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode carrier: %w", err)
	}

	return FromImage(src), nil
}

// FromImage copies src into a zero-anchored RGBA grid.
func FromImage(src image.Image) *Grid {
	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)
	return &Grid{img: dst}
}

// Width returns the carrier width in pixels.
func (g *Grid) Width() int { return g.img.Bounds().Dx() }

// Height returns the carrier height in pixels.
func (g *Grid) Height() int { return g.img.Bounds().Dy() }

// Slots returns the size of the flat slot index space.
func (g *Grid) Slots() int {
	return g.Width() * g.Height() * Channels
}

// offset maps a slot index to its position in the RGBA pixel buffer.
func (g *Grid) offset(slot int) int {
	return (slot/Channels)*4 + slot%Channels
}

// Bit reads the embedded bit of a slot.
func (g *Grid) Bit(slot int) byte {
	return (g.img.Pix[g.offset(slot)] >> 1) & 1
}

// SetBit writes a bit into a slot, leaving every other bit of the
// channel value unchanged.
func (g *Grid) SetBit(slot int, bit byte) {
	off := g.offset(slot)
	if bit == 1 {
		g.img.Pix[off] |= slotBit
	} else {
		g.img.Pix[off] &^= slotBit
	}
}

// Image returns the underlying image.
func (g *Grid) Image() image.Image { return g.img }

// Save encodes the grid to path. The format follows the extension:
// .png and .bmp are lossless, anything else is written as JPEG at the
// given quality. The JPEG encoder performs a single pass with no
// optimizer, so the written bit pattern is not re-perturbed.
func (g *Grid) Save(path string, quality int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(f, g.img)
	case ".bmp":
		err = bmp.Encode(f, g.img)
	default:
		err = jpeg.Encode(f, g.img, &jpeg.Options{Quality: quality})
	}
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
