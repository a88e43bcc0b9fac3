// Package frame implements the authenticated payload framing shared by
// every embedding backend.
//
// A payload is framed as length || CRC32 || payload (big-endian u32
// header fields), padded with PKCS#7 and encrypted with AES-256-CBC
// under a fresh random IV. The wire form handed to a backend is
// iv || ciphertext with no outer length field; the ciphertext length is
// implicit in the stream.
//
// Decoding deliberately collapses every failure mode — bad padding,
// short plaintext, length overrun, checksum mismatch — into the single
// ErrInvalidFrame sentinel so a caller probing with wrong passwords
// learns nothing about why a candidate stream was rejected.
package frame

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
)

const (
	// IVSize is the AES-CBC initialization vector size in bytes.
	IVSize = aes.BlockSize

	// HeaderSize is the size of the length + checksum prefix in bytes.
	HeaderSize = 8
)

// ErrInvalidFrame is returned for every decode failure. It carries no
// detail about which check failed.
var ErrInvalidFrame = errors.New("no valid frame")

// Frame is the length- and checksum-validated payload unit. Any
// recovered bytes that do not satisfy Checksum == CRC32(Payload) and
// Length == len(Payload) are rejected outright, never partially trusted.
type Frame struct {
	Length   uint32
	Checksum uint32
	Payload  []byte
}

// New frames a payload, computing its length and CRC32 checksum.
func New(payload []byte) Frame {
	return Frame{
		Length:   uint32(len(payload)),
		Checksum: crc32.ChecksumIEEE(payload),
		Payload:  payload,
	}
}

// Marshal serializes the frame as [length:4][checksum:4][payload],
// big-endian.
func (f Frame) Marshal() []byte {
	buf := make([]byte, HeaderSize+len(f.Payload))
	binary.BigEndian.PutUint32(buf[0:4], f.Length)
	binary.BigEndian.PutUint32(buf[4:8], f.Checksum)
	copy(buf[HeaderSize:], f.Payload)
	return buf
}

// Encode frames, pads and encrypts a payload. The returned bytes are
// the envelope wire form iv || ciphertext.
func Encode(payload, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	plaintext := pad(New(payload).Marshal(), aes.BlockSize)

	out := make([]byte, IVSize+len(plaintext))
	iv := out[:IVSize]
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, fmt.Errorf("generate IV: %w", err)
	}

	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out[IVSize:], plaintext)
	return out, nil
}

// Decode splits raw into IV and ciphertext, decrypts, and validates
// the frame, returning the payload. Every failure path returns
// ErrInvalidFrame.
//
// The input may be longer than the envelope: blind extraction reads the
// carrier's entire slot space, so the real envelope is a prefix
// followed by garbage bits. The frame's length field locates the true
// end, and the PKCS#7 padding is verified at that implied boundary
// rather than at the end of the stream. A partial trailing cipher
// block is dropped before decryption. Prefix CBC decryption is
// unaffected by whatever follows, so the recovered frame bytes are
// exact whenever the candidate prefix is.
func Decode(raw, key []byte) ([]byte, error) {
	if len(raw) < IVSize {
		return nil, ErrInvalidFrame
	}

	iv := raw[:IVSize]
	ciphertext := raw[IVSize:]
	ciphertext = ciphertext[:len(ciphertext)-len(ciphertext)%aes.BlockSize]
	if len(ciphertext) == 0 {
		return nil, ErrInvalidFrame
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, ErrInvalidFrame
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	length := binary.BigEndian.Uint32(plaintext[0:4])
	checksum := binary.BigEndian.Uint32(plaintext[4:8])
	if uint64(HeaderSize)+uint64(length) > uint64(len(plaintext)) {
		return nil, ErrInvalidFrame
	}

	frameLen := HeaderSize + int(length)
	padLen := aes.BlockSize - frameLen%aes.BlockSize
	if frameLen+padLen > len(plaintext) {
		return nil, ErrInvalidFrame
	}
	for _, b := range plaintext[frameLen : frameLen+padLen] {
		if int(b) != padLen {
			return nil, ErrInvalidFrame
		}
	}

	payload := plaintext[HeaderSize:frameLen]
	if crc32.ChecksumIEEE(payload) != checksum {
		return nil, ErrInvalidFrame
	}

	return payload, nil
}

// pad applies PKCS#7 padding. A full block of padding is added when the
// input is already block-aligned.
func pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+n)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}
