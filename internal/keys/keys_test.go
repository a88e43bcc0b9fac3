package keys

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestDerive_GoldenVectors(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantKey  string
		wantSeed uint32
	}{
		{
			name:     "reference password",
			password: "secure-pass-123",
			wantKey:  "045057328945a0c267e509fef503d236ac54d6a1f2447960900ab7fee65105c9",
			wantSeed: 0xc9bb7639,
		},
		{
			name:     "empty password",
			password: "",
			wantKey:  "1232ce5ccdb35b782777083b3dfc0a6f0a1f484fee58a831f12b1970a0e7e160",
			wantSeed: 0x98fc1c14,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Derive(tt.password)

			if got := hex.EncodeToString(m.EncryptionKey); got != tt.wantKey {
				t.Errorf("EncryptionKey = %s, want %s", got, tt.wantKey)
			}
			if m.PermutationSeed != tt.wantSeed {
				t.Errorf("PermutationSeed = %#010x, want %#010x", m.PermutationSeed, tt.wantSeed)
			}
		})
	}
}

func TestDerive_Deterministic(t *testing.T) {
	a := Derive("hunter2")
	b := Derive("hunter2")

	if !bytes.Equal(a.EncryptionKey, b.EncryptionKey) {
		t.Error("same password derived different encryption keys")
	}
	if a.PermutationSeed != b.PermutationSeed {
		t.Error("same password derived different permutation seeds")
	}
}

func TestDerive_DistinctPasswords(t *testing.T) {
	a := Derive("secure-pass-123")
	b := Derive("wrong")

	if bytes.Equal(a.EncryptionKey, b.EncryptionKey) {
		t.Error("distinct passwords derived the same encryption key")
	}
	if a.PermutationSeed == b.PermutationSeed {
		t.Error("distinct passwords derived the same permutation seed")
	}
}

func TestDerive_KeySize(t *testing.T) {
	m := Derive("any")
	if len(m.EncryptionKey) != EncryptionKeySize {
		t.Errorf("key size = %d, want %d", len(m.EncryptionKey), EncryptionKeySize)
	}
}
