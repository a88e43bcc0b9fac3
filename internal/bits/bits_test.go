package bits

import (
	"bytes"
	"testing"
)

func TestExpand_Layout(t *testing.T) {
	// 0xA0 = 1010 0000, each bit doubled, MSB first.
	got := Expand([]byte{0xa0})
	want := []byte{1, 1, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	if !bytes.Equal(got, want) {
		t.Errorf("Expand(0xa0) = %v, want %v", got, want)
	}
}

func TestExpand_Collapse_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"single byte", []byte{0x5c}},
		{"text", []byte("hello")},
		{"all ones", []byte{0xff, 0xff}},
		{"all zeros", []byte{0x00, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream := Expand(tt.data)
			if len(stream) != len(tt.data)*16 {
				t.Fatalf("stream length = %d, want %d", len(stream), len(tt.data)*16)
			}

			got := Pack(Collapse(stream), 0)
			if !bytes.Equal(got, tt.data) {
				t.Errorf("round trip = %x, want %x", got, tt.data)
			}
		})
	}
}

func TestCollapse_ORRule(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want []byte
	}{
		{"both zero", []byte{0, 0}, []byte{0}},
		{"first survives", []byte{1, 0}, []byte{1}},
		{"second survives", []byte{0, 1}, []byte{1}},
		{"both one", []byte{1, 1}, []byte{1}},
		{"trailing odd bit dropped", []byte{1, 1, 0}, []byte{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collapse(tt.raw); !bytes.Equal(got, tt.want) {
				t.Errorf("Collapse(%v) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCollapse_SingleBitCorruption(t *testing.T) {
	// Zeroing one bit of a written pair must not flip a decoded 1.
	stream := Expand([]byte{0xff})
	stream[6] = 0

	if got := Pack(Collapse(stream), 0); !bytes.Equal(got, []byte{0xff}) {
		t.Errorf("decode after single-bit corruption = %x, want ff", got)
	}
}

func TestPack_Offsets(t *testing.T) {
	// 0x3c shifted left by three bits with leading garbage.
	decoded := append([]byte{1, 0, 1}, 0, 0, 1, 1, 1, 1, 0, 0)

	if got := Pack(decoded, 3); !bytes.Equal(got, []byte{0x3c}) {
		t.Errorf("Pack(offset 3) = %x, want 3c", got)
	}

	// Incomplete trailing byte is dropped.
	if got := Pack(decoded, 4); len(got) != 0 {
		t.Errorf("Pack(offset 4) = %x, want empty", got)
	}

	if got := Pack(decoded, -1); got != nil {
		t.Errorf("Pack(negative offset) = %v, want nil", got)
	}
}
