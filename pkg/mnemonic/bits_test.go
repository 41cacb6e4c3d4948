package mnemonic

import (
	"bytes"
	"slices"
	"testing"
)

func TestBitWriter_BytesPadsFinalByte(t *testing.T) {
	var w bitWriter
	w.Write([]byte{0xFF}, 3)
	w.Write([]byte{0x00}, 2)
	w.Write([]byte{0x80}, 1)

	if w.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", w.Len())
	}
	// 111 00 1 + two zero pad bits
	if got := w.Bytes(); !bytes.Equal(got, []byte{0xE4}) {
		t.Errorf("Bytes() = %x, want e4", got)
	}
}

func TestBitWriter_Indices(t *testing.T) {
	var w bitWriter
	// 0x00 0x20 0x04 -> 00000000 001|00000 000001|00 = 1, 1 then two spare bits
	w.Write([]byte{0x00, 0x20, 0x04}, 22)

	got, err := w.Indices()
	if err != nil {
		t.Fatalf("Indices() error: %v", err)
	}
	if want := []int{1, 1}; !slices.Equal(got, want) {
		t.Errorf("Indices() = %v, want %v", got, want)
	}
}

func TestBitWriter_IndicesMisaligned(t *testing.T) {
	var w bitWriter
	w.Write([]byte{0xAB, 0xCD}, 12)

	if _, err := w.Indices(); err == nil {
		t.Error("Indices() should fail for 12 bits")
	}
}

func TestBitWriter_WriteBits(t *testing.T) {
	var w bitWriter
	w.WriteBits([]bool{true, false, true, true, false}, 4)

	if got := w.Bytes(); !bytes.Equal(got, []byte{0xB0}) {
		t.Errorf("Bytes() = %x, want b0", got)
	}
}

func TestBitWriter_WriteTooManyBitsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Write() should panic when bitCount exceeds input")
		}
	}()
	var w bitWriter
	w.Write([]byte{0x01}, 9)
}

func TestIndicesToBits_RoundTrip(t *testing.T) {
	indices := []int{0, 2047, 1024, 3, 1337, 42}
	bits := indicesToBits(indices)
	if len(bits) != len(indices)*bitsPerWord {
		t.Fatalf("bit count = %d, want %d", len(bits), len(indices)*bitsPerWord)
	}

	var w bitWriter
	w.WriteBits(bits, len(bits))
	got, err := w.Indices()
	if err != nil {
		t.Fatalf("Indices() error: %v", err)
	}
	if !slices.Equal(got, indices) {
		t.Errorf("round trip = %v, want %v", got, indices)
	}
}
