package mnemonic

import "fmt"

// bitsPerWord is the width of one word index (2^11 = 2048 words).
const bitsPerWord = 11

// bitWriter accumulates bits most-significant-bit first into a packed buffer.
// A bitWriter is owned by a single goroutine.
type bitWriter struct {
	buf   []byte
	nbits int
}

// Write appends the first bitCount bits of data.
func (w *bitWriter) Write(data []byte, bitCount int) {
	if bitCount < 0 || bitCount > len(data)*8 {
		panic(fmt.Sprintf("mnemonic: write %d bits from %d bytes", bitCount, len(data)))
	}
	for i := 0; i < bitCount; i++ {
		w.writeBit(data[i/8]&(0x80>>uint(i%8)) != 0)
	}
}

// WriteBits appends the first bitCount bits of a flat bit sequence.
func (w *bitWriter) WriteBits(bits []bool, bitCount int) {
	if bitCount < 0 || bitCount > len(bits) {
		panic(fmt.Sprintf("mnemonic: write %d bits from %d-bit sequence", bitCount, len(bits)))
	}
	for _, b := range bits[:bitCount] {
		w.writeBit(b)
	}
}

func (w *bitWriter) writeBit(set bool) {
	if w.nbits%8 == 0 {
		w.buf = append(w.buf, 0)
	}
	if set {
		w.buf[w.nbits/8] |= 0x80 >> uint(w.nbits%8)
	}
	w.nbits++
}

// Len returns the number of bits written so far.
func (w *bitWriter) Len() int {
	return w.nbits
}

// Bytes returns the buffer packed into bytes. A trailing partial byte is
// zero-padded on the right.
func (w *bitWriter) Bytes() []byte {
	out := make([]byte, len(w.buf))
	copy(out, w.buf)
	return out
}

// Indices reinterprets the buffer as 11-bit unsigned integers, MSB first.
func (w *bitWriter) Indices() ([]int, error) {
	if w.nbits%bitsPerWord != 0 {
		return nil, fmt.Errorf("bit count %d is not a multiple of %d", w.nbits, bitsPerWord)
	}
	out := make([]int, w.nbits/bitsPerWord)
	for i := range out {
		v := 0
		for j := 0; j < bitsPerWord; j++ {
			pos := i*bitsPerWord + j
			v <<= 1
			if w.buf[pos/8]&(0x80>>uint(pos%8)) != 0 {
				v |= 1
			}
		}
		out[i] = v
	}
	return out, nil
}

// indicesToBits expands each index into 11 bits, MSB first.
func indicesToBits(indices []int) []bool {
	bits := make([]bool, 0, len(indices)*bitsPerWord)
	for _, idx := range indices {
		for j := bitsPerWord - 1; j >= 0; j-- {
			bits = append(bits, idx&(1<<uint(j)) != 0)
		}
	}
	return bits
}
