package prophecy

import (
	"math"
	"unicode/utf16"
)

// The seed hash and stream below are frozen. Shared seed URLs from the
// original site must keep producing the same prophecy, so every constant,
// shift and draw stays exactly as deployed.

// seedHash mixes the seed string into four 32-bit lanes. Input is consumed
// as UTF-16 code units so non-ASCII seeds hash identically to the web client.
func seedHash(seed string) [4]uint32 {
	h1 := uint32(1779033703)
	h2 := uint32(3144134277)
	h3 := uint32(1013904242)
	h4 := uint32(2773480762)
	for _, u := range utf16.Encode([]rune(seed)) {
		k := uint32(u)
		h1 = h2 ^ ((h1 ^ k) * 597399067)
		h2 = h3 ^ ((h2 ^ k) * 2869860233)
		h3 = h4 ^ ((h3 ^ k) * 951274213)
		h4 = h1 ^ ((h4 ^ k) * 2716044179)
	}
	h1 = (h3 ^ (h1 >> 18)) * 597399067
	h2 = (h4 ^ (h2 >> 22)) * 2869860233
	h3 = (h1 ^ (h3 >> 17)) * 951274213
	h4 = (h2 ^ (h4 >> 19)) * 2716044179
	return [4]uint32{h1 ^ h2 ^ h3 ^ h4, h1, h2, h3}
}

// stream is a counter-based generator yielding floats in [0, 1).
type stream struct {
	state uint32
}

func newStream(seed string) *stream {
	return &stream{state: seedHash(seed)[0]}
}

func (s *stream) next() float64 {
	s.state += 0x6D2B79F5
	t := s.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// intBetween draws a uniform integer in [min, max], inclusive.
func (s *stream) intBetween(min, max int) int {
	return int(math.Floor(s.next()*float64(max-min+1))) + min
}

// pickIndex draws a uniform index in [0, n).
func (s *stream) pickIndex(n int) int {
	return int(math.Floor(s.next() * float64(n)))
}
