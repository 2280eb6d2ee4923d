package qoi

// pixel is a single RGBA sample. When the stream's channel count is 3, A is
// still carried here — it is simply never transmitted and starts at 255.
type pixel struct {
	R, G, B, A uint8
}

// hash implements hash(R,G,B,A) = 3R + 5G + 7B + 11A mod 64 from the index
// table addressing rule. The multiply-add is done in uint8 arithmetic,
// which wraps mod 256; since 256 is a multiple of 64 the result mod 64 is
// unaffected by that wrap.
func (p pixel) hash() uint8 {
	return (3*p.R + 5*p.G + 7*p.B + 11*p.A) % 64
}

var startPixel = pixel{R: 0, G: 0, B: 0, A: 255}
