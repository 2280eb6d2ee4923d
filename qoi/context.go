package qoi

// context is the running state shared by the encoder and decoder state
// machines: the 64-slot recently-seen table, the previous pixel, and the
// current run length. It is created fresh per Encode/Decode call and
// mutated in place, one pixel at a time; nothing about it is safe to share
// across concurrent calls.
type context struct {
	index [64]pixel
	prev  pixel
	run   int
}

func newContext() *context {
	return &context{prev: startPixel}
}
