package qoi

// Opcode tags. RGB and RGBA are full-byte tags and must be tested before
// the two-bit tags below, since 0xfe and 0xff both have their top two bits
// set to 11 and would otherwise be mistaken for RUN.
const (
	opRGB  byte = 0b1111_1110
	opRGBA byte = 0b1111_1111

	opIndex byte = 0b00_000000
	opDiff  byte = 0b01_000000
	opLuma  byte = 0b10_000000
	opRun   byte = 0b11_000000

	tagMask byte = 0b11_000000
)
