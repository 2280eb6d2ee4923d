package qoi

// Decode parses a QOI byte stream and returns its header and a row-major
// pixel buffer. requestedChannels selects the output layout: 0 means
// "follow the header", 3 drops alpha from the emitted buffer (the context
// still tracks it internally), and 4 keeps it.
func Decode(data []byte, requestedChannels int) (Header, []byte, error) {
	if len(data) == 0 {
		return Header{}, nil, ErrEmptyInput
	}
	if requestedChannels != 0 && requestedChannels != 3 && requestedChannels != 4 {
		return Header{}, nil, ErrInvalidRequestedChannels
	}

	h, err := readHeader(data)
	if err != nil {
		return Header{}, nil, err
	}

	outChannels := requestedChannels
	if outChannels == 0 {
		outChannels = int(h.Channels)
	}

	total := h.pixelCount()
	dataEnd := len(data) - len(padding)

	out := make([]byte, total*outChannels)
	ctx := newContext()
	pos := headerSize

	for i := 0; i < total; i++ {
		var px pixel
		switch {
		case ctx.run > 0:
			px = ctx.prev
			ctx.run--

		default:
			if pos >= dataEnd {
				return Header{}, nil, ErrTruncatedStream
			}
			b := data[pos]
			pos++

			updateTable := true
			switch {
			case b == opRGB:
				if pos+3 > dataEnd {
					return Header{}, nil, ErrTruncatedStream
				}
				px = pixel{R: data[pos], G: data[pos+1], B: data[pos+2], A: ctx.prev.A}
				pos += 3

			case b == opRGBA:
				if pos+4 > dataEnd {
					return Header{}, nil, ErrTruncatedStream
				}
				px = pixel{R: data[pos], G: data[pos+1], B: data[pos+2], A: data[pos+3]}
				pos += 4

			case b&tagMask == opIndex:
				px = ctx.index[b&0x3f]
				updateTable = false

			case b&tagMask == opDiff:
				px = ctx.prev
				px.R += ((b >> 4) & 0x3) - 2
				px.G += ((b >> 2) & 0x3) - 2
				px.B += (b & 0x3) - 2

			case b&tagMask == opLuma:
				if pos+1 > dataEnd {
					return Header{}, nil, ErrTruncatedStream
				}
				b2 := data[pos]
				pos++
				dg := int(b&0x3f) - 32
				drg := int((b2>>4)&0xf) - 8
				dbg := int(b2&0xf) - 8
				px = pixel{
					R: ctx.prev.R + uint8(dg+drg),
					G: ctx.prev.G + uint8(dg),
					B: ctx.prev.B + uint8(dg+dbg),
					A: ctx.prev.A,
				}

			default: // opRun: top two bits are 11, not a full-byte RGB/RGBA tag
				ctx.run = int(b & 0x3f)
				px = ctx.prev
				updateTable = false
			}

			if updateTable {
				ctx.index[px.hash()] = px
			}
		}

		off := i * outChannels
		out[off] = px.R
		out[off+1] = px.G
		out[off+2] = px.B
		if outChannels == 4 {
			out[off+3] = px.A
		}

		ctx.prev = px
	}

	return h, out, nil
}
