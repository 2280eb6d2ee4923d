package qoi

// Encode transforms a row-major pixel buffer into a QOI byte stream. pixels
// must have length Width*Height*Channels; each pixel occupies Channels
// bytes (3 for RGB, 4 for RGBA), in R,G,B[,A] order.
//
// Encode is a pure function: identical inputs always produce identical
// output, and no partial output is returned on failure.
func Encode(h Header, pixels []byte) ([]byte, error) {
	if len(pixels) == 0 {
		return nil, ErrEmptyInput
	}
	if err := h.validate(); err != nil {
		return nil, err
	}

	channels := int(h.Channels)
	total := h.pixelCount()
	if len(pixels) != total*channels {
		return nil, ErrPixelCountMismatch
	}

	maxSize := total*(channels+1) + headerSize + len(padding)
	out := make([]byte, 0, maxSize)
	out = appendHeader(out, h)

	ctx := newContext()

	for i := 0; i < total; i++ {
		off := i * channels
		px := pixel{R: pixels[off], G: pixels[off+1], B: pixels[off+2], A: ctx.prev.A}
		if channels == 4 {
			px.A = pixels[off+3]
		}
		isLast := i == total-1

		// Run continuation: do not touch the index table while a run is open.
		if px == ctx.prev {
			ctx.run++
			if ctx.run == 62 || isLast {
				out = append(out, opRun|byte(ctx.run-1))
				ctx.run = 0
			}
			continue
		}

		// Run termination: flush any run left open by the previous pixel
		// before considering this one.
		if ctx.run > 0 {
			out = append(out, opRun|byte(ctx.run-1))
			ctx.run = 0
		}

		hash := px.hash()
		if ctx.index[hash] == px {
			out = append(out, opIndex|hash)
			ctx.prev = px
			continue
		}
		ctx.index[hash] = px

		if px.A == ctx.prev.A {
			dr := int(int8(px.R - ctx.prev.R))
			dg := int(int8(px.G - ctx.prev.G))
			db := int(int8(px.B - ctx.prev.B))

			switch {
			case dr >= -2 && dr <= 1 && dg >= -2 && dg <= 1 && db >= -2 && db <= 1:
				out = append(out, opDiff|byte(dr+2)<<4|byte(dg+2)<<2|byte(db+2))
			default:
				drg := dr - dg
				dbg := db - dg
				if dg >= -32 && dg <= 31 && drg >= -8 && drg <= 7 && dbg >= -8 && dbg <= 7 {
					out = append(out, opLuma|byte(dg+32), byte(drg+8)<<4|byte(dbg+8))
				} else {
					out = append(out, opRGB, px.R, px.G, px.B)
				}
			}
		} else {
			out = append(out, opRGBA, px.R, px.G, px.B, px.A)
		}

		ctx.prev = px
	}

	out = append(out, padding[:]...)
	return out, nil
}
