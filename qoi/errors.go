package qoi

import "errors"

// Errors returned by Encode and Decode. All are structural and
// deterministic given the input; there is no retry policy for any of them.
var (
	// ErrEmptyInput is returned for a zero-length pixel buffer or a
	// zero-length encoded stream.
	ErrEmptyInput = errors.New("qoi: empty input")

	// ErrInvalidDimensions indicates a zero width or height.
	ErrInvalidDimensions = errors.New("qoi: width and height must be at least 1")

	// ErrInvalidChannels indicates a channel count outside {3, 4}.
	ErrInvalidChannels = errors.New("qoi: channels must be 3 or 4")

	// ErrInvalidColorspace indicates a colorspace byte outside {0, 1}.
	ErrInvalidColorspace = errors.New("qoi: colorspace must be 0 or 1")

	// ErrImageTooLarge indicates height >= 400,000,000/width (integer
	// division). This keeps width*height under the 400,000,000 pixel
	// ceiling; because of the rounded-down quotient, a few sizes just below
	// the ceiling (e.g. 3x133,333,333) are rejected as well.
	ErrImageTooLarge = errors.New("qoi: image exceeds the maximum pixel count")

	// ErrPixelCountMismatch indicates the supplied pixel buffer length does
	// not equal width*height*channels.
	ErrPixelCountMismatch = errors.New("qoi: pixel buffer length does not match header")

	// ErrInvalidRequestedChannels indicates a requested decode channel
	// count outside {0, 3, 4}.
	ErrInvalidRequestedChannels = errors.New("qoi: requested channels must be 0, 3, or 4")

	// ErrBadMagic indicates the stream does not start with "qoif".
	ErrBadMagic = errors.New("qoi: bad magic bytes")

	// ErrTruncatedStream indicates the decoder would need to read past the
	// 8-byte padding boundary to satisfy the current opcode, or fewer than
	// width*height pixels were produced before the stream was exhausted.
	ErrTruncatedStream = errors.New("qoi: truncated stream")
)
