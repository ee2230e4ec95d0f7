package gx2tile

import "fmt"

// SwizzleError is the closed set of failures this package returns.
// All three are recoverable: the caller fixes the input and retries.
type SwizzleError struct {
	kind swizzleErrorKind

	// NotEnoughData
	ExpectedSize, ActualSize int

	// InvalidSurface
	Width, Height, Depth uint32
	Format               SurfaceFormat
	MipmapCount          uint32

	// InvalidMipmapOffsets
	Offsets              [13]uint32
	ImageLen, MipmapLen  int
}

type swizzleErrorKind int

const (
	kindNotEnoughData swizzleErrorKind = iota
	kindInvalidSurface
	kindInvalidMipmapOffsets
)

func errNotEnoughData(expected, actual int) *SwizzleError {
	return &SwizzleError{kind: kindNotEnoughData, ExpectedSize: expected, ActualSize: actual}
}

func errInvalidSurface(w, h, d uint32, format SurfaceFormat, mipmapCount uint32) *SwizzleError {
	return &SwizzleError{kind: kindInvalidSurface, Width: w, Height: h, Depth: d, Format: format, MipmapCount: mipmapCount}
}

func errInvalidMipmapOffsets(offsets [13]uint32, imageLen, mipmapLen int) *SwizzleError {
	return &SwizzleError{kind: kindInvalidMipmapOffsets, Offsets: offsets, ImageLen: imageLen, MipmapLen: mipmapLen}
}

func (e *SwizzleError) Error() string {
	switch e.kind {
	case kindNotEnoughData:
		return fmt.Sprintf("not enough data: expected %d bytes but found %d bytes", e.ExpectedSize, e.ActualSize)
	case kindInvalidSurface:
		return fmt.Sprintf("invalid surface %dx%dx%d format %d with %d mipmaps", e.Width, e.Height, e.Depth, e.Format, e.MipmapCount)
	case kindInvalidMipmapOffsets:
		return fmt.Sprintf("invalid mipmap offsets %v for image len %d, mipmap len %d", e.Offsets, e.ImageLen, e.MipmapLen)
	default:
		return "swizzle error"
	}
}

// IsNotEnoughData reports whether err is a NotEnoughData SwizzleError.
func IsNotEnoughData(err error) bool {
	se, ok := err.(*SwizzleError)
	return ok && se.kind == kindNotEnoughData
}

// IsInvalidSurface reports whether err is an InvalidSurface SwizzleError.
func IsInvalidSurface(err error) bool {
	se, ok := err.(*SwizzleError)
	return ok && se.kind == kindInvalidSurface
}

// IsInvalidMipmapOffsets reports whether err is an
// InvalidMipmapOffsets SwizzleError.
func IsInvalidMipmapOffsets(err error) bool {
	se, ok := err.(*SwizzleError)
	return ok && se.kind == kindInvalidMipmapOffsets
}
