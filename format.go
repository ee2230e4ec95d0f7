// Package gx2tile converts Wii U GPU texture surfaces between their
// native tiled (swizzled) memory layout and the linear, row-major
// layout CPU-side image tools expect.
package gx2tile

import "github.com/gx2tile/gx2tile/addrlib"

// TileMode re-exports addrlib's tiling-scheme enumeration; callers of
// this package only ever need it by name.
type TileMode = addrlib.TileMode

const (
	LinearGeneral = addrlib.LinearGeneral
	LinearAligned = addrlib.LinearAligned
	D1TiledThin1  = addrlib.D1TiledThin1
	D1TiledThick  = addrlib.D1TiledThick
	D2TiledThin1  = addrlib.D2TiledThin1
	D2TiledThin2  = addrlib.D2TiledThin2
	D2TiledThin4  = addrlib.D2TiledThin4
	D2TiledThick  = addrlib.D2TiledThick
	B2TiledThin1  = addrlib.B2TiledThin1
	B2TiledThin2  = addrlib.B2TiledThin2
	B2TiledThin4  = addrlib.B2TiledThin4
	B2TiledThick  = addrlib.B2TiledThick
	D3TiledThin1  = addrlib.D3TiledThin1
	D3TiledThick  = addrlib.D3TiledThick
	B3TiledThin1  = addrlib.B3TiledThin1
	B3TiledThick  = addrlib.B3TiledThick
)

// AaMode is the number of samples per pixel, expressed as a power of
// two exponent.
type AaMode uint32

const (
	X1 AaMode = 0
	X2 AaMode = 1
	X4 AaMode = 2
	X8 AaMode = 3
)

// NumSamples returns 1<<aa, the actual sample count.
func (a AaMode) NumSamples() uint32 {
	return 1 << uint32(a)
}

// AaModeFromRepr returns the AaMode for v, or false if v is not one of
// the four recognized sample counts.
func AaModeFromRepr(v uint32) (AaMode, bool) {
	if v > uint32(X8) {
		return 0, false
	}
	return AaMode(v), true
}

// SurfaceFormat identifies a pixel or block-compressed element layout.
// The variant set matches the reference fixtures this module was
// built against; it is not the full GX2 format table.
type SurfaceFormat uint32

const (
	R8G8B8A8Unorm SurfaceFormat = 26
	BC1Unorm      SurfaceFormat = 49
	BC2Unorm      SurfaceFormat = 50
	BC3Unorm      SurfaceFormat = 51
	BC4Unorm      SurfaceFormat = 52
	BC5Unorm      SurfaceFormat = 53
)

// BytesPerPixel returns the size in bytes of one addressable element:
// one texel for uncompressed formats, one block for BCn formats.
func (f SurfaceFormat) BytesPerPixel() uint32 {
	switch f {
	case R8G8B8A8Unorm:
		return 4
	case BC1Unorm, BC4Unorm:
		return 8
	case BC2Unorm, BC3Unorm, BC5Unorm:
		return 16
	default:
		return 0
	}
}

// BlockDim returns the texel dimensions of one addressable element:
// (4, 4) for BCn formats, (1, 1) for uncompressed ones.
func (f SurfaceFormat) BlockDim() (width, height uint32) {
	switch f {
	case BC1Unorm, BC2Unorm, BC3Unorm, BC4Unorm, BC5Unorm:
		return 4, 4
	default:
		return 1, 1
	}
}

// SurfaceFormatFromRepr returns the SurfaceFormat for v, or false if v
// is not one of the recognized variants.
func SurfaceFormatFromRepr(v uint32) (SurfaceFormat, bool) {
	switch SurfaceFormat(v) {
	case R8G8B8A8Unorm, BC1Unorm, BC2Unorm, BC3Unorm, BC4Unorm, BC5Unorm:
		return SurfaceFormat(v), true
	default:
		return 0, false
	}
}

// SurfaceDim is the logical shape of a surface: a plain 1D/2D/3D
// texture, or a six-layer Cube that triggers the mip-major to
// layer-major repack in Surface.Deswizzle.
type SurfaceDim uint32

const (
	Dim1D   SurfaceDim = 0
	Dim2D   SurfaceDim = 1
	Dim3D   SurfaceDim = 2
	DimCube SurfaceDim = 3
)

// CubeLayers is the fixed number of layers a Cube-dimensioned surface
// has.
const CubeLayers = 6

// SurfaceDimFromRepr returns the SurfaceDim for v, or false if v is
// not one of the four recognized variants.
func SurfaceDimFromRepr(v uint32) (SurfaceDim, bool) {
	if v > uint32(DimCube) {
		return 0, false
	}
	return SurfaceDim(v), true
}
