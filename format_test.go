package gx2tile

import "testing"

func TestAaModeFromRepr(t *testing.T) {
	for _, v := range []AaMode{X1, X2, X4, X8} {
		got, ok := AaModeFromRepr(uint32(v))
		if !ok || got != v {
			t.Errorf("AaModeFromRepr(%d) = (%v, %v), want (%v, true)", v, got, ok, v)
		}
	}
	if _, ok := AaModeFromRepr(0xff); ok {
		t.Errorf("AaModeFromRepr(0xff) = true, want false")
	}
}

func TestAaModeNumSamples(t *testing.T) {
	cases := map[AaMode]uint32{X1: 1, X2: 2, X4: 4, X8: 8}
	for mode, want := range cases {
		if got := mode.NumSamples(); got != want {
			t.Errorf("%v.NumSamples() = %d, want %d", mode, got, want)
		}
	}
}

func TestSurfaceFormatFromRepr(t *testing.T) {
	for _, f := range []SurfaceFormat{R8G8B8A8Unorm, BC1Unorm, BC2Unorm, BC3Unorm, BC4Unorm, BC5Unorm} {
		got, ok := SurfaceFormatFromRepr(uint32(f))
		if !ok || got != f {
			t.Errorf("SurfaceFormatFromRepr(%d) = (%v, %v), want (%v, true)", f, got, ok, f)
		}
	}
	if _, ok := SurfaceFormatFromRepr(0xff); ok {
		t.Errorf("SurfaceFormatFromRepr(0xff) = true, want false")
	}
}

func TestSurfaceFormatBytesPerPixel(t *testing.T) {
	cases := map[SurfaceFormat]uint32{
		R8G8B8A8Unorm: 4,
		BC1Unorm:      8,
		BC2Unorm:      16,
		BC3Unorm:      16,
		BC4Unorm:      8,
		BC5Unorm:      16,
	}
	for format, want := range cases {
		if got := format.BytesPerPixel(); got != want {
			t.Errorf("%v.BytesPerPixel() = %d, want %d", format, got, want)
		}
	}
}

func TestSurfaceFormatBlockDim(t *testing.T) {
	if w, h := R8G8B8A8Unorm.BlockDim(); w != 1 || h != 1 {
		t.Errorf("R8G8B8A8Unorm.BlockDim() = (%d,%d), want (1,1)", w, h)
	}
	if w, h := BC1Unorm.BlockDim(); w != 4 || h != 4 {
		t.Errorf("BC1Unorm.BlockDim() = (%d,%d), want (4,4)", w, h)
	}
}

func TestSurfaceDimFromRepr(t *testing.T) {
	for _, d := range []SurfaceDim{Dim1D, Dim2D, Dim3D, DimCube} {
		got, ok := SurfaceDimFromRepr(uint32(d))
		if !ok || got != d {
			t.Errorf("SurfaceDimFromRepr(%d) = (%v, %v), want (%v, true)", d, got, ok, d)
		}
	}
	if _, ok := SurfaceDimFromRepr(0xff); ok {
		t.Errorf("SurfaceDimFromRepr(0xff) = true, want false")
	}
}
