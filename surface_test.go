package gx2tile

import (
	"bytes"
	"testing"
)

func TestSurfaceDeswizzleScenarioBC1(t *testing.T) {
	// BC1 1024x1024, D2TiledThin1, pitch=256, swizzle=853504, bpp_bytes=8.
	// Block dims collapse 1024x1024 texels to 256x256 blocks.
	d := SurfaceDescriptor{
		Width: 1024, Height: 1024, DepthOrArrayLayers: 1,
		MipmapCount: 1,
		Format:      BC1Unorm,
		Dim:         Dim2D,
		TileMode:    D2TiledThin1,
		Swizzle:     853504,
		Pitch:       256,
	}
	d.ImageData = make([]byte, 2*1024*1024) // generous upper bound on tiled size

	s := Surface{Descriptor: d}
	out, err := s.Deswizzle()
	if err != nil {
		t.Fatalf("Deswizzle: %v", err)
	}
	if want := 256 * 256 * 1 * 8; len(out) != want {
		t.Fatalf("output size = %d, want %d", len(out), want)
	}
}

func TestSurfaceDeswizzleScenarioRGBA8Thick(t *testing.T) {
	// RGBA8 16x16x16, D2TiledThick, pitch=32, swizzle=852224, bpp_bytes=4, aa=X1.
	d := SurfaceDescriptor{
		Width: 16, Height: 16, DepthOrArrayLayers: 16,
		MipmapCount: 1,
		Format:      R8G8B8A8Unorm,
		Dim:         Dim3D,
		TileMode:    D2TiledThick,
		Swizzle:     852224,
		Pitch:       32,
		Aa:          X1,
	}
	d.ImageData = make([]byte, 512*1024) // generous upper bound

	s := Surface{Descriptor: d}
	out, err := s.Deswizzle()
	if err != nil {
		t.Fatalf("Deswizzle: %v", err)
	}
	if want := 16 * 16 * 16 * 4; len(out) != want {
		t.Fatalf("output size = %d, want %d", len(out), want)
	}
}

func TestSurfaceDeswizzleMultiMipDegrades(t *testing.T) {
	// BC1 256x256 with 8 mips, D2TiledThin1: the deepest mips no longer
	// fill a macro tile and must degrade without error. Offsets are the
	// exact values spec.md §8 scenario 3 names; no reference
	// `_deswizzled.bin` fixture exists in the retrieved corpus to check
	// the output against byte-for-byte, but the offsets themselves need
	// no fixture, so the test is pinned to the named scenario rather
	// than a substitute.
	d := SurfaceDescriptor{
		Width: 256, Height: 256, DepthOrArrayLayers: 1,
		MipmapCount: 8,
		Format:      BC1Unorm,
		Dim:         Dim2D,
		TileMode:    D2TiledThin1,
		Swizzle:     132352,
		Pitch:       64,
	}
	d.MipmapOffsets = [13]uint32{32768, 9472, 11520, 12032, 12544, 13056, 13568, 0, 0, 0, 0, 0, 0}
	d.ImageData = make([]byte, 65536)
	d.MipmapData = make([]byte, 32768)

	s := Surface{Descriptor: d}
	out, err := s.Deswizzle()
	if err != nil {
		t.Fatalf("Deswizzle: %v", err)
	}
	if len(out) == 0 {
		t.Fatalf("output is empty, want multi-mip data")
	}
}

func TestCubeRepackInvariance(t *testing.T) {
	const mips = 2
	const blockWidth, blockHeight, bpp = uint32(1), uint32(1), uint32(4)
	width, height := uint32(4), uint32(4)

	d := &SurfaceDescriptor{Width: width, Height: height, Dim: DimCube}

	// Build distinguishable mip-major input: mipData[mip] holds
	// CubeLayers concatenated layers, each byte tagged with its
	// (mip, layer) identity.
	mipData := make([][]byte, mips)
	for mip := 0; mip < mips; mip++ {
		w := width >> uint32(mip)
		h := height >> uint32(mip)
		size := int(w) * int(h) * int(bpp)
		level := make([]byte, size*CubeLayers)
		for layer := 0; layer < CubeLayers; layer++ {
			for i := 0; i < size; i++ {
				level[layer*size+i] = byte(mip*16 + layer)
			}
		}
		mipData[mip] = level
	}

	layerMajor, err := repackCubeLayerMajor(d, mipData, blockWidth, blockHeight, bpp)
	if err != nil {
		t.Fatalf("repackCubeLayerMajor: %v", err)
	}

	// Invert: re-slice layerMajor back into per-mip, per-layer chunks
	// using the same size table repackCubeLayerMajor derived, and
	// confirm it reproduces the original mip-major layout exactly.
	sizes := make([]int, mips)
	mipOffsets := make([]int, mips)
	perLayerTotal := 0
	for mip := 0; mip < mips; mip++ {
		w := width >> uint32(mip)
		h := height >> uint32(mip)
		size := int(w) * int(h) * int(bpp)
		sizes[mip] = size
		mipOffsets[mip] = perLayerTotal
		perLayerTotal += size
	}

	reconstructed := make([][]byte, mips)
	for mip := 0; mip < mips; mip++ {
		size := sizes[mip]
		level := make([]byte, 0, size*CubeLayers)
		for layer := 0; layer < CubeLayers; layer++ {
			start := layer*perLayerTotal + mipOffsets[mip]
			level = append(level, layerMajor[start:start+size]...)
		}
		reconstructed[mip] = level
	}

	for mip := 0; mip < mips; mip++ {
		if !bytes.Equal(mipData[mip], reconstructed[mip]) {
			t.Fatalf("mip %d: repack is not invertible", mip)
		}
	}
}

func TestSurfaceDeswizzleRejectsInvalidDescriptor(t *testing.T) {
	d := SurfaceDescriptor{
		Width: 65535, Height: 65535, DepthOrArrayLayers: 65535,
		Format: BC1Unorm, MipmapCount: 1,
	}
	s := Surface{Descriptor: d}
	_, err := s.Deswizzle()
	if err == nil || !IsInvalidSurface(err) {
		t.Fatalf("Deswizzle err = %v, want InvalidSurface", err)
	}
}
