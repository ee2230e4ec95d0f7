package gx2tile

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestDeswizzleMipmapEmptyCall(t *testing.T) {
	out, err := DeswizzleMipmap(0, 0, 0, nil, 853504, 256, D2TiledThin1, 8, X1, DriverOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("output = %d bytes, want empty", len(out))
	}
}

func TestDeswizzleMipmapZeroBppIsNoop(t *testing.T) {
	out, err := DeswizzleMipmap(16, 16, 1, []byte{1, 2, 3}, 0, 16, D2TiledThin1, 0, X1, DriverOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("output = %d bytes, want empty for bpp=0", len(out))
	}
}

func TestDeswizzleMipmapNotEnoughData(t *testing.T) {
	_, err := DeswizzleMipmap(32, 32, 1, []byte{1, 2, 3}, 853504, 32, D2TiledThin1, 4, X1, DriverOptions{})
	if err == nil || !IsNotEnoughData(err) {
		t.Fatalf("err = %v, want NotEnoughData", err)
	}
}

func TestRoundTripLinear(t *testing.T) {
	width, height, depth := uint32(16), uint32(16), uint32(1)
	bpp := uint32(4)

	src := make([]byte, int(width*height*depth*bpp))
	rand.New(rand.NewSource(1)).Read(src)

	tiled, err := SwizzleMipmap(width, height, depth, src, 0, width, LinearAligned, bpp, X1, DriverOptions{})
	if err != nil {
		t.Fatalf("swizzle: %v", err)
	}

	back, err := DeswizzleMipmap(width, height, depth, tiled, 0, width, LinearAligned, bpp, X1, DriverOptions{})
	if err != nil {
		t.Fatalf("deswizzle: %v", err)
	}

	if !bytes.Equal(src, back) {
		t.Fatalf("round trip mismatch:\nsrc  = %v\nback = %v", src, back)
	}
}

func TestRoundTripMicroTiled(t *testing.T) {
	width, height, depth := uint32(32), uint32(32), uint32(1)
	bpp := uint32(4)

	src := make([]byte, int(width*height*depth*bpp))
	rand.New(rand.NewSource(2)).Read(src)

	tiled, err := SwizzleMipmap(width, height, depth, src, 853504, width, D1TiledThin1, bpp, X1, DriverOptions{})
	if err != nil {
		t.Fatalf("swizzle: %v", err)
	}

	back, err := DeswizzleMipmap(width, height, depth, tiled, 853504, width, D1TiledThin1, bpp, X1, DriverOptions{})
	if err != nil {
		t.Fatalf("deswizzle: %v", err)
	}

	if !bytes.Equal(src, back) {
		t.Fatalf("round trip mismatch for micro-tiled surface")
	}
}

func TestRoundTripMacroTiled(t *testing.T) {
	width, height, depth := uint32(64), uint32(64), uint32(1)
	bpp := uint32(4)

	src := make([]byte, int(width*height*depth*bpp))
	rand.New(rand.NewSource(3)).Read(src)

	tiled, err := SwizzleMipmap(width, height, depth, src, 853504, width, D2TiledThin1, bpp, X1, DriverOptions{})
	if err != nil {
		t.Fatalf("swizzle: %v", err)
	}

	back, err := DeswizzleMipmap(width, height, depth, tiled, 853504, width, D2TiledThin1, bpp, X1, DriverOptions{})
	if err != nil {
		t.Fatalf("deswizzle: %v", err)
	}

	if !bytes.Equal(src, back) {
		t.Fatalf("round trip mismatch for macro-tiled surface")
	}
}

func TestDeterminism(t *testing.T) {
	width, height, depth := uint32(32), uint32(32), uint32(1)
	bpp := uint32(4)

	src := make([]byte, int(width*height*depth*bpp))
	rand.New(rand.NewSource(4)).Read(src)

	a, err := SwizzleMipmap(width, height, depth, src, 853504, width, D2TiledThin1, bpp, X1, DriverOptions{})
	if err != nil {
		t.Fatalf("swizzle: %v", err)
	}
	b, err := SwizzleMipmap(width, height, depth, src, 853504, width, D2TiledThin1, bpp, X1, DriverOptions{})
	if err != nil {
		t.Fatalf("swizzle: %v", err)
	}

	if !bytes.Equal(a, b) {
		t.Fatalf("two identical calls produced different output")
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	width, height, depth := uint32(32), uint32(32), uint32(4)
	bpp := uint32(4)

	src := make([]byte, int(width*height*depth*bpp))
	rand.New(rand.NewSource(5)).Read(src)

	serial, err := SwizzleMipmap(width, height, depth, src, 853504, width, D2TiledThick, bpp, X1, DriverOptions{Parallel: false})
	if err != nil {
		t.Fatalf("serial swizzle: %v", err)
	}
	parallel, err := SwizzleMipmap(width, height, depth, src, 853504, width, D2TiledThick, bpp, X1, DriverOptions{Parallel: true})
	if err != nil {
		t.Fatalf("parallel swizzle: %v", err)
	}

	if !bytes.Equal(serial, parallel) {
		t.Fatalf("parallel driver produced different output than serial")
	}
}

func TestOutputSizeMatchesLinearVolume(t *testing.T) {
	width, height, depth := uint32(16), uint32(16), uint32(1)
	bpp := uint32(4)

	src := make([]byte, int(width*height*depth*bpp))
	out, err := DeswizzleMipmap(width, height, depth, src, 853504, width, D1TiledThin1, bpp, X1, DriverOptions{})
	if err != nil {
		t.Fatalf("deswizzle: %v", err)
	}
	want := int(width * height * depth * bpp)
	if len(out) != want {
		t.Fatalf("output size = %d, want %d", len(out), want)
	}
}
