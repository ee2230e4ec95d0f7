package addrlib

import "testing"

// At the origin every coordinate bit is zero, so every tile type and
// bpp keying must produce index 0 regardless of which bits get
// permuted where.
func TestPixelIndexWithinMicroTileOrigin(t *testing.T) {
	bpps := []uint32{8, 16, 32, 64, 128}
	types := []TileType{Displayable, NonDisplayable, ThickTiling}

	for _, tt := range types {
		for _, bpp := range bpps {
			if got := pixelIndexWithinMicroTile(0, 0, 0, bpp, D1TiledThin1, tt); got != 0 {
				t.Errorf("pixelIndexWithinMicroTile(0,0,0,%d,%v) = %d, want 0", bpp, tt, got)
			}
		}
	}
}

// Displayable permutations must be bijective on the 6 low bits of
// (x, y): every value in [0, 64) is reachable exactly once as (x, y)
// range over the corresponding 3-bit spaces.
func TestPixelIndexWithinMicroTileDisplayableBijective(t *testing.T) {
	for _, bpp := range []uint32{8, 16, 64, 128, 32} {
		seen := make(map[uint32]bool)
		for x := uint32(0); x < 8; x++ {
			for y := uint32(0); y < 8; y++ {
				idx := pixelIndexWithinMicroTile(x, y, 0, bpp, D1TiledThin1, Displayable)
				if idx >= 64 {
					t.Fatalf("bpp=%d x=%d y=%d: index %d out of range", bpp, x, y, idx)
				}
				if seen[idx] {
					t.Fatalf("bpp=%d: index %d produced twice", bpp, idx)
				}
				seen[idx] = true
			}
		}
		if len(seen) != 64 {
			t.Fatalf("bpp=%d: only %d distinct indices, want 64", bpp, len(seen))
		}
	}
}

func TestPixelIndexWithinMicroTileThickIncludesZBits(t *testing.T) {
	a := pixelIndexWithinMicroTile(0, 0, 1, 8, D1TiledThick, ThickTiling)
	b := pixelIndexWithinMicroTile(0, 0, 0, 8, D1TiledThick, ThickTiling)
	if a == b {
		t.Fatalf("expected z to affect the thick-tiling pixel index")
	}
}
