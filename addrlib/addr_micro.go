package addrlib

// addrFromCoordMicroTiled computes the byte offset of (x, y, slice) in
// a 1D micro-tiled (D1TiledThin1/D1TiledThick) surface.
func addrFromCoordMicroTiled(x, y, slice, bpp, pitch, height uint32, mode TileMode, isDepth bool, tileBase, compBits uint32) uint32 {
	thickness := uint32(1)
	if mode == D1TiledThick {
		thickness = 4
	}

	microTileBytes := bitsToBytes(MicroTilePixels * thickness * bpp)
	microTilesPerRow := pitch / MicroTileWidth
	tileIndexX := x / MicroTileWidth
	tileIndexY := y / MicroTileHeight
	tileIndexZ := slice / thickness

	microTileOffset := microTileBytes * (tileIndexX + tileIndexY*microTilesPerRow)

	sliceBytes := bitsToBytes(pitch * height * thickness * bpp)
	sliceOffset := tileIndexZ * sliceBytes

	pixelIndex := pixelIndexWithinMicroTile(x, y, slice, bpp, mode, tileTypeFor(isDepth))

	var pixelOffset uint32
	if compBits != 0 && compBits != bpp && isDepth {
		pixelOffset = tileBase + compBits*pixelIndex
	} else {
		pixelOffset = bpp * pixelIndex
	}
	pixelOffset /= 8

	return pixelOffset + microTileOffset + sliceOffset
}
