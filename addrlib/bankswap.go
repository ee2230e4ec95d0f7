package addrlib

// bankSwappedWidth computes the horizontal period, in pixels, at which
// B*-mode macro tiles swap their bank assignment. It returns 0 for
// non-bank-swapped modes.
func bankSwappedWidth(mode TileMode, bpp, numSamples, pitch uint32) uint32 {
	if bpp == 0 {
		return 0
	}

	slicesPerTile := uint32(1)
	bytesPerSample := 8 * bpp
	samplesPerTile := SplitSize / bytesPerSample

	if samplesPerTile != 0 {
		slicesPerTile = maxU32(1, numSamples/samplesPerTile)
	}

	if mode.IsThickMacroTiled() {
		numSamples = 4
	}

	bytesPerTileSlice := numSamples * bytesPerSample / slicesPerTile

	if !mode.IsBankSwapped() {
		return 0
	}

	factor := mode.AspectRatio()
	swapTiles := maxU32(1, (SwapSize>>1)/bpp)
	swapWidth := swapTiles * 8 * Banks
	heightBytes := numSamples * factor * Pipes * bpp / slicesPerTile
	swapMax := Pipes * Banks * RowSize / heightBytes
	swapMin := PipeInterleaveBytes * 8 * Banks / bytesPerTileSlice

	width := minU32(swapMax, maxU32(swapMin, swapWidth))

	for width >= 2*pitch {
		width >>= 1
	}

	return width
}
