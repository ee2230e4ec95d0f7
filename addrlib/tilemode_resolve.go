package addrlib

// computeSurfaceTileSlices returns how many split slices a tile's
// samples are spread across once a tile's bytes exceed the split
// threshold.
func computeSurfaceTileSlices(mode TileMode, bpp, numSamples uint32) uint32 {
	bytesPerSample := bitsToBytes(bpp * 64)
	tileSlices := uint32(1)

	if mode.Thickness() > 1 {
		numSamples = 4
	}

	if bytesPerSample != 0 {
		samplePerTile := SplitSize / bytesPerSample
		if samplePerTile != 0 {
			tileSlices = maxU32(1, numSamples/samplePerTile)
		}
	}

	return tileSlices
}

// hwlDegradeThickTileMode downgrades a thick or wide-split tile mode
// when the sample count, slice split, or depth-ness makes the
// requested mode unsupported, falling through to the nearest thinner
// or narrower relative.
func hwlDegradeThickTileMode(mode TileMode, numSamples, tileSlices uint32, isDepth bool) TileMode {
	switch mode {
	case D1TiledThick:
		if numSamples > 1 || isDepth {
			mode = D1TiledThin1
		}
	case D2TiledThin2:
		if 2*PipeInterleaveBytes > SplitSize {
			mode = D2TiledThin1
		}
	case D2TiledThin4:
		if 4*PipeInterleaveBytes > SplitSize {
			mode = D2TiledThin2
		}
	case D2TiledThick:
		if numSamples > 1 || tileSlices > 1 || isDepth {
			mode = D2TiledThin1
		}
	case B2TiledThin2:
		if 2*PipeInterleaveBytes > SplitSize {
			mode = B2TiledThin1
		}
	case B2TiledThin4:
		if 4*PipeInterleaveBytes > SplitSize {
			mode = B2TiledThin2
		}
	case B2TiledThick:
		if numSamples > 1 || tileSlices > 1 || isDepth {
			mode = B2TiledThin1
		}
	case D3TiledThick:
		if numSamples > 1 || tileSlices > 1 || isDepth {
			mode = D3TiledThin1
		}
	case B3TiledThick:
		if numSamples > 1 || tileSlices > 1 || isDepth {
			mode = B3TiledThin1
		}
	}

	return mode
}

// ComputeSurfaceMipLevelTileMode resolves the effective tile mode for
// one mip level of a surface whose base level uses baseTileMode.
//
// The function calls itself at most once: the first pass degrades the
// mode and may fold a 3D mode to 2D when its rotation is pipe-aligned;
// if level == 0 that's the answer. Otherwise a second, final pass
// re-evaluates against this level's power-of-two-rounded dimensions
// with noRecursive forced true, so it returns without recursing again.
func ComputeSurfaceMipLevelTileMode(
	baseTileMode TileMode,
	bpp, level, width, height, numSlices, numSamples uint32,
	isDepth, noRecursive bool,
) TileMode {
	tileSlices := computeSurfaceTileSlices(baseTileMode, bpp, numSamples)
	mode := hwlDegradeThickTileMode(baseTileMode, numSamples, tileSlices, isDepth)
	rotation := mode.Rotation()

	if rotation%Pipes == 0 {
		switch mode {
		case D3TiledThin1:
			mode = D2TiledThin1
		case D3TiledThick:
			mode = D2TiledThick
		case B3TiledThin1:
			mode = B2TiledThin1
		case B3TiledThick:
			mode = B2TiledThick
		}
	}

	if noRecursive || level == 0 {
		return mode
	}

	if bpp == 96 || bpp == 48 || bpp == 24 {
		bpp /= 3
	}

	width = nextPowerOfTwo(width)
	height = nextPowerOfTwo(height)
	numSlices = nextPowerOfTwo(numSlices)

	mode = mode.ConvertToNonBankSwapped()

	thickness := mode.Thickness()
	microTileBytes := bitsToBytes(numSamples * bpp * thickness * 64)
	widthAlignFactor := uint32(1)

	if microTileBytes <= PipeInterleaveBytes && microTileBytes != 0 {
		widthAlignFactor = PipeInterleaveBytes / microTileBytes
	}

	macroTileWidth := uint32(8 * Banks)
	macroTileHeight := uint32(8 * Pipes)

	switch mode {
	case D2TiledThin1, D3TiledThin1:
		if width < widthAlignFactor*macroTileWidth || height < macroTileHeight {
			mode = D1TiledThin1
		}
	case D2TiledThin2:
		macroTileWidth >>= 1
		macroTileHeight *= 2
		if width < widthAlignFactor*macroTileWidth || height < macroTileHeight {
			mode = D1TiledThin1
		}
	case D2TiledThin4:
		macroTileWidth >>= 2
		macroTileHeight *= 4
		if width < widthAlignFactor*macroTileWidth || height < macroTileHeight {
			mode = D1TiledThin1
		}
	case D2TiledThick, D3TiledThick:
		if width < widthAlignFactor*macroTileWidth || height < macroTileHeight {
			mode = D1TiledThick
		}
	}

	switch {
	case mode == D1TiledThick && numSlices < 4:
		mode = D1TiledThin1
	case mode == D2TiledThick && numSlices < 4:
		mode = D2TiledThin1
	case mode == D3TiledThick && numSlices < 4:
		mode = D3TiledThin1
	}

	return ComputeSurfaceMipLevelTileMode(mode, bpp, level, width, height, numSlices, numSamples, isDepth, true)
}
