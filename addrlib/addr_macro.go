package addrlib

// bankSwapOrder is the fixed permutation applied to the bank index at
// each bank-swap period boundary.
var bankSwapOrder = [8]uint32{0, 1, 3, 2, 6, 7, 5, 4}

// addrFromCoordMacroTiled computes the byte offset of (x, y, slice,
// sample) in a 2D or 3D macro-tiled surface, with or without bank
// swapping.
func addrFromCoordMacroTiled(
	x, y, slice, sample, bpp, pitch, height, numSamples uint32,
	mode TileMode, isDepth bool, tileBase, compBits, pipeSwizzle, bankSwizzle uint32,
) uint32 {
	numGroupBits := log2(PipeInterleaveBytes)
	numPipeBits := log2(Pipes)
	numBankBits := log2(Banks)

	thickness := mode.Thickness()
	microTileBits := MicroTilePixels * thickness * bpp * numSamples
	microTileBytes := microTileBits / 8

	pixelIndex := pixelIndexWithinMicroTile(x, y, slice, bpp, mode, tileTypeFor(isDepth))

	var sampleOffset, pixelOffset uint32
	if isDepth {
		if compBits != 0 && compBits != bpp {
			sampleOffset = tileBase + compBits*sample
			pixelOffset = numSamples * compBits * pixelIndex
		} else {
			sampleOffset = bpp * sample
			pixelOffset = numSamples * bpp * pixelIndex
		}
	} else {
		sampleOffset = sample * (microTileBits / numSamples)
		pixelOffset = bpp * pixelIndex
	}

	elemOffset := pixelOffset + sampleOffset

	bytesPerSample := microTileBytes / numSamples
	var numSampleSplits, sampleSlice uint32

	if numSamples > 1 && microTileBytes > SplitSize {
		samplesPerSlice := SplitSize / bytesPerSample
		numSampleSplits = numSamples / samplesPerSlice
		numSamples = samplesPerSlice

		tileSliceBits := microTileBits / numSampleSplits
		sampleSlice = elemOffset / tileSliceBits
		elemOffset %= tileSliceBits
	} else {
		numSampleSplits = 1
		sampleSlice = 0
	}

	elemOffset /= 8

	pipe := pipeFromCoordNoRotation(x, y)
	bank := bankFromCoordNoRotation(x, y)

	bankPipe := pipe + Pipes*bank
	rotation := mode.Rotation()
	swizzle := pipeSwizzle + Pipes*bankSwizzle
	sliceIn := slice

	if mode.IsThickMacroTiled() {
		sliceIn /= ThickTileThickness
	}

	bankPipe ^= (Pipes * sampleSlice * ((Banks >> 1) + 1)) ^ (swizzle + sliceIn*rotation)
	bankPipe %= Pipes * Banks
	pipe = bankPipe % Pipes
	bank = bankPipe / Pipes

	sliceBytes := bitsToBytes(pitch * height * thickness * bpp * numSamples)
	sliceOffset := sliceBytes * ((sampleSlice + numSampleSplits*slice) / thickness)

	macroTilePitch := uint32(8 * Banks)
	macroTileHeight := uint32(8 * Pipes)

	switch mode {
	case D2TiledThin2, B2TiledThin2:
		macroTilePitch /= 2
		macroTileHeight *= 2
	case D2TiledThin4, B2TiledThin4:
		macroTilePitch /= 4
		macroTileHeight *= 4
	}

	macroTilesPerRow := pitch / macroTilePitch
	macroTileBytes := bitsToBytes(numSamples * thickness * bpp * macroTileHeight * macroTilePitch)
	macroTileIndexX := x / macroTilePitch
	macroTileIndexY := y / macroTileHeight
	macroTileOffset := macroTileBytes * (macroTileIndexX + macroTilesPerRow*macroTileIndexY)

	if mode.IsBankSwapped() {
		width := bankSwappedWidth(mode, bpp, numSamples, pitch)
		swapIndex := macroTilePitch * macroTileIndexX / width
		bank ^= bankSwapOrder[swapIndex&(Banks-1)]
	}

	groupMask := uint32(1<<numGroupBits) - 1
	totalOffset := elemOffset + ((macroTileOffset + sliceOffset) >> (numBankBits + numPipeBits))

	offsetHigh := (totalOffset &^ groupMask) << (numBankBits + numPipeBits)
	offsetLow := totalOffset & groupMask
	bankBits := bank << (numPipeBits + numGroupBits)
	pipeBits := pipe << numGroupBits

	return bankBits | pipeBits | offsetLow | offsetHigh
}

// log2 returns the base-2 logarithm of a power-of-two constant, known
// at compile time for the fixed hardware constants this package uses.
func log2(v uint32) uint32 {
	n := uint32(0)
	for v > 1 {
		v >>= 1
		n++
	}
	return n
}
