package addrlib

// SurfaceFlags records which GPU surface usages apply to a surface;
// several of alignment and padding rules key off these bits the same
// way real hardware descriptors do.
type SurfaceFlags uint32

const (
	FlagColor SurfaceFlags = 1 << iota
	FlagDepth
	FlagStencil
	FlagTexture
	FlagCube
	FlagVolume
	FlagFmask
	FlagCubeAsArray
	FlagCompressZ
	FlagLinearWA
	FlagOverlay
	FlagNoStencil
	FlagInputBaseMap
	FlagDisplay
	FlagOpt4Space
	FlagPrt
	FlagQbStereo
	FlagPow2Pad
)

func (f SurfaceFlags) Cube() bool     { return f&FlagCube != 0 }
func (f SurfaceFlags) Depth() bool    { return f&FlagDepth != 0 }
func (f SurfaceFlags) Fmask() bool    { return f&FlagFmask != 0 }
func (f SurfaceFlags) Display() bool  { return f&FlagDisplay != 0 }
func (f SurfaceFlags) LinearWA() bool { return f&FlagLinearWA != 0 }

// TileInfo carries the bank/tile-split geometry addrlib exposes per
// tile-mode index; this port only ever uses the zero value, since the
// Wii U GPU's hardware tile index table is fixed and this library does
// not model it.
type TileInfo struct {
	Banks            uint32
	BankWidth        uint32
	BankHeight       uint32
	MacroAspectRatio uint32
	TileSplitBytes   uint32
}

// ComputeSurfaceInfoInput describes one mip level of a surface to
// HwlComputeSurfaceInfo.
type ComputeSurfaceInfoInput struct {
	Size       uint32
	TileMode   TileMode
	Bpp        uint32
	NumSamples uint32
	Width      uint32
	Height     uint32
	NumSlices  uint32
	Slice      uint32
	MipLevel   uint32
	Flags      SurfaceFlags
	TileInfo   TileInfo
	TileType   TileType
	TileIndex  int32
}

// ComputeSurfaceInfoOutput is the padded, aligned geometry
// HwlComputeSurfaceInfo derives for one mip level.
type ComputeSurfaceInfoOutput struct {
	Size          uint32
	Pitch         uint32
	Height        uint32
	Depth         uint32
	SurfSize      uint64
	TileMode      TileMode
	BaseAlign     uint32
	PitchAlign    uint32
	HeightAlign   uint32
	DepthAlign    uint32
	Bpp           uint32
	PixelPitch    uint32
	PixelHeight   uint32
	PixelBits     uint32
	SliceSize     uint32
	PitchTileMax  uint32
	HeightTileMax uint32
	SliceTileMax  uint32
	TileInfo      TileInfo
	TileType      TileType
	TileIndex     int32
}

func adjustPitchAlignment(flags SurfaceFlags, pitchAlign *uint32) {
	if flags.Display() {
		*pitchAlign = nextMultipleOf(*pitchAlign, 32)
	}
}

// padDimensions is a deliberate no-op: the reference implementation
// this is ported from never filled it in either. Pitch, height and
// slices are therefore not rounded up to their alignment values
// anywhere in this package; the alignments are only reported in the
// output.
func padDimensions(mode TileMode, flags SurfaceFlags, padDims uint32, pitch *uint32, pitchAlign uint32, height *uint32, heightAlign uint32, slices *uint32, sliceAlign uint32) {
}

func computeSurfaceAlignmentsLinear(mode TileMode, bpp uint32, flags SurfaceFlags) (baseAlign, pitchAlign, heightAlign uint32) {
	switch mode {
	case LinearGeneral:
		baseAlign = 1
		if bpp != 1 {
			pitchAlign = 1
		} else {
			pitchAlign = 8
		}
		heightAlign = 1
	case LinearAligned:
		baseAlign = PipeInterleaveBytes
		pitchAlign = maxU32((8*PipeInterleaveBytes)/bpp, 64)
		heightAlign = 1
	default:
		baseAlign = 1
		pitchAlign = 1
		heightAlign = 1
	}

	adjustPitchAlignment(flags, &pitchAlign)
	return baseAlign, pitchAlign, heightAlign
}

func computeSurfaceAlignmentsMicroTiled(mode TileMode, bpp uint32, flags SurfaceFlags, numSamples uint32) (baseAlign, pitchAlign, heightAlign uint32) {
	if bpp == 96 || bpp == 48 || bpp == 24 {
		bpp /= 3
	}

	thickness := mode.Thickness()
	pitchAlignment := PipeInterleaveBytes / bpp / numSamples / thickness

	baseAlign = PipeInterleaveBytes
	pitchAlign = maxU32(pitchAlignment, 8)
	heightAlign = 8

	adjustPitchAlignment(flags, &pitchAlign)
	return baseAlign, pitchAlign, heightAlign
}

func isDualPitchAlignNeeded(mode TileMode, isDepth bool, mipLevel uint32) bool {
	if isDepth || mipLevel != 0 {
		return false
	}

	switch mode {
	case LinearGeneral, LinearAligned, D1TiledThin1, D1TiledThick,
		D2TiledThick, B2TiledThick, D3TiledThick, B3TiledThick:
		return false
	default:
		return true
	}
}

func computeSurfaceAlignmentsMacroTiled(mode TileMode, bpp uint32, flags SurfaceFlags, numSamples uint32) (baseAlign, pitchAlign, heightAlign, macroWidth, macroHeight uint32) {
	aspectRatio := mode.AspectRatio()
	thickness := mode.Thickness()

	if bpp == 96 || bpp == 48 || bpp == 24 {
		bpp /= 3
	}
	if bpp == 3 {
		bpp = 1
	}

	macroWidth = 8 * Banks / aspectRatio
	macroHeight = aspectRatio * 8 * Pipes
	pitchAlign = maxU32(macroWidth, macroWidth*(PipeInterleaveBytes/bpp/(8*thickness)/numSamples))
	heightAlign = macroHeight

	macroTileBytes := numSamples * bitsToBytes(bpp*macroHeight*macroWidth)
	if numSamples == 1 {
		macroTileBytes *= 2
	}

	if thickness == 1 {
		baseAlign = maxU32(macroTileBytes, bitsToBytes(numSamples*heightAlign*bpp*pitchAlign))
	} else {
		baseAlign = maxU32(PipeInterleaveBytes, bitsToBytes(4*heightAlign*bpp*pitchAlign))
	}

	microTileBytes := bitsToBytes(thickness * numSamples * bpp * 64)
	numSlicesPerMicroTile := uint32(1)
	if microTileBytes >= SplitSize {
		numSlicesPerMicroTile = microTileBytes / SplitSize
	}

	baseAlign /= numSlicesPerMicroTile

	if mode.isDualBaseAlignNeeded() {
		macroBytes := bitsToBytes(bpp * macroHeight * macroWidth)
		if (baseAlign/macroBytes)%2 == 0 {
			baseAlign += macroBytes
		}
	}

	return baseAlign, pitchAlign, heightAlign, macroWidth, macroHeight
}

// computeSurfaceBankSwappedWidth is a second name for bankSwappedWidth,
// kept to match the reference's surface-info call site.
func computeSurfaceBankSwappedWidth(mode TileMode, bpp, numSamples, pitch uint32) uint32 {
	return bankSwappedWidth(mode, bpp, numSamples, pitch)
}

func computeSurfaceInfoLinear(in *ComputeSurfaceInfoInput, out *ComputeSurfaceInfoOutput, padDims uint32, mode TileMode) {
	thickness := mode.Thickness()
	pitch := in.Width
	height := in.Height
	numSlices := in.NumSlices
	numSamples := in.NumSamples
	mipLevel := in.MipLevel
	bpp := in.Bpp

	out.BaseAlign, out.PitchAlign, out.HeightAlign = computeSurfaceAlignmentsLinear(in.TileMode, in.Bpp, in.Flags)

	if in.Flags.LinearWA() && mipLevel == 0 {
		pitch = nextPowerOfTwo(pitch / 3)
	}

	if mipLevel != 0 {
		pitch = nextPowerOfTwo(pitch)
		height = nextPowerOfTwo(height)

		if in.Flags.Cube() {
			if numSlices <= 1 {
				padDims = 2
			} else {
				padDims = 0
			}
		} else {
			numSlices = nextPowerOfTwo(numSlices)
		}
	}

	padDimensions(mode, in.Flags, padDims, &pitch, out.PitchAlign, &height, out.HeightAlign, &numSlices, thickness)

	if in.Flags.LinearWA() && mipLevel == 0 {
		pitch *= 3
	}

	slices := (numSlices * numSamples) / thickness
	surfaceSize := bitsToBytes(height * pitch * slices * bpp * numSamples)

	out.Pitch = pitch
	out.Height = height
	out.Depth = numSlices
	out.SurfSize = uint64(surfaceSize)
	out.DepthAlign = thickness
	out.TileMode = mode
}

func computeSurfaceInfoMicroTiled(in *ComputeSurfaceInfoInput, out *ComputeSurfaceInfoOutput, padDims uint32, mode TileMode) {
	thickness := mode.Thickness()
	pitch := in.Width
	height := in.Height
	numSlices := in.NumSlices
	numSamples := in.NumSamples
	mipLevel := in.MipLevel
	bpp := in.Bpp

	if mipLevel != 0 {
		pitch = nextPowerOfTwo(pitch)
		height = nextPowerOfTwo(height)

		if in.Flags.Cube() {
			if numSlices <= 1 {
				padDims = 2
			} else {
				padDims = 0
			}
		} else {
			numSlices = nextPowerOfTwo(numSlices)
		}

		if mode == D1TiledThick && numSlices < 4 {
			mode = D1TiledThin1
			thickness = 1
		}
	}

	out.BaseAlign, out.PitchAlign, out.HeightAlign = computeSurfaceAlignmentsMicroTiled(mode, in.Bpp, in.Flags, in.NumSamples)

	padDimensions(mode, in.Flags, padDims, &pitch, out.PitchAlign, &height, out.HeightAlign, &numSlices, thickness)

	surfaceSize := bitsToBytes(height * pitch * numSlices * bpp * numSamples)

	out.Pitch = pitch
	out.Height = height
	out.Depth = numSlices
	out.SurfSize = uint64(surfaceSize)
	out.TileMode = mode
	out.DepthAlign = thickness
}

func computeSurfaceInfoMacroTiled(in *ComputeSurfaceInfoInput, out *ComputeSurfaceInfoOutput, padDims uint32, mode, baseTileMode TileMode) {
	var macroWidth, macroHeight uint32
	thickness := mode.Thickness()
	pitch := in.Width
	height := in.Height
	numSlices := in.NumSlices
	numSamples := in.NumSamples
	mipLevel := in.MipLevel
	bpp := in.Bpp
	pitchAlign := out.PitchAlign

	if mipLevel != 0 {
		pitch = nextPowerOfTwo(pitch)
		height = nextPowerOfTwo(height)

		if in.Flags.Cube() {
			if numSlices <= 1 {
				padDims = 2
			} else {
				padDims = 0
			}
		} else {
			numSlices = nextPowerOfTwo(numSlices)
		}

		if mode == D2TiledThick && numSlices < 4 {
			mode = D2TiledThin1
			thickness = 1
		}
	}

	if mode != baseTileMode && mipLevel != 0 && baseTileMode.IsThickMacroTiled() && !mode.IsThickMacroTiled() {
		out.BaseAlign, out.PitchAlign, out.HeightAlign, macroWidth, macroHeight = computeSurfaceAlignmentsMacroTiled(baseTileMode, in.Bpp, in.Flags, in.NumSamples)

		pitchAlignFactor := maxU32((PipeInterleaveBytes>>3)/bpp, 1)

		if pitch < out.PitchAlign*pitchAlignFactor || height < out.HeightAlign {
			computeSurfaceInfoMicroTiled(in, out, padDims, D1TiledThin1)
			return
		}
	}

	out.BaseAlign, pitchAlign, out.HeightAlign, macroWidth, macroHeight = computeSurfaceAlignmentsMacroTiled(mode, in.Bpp, in.Flags, in.NumSamples)

	bankSwappedWidth := computeSurfaceBankSwappedWidth(mode, bpp, numSamples, pitch)
	pitchAlign = maxU32(pitchAlign, bankSwappedWidth)

	if isDualPitchAlignNeeded(mode, in.Flags.Depth(), mipLevel) {
		tilePerGroup := (PipeInterleaveBytes >> 3) / bpp / numSamples
		tilePerGroup = maxU32(tilePerGroup/mode.Thickness(), 1)

		evenWidth := ((pitch - 1) / macroWidth) & 1
		evenHeight := ((height - 1) / macroHeight) & 1

		if numSamples == 1 && tilePerGroup == 1 && evenWidth == 0 {
			if pitch > macroWidth || (evenHeight == 0 && height > macroHeight) {
				pitch += macroWidth
			}
		}
	}

	padDimensions(mode, in.Flags, padDims, &pitch, pitchAlign, &height, out.HeightAlign, &numSlices, thickness)

	surfaceSize := bitsToBytes(height * pitch * numSlices * bpp * numSamples)

	out.Pitch = pitch
	out.Height = height
	out.Depth = numSlices
	out.SurfSize = uint64(surfaceSize)
	out.TileMode = mode
	out.PitchAlign = pitchAlign
	out.DepthAlign = thickness
}

// HwlComputeSurfaceInfo resolves in.TileMode for in.MipLevel and
// derives the padded pitch/height/depth/size of that mip level into
// out. Fmask surfaces skip mip-level tile-mode degradation entirely
// and only strip bank swapping.
func HwlComputeSurfaceInfo(in *ComputeSurfaceInfoInput, out *ComputeSurfaceInfoOutput) {
	numSamples := maxU32(in.NumSamples, 1)
	mode := in.TileMode
	padDims := uint32(0)

	if in.Flags.Cube() && in.MipLevel == 0 {
		padDims = 2
	}

	if in.Flags.Fmask() {
		mode = mode.ConvertToNonBankSwapped()
	} else {
		mode = ComputeSurfaceMipLevelTileMode(mode, in.Bpp, in.MipLevel, in.Width, in.Height, in.NumSlices, numSamples, in.Flags.Depth(), false)
	}

	switch {
	case mode.isLinear():
		computeSurfaceInfoLinear(in, out, padDims, mode)
	case mode.isMicroTiled():
		computeSurfaceInfoMicroTiled(in, out, padDims, mode)
	case mode.isMacroTiled():
		computeSurfaceInfoMacroTiled(in, out, padDims, mode, in.TileMode)
	}
}

func nextMultipleOf(v, m uint32) uint32 {
	if v%m == 0 {
		return v
	}
	return v + (m - v%m)
}
