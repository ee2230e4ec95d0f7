package addrlib

// TileMode is the closed enumeration of Wii U GPU surface tiling
// schemes. Values match the hardware's ADDR_TM_* constants.
type TileMode uint32

const (
	LinearGeneral  TileMode = 0x0
	LinearAligned  TileMode = 0x1
	D1TiledThin1   TileMode = 0x2
	D1TiledThick   TileMode = 0x3
	D2TiledThin1   TileMode = 0x4
	D2TiledThin2   TileMode = 0x5
	D2TiledThin4   TileMode = 0x6
	D2TiledThick   TileMode = 0x7
	B2TiledThin1   TileMode = 0x8
	B2TiledThin2   TileMode = 0x9
	B2TiledThin4   TileMode = 0xA
	B2TiledThick   TileMode = 0xB
	D3TiledThin1   TileMode = 0xC
	D3TiledThick   TileMode = 0xD
	B3TiledThin1   TileMode = 0xE
	B3TiledThick   TileMode = 0xF
	D2TiledXThick  TileMode = 0x10
	D3TiledXThick  TileMode = 0x11
	PowerSave      TileMode = 0x12
	TileModeCount  TileMode = 0x13
)

// TileModeFromRepr returns the TileMode for v, or false if v is not one of the
// 20 recognized values.
func TileModeFromRepr(v uint32) (TileMode, bool) {
	if v > uint32(TileModeCount) {
		return 0, false
	}
	return TileMode(v), true
}

// TileType is the pixel-index permutation family used within a micro
// tile. The address functions derive it from whether the surface is a
// depth target alone (see tileTypeFor); it is never stored directly on
// a descriptor.
type TileType uint32

const (
	Displayable      TileType = 0x0
	NonDisplayable   TileType = 0x1
	DepthSampleOrder TileType = 0x2
	ThickTiling      TileType = 0x3
)

func tileTypeFor(isDepth bool) TileType {
	if isDepth {
		return NonDisplayable
	}
	return Displayable
}

// Thickness returns how many z-slices a single micro tile of this mode
// spans: 1 for thin modes, 4 for thick, 8 for the rarely used xthick
// modes.
func (m TileMode) Thickness() uint32 {
	switch m {
	case D1TiledThick, D2TiledThick, B2TiledThick, D3TiledThick, B3TiledThick:
		return 4
	case D2TiledXThick, D3TiledXThick:
		return 8
	default:
		return 1
	}
}

// IsThickMacroTiled reports whether m is one of the macro-tiled thick
// modes (2D or 3D, bank-swapped or not).
func (m TileMode) IsThickMacroTiled() bool {
	switch m {
	case D2TiledThick, B2TiledThick, D3TiledThick, B3TiledThick:
		return true
	default:
		return false
	}
}

// IsBankSwapped reports whether m is one of the "B*" bank-swapped
// macro-tiled modes.
func (m TileMode) IsBankSwapped() bool {
	switch m {
	case B2TiledThin1, B2TiledThin2, B2TiledThin4, B2TiledThick, B3TiledThin1, B3TiledThick:
		return true
	default:
		return false
	}
}

// ConvertToNonBankSwapped maps a "B*" mode to its "D*" counterpart and
// is the identity for every other mode.
func (m TileMode) ConvertToNonBankSwapped() TileMode {
	switch m {
	case B2TiledThin1:
		return D2TiledThin1
	case B2TiledThin2:
		return D2TiledThin2
	case B2TiledThin4:
		return D2TiledThin4
	case B2TiledThick:
		return D2TiledThick
	case B3TiledThin1:
		return D3TiledThin1
	case B3TiledThick:
		return D3TiledThick
	default:
		return m
	}
}

// AspectRatio returns the macro-tile aspect ratio used in the macro
// tile geometry and bank-swap math: 1, 2, or 4.
func (m TileMode) AspectRatio() uint32 {
	switch m {
	case D2TiledThin2, B2TiledThin2:
		return 2
	case D2TiledThin4, B2TiledThin4:
		return 4
	default:
		return 1
	}
}

// Rotation mixes sample/slice bits into the bank assignment; it is 0
// for linear and 1D-tiled modes.
func (m TileMode) Rotation() uint32 {
	switch m {
	case D2TiledThin1, D2TiledThin2, D2TiledThin4, D2TiledThick,
		B2TiledThin1, B2TiledThin2, B2TiledThin4, B2TiledThick:
		return Pipes * ((Banks >> 1) - 1)
	case D3TiledThin1, D3TiledThick, B3TiledThin1, B3TiledThick:
		if Pipes >= 4 {
			return (Pipes >> 1) - 1
		}
		return 1
	default:
		return 0
	}
}

// isDualBaseAlignNeeded matches addrlib's "any mode beyond 1D thick"
// rule used by the macro-tiled alignment computation.
func (m TileMode) isDualBaseAlignNeeded() bool {
	return m > D1TiledThick
}

// isMacroTiled reports whether m is handled by the macro-tiled family
// of address/alignment functions.
func (m TileMode) isMacroTiled() bool {
	switch m {
	case D2TiledThin1, D2TiledThin2, D2TiledThin4, D2TiledThick,
		B2TiledThin1, B2TiledThin2, B2TiledThin4, B2TiledThick,
		D3TiledThin1, D3TiledThick, B3TiledThin1, B3TiledThick:
		return true
	default:
		return false
	}
}

// isMicroTiled reports whether m is handled by the 1D micro-tiled
// family of address/alignment functions.
func (m TileMode) isMicroTiled() bool {
	return m == D1TiledThin1 || m == D1TiledThick
}

// isLinear reports whether m is one of the two untiled modes.
func (m TileMode) isLinear() bool {
	return m == LinearGeneral || m == LinearAligned
}
