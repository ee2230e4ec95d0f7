package addrlib

// ComputeSurfaceAddrFromCoordInput bundles the coordinate and surface
// parameters needed to resolve a byte offset for a single element.
type ComputeSurfaceAddrFromCoordInput struct {
	X, Y, Slice, Sample uint32
	Bpp                 uint32
	Pitch, Height       uint32
	NumSlices           uint32
	NumSamples          uint32
	TileMode            TileMode
	IsDepth             bool
	TileBase            uint32
	CompBits            uint32
	PipeSwizzle         uint32
	BankSwizzle         uint32
}

// DispatchComputeSurfaceAddrFromCoord routes to the linear,
// micro-tiled, or macro-tiled address function for p.TileMode. Every
// other mode (D2TiledXThick, D3TiledXThick, PowerSave, TileModeCount
// and any value outside the enumeration) resolves to 0, matching the
// reference dispatcher's catch-all.
func DispatchComputeSurfaceAddrFromCoord(p *ComputeSurfaceAddrFromCoordInput) uint32 {
	numSamples := maxU32(1, p.NumSamples)

	switch {
	case p.TileMode.isLinear():
		return addrFromCoordLinear(p.X, p.Y, p.Slice, p.Sample, p.Bpp, p.Pitch, p.Height, p.NumSlices)

	case p.TileMode.isMicroTiled():
		return addrFromCoordMicroTiled(p.X, p.Y, p.Slice, p.Bpp, p.Pitch, p.Height, p.TileMode, p.IsDepth, p.TileBase, p.CompBits)

	case p.TileMode.isMacroTiled():
		return addrFromCoordMacroTiled(
			p.X, p.Y, p.Slice, p.Sample, p.Bpp, p.Pitch, p.Height, numSamples,
			p.TileMode, p.IsDepth, p.TileBase, p.CompBits, p.PipeSwizzle, p.BankSwizzle,
		)

	default:
		return 0
	}
}

// PipeBankSwizzle splits a packed swizzle value (as stored in a
// surface descriptor) into its pipe (bit 8) and bank (bits 9-10)
// components.
func PipeBankSwizzle(swizzle uint32) (pipe, bank uint32) {
	return (swizzle >> 8) & 1, (swizzle >> 9) & 3
}
