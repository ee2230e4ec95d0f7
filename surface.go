package gx2tile

import "github.com/gx2tile/gx2tile/addrlib"

// Surface wraps a SurfaceDescriptor with the mipmap- and cube-aware
// driver that produces a combined linear buffer from it.
type Surface struct {
	Descriptor SurfaceDescriptor
	Options    DriverOptions
}

// Deswizzle converts every mip level (and, for Cube surfaces, every
// layer) from tiled to linear memory and concatenates the results.
//
// Non-cube surfaces are mip-major: all of mip 0, then all of mip 1,
// and so on. Cube surfaces are repacked to layer-major: all mips of
// layer 0, then all mips of layer 1, through the six cube faces.
func (s *Surface) Deswizzle() ([]byte, error) {
	d := &s.Descriptor
	if err := d.validate(); err != nil {
		return nil, err
	}

	blockWidth, blockHeight := d.Format.BlockDim()
	bytesPerPixel := d.Format.BytesPerPixel()

	mipData := make([][]byte, d.MipmapCount)
	for mip := uint32(0); mip < d.MipmapCount; mip++ {
		source := mipSource(d, mip)

		width := ceilDiv(d.Width, blockWidth) >> mip
		height := ceilDiv(d.Height, blockHeight) >> mip
		pitch := d.Pitch >> mip

		tileMode := addrlib.ComputeSurfaceMipLevelTileMode(
			d.TileMode, bytesPerPixel*8, mip, width, height, 1, 1, false, false,
		)

		level, err := DeswizzleMipmap(width, height, d.DepthOrArrayLayers, source, d.Swizzle, pitch, tileMode, bytesPerPixel, d.Aa, s.Options)
		if err != nil {
			return nil, err
		}
		mipData[mip] = level
	}

	if d.Dim != DimCube {
		var out []byte
		for _, level := range mipData {
			out = append(out, level...)
		}
		return out, nil
	}

	return repackCubeLayerMajor(d, mipData, blockWidth, blockHeight, bytesPerPixel)
}

// mipSource returns the byte-view mip holds its tiled data in.
//
// mipmap_offsets[0] describes the image_data/mip-1 split (used only by
// the wire format, §6) and is not consulted here: mip 0 always reads
// the entire image_data. mipmap_offsets[k] for k in [1, 12] marks the
// start of mip (k+1) within mipmap_data, so mip k's slice runs from
// offsets[k-1] to offsets[k] (0 meaning "to end"); the last reachable
// mip (13) has no following boundary and always reads to end.
func mipSource(d *SurfaceDescriptor, mip uint32) []byte {
	switch {
	case mip == 0:
		return d.ImageData
	case mip == 1:
		if off := d.MipmapOffsets[1]; off != 0 {
			return d.MipmapData[:off]
		}
		return d.MipmapData
	default:
		start := d.MipmapOffsets[mip-1]
		if int(mip) < len(d.MipmapOffsets) && d.MipmapOffsets[mip] != 0 {
			return d.MipmapData[start:d.MipmapOffsets[mip]]
		}
		return d.MipmapData[start:]
	}
}

func ceilDiv(x, d uint32) uint32 {
	return (x + d - 1) / d
}

// repackCubeLayerMajor reorders mipData (mip-major, one combined
// 6-layer blob per level) into layer-major order: all mips of layer 0,
// then layer 1, and so on through CubeLayers.
func repackCubeLayerMajor(d *SurfaceDescriptor, mipData [][]byte, blockWidth, blockHeight, bytesPerPixel uint32) ([]byte, error) {
	sizes := make([]int, len(mipData))
	mipOffsets := make([]int, len(mipData))
	perLayerTotal := 0

	for mip := range mipData {
		width := ceilDiv(d.Width, blockWidth) >> uint32(mip)
		height := ceilDiv(d.Height, blockHeight) >> uint32(mip)
		size := int(width) * int(height) * int(bytesPerPixel)
		sizes[mip] = size
		mipOffsets[mip] = perLayerTotal
		perLayerTotal += size
	}

	out := make([]byte, perLayerTotal*CubeLayers)

	for mip, level := range mipData {
		size := sizes[mip]
		for layer := 0; layer < CubeLayers; layer++ {
			src := level[layer*size : layer*size+size]
			dstStart := layer*perLayerTotal + mipOffsets[mip]
			copy(out[dstStart:dstStart+size], src)
		}
	}

	return out, nil
}
