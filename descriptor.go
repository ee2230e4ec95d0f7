package gx2tile

// SurfaceDescriptor is a view over a packed Wii U GPU texture: the
// base mip level plus any additional mips, described by dimensions,
// format, tiling scheme, and per-mip byte offsets. It owns none of the
// backing byte slices.
type SurfaceDescriptor struct {
	Width, Height      uint32
	DepthOrArrayLayers uint32
	MipmapCount        uint32
	Format             SurfaceFormat
	Aa                 AaMode
	Dim                SurfaceDim
	TileMode           TileMode
	Swizzle            uint32
	Pitch              uint32
	ImageData          []byte
	MipmapData         []byte
	MipmapOffsets      [13]uint32
}

const maxMipmapCount = 14

// validate checks the invariants spec.md §3/§7 require before any
// byte is read: dimension overflow, mip count, and offset bounds.
func (d *SurfaceDescriptor) validate() error {
	if d.MipmapCount > maxMipmapCount {
		return errInvalidSurface(d.Width, d.Height, d.DepthOrArrayLayers, d.Format, d.MipmapCount)
	}

	w, h, dep := uint64(d.Width), uint64(d.Height), uint64(d.DepthOrArrayLayers)
	bpp := uint64(d.Format.BytesPerPixel())
	if w != 0 && h != 0 && dep != 0 && bpp != 0 {
		const max32 = 0xFFFFFFFF

		product := w * h
		if product > max32 {
			return errInvalidSurface(d.Width, d.Height, d.DepthOrArrayLayers, d.Format, d.MipmapCount)
		}
		product *= dep
		if product > max32 {
			return errInvalidSurface(d.Width, d.Height, d.DepthOrArrayLayers, d.Format, d.MipmapCount)
		}
		product *= bpp
		if product > max32 {
			return errInvalidSurface(d.Width, d.Height, d.DepthOrArrayLayers, d.Format, d.MipmapCount)
		}
	}

	if d.MipmapCount <= 1 {
		return nil
	}

	imageLen, mipmapLen := len(d.ImageData), len(d.MipmapData)
	if d.MipmapOffsets[0] != 0 && int(d.MipmapOffsets[0]) > imageLen {
		return errInvalidMipmapOffsets(d.MipmapOffsets, imageLen, mipmapLen)
	}
	for _, off := range d.MipmapOffsets[1:] {
		if off != 0 && int(off) > mipmapLen {
			return errInvalidMipmapOffsets(d.MipmapOffsets, imageLen, mipmapLen)
		}
	}

	return nil
}

// pipeBankSwizzle splits d.Swizzle into its pipe and bank components.
func (d *SurfaceDescriptor) pipeBankSwizzle() (pipe, bank uint32) {
	return (d.Swizzle >> 8) & 1, (d.Swizzle >> 9) & 3
}
