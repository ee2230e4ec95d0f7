package addrlib

// addrFromCoordLinear computes the byte offset of (x, y, slice, sample)
// in an untiled (LinearGeneral/LinearAligned) surface.
func addrFromCoordLinear(x, y, slice, sample, bpp, pitch, height, numSlices uint32) uint32 {
	sliceSize := pitch * height

	sliceOffset := sliceSize * (slice + sample*numSlices)
	rowOffset := y * pitch
	pixOffset := x

	return (sliceOffset + rowOffset + pixOffset) * bpp / 8
}
