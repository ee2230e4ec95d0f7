package addrlib

// pixelIndexWithinMicroTile computes the bit-permuted index of (x, y,
// z) within an 8x8(xthickness) micro tile. The permutation depends on
// the tile type and, for displayable tiles, the pixel bit depth.
func pixelIndexWithinMicroTile(x, y, z, bpp uint32, mode TileMode, tileType TileType) uint32 {
	var bit0, bit1, bit2, bit3, bit4, bit5 uint32
	var bit6, bit7, bit8 uint32

	x0, x1, x2 := bit(x, 0), bit(x, 1), bit(x, 2)
	y0, y1, y2 := bit(y, 0), bit(y, 1), bit(y, 2)
	z0, z1, z2 := bit(z, 0), bit(z, 1), bit(z, 2)

	thickness := mode.Thickness()

	switch {
	case tileType == ThickTiling:
		bit0, bit1, bit2 = x0, y0, z0
		bit3, bit4, bit5 = x1, y1, z1
		bit6, bit7 = x2, y2
	case tileType == NonDisplayable:
		bit0, bit1, bit2, bit3, bit4, bit5 = x0, y0, x1, y1, x2, y2
	default:
		switch bpp {
		case 8:
			bit0, bit1, bit2, bit3, bit4, bit5 = x0, x1, x2, y1, y0, y2
		case 16:
			bit0, bit1, bit2, bit3, bit4, bit5 = x0, x1, x2, y0, y1, y2
		case 64:
			bit0, bit1, bit2, bit3, bit4, bit5 = x0, y0, x1, x2, y1, y2
		case 128:
			bit0, bit1, bit2, bit3, bit4, bit5 = y0, x0, x1, x2, y1, y2
		default:
			bit0, bit1, bit2, bit3, bit4, bit5 = x0, x1, y0, x2, y1, y2
		}
	}

	if tileType != ThickTiling && thickness > 1 {
		bit6, bit7 = z0, z1
	}
	if thickness == 8 {
		bit8 = z2
	}

	return bit0 |
		(bit1 << 1) |
		(bit2 << 2) |
		(bit3 << 3) |
		(bit4 << 4) |
		(bit5 << 5) |
		(bit6 << 6) |
		(bit7 << 7) |
		(bit8 << 8)
}
