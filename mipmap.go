package gx2tile

import (
	"golang.org/x/sync/errgroup"

	"github.com/gx2tile/gx2tile/addrlib"
)

// DriverOptions configures the per-element walk shared by
// DeswizzleMipmap and SwizzleMipmap.
type DriverOptions struct {
	// Parallel runs one goroutine per z-slice instead of a single
	// serial walk. Each slice writes a disjoint output range, so
	// this is always safe; it is opt-in because spec.md leaves the
	// choice to the implementation and a single small mip gains
	// nothing from the goroutine overhead.
	Parallel bool
}

// DeswizzleMipmap converts one mip level's tiled source data into a
// linear row-major buffer. Dimensions and bytesPerPixel are in
// elements (one block for compressed formats, one texel otherwise).
func DeswizzleMipmap(width, height, depthOrArrayLayers uint32, source []byte, swizzle, pitch uint32, tileMode TileMode, bytesPerPixel uint32, aa AaMode, opts DriverOptions) ([]byte, error) {
	outputSize := deswizzledSurfaceSize(width, height, depthOrArrayLayers, bytesPerPixel)
	if outputSize == 0 {
		return nil, nil
	}

	expectedSize := swizzledSurfaceSize(width, height, depthOrArrayLayers, swizzle, pitch, tileMode, bytesPerPixel, aa)
	if len(source) < expectedSize {
		return nil, errNotEnoughData(expectedSize, len(source))
	}

	output := make([]byte, outputSize)
	if err := swizzleSurfaceInner(false, width, height, depthOrArrayLayers, source, output, swizzle, pitch, tileMode, bytesPerPixel, aa, opts); err != nil {
		return nil, err
	}
	return output, nil
}

// SwizzleMipmap converts one mip level's linear source data into the
// tiled layout tileMode describes.
func SwizzleMipmap(width, height, depthOrArrayLayers uint32, source []byte, swizzle, pitch uint32, tileMode TileMode, bytesPerPixel uint32, aa AaMode, opts DriverOptions) ([]byte, error) {
	outputSize := swizzledSurfaceSize(width, height, depthOrArrayLayers, swizzle, pitch, tileMode, bytesPerPixel, aa)
	if outputSize == 0 {
		return nil, nil
	}

	expectedSize := deswizzledSurfaceSize(width, height, depthOrArrayLayers, bytesPerPixel)
	if len(source) < expectedSize {
		return nil, errNotEnoughData(expectedSize, len(source))
	}

	output := make([]byte, outputSize)
	if err := swizzleSurfaceInner(true, width, height, depthOrArrayLayers, source, output, swizzle, pitch, tileMode, bytesPerPixel, aa, opts); err != nil {
		return nil, err
	}
	return output, nil
}

func deswizzledSurfaceSize(width, height, depthOrArrayLayers, bytesPerPixel uint32) int {
	return int(width) * int(height) * int(depthOrArrayLayers) * int(bytesPerPixel)
}

// swizzledSurfaceSize computes the required tiled buffer size as the
// largest element address plus one element. The last element's address
// is not always the largest: in macro-tiled modes the pipe and bank bits
// of other elements in the last macro tile can place them higher, so
// every element's address is checked.
func swizzledSurfaceSize(width, height, depthOrArrayLayers, swizzle, pitch uint32, tileMode TileMode, bytesPerPixel uint32, aa AaMode) int {
	if bytesPerPixel == 0 {
		return 0
	}
	bpp := bytesPerPixel * 8

	pipeSwizzle, bankSwizzle := addrlib.PipeBankSwizzle(swizzle)

	in := &addrlib.ComputeSurfaceAddrFromCoordInput{
		X:           saturatingSub(width, 1),
		Y:           saturatingSub(height, 1),
		Slice:       saturatingSub(depthOrArrayLayers, 1),
		Sample:      0,
		Bpp:         bpp,
		Pitch:       pitch,
		Height:      height,
		NumSlices:   depthOrArrayLayers,
		NumSamples:  aa.NumSamples(),
		TileMode:    tileMode,
		IsDepth:     false,
		TileBase:    0,
		CompBits:    0,
		PipeSwizzle: pipeSwizzle,
		BankSwizzle: bankSwizzle,
	}

	maxAddress := addrlib.DispatchComputeSurfaceAddrFromCoord(in)
	for z := uint32(0); z < depthOrArrayLayers; z++ {
		for y := uint32(0); y < height; y++ {
			for x := uint32(0); x < width; x++ {
				in.X, in.Y, in.Slice = x, y, z
				if a := addrlib.DispatchComputeSurfaceAddrFromCoord(in); a > maxAddress {
					maxAddress = a
				}
			}
		}
	}

	return int(maxAddress) + int(bytesPerPixel)
}

func saturatingSub(a, b uint32) uint32 {
	if a < b {
		return 0
	}
	return a - b
}

// swizzleSurfaceInner walks every (x, y, z) element of one mip level,
// looking up its tiled address and copying bytesPerPixel bytes in the
// requested direction.
func swizzleSurfaceInner(swizzleDirection bool, width, height, depthOrArrayLayers uint32, source, output []byte, swizzle, pitch uint32, tileMode TileMode, bytesPerPixel uint32, aa AaMode, opts DriverOptions) error {
	bpp := bytesPerPixel * 8
	pipeSwizzle, bankSwizzle := addrlib.PipeBankSwizzle(swizzle)
	numSamples := aa.NumSamples()

	copyRow := func(z, y uint32) error {
		for x := uint32(0); x < width; x++ {
			in := &addrlib.ComputeSurfaceAddrFromCoordInput{
				X:           x,
				Y:           y,
				Slice:       z,
				Sample:      0,
				Bpp:         bpp,
				Pitch:       pitch,
				Height:      height,
				NumSlices:   depthOrArrayLayers,
				NumSamples:  numSamples,
				TileMode:    tileMode,
				IsDepth:     false,
				TileBase:    0,
				CompBits:    0,
				PipeSwizzle: pipeSwizzle,
				BankSwizzle: bankSwizzle,
			}

			address := int(addrlib.DispatchComputeSurfaceAddrFromCoord(in))
			linear := int((z*width*height+y*width+x)*bytesPerPixel)
			n := int(bytesPerPixel)

			if address+n > len(output) && swizzleDirection {
				return errNotEnoughData(address+n, len(output))
			}
			if address+n > len(source) && !swizzleDirection {
				return errNotEnoughData(address+n, len(source))
			}

			if swizzleDirection {
				copy(output[address:address+n], source[linear:linear+n])
			} else {
				copy(output[linear:linear+n], source[address:address+n])
			}
		}
		return nil
	}

	if !opts.Parallel {
		for z := uint32(0); z < depthOrArrayLayers; z++ {
			for y := uint32(0); y < height; y++ {
				if err := copyRow(z, y); err != nil {
					return err
				}
			}
		}
		return nil
	}

	var g errgroup.Group
	for z := uint32(0); z < depthOrArrayLayers; z++ {
		z := z
		g.Go(func() error {
			for y := uint32(0); y < height; y++ {
				if err := copyRow(z, y); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
