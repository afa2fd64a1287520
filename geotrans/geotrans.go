// Package geotrans implements the affine geotransform arithmetic shared by
// the padding and cropping operations. It converts between world coordinates
// and pixel coordinates and computes integer pixel offsets between rasters
// that share pixel size but differ in origin. The package performs no I/O.
package geotrans

import "math"

// GeoTransform holds the six affine coefficients in GDAL order:
// [x_origin, pixel_width, x_rotation, y_origin, y_rotation, pixel_height].
// Pixel (col, row) maps to world coordinates as
//
//	x = gt[0] + col*gt[1] + row*gt[2]
//	y = gt[3] + col*gt[4] + row*gt[5]
//
// Grids are assumed axis-aligned so the rotation terms are not used for
// offset math. pixel_height is negative for north-up rasters.
type GeoTransform [6]float64

func (gt GeoTransform) OriginX() float64     { return gt[0] }
func (gt GeoTransform) OriginY() float64     { return gt[3] }
func (gt GeoTransform) PixelWidth() float64  { return gt[1] }
func (gt GeoTransform) PixelHeight() float64 { return gt[5] }

// Expand returns the geotransform of the same raster padded by margin
// pixels on every side. Padding moves the top-left world coordinate outward
// by exactly margin pixel widths and heights in the raster's own grid.
func (gt GeoTransform) Expand(margin int) GeoTransform {
	out := gt
	out[0] -= float64(margin) * gt[1]
	out[3] -= float64(margin) * gt[5]
	return out
}

// PixelOffset computes, in the reference raster's pixel grid, the integer
// pixel coordinate whose world position is at or just before
// (targetX, targetY). Negative offsets are clamped to 0: a target outside
// the reference extent silently truncates the available margin on that side
// rather than failing.
func PixelOffset(targetX, targetY float64, ref GeoTransform) (int, int) {
	col := math.Floor(math.Max((targetX-ref[0])/ref[1], 0))
	row := math.Floor(math.Max((ref[3]-targetY)/math.Abs(ref[5]), 0))
	return int(col), int(row)
}

// ClampWindow limits a candidate window size to the reference raster's
// remaining extent from (offCol, offRow), preventing reads past the
// reference bounds. The result is never negative: an offset at or beyond
// the reference extent yields a zero-size window.
func ClampWindow(offCol, offRow, candWidth, candHeight, refWidth, refHeight int) (int, int) {
	width := refWidth - offCol
	if candWidth < width {
		width = candWidth
	}
	if width < 0 {
		width = 0
	}
	height := refHeight - offRow
	if candHeight < height {
		height = candHeight
	}
	if height < 0 {
		height = 0
	}
	return width, height
}

// InnerOffset computes the pixel offset of orig's origin inside padded by
// direct geotransform subtraction. Both rasters must share pixel size. The
// result is truncated toward zero, not floored: the offset is expected to
// be a small non-negative margin that resolves orig's own extent exactly.
func InnerOffset(orig, padded GeoTransform) (int, int) {
	col := int((orig[0] - padded[0]) / padded[1])
	row := int((padded[3] - orig[3]) / math.Abs(padded[5]))
	return col, row
}
