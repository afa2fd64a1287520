package geotrans

import "testing"

func TestExpand(t *testing.T) {
	geot := GeoTransform{1000, 1, 0, 2000, 0, -1}

	expanded := geot.Expand(10)
	if expanded.OriginX() != 990 || expanded.OriginY() != 2010 {
		t.Errorf("unexpected expanded origin: (%v, %v)", expanded.OriginX(), expanded.OriginY())
	}
	if expanded.PixelWidth() != 1 || expanded.PixelHeight() != -1 {
		t.Errorf("pixel size must not change: %v", expanded)
	}

	if geot.Expand(0) != geot {
		t.Errorf("margin 0 must leave the geotransform unchanged: %v", geot.Expand(0))
	}
}

func TestExpandFractionalPixelSize(t *testing.T) {
	geot := GeoTransform{100, 0.5, 0, 50, 0, -0.25}
	expanded := geot.Expand(4)
	if expanded.OriginX() != 98 || expanded.OriginY() != 51 {
		t.Errorf("unexpected expanded origin: (%v, %v)", expanded.OriginX(), expanded.OriginY())
	}
}

func TestPixelOffset(t *testing.T) {
	mosaic := GeoTransform{0, 1, 0, 2000, 0, -1}

	col, row := PixelOffset(990, 1990, mosaic)
	if col != 990 || row != 10 {
		t.Errorf("unexpected offset: (%v, %v)", col, row)
	}

	// fractional pixel sizes floor toward the pixel at or just before the
	// target
	fine := GeoTransform{0, 0.5, 0, 100, 0, -0.5}
	col, row = PixelOffset(10.3, 89.8, fine)
	if col != 20 || row != 20 {
		t.Errorf("unexpected offset: (%v, %v)", col, row)
	}
}

func TestPixelOffsetClampsNegative(t *testing.T) {
	mosaic := GeoTransform{0, 1, 0, 2000, 0, -1}

	// target above and left of the mosaic extent
	col, row := PixelOffset(-10, 2010, mosaic)
	if col != 0 || row != 0 {
		t.Errorf("offsets outside the mosaic must clamp to 0: (%v, %v)", col, row)
	}
}

func TestClampWindow(t *testing.T) {
	width, height := ClampWindow(990, 0, 120, 120, 2000, 2000)
	if width != 120 || height != 120 {
		t.Errorf("interior window must keep candidate size: (%v, %v)", width, height)
	}

	width, height = ClampWindow(1950, 1900, 120, 120, 2000, 2000)
	if width != 50 || height != 100 {
		t.Errorf("window must clamp to remaining extent: (%v, %v)", width, height)
	}
}

func TestClampWindowOutsideReference(t *testing.T) {
	// an offset beyond the reference extent must never yield a negative
	// window
	width, height := ClampWindow(1480, 490, 120, 120, 1000, 1000)
	if width != 0 || height != 120 {
		t.Errorf("unexpected clamped window: (%v, %v)", width, height)
	}

	width, height = ClampWindow(1480, 1200, 120, 120, 1000, 1000)
	if width != 0 || height != 0 {
		t.Errorf("unexpected clamped window: (%v, %v)", width, height)
	}
}

func TestInnerOffset(t *testing.T) {
	orig := GeoTransform{1000, 1, 0, 2000, 0, -1}
	padded := GeoTransform{990, 1, 0, 2010, 0, -1}

	col, row := InnerOffset(orig, padded)
	if col != 10 || row != 10 {
		t.Errorf("unexpected inner offset: (%v, %v)", col, row)
	}
}

func TestInnerOffsetTruncatesTowardZero(t *testing.T) {
	// unlike PixelOffset, the inner offset truncates instead of flooring
	orig := GeoTransform{990.5, 1, 0, 2000, 0, -1}
	padded := GeoTransform{1000, 1, 0, 2000, 0, -1}

	col, _ := InnerOffset(orig, padded)
	if col != -9 {
		t.Errorf("expected truncation toward zero, got %v", col)
	}
}

// A 100x100 tile with origin (1000, 2000) and pixel size (1, -1), padded
// with margin 10 against a mosaic covering (0, 0) to (2000, 2000) at the
// same pixel size, yields a 120x120 window with origin (990, 2010).
func TestPadWindowArithmetic(t *testing.T) {
	tile := GeoTransform{1000, 1, 0, 2000, 0, -1}
	mosaic := GeoTransform{0, 1, 0, 2000, 0, -1}
	margin := 10

	expanded := tile.Expand(margin)
	if expanded.OriginX() != 990 || expanded.OriginY() != 2010 {
		t.Errorf("unexpected expanded origin: (%v, %v)", expanded.OriginX(), expanded.OriginY())
	}

	offX, offY := PixelOffset(expanded.OriginX(), expanded.OriginY(), mosaic)
	if offX != 990 || offY != 0 {
		t.Errorf("unexpected mosaic offset: (%v, %v)", offX, offY)
	}

	width, height := ClampWindow(offX, offY, 100+2*margin, 100+2*margin, 2000, 2000)
	if width != 120 || height != 120 {
		t.Errorf("unexpected window size: (%v, %v)", width, height)
	}
}
