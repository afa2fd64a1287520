// Package buffer pads georeferenced raster tiles with a pixel margin
// sourced from a mosaic reference and crops the padded tiles back down to
// the original footprint. Padding gives moving-window raster calculations
// the border context they need to avoid edge artifacts; cropping discards
// that border once the calculation is done.
package buffer

import (
	"fmt"

	"github.com/nci/vrtbuffer/gdalraster"
	"github.com/nci/vrtbuffer/geotrans"
)

// PadTile reads an expanded pixel window for the tile at tilePath from the
// mosaic and writes it to outputPath as a single-band Float32 GTiff with a
// correspondingly shifted origin. The mosaic handle is opened once per
// batch by the caller and reused read-only for every tile; it must never be
// reopened per tile.
//
// A tile near the mosaic boundary receives an asymmetric, smaller margin on
// the sides where the expanded window would leave the mosaic extent.
func PadTile(tilePath, outputPath string, margin int, mosaic *gdalraster.Dataset) error {
	ds, err := gdalraster.Open(tilePath)
	if err != nil {
		return &TileOpenError{Path: tilePath, Err: err}
	}
	defer ds.Close()

	geot, err := ds.GeoTransform()
	if err != nil {
		return &TileOpenError{Path: tilePath, Err: err}
	}
	projection := ds.Projection()

	newGeot := geot.Expand(margin)

	mosaicGeot, err := mosaic.GeoTransform()
	if err != nil {
		return &TileOpenError{Path: mosaic.Path(), Err: err}
	}

	offX, offY := geotrans.PixelOffset(newGeot.OriginX(), newGeot.OriginY(), mosaicGeot)

	// Make sure we don't exceed either raster's dimensions
	tileWidth, tileHeight := ds.Size()
	mosaicWidth, mosaicHeight := mosaic.Size()
	width, height := geotrans.ClampWindow(offX, offY,
		tileWidth+2*margin, tileHeight+2*margin, mosaicWidth, mosaicHeight)
	if width <= 0 || height <= 0 {
		return &IoReadError{Path: mosaic.Path(),
			Err: fmt.Errorf("expanded window for %s lies outside the mosaic extent", tilePath)}
	}

	data, err := mosaic.ReadFloat32(offX, offY, width, height, width, height)
	if err != nil {
		return &IoReadError{Path: mosaic.Path(), Err: err}
	}

	out, err := gdalraster.Create(outputPath, width, height)
	if err != nil {
		return &IoWriteError{Path: outputPath, Err: err}
	}
	defer out.Close()

	if err := out.SetGeoTransform(newGeot); err != nil {
		return &IoWriteError{Path: outputPath, Err: err}
	}
	if err := out.SetProjection(projection); err != nil {
		return &IoWriteError{Path: outputPath, Err: err}
	}
	if err := out.WriteFloat32(0, 0, width, height, data); err != nil {
		return &IoWriteError{Path: outputPath, Err: err}
	}

	return nil
}
