package buffer

import (
	"github.com/nci/vrtbuffer/gdalraster"
	"github.com/nci/vrtbuffer/geotrans"
)

// CropTile trims the padded raster at paddedPath back down to the size,
// geotransform and projection of the original raster at origPath, writing
// the result to outputPath as a single-band Float32 GTiff.
func CropTile(origPath, paddedPath, outputPath string) error {
	orig, err := gdalraster.Open(origPath)
	if err != nil {
		return &TileOpenError{Path: origPath, Err: err}
	}
	defer orig.Close()

	padded, err := gdalraster.Open(paddedPath)
	if err != nil {
		return &TileOpenError{Path: paddedPath, Err: err}
	}
	defer padded.Close()

	origGeot, err := orig.GeoTransform()
	if err != nil {
		return &TileOpenError{Path: origPath, Err: err}
	}
	paddedGeot, err := padded.GeoTransform()
	if err != nil {
		return &TileOpenError{Path: paddedPath, Err: err}
	}
	projection := orig.Projection()

	offX, offY := geotrans.InnerOffset(origGeot, paddedGeot)
	width, height := orig.Size()

	data, err := padded.ReadFloat32(offX, offY, width, height, width, height)
	if err != nil {
		return &IoReadError{Path: paddedPath, Err: err}
	}

	out, err := gdalraster.Create(outputPath, width, height)
	if err != nil {
		return &IoWriteError{Path: outputPath, Err: err}
	}
	defer out.Close()

	if err := out.SetGeoTransform(origGeot); err != nil {
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
