// Package gdalraster wraps the subset of GDAL used by the padding and
// cropping operations: opening a dataset, reading its size, geotransform
// and projection, windowed band-1 reads and writes at Float32, and creating
// single-band GTiff outputs.
package gdalraster

// #include "gdal.h"
// #include "cpl_conv.h"
// #cgo pkg-config: gdal
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/nci/vrtbuffer/geotrans"
)

// Dataset wraps an opened GDAL dataset handle. A Dataset is not safe for
// concurrent use. Close must be called to release the handle and flush
// pending writes.
type Dataset struct {
	hDS  C.GDALDatasetH
	path string
}

// Open opens the dataset at path read-only.
func Open(path string) (*Dataset, error) {
	pathC := C.CString(path)
	defer C.free(unsafe.Pointer(pathC))

	hDS := C.GDALOpen(pathC, C.GA_ReadOnly)
	if hDS == nil {
		return nil, fmt.Errorf("GDAL could not open dataset: %s", path)
	}

	return &Dataset{hDS: hDS, path: path}, nil
}

// Create creates a single-band Float32 GTiff dataset at path.
func Create(path string, width, height int) (*Dataset, error) {
	driverNameC := C.CString("GTiff")
	defer C.free(unsafe.Pointer(driverNameC))

	hDriver := C.GDALGetDriverByName(driverNameC)
	if hDriver == nil {
		return nil, fmt.Errorf("GTiff driver is not registered")
	}

	pathC := C.CString(path)
	defer C.free(unsafe.Pointer(pathC))

	hDS := C.GDALCreate(hDriver, pathC, C.int(width), C.int(height), 1, C.GDT_Float32, nil)
	if hDS == nil {
		return nil, fmt.Errorf("GDAL could not create dataset: %s", path)
	}

	return &Dataset{hDS: hDS, path: path}, nil
}

// Close releases the underlying GDAL handle. Closing a dataset created with
// Create flushes its pixel data and metadata to disk.
func (ds *Dataset) Close() {
	if ds.hDS != nil {
		C.GDALClose(ds.hDS)
		ds.hDS = nil
	}
}

// Path returns the file path the dataset was opened or created with.
func (ds *Dataset) Path() string {
	return ds.path
}

// Size returns the raster width and height in pixels.
func (ds *Dataset) Size() (int, int) {
	return int(C.GDALGetRasterXSize(ds.hDS)), int(C.GDALGetRasterYSize(ds.hDS))
}

// GeoTransform returns the dataset's affine geotransform.
func (ds *Dataset) GeoTransform() (geotrans.GeoTransform, error) {
	var geot geotrans.GeoTransform
	cErr := C.GDALGetGeoTransform(ds.hDS, (*C.double)(unsafe.Pointer(&geot[0])))
	if cErr != C.CE_None {
		return geot, fmt.Errorf("dataset has no geotransform: %s", ds.path)
	}
	return geot, nil
}

// SetGeoTransform assigns the affine geotransform on a writable dataset.
func (ds *Dataset) SetGeoTransform(geot geotrans.GeoTransform) error {
	cErr := C.GDALSetGeoTransform(ds.hDS, (*C.double)(unsafe.Pointer(&geot[0])))
	if cErr != C.CE_None {
		return fmt.Errorf("GDALSetGeoTransform() failed: %s", ds.path)
	}
	return nil
}

// Projection returns the dataset's projection as a WKT string. The string
// is empty if the dataset carries no projection.
func (ds *Dataset) Projection() string {
	return C.GoString(C.GDALGetProjectionRef(ds.hDS))
}

// SetProjection assigns a WKT projection on a writable dataset.
func (ds *Dataset) SetProjection(wkt string) error {
	wktC := C.CString(wkt)
	defer C.free(unsafe.Pointer(wktC))

	cErr := C.GDALSetProjection(ds.hDS, wktC)
	if cErr != C.CE_None {
		return fmt.Errorf("GDALSetProjection() failed: %s", ds.path)
	}
	return nil
}

// ReadFloat32 reads a band-1 pixel window of width x height at
// (offX, offY) into a dense row-major buffer of bufWidth x bufHeight
// Float32 samples. GDAL resamples when the buffer size differs from the
// window size. The window must lie within the raster bounds; callers clamp
// before issuing reads.
func (ds *Dataset) ReadFloat32(offX, offY, width, height, bufWidth, bufHeight int) ([]float32, error) {
	hBand := C.GDALGetRasterBand(ds.hDS, 1)
	if hBand == nil {
		return nil, fmt.Errorf("GDALGetRasterBand() failed: %s", ds.path)
	}

	data := make([]float32, bufWidth*bufHeight)
	if len(data) == 0 {
		return data, nil
	}

	cErr := C.GDALRasterIO(hBand, C.GF_Read, C.int(offX), C.int(offY), C.int(width), C.int(height),
		unsafe.Pointer(&data[0]), C.int(bufWidth), C.int(bufHeight), C.GDT_Float32, 0, 0)
	if cErr != C.CE_None {
		return nil, fmt.Errorf("GDALRasterIO() read failed: %s, offset (%d, %d), size (%d, %d)",
			ds.path, offX, offY, width, height)
	}

	return data, nil
}

// WriteFloat32 writes a dense row-major buffer of width x height Float32
// samples into band 1 at (offX, offY).
func (ds *Dataset) WriteFloat32(offX, offY, width, height int, data []float32) error {
	if len(data) != width*height {
		return fmt.Errorf("write buffer has %d samples, window needs %d", len(data), width*height)
	}
	if len(data) == 0 {
		return nil
	}

	hBand := C.GDALGetRasterBand(ds.hDS, 1)
	if hBand == nil {
		return fmt.Errorf("GDALGetRasterBand() failed: %s", ds.path)
	}

	cErr := C.GDALRasterIO(hBand, C.GF_Write, C.int(offX), C.int(offY), C.int(width), C.int(height),
		unsafe.Pointer(&data[0]), C.int(width), C.int(height), C.GDT_Float32, 0, 0)
	if cErr != C.CE_None {
		return fmt.Errorf("GDALRasterIO() write failed: %s, offset (%d, %d), size (%d, %d)",
			ds.path, offX, offY, width, height)
	}

	return nil
}
