package buffer

import "fmt"

// PathEnumerationError reports that a directory could not be created or
// listed. It is the only error class that is fatal to a whole batch.
type PathEnumerationError struct {
	Dir string
	Err error
}

func (e *PathEnumerationError) Error() string {
	return fmt.Sprintf("cannot enumerate or create directory %s: %v", e.Dir, e.Err)
}

func (e *PathEnumerationError) Unwrap() error { return e.Err }

// TileOpenError reports that a source raster could not be opened or its
// metadata could not be read. The tile is skipped.
type TileOpenError struct {
	Path string
	Err  error
}

func (e *TileOpenError) Error() string {
	return fmt.Sprintf("cannot open raster %s: %v", e.Path, e.Err)
}

func (e *TileOpenError) Unwrap() error { return e.Err }

// IoReadError reports a failed windowed read. The tile is skipped.
type IoReadError struct {
	Path string
	Err  error
}

func (e *IoReadError) Error() string {
	return fmt.Sprintf("cannot read from raster %s: %v", e.Path, e.Err)
}

func (e *IoReadError) Unwrap() error { return e.Err }

// IoWriteError reports a failed dataset creation, metadata assignment or
// windowed write. The tile is skipped.
type IoWriteError struct {
	Path string
	Err  error
}

func (e *IoWriteError) Error() string {
	return fmt.Sprintf("cannot write raster %s: %v", e.Path, e.Err)
}

func (e *IoWriteError) Unwrap() error { return e.Err }

// MissingCounterpartError reports that the reference directory lacks a
// same-named original for a padded tile. The tile is skipped.
type MissingCounterpartError struct {
	Path string
}

func (e *MissingCounterpartError) Error() string {
	return fmt.Sprintf("no original raster of the same name: %s", e.Path)
}
