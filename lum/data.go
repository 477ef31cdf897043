package lum

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"lum-reader/lum/lband"
)

type (
	// Access selects read-only or update mode for an open dataset.
	Access int

	// OpenInfo carries what a driver needs to probe a file: the first
	// header bytes and the open handle. A successful Open takes
	// ownership of File and sets the field to nil; whoever still holds
	// a non-nil File is responsible for closing it.
	OpenInfo struct {
		Fs     afero.Fs
		Path   string
		Access Access
		Header []byte
		File   afero.File
	}

	// Dataset is an open raster file: the parsed dimensions, its bands,
	// the geotransform, and the exclusively owned file handle.
	Dataset struct {
		fs     afero.Fs
		path   string
		access Access

		file afero.File

		width  int
		height int
		bands  []*lband.Band

		geoTransform      [6]float64
		geoTransformValid bool

		metadata      map[string]string
		metadataDirty bool
	}
)

const (
	AccessReadOnly Access = iota
	AccessUpdate
)

var (
	ErrNotRecognized        = errors.New("file not recognized by any registered driver")
	ErrUnsupportedType      = errors.New("unsupported sample type")
	ErrUnsupportedBandCount = errors.New("unsupported band count")
	ErrNoGeoTransform       = errors.New("no geotransform available")
	ErrBandOutOfRange       = errors.New("band index out of range")
)
