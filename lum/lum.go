// Package lum reads and creates rasters in the LUM format: a 12-byte
// header carrying width, height, bit depth and byte order, followed by
// raw uninterleaved grayscale samples.
package lum

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"lum-reader/lum/lband"
	"lum-reader/lum/lheader"
)

const (
	DriverName = "LUM"
	Extension  = "lum"
)

// RegisterLUM publishes the LUM driver into the registry. Safe to call
// more than once.
func RegisterLUM() {
	Register(&Driver{
		Name:          DriverName,
		LongName:      "LUM (.lum)",
		Extension:     Extension,
		RasterCapable: true,
		VirtualIO:     true,
		CreationSampleTypes: []lband.SampleType{
			lband.SampleUint8,
			lband.SampleUint16,
		},
		IdentifyFn: Identify,
		OpenFn:     Open,
		CreateFn:   Create,
	})
}

// Identify reports whether bs looks like the start of a LUM file.
func Identify(bs []byte) bool {
	return lheader.Identify(bs)
}

// Open parses the header in info and builds a dataset over the open
// handle. On success the dataset owns the handle and info.File is
// nil-ed; on failure the handle is closed and no dataset is returned.
func Open(info *OpenInfo) (*Dataset, error) {
	if !lheader.Identify(info.Header) {
		return nil, errors.Wrapf(lheader.ErrNotLUM, "%q", info.Path)
	}
	if info.File == nil {
		return nil, errors.Errorf("open %q: no file handle", info.Path)
	}

	header, err := lheader.Decode(info.Header)
	if err != nil {
		_ = info.Close()
		return nil, errors.Wrapf(err, "open %q", info.Path)
	}
	stride, err := header.Stride()
	if err != nil {
		_ = info.Close()
		return nil, errors.Wrapf(err, "open %q", info.Path)
	}

	dataset := &Dataset{
		fs:     info.Fs,
		path:   info.Path,
		access: info.Access,
		width:  int(header.Width),
		height: int(header.Height),
	}
	// Ownership of the handle moves to the dataset.
	dataset.file = info.File
	info.File = nil

	band := lband.CreateBand(
		dataset.file,
		lheader.HeaderSize,
		header.SampleType().Size(),
		stride,
		dataset.width,
		dataset.height,
		header.SampleType(),
		header.ByteOrder(),
		false,
	)
	band.SetColorInterp(lband.InterpGrayIndex)
	dataset.bands = []*lband.Band{band}

	// No world file lookup; the transform is the identity from here on.
	dataset.geoTransform = [6]float64{0, 1, 0, 0, 0, 1}
	dataset.geoTransformValid = true

	dataset.tryLoadAux()

	return dataset, nil
}

// OpenPath opens path as a LUM dataset.
func OpenPath(fs afero.Fs, path string, access Access) (*Dataset, error) {
	info, err := CreateOpenInfo(fs, path, access)
	if err != nil {
		return nil, err
	}
	dataset, err := Open(info)
	if err != nil {
		_ = info.Close()
		return nil, err
	}
	return dataset, nil
}

// Create writes a fresh LUM header for a width x height raster and
// reopens the file in update mode, returning the dataset ready for
// pixel writes. options is accepted for registry compatibility; the
// format defines no creation options.
func Create(fs afero.Fs, path string, width, height, bands int, sampleType lband.SampleType, options map[string]string) (*Dataset, error) {
	if sampleType != lband.SampleUint8 && sampleType != lband.SampleUint16 {
		return nil, errors.Wrapf(ErrUnsupportedType,
			"attempt to create LUM dataset with sample type %s, only Uint8 and Uint16 supported", sampleType)
	}
	if bands != 1 {
		return nil, errors.Wrapf(ErrUnsupportedBandCount,
			"attempt to create LUM dataset with %d bands, must be 1 (grayscale)", bands)
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if !strings.EqualFold(ext, Extension) {
		slog.Warn("extension for lum file should be .lum", "path", path)
	}

	file, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "attempt to create file %q failed", path)
	}

	header := lheader.ForCreate(uint32(width), uint32(height), sampleType)
	_, werr := file.Write(lheader.Encode(header))
	cerr := file.Close()
	if werr != nil {
		return nil, errors.Wrapf(werr, "write header of %q", path)
	}
	if cerr != nil {
		return nil, errors.Wrapf(cerr, "close %q", path)
	}

	return OpenPath(fs, path, AccessUpdate)
}
