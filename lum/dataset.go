package lum

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"lum-reader/lum/lband"
)

func (d *Dataset) Path() string {
	return d.path
}

func (d *Dataset) Access() Access {
	return d.access
}

// RasterSize returns the pixel dimensions of the dataset.
func (d *Dataset) RasterSize() (int, int) {
	return d.width, d.height
}

func (d *Dataset) RasterCount() int {
	return len(d.bands)
}

// RasterBand returns band i, counted from 1.
func (d *Dataset) RasterBand(i int) (*lband.Band, error) {
	if i < 1 || i > len(d.bands) {
		return nil, errors.Wrapf(ErrBandOutOfRange, "band %d of %d", i, len(d.bands))
	}
	return d.bands[i-1], nil
}

// GeoTransform returns the six affine coefficients mapping pixel/line
// coordinates to georeferenced coordinates. For this format the
// transform is always the identity and is valid from the moment the
// dataset opened.
func (d *Dataset) GeoTransform() ([6]float64, error) {
	if !d.geoTransformValid {
		return [6]float64{}, ErrNoGeoTransform
	}
	return d.geoTransform, nil
}

func (d *Dataset) MetadataItem(key string) (string, bool) {
	value, ok := d.metadata[key]
	return value, ok
}

func (d *Dataset) SetMetadataItem(key string, value string) {
	if d.metadata == nil {
		d.metadata = map[string]string{}
	}
	d.metadata[key] = value
	d.metadataDirty = true
}

func (d *Dataset) auxPath() string {
	return d.path + ".aux.json"
}

// tryLoadAux loads sidecar metadata if a readable sidecar exists.
// Absence or malformed content is not an error; the dataset simply
// starts with no metadata.
func (d *Dataset) tryLoadAux() {
	bs, err := afero.ReadFile(d.fs, d.auxPath())
	if err != nil {
		return
	}
	metadata := map[string]string{}
	if err := json.Unmarshal(bs, &metadata); err != nil {
		return
	}
	d.metadata = metadata
}

func (d *Dataset) saveAux() error {
	bs, err := json.MarshalIndent(d.metadata, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal aux metadata")
	}
	if err := afero.WriteFile(d.fs, d.auxPath(), bs, 0644); err != nil {
		return errors.Wrapf(err, "write %q", d.auxPath())
	}
	d.metadataDirty = false
	return nil
}

// Close flushes and releases the dataset. It is idempotent; only the
// first call does work. A failed close of the underlying file is an
// I/O error and is reported.
func (d *Dataset) Close() error {
	if d.file == nil {
		return nil
	}
	file := d.file
	d.file = nil

	var firstErr error
	if d.metadataDirty {
		firstErr = d.saveAux()
	}
	if d.access == AccessUpdate {
		if err := file.Sync(); err != nil && firstErr == nil {
			firstErr = errors.Wrapf(err, "flush %q", d.path)
		}
	}
	if err := file.Close(); err != nil && firstErr == nil {
		firstErr = errors.Wrapf(err, "close %q", d.path)
	}
	return firstErr
}
