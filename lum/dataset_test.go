package lum

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lum-reader/lum/lband"
	"lum-reader/lum/lheader"
)

func TestCreateRejectsUnsupportedSampleType(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := Create(fs, "bad.lum", 4, 3, 1, lband.SampleUnknown, nil)
	assert.ErrorIs(t, err, ErrUnsupportedType)

	// Nothing may be created on a rejected call.
	exists, _ := afero.Exists(fs, "bad.lum")
	assert.False(t, exists)
}

func TestCreateRejectsBandCount(t *testing.T) {
	fs := afero.NewMemMapFs()

	for _, bands := range []int{0, 2, 3, -1} {
		_, err := Create(fs, "bad.lum", 4, 3, bands, lband.SampleUint8, nil)
		assert.ErrorIs(t, err, ErrUnsupportedBandCount)
	}

	exists, _ := afero.Exists(fs, "bad.lum")
	assert.False(t, exists)
}

func TestCreateWithOddExtensionStillWorks(t *testing.T) {
	// Extension mismatch is advisory only.
	fs := afero.NewMemMapFs()

	dataset, err := Create(fs, "picture.dat", 4, 3, 1, lband.SampleUint8, nil)
	require.NoError(t, err)
	defer dataset.Close()

	width, height := dataset.RasterSize()
	assert.Equal(t, 4, width)
	assert.Equal(t, 3, height)
}

func TestOpenRejectsZeroWidth(t *testing.T) {
	fs := afero.NewMemMapFs()
	header := lheader.Encode(lheader.Header{
		Width: 0, Height: 3,
		BitsTag: "08", OrderTag: lheader.OrderTagLittle,
	})
	require.NoError(t, afero.WriteFile(fs, "zero.lum", header, 0644))

	_, err := OpenPath(fs, "zero.lum", AccessReadOnly)
	assert.ErrorIs(t, err, lheader.ErrInvalidGeometry)
}

func TestOpenRejectsFlol(t *testing.T) {
	fs := afero.NewMemMapFs()
	bs := append([]byte{1, 0, 0, 0, 1, 0, 0, 0}, "FLOL"...)
	bs = append(bs, 0xDE, 0xAD, 0xBE, 0xEF)
	require.NoError(t, afero.WriteFile(fs, "weird.lum", bs, 0644))

	assert.True(t, Identify(bs))

	_, err := OpenPath(fs, "weird.lum", AccessReadOnly)
	assert.ErrorIs(t, err, lheader.ErrUnsupportedVariant)
}

func TestOpenTransfersHandleOwnership(t *testing.T) {
	fs := afero.NewMemMapFs()
	dataset, err := Create(fs, "own.lum", 2, 2, 1, lband.SampleUint8, nil)
	require.NoError(t, err)
	require.NoError(t, dataset.Close())

	info, err := CreateOpenInfo(fs, "own.lum", AccessReadOnly)
	require.NoError(t, err)

	opened, err := Open(info)
	require.NoError(t, err)
	defer opened.Close()

	assert.Nil(t, info.File)
	assert.NoError(t, info.Close())
}

func TestGeoTransform(t *testing.T) {
	fs := afero.NewMemMapFs()
	dataset, err := Create(fs, "geo.lum", 4, 3, 1, lband.SampleUint8, nil)
	require.NoError(t, err)
	defer dataset.Close()

	transform, err := dataset.GeoTransform()
	require.NoError(t, err)
	assert.Equal(t, [6]float64{0, 1, 0, 0, 0, 1}, transform)
}

func TestRasterBandBounds(t *testing.T) {
	fs := afero.NewMemMapFs()
	dataset, err := Create(fs, "bands.lum", 4, 3, 1, lband.SampleUint8, nil)
	require.NoError(t, err)
	defer dataset.Close()

	assert.Equal(t, 1, dataset.RasterCount())

	band, err := dataset.RasterBand(1)
	require.NoError(t, err)
	assert.Equal(t, lband.InterpGrayIndex, band.ColorInterp())
	assert.Equal(t, lband.SampleUint8, band.SampleType())

	_, err = dataset.RasterBand(0)
	assert.ErrorIs(t, err, ErrBandOutOfRange)
	_, err = dataset.RasterBand(2)
	assert.ErrorIs(t, err, ErrBandOutOfRange)
}

func TestAuxMetadataRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()

	dataset, err := Create(fs, "meta.lum", 2, 2, 1, lband.SampleUint8, nil)
	require.NoError(t, err)
	dataset.SetMetadataItem("SENSOR", "luminance-cam-3")
	dataset.SetMetadataItem("UNITS", "cd/m2")
	require.NoError(t, dataset.Close())

	exists, err := afero.Exists(fs, "meta.lum.aux.json")
	require.NoError(t, err)
	assert.True(t, exists)

	reopened, err := OpenPath(fs, "meta.lum", AccessReadOnly)
	require.NoError(t, err)
	defer reopened.Close()

	sensor, ok := reopened.MetadataItem("SENSOR")
	assert.True(t, ok)
	assert.Equal(t, "luminance-cam-3", sensor)

	units, ok := reopened.MetadataItem("UNITS")
	assert.True(t, ok)
	assert.Equal(t, "cd/m2", units)

	_, ok = reopened.MetadataItem("MISSING")
	assert.False(t, ok)
}

func TestCloseIsIdempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	dataset, err := Create(fs, "close.lum", 2, 2, 1, lband.SampleUint8, nil)
	require.NoError(t, err)

	assert.NoError(t, dataset.Close())
	assert.NoError(t, dataset.Close())
}
