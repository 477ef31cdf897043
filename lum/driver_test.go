package lum

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lum-reader/lum/lband"
)

func TestRegisterIsIdempotent(t *testing.T) {
	RegisterLUM()
	RegisterLUM()
	RegisterLUM()

	driver := DriverByName(DriverName)
	require.NotNil(t, driver)
	assert.Equal(t, "LUM (.lum)", driver.LongName)
	assert.True(t, driver.RasterCapable)
	assert.True(t, driver.VirtualIO)
	assert.Equal(t,
		[]lband.SampleType{lband.SampleUint8, lband.SampleUint16},
		driver.CreationSampleTypes)

	count := 0
	registryMu.Lock()
	for _, name := range registryOrder {
		if name == DriverName {
			count++
		}
	}
	registryMu.Unlock()
	assert.Equal(t, 1, count)
}

func TestOpenAny(t *testing.T) {
	RegisterLUM()
	fs := afero.NewMemMapFs()

	created, err := Create(fs, "probe.lum", 5, 4, 1, lband.SampleUint8, nil)
	require.NoError(t, err)
	require.NoError(t, created.Close())

	dataset, err := OpenAny(fs, "probe.lum", AccessReadOnly)
	require.NoError(t, err)
	defer dataset.Close()

	width, height := dataset.RasterSize()
	assert.Equal(t, 5, width)
	assert.Equal(t, 4, height)
}

func TestOpenAny_NotRecognized(t *testing.T) {
	RegisterLUM()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "plain.txt", []byte("hello, not a raster"), 0644))

	_, err := OpenAny(fs, "plain.txt", AccessReadOnly)
	assert.ErrorIs(t, err, ErrNotRecognized)
}

func TestOpenAny_MissingFile(t *testing.T) {
	RegisterLUM()
	fs := afero.NewMemMapFs()

	_, err := OpenAny(fs, "missing.lum", AccessReadOnly)
	assert.Error(t, err)
}

func TestCreateOpenInfoShortFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "tiny.lum", []byte{1, 2, 3}, 0644))

	info, err := CreateOpenInfo(fs, "tiny.lum", AccessReadOnly)
	require.NoError(t, err)
	defer info.Close()

	assert.Len(t, info.Header, 3)
	assert.False(t, Identify(info.Header))
}
