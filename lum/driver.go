package lum

import (
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"lum-reader/lum/lband"
	"lum-reader/lum/lheader"
)

type (
	// Driver describes one raster format: its identity, capabilities,
	// and the sniff/open/create entry points.
	Driver struct {
		Name                string
		LongName            string
		Extension           string
		RasterCapable       bool
		VirtualIO           bool
		CreationSampleTypes []lband.SampleType

		IdentifyFn func(bs []byte) bool
		OpenFn     func(info *OpenInfo) (*Dataset, error)
		CreateFn   func(fs afero.Fs, path string, width, height, bands int, sampleType lband.SampleType, options map[string]string) (*Dataset, error)
	}
)

var (
	registryMu    sync.Mutex
	registry      = map[string]*Driver{}
	registryOrder []string
)

// Register adds a driver to the process-wide registry. Registration is
// keyed by name and idempotent: registering the same name again is a
// no-op, so it is safe to call from several initialization paths.
func Register(driver *Driver) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[driver.Name]; ok {
		return
	}
	registry[driver.Name] = driver
	registryOrder = append(registryOrder, driver.Name)
}

func DriverByName(name string) *Driver {
	registryMu.Lock()
	defer registryMu.Unlock()
	return registry[name]
}

// CreateOpenInfo opens path and reads the probe bytes every driver
// sniffs on. A file shorter than one header yields a short Header
// slice, which no sniffer accepts.
func CreateOpenInfo(fs afero.Fs, path string, access Access) (*OpenInfo, error) {
	flag := os.O_RDONLY
	if access == AccessUpdate {
		flag = os.O_RDWR
	}
	file, err := fs.OpenFile(path, flag, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "open %q", path)
	}

	header := make([]byte, lheader.HeaderSize)
	n, err := io.ReadFull(file, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		_ = file.Close()
		return nil, errors.Wrapf(err, "read header of %q", path)
	}

	return &OpenInfo{
		Fs:     fs,
		Path:   path,
		Access: access,
		Header: header[:n],
		File:   file,
	}, nil
}

// Close releases the file handle if no driver has claimed it.
func (info *OpenInfo) Close() error {
	if info.File == nil {
		return nil
	}
	file := info.File
	info.File = nil
	return file.Close()
}

// OpenAny probes path against every registered driver in registration
// order. A driver whose sniffer declines is not an error; the next one
// gets its turn.
func OpenAny(fs afero.Fs, path string, access Access) (*Dataset, error) {
	info, err := CreateOpenInfo(fs, path, access)
	if err != nil {
		return nil, err
	}

	registryMu.Lock()
	names := make([]string, len(registryOrder))
	copy(names, registryOrder)
	registryMu.Unlock()

	for _, name := range names {
		driver := DriverByName(name)
		if driver.IdentifyFn == nil || !driver.IdentifyFn(info.Header) {
			continue
		}
		dataset, err := driver.OpenFn(info)
		if err != nil {
			_ = info.Close()
			return nil, err
		}
		return dataset, nil
	}

	_ = info.Close()
	return nil, errors.Wrapf(ErrNotRecognized, "%q", path)
}
