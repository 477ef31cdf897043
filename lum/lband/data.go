package lband

import (
	"encoding/binary"

	"github.com/spf13/afero"
)

type (
	// SampleType identifies the in-memory and on-disk representation of
	// a single raster sample.
	SampleType int

	// ColorInterp is the color interpretation of a band.
	ColorInterp int

	// Band reads and writes one band of a raster laid out with fixed
	// strides inside a byte stream: sample y,x lives at
	// offset + y*lineStride + x*pixelStride. The band never owns the
	// underlying file unless ownFile is set; the surrounding dataset
	// does.
	Band struct {
		file        afero.File
		offset      int64
		pixelStride int
		lineStride  int
		width       int
		height      int
		sampleType  SampleType
		order       binary.ByteOrder
		colorInterp ColorInterp
		ownFile     bool
	}
)

const (
	SampleUnknown SampleType = iota
	SampleUint8
	SampleUint16
)

const (
	InterpUndefined ColorInterp = iota
	InterpGrayIndex
)

var sampleTypeNames = map[SampleType]string{
	SampleUnknown: "Unknown",
	SampleUint8:   "Uint8",
	SampleUint16:  "Uint16",
}

func (t SampleType) String() string {
	name, ok := sampleTypeNames[t]
	if !ok {
		return "Unknown"
	}
	return name
}

// Size returns the width of one sample in bytes.
func (t SampleType) Size() int {
	if t == SampleUint8 {
		return 1
	}
	return 2
}
