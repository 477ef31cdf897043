package lband

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"lum-reader/ds"
	"lum-reader/lum/lbytes"
)

var (
	ErrBufferTooSmall = errors.New("buffer too small")
	ErrLineOutOfRange = errors.New("line out of range")
)

// CreateBand configures a strided band over an already open file.
// Samples are presented to callers in native byte order; order declares
// how they are stored in the file, and the band swaps on the way in and
// out when the two differ.
func CreateBand(
	file afero.File,
	offset int64,
	pixelStride int,
	lineStride int,
	width int,
	height int,
	sampleType SampleType,
	order binary.ByteOrder,
	ownFile bool,
) *Band {
	return &Band{
		file:        file,
		offset:      offset,
		pixelStride: pixelStride,
		lineStride:  lineStride,
		width:       width,
		height:      height,
		sampleType:  sampleType,
		order:       order,
		ownFile:     ownFile,
	}
}

func (b *Band) Width() int               { return b.width }
func (b *Band) Height() int              { return b.height }
func (b *Band) SampleType() SampleType   { return b.sampleType }
func (b *Band) ColorInterp() ColorInterp { return b.colorInterp }

func (b *Band) SetColorInterp(interp ColorInterp) {
	b.colorInterp = interp
}

// LineSize returns the number of bytes of one decoded line.
func (b *Band) LineSize() int {
	return b.width * b.sampleType.Size()
}

func (b *Band) swapped() bool {
	return b.sampleType.Size() > 1 && b.order != lbytes.NativeOrder()
}

func (b *Band) lineOffset(y int) int64 {
	return b.offset + int64(y)*int64(b.lineStride)
}

// ReadLine decodes line y into buf as native-order samples. buf must
// hold at least LineSize bytes.
func (b *Band) ReadLine(y int, buf []byte) error {
	if y < 0 || y >= b.height {
		return errors.Wrapf(ErrLineOutOfRange, "line %d of %d", y, b.height)
	}
	size := b.sampleType.Size()
	if len(buf) < b.LineSize() {
		return errors.Wrapf(ErrBufferTooSmall, "%d < %d", len(buf), b.LineSize())
	}
	buf = buf[:b.LineSize()]

	if b.pixelStride == size {
		if _, err := b.file.ReadAt(buf, b.lineOffset(y)); err != nil {
			return errors.Wrapf(err, "read line %d", y)
		}
	} else {
		raw := make([]byte, b.lineStride)
		if _, err := b.file.ReadAt(raw, b.lineOffset(y)); err != nil {
			return errors.Wrapf(err, "read line %d", y)
		}
		for x := 0; x < b.width; x++ {
			copy(buf[x*size:(x+1)*size], raw[x*b.pixelStride:x*b.pixelStride+size])
		}
	}

	if b.swapped() {
		swapSamples(buf, size)
	}
	return nil
}

// WriteLine encodes native-order samples from buf into line y of the
// file. buf is not modified.
func (b *Band) WriteLine(y int, buf []byte) error {
	if y < 0 || y >= b.height {
		return errors.Wrapf(ErrLineOutOfRange, "line %d of %d", y, b.height)
	}
	size := b.sampleType.Size()
	if len(buf) < b.LineSize() {
		return errors.Wrapf(ErrBufferTooSmall, "%d < %d", len(buf), b.LineSize())
	}
	buf = buf[:b.LineSize()]

	out := buf
	if b.swapped() {
		out = ds.ShallowCopy(buf)
		swapSamples(out, size)
	}

	if b.pixelStride == size {
		if _, err := b.file.WriteAt(out, b.lineOffset(y)); err != nil {
			return errors.Wrapf(err, "write line %d", y)
		}
		return nil
	}

	raw := make([]byte, b.lineStride)
	for x := 0; x < b.width; x++ {
		copy(raw[x*b.pixelStride:x*b.pixelStride+size], out[x*size:(x+1)*size])
	}
	if _, err := b.file.WriteAt(raw, b.lineOffset(y)); err != nil {
		return errors.Wrapf(err, "write line %d", y)
	}
	return nil
}

// ReadAll decodes the whole band, row-major, into one buffer of
// native-order samples.
func (b *Band) ReadAll() ([]byte, error) {
	lineSize := b.LineSize()
	buf := make([]byte, lineSize*b.height)
	for y := 0; y < b.height; y++ {
		if err := b.ReadLine(y, buf[y*lineSize:(y+1)*lineSize]); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// Fill writes the same sample value into every pixel of the band.
func (b *Band) Fill(sample uint16) error {
	size := b.sampleType.Size()
	var line []byte
	if size == 1 {
		line = ds.Repeat(b.width, byte(sample))
	} else {
		line = make([]byte, b.LineSize())
		for x := 0; x < b.width; x++ {
			lbytes.NativeOrder().PutUint16(line[x*size:], sample)
		}
	}
	for y := 0; y < b.height; y++ {
		if err := b.WriteLine(y, line); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the file only when the band owns it.
func (b *Band) Close() error {
	if !b.ownFile || b.file == nil {
		return nil
	}
	file := b.file
	b.file = nil
	return file.Close()
}

func swapSamples(bs []byte, size int) {
	if size != 2 {
		return
	}
	for i := 0; i+1 < len(bs); i += 2 {
		bs[i], bs[i+1] = bs[i+1], bs[i]
	}
}
