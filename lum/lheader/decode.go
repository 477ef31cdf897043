package lheader

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"lum-reader/ds"
	"lum-reader/lum/lband"
	"lum-reader/lum/lbytes"
)

var (
	ErrNotLUM             = errors.New("not a LUM header")
	ErrUnsupportedVariant = errors.New("unsupported LUM variant")
	ErrInvalidGeometry    = errors.New("invalid dimensions")
)

// Identify reports whether bs starts with a LUM header, by matching
// bytes 8 through 11 case-insensitively against the recognized tags.
// It is a pure predicate over the buffer; it never reads beyond it.
func Identify(bs []byte) bool {
	if len(bs) < HeaderSize {
		return false
	}
	tag := strings.ToUpper(string(bs[8:HeaderSize]))
	return lo.Contains(RecognizedTags, tag)
}

// Decode parses and validates the first 12 bytes of a LUM file.
func Decode(bs []byte) (*Header, error) {
	if len(bs) < HeaderSize {
		return nil, errors.Wrapf(ErrNotLUM, "got %d of %d header bytes", len(bs), HeaderSize)
	}
	tag := strings.ToUpper(string(bs[8:HeaderSize]))
	if !lo.Contains(RecognizedTags, tag) {
		return nil, errors.Wrapf(ErrNotLUM, `unrecognized tag "%s"`, tag)
	}
	if tag == TagFlol {
		// Sniffable, but the byte order of the dimensions is undefined;
		// refuse to guess.
		return nil, errors.Wrapf(ErrUnsupportedVariant, `tag "%s" has no defined dimension encoding`, TagFlol)
	}

	header := Header{
		BitsTag:  tag[:2],
		OrderTag: tag[2:],
	}
	reader := lbytes.NewBytesReader(bs[:8], header.ByteOrder())
	width, err := reader.ReadUint32()
	if err != nil {
		return nil, errors.Wrap(err, "Decode error reading width")
	}
	height, err := reader.ReadUint32()
	if err != nil {
		return nil, errors.Wrap(err, "Decode error reading height")
	}
	header.Width = width
	header.Height = height

	// The original stores the dimensions in C int fields; anything that
	// lands non-positive there is rejected.
	if int32(width) <= 0 || int32(height) <= 0 {
		return nil, errors.Wrapf(ErrInvalidGeometry, "%d x %d", int32(width), int32(height))
	}

	return &header, nil
}

// ByteOrder returns the byte order the header declares for both its
// own dimension fields and the pixel samples that follow it.
func (h Header) ByteOrder() binary.ByteOrder {
	switch h.OrderTag {
	case OrderTagBig:
		return binary.BigEndian
	case OrderTagLittle:
		return binary.LittleEndian
	}
	panic(ds.ErrUnreachableCode{Caller: "Header.ByteOrder"})
}

// SampleType maps the bit-depth tag to a sample type. Only "08" versus
// everything else is distinguished.
func (h Header) SampleType() lband.SampleType {
	if h.BitsTag == BitsTag8 {
		return lband.SampleUint8
	}
	return lband.SampleUint16
}

// Swapped reports whether samples on disk are stored opposite to the
// host byte order.
func (h Header) Swapped() bool {
	return h.ByteOrder() != lbytes.NativeOrder()
}

// Stride returns the byte length of one pixel row, rejecting widths
// whose row size overflows a 32-bit signed integer.
func (h Header) Stride() (int, error) {
	size := h.SampleType().Size()
	if h.Width > math.MaxInt32/uint32(size) {
		return 0, errors.Wrapf(ErrInvalidGeometry, "row stride overflow: width %d at %d bytes per sample", h.Width, size)
	}
	return int(h.Width) * size, nil
}
