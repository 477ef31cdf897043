package lbytes

import (
	"bytes"
	"encoding/binary"
)

// NewBytesReader wraps bs in a Reader that decodes multi-byte
// integers with the given byte order.
func NewBytesReader(bs []byte, order binary.ByteOrder) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
		order:  order,
	}
}

func (b *Reader) ReadUint32() (uint32, error) {
	bs := make([]byte, 4)
	_, err := b.Read(bs)
	if err != nil {
		return 0, err
	}
	return b.order.Uint32(bs), nil
}

func (b *Reader) ReadUint16() (uint16, error) {
	bs := make([]byte, 2)
	_, err := b.Read(bs)
	if err != nil {
		return 0, err
	}
	return b.order.Uint16(bs), nil
}

func (b *Reader) ReadBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	// add return early to avoid EOF error
	// when reader's pointer reach end of file
	// while the number of next bytes to read is 0
	if n == 0 {
		return bs, nil
	}
	_, err := b.Read(bs)
	if err != nil {
		return nil, err
	}
	return bs, nil
}

func (b *Reader) ReadString(n int) (string, error) {
	bs, err := b.ReadBytes(n)
	if err != nil {
		return "", err
	}

	return string(bs), nil
}
