package lbytes

import (
	"encoding/binary"
)

var nativeIsLittle = func() bool {
	bs := make([]byte, 2)
	binary.NativeEndian.PutUint16(bs, 1)
	return bs[0] == 1
}()

// NativeOrder reports the byte order of the host as one of the two
// canonical binary.ByteOrder values, so that the result compares equal
// to binary.LittleEndian or binary.BigEndian.
func NativeOrder() binary.ByteOrder {
	if nativeIsLittle {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

func NativeIsLittle() bool {
	return nativeIsLittle
}

func EncodeUint32(value uint32, order binary.ByteOrder) []byte {
	bs := make([]byte, 4)
	order.PutUint32(bs, value)
	return bs
}

func EncodeUint16(value uint16, order binary.ByteOrder) []byte {
	bs := make([]byte, 2)
	order.PutUint16(bs, value)
	return bs
}
