package lheader

import (
	"lum-reader/lum/lband"
	"lum-reader/lum/lbytes"
)

// Encode serializes the header back to its 12-byte form, honoring the
// byte order the header itself declares.
func Encode(header Header) []byte {
	bs := make([]byte, 0, HeaderSize)
	bs = append(bs, lbytes.EncodeUint32(header.Width, header.ByteOrder())...)
	bs = append(bs, lbytes.EncodeUint32(header.Height, header.ByteOrder())...)
	bs = append(bs, header.BitsTag...)
	bs = append(bs, header.OrderTag...)
	return bs
}

// ForCreate builds the header the writer emits: dimensions in host
// native order, tagged accordingly, with bits tag "08" for 8-bit and
// "12" for 16-bit samples.
func ForCreate(width uint32, height uint32, sampleType lband.SampleType) Header {
	bitsTag := BitsTag16
	if sampleType == lband.SampleUint8 {
		bitsTag = BitsTag8
	}
	orderTag := OrderTagBig
	if lbytes.NativeIsLittle() {
		orderTag = OrderTagLittle
	}
	return Header{
		Width:    width,
		Height:   height,
		BitsTag:  bitsTag,
		OrderTag: orderTag,
	}
}
