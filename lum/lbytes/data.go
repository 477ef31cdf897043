package lbytes

import (
	"bytes"
	"encoding/binary"
)

type (
	Reader struct {
		bytes.Reader
		order binary.ByteOrder
	}
)
