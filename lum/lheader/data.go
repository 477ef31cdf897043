package lheader

type (
	// Header is the 12-byte record at the start of every LUM file:
	// width and height as uint32 in the byte order named by OrderTag,
	// then two ASCII digits of nominal bit depth, then the order tag
	// itself.
	Header struct {
		Width    uint32 `json:"width"`
		Height   uint32 `json:"height"`
		BitsTag  string `json:"bits_tag"`
		OrderTag string `json:"order_tag"`
	}
)

const (
	HeaderSize = 12

	OrderTagBig    = "BI"
	OrderTagLittle = "LI"

	BitsTag8 = "08"
	// The writer always emits "12" for 16-bit output even though the
	// reader accepts "09" through "16"; a fixed convention of the
	// original format, kept as-is.
	BitsTag16 = "12"

	// TagFlol is recognized by the sniffer but carries no defined
	// dimension or byte-order semantics.
	TagFlol = "FLOL"
)

var RecognizedTags = []string{
	"08BI", "09BI", "10BI", "11BI", "12BI", "13BI", "14BI", "15BI", "16BI",
	"08LI", "09LI", "10LI", "11LI", "12LI", "13LI", "14LI", "15LI", "16LI",
	TagFlol,
}
