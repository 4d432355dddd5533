package lang

// Encoding is a CLD2 encoding code. Engines treat UnknownEncoding as "no hint"
type Encoding int32

// Encodings with stable CLD2 values
const (
	ISO8859_1        Encoding = 0
	ISO8859_2        Encoding = 1
	ISO8859_3        Encoding = 2
	ISO8859_4        Encoding = 3
	ISO8859_5        Encoding = 4
	ISO8859_6        Encoding = 5
	ISO8859_7        Encoding = 6
	ISO8859_8        Encoding = 7
	ISO8859_9        Encoding = 8
	ISO8859_10       Encoding = 9
	JapaneseEUCJP    Encoding = 10
	JapaneseShiftJIS Encoding = 11
	JapaneseJIS      Encoding = 12
	ChineseBig5      Encoding = 13
	ChineseGB        Encoding = 14
	ChineseEUCCN     Encoding = 15
	KoreanEUCKR      Encoding = 16
	Unicode          Encoding = 17
	ChineseEUCDEC    Encoding = 18
	ChineseCNS       Encoding = 19
	ChineseBig5CP950 Encoding = 20
	JapaneseCP932    Encoding = 21
	UTF8             Encoding = 22
	UnknownEncoding  Encoding = 23
	ASCII7Bit        Encoding = 24
)

var encodingNames = map[Encoding]string{
	ISO8859_1:        "ISO-8859-1",
	ISO8859_2:        "ISO-8859-2",
	ISO8859_3:        "ISO-8859-3",
	ISO8859_4:        "ISO-8859-4",
	ISO8859_5:        "ISO-8859-5",
	ISO8859_6:        "ISO-8859-6",
	ISO8859_7:        "ISO-8859-7",
	ISO8859_8:        "ISO-8859-8",
	ISO8859_9:        "ISO-8859-9",
	ISO8859_10:       "ISO-8859-10",
	JapaneseEUCJP:    "EUC-JP",
	JapaneseShiftJIS: "Shift_JIS",
	JapaneseJIS:      "ISO-2022-JP",
	ChineseBig5:      "Big5",
	ChineseGB:        "GB2312",
	ChineseEUCCN:     "EUC-CN",
	KoreanEUCKR:      "EUC-KR",
	Unicode:          "UTF-16",
	ChineseEUCDEC:    "EUC-DEC",
	ChineseCNS:       "CNS",
	ChineseBig5CP950: "Big5-CP950",
	JapaneseCP932:    "CP932",
	UTF8:             "UTF-8",
	UnknownEncoding:  "Unknown",
	ASCII7Bit:        "US-ASCII",
}

// String returns the conventional charset name
func (e Encoding) String() string {
	if s, ok := encodingNames[e]; ok {
		return s
	}
	return "Unknown"
}

// UnicodeCompatible reports whether text in e can be scored as UTF-8 without transcoding
func (e Encoding) UnicodeCompatible() bool {
	return e == UTF8 || e == ASCII7Bit || e == UnknownEncoding
}
