// Package textcodec converts between raw bytes in a declared charset and
// UTF-8 strings. It never guesses: callers name the charset, or pass
// "auto", which only honours a byte order mark and otherwise expects UTF-8
package textcodec

import (
	"bytes"
	"strings"
	"unicode/utf8"

	perr "termswap/internal/platform/errors"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Canonical charset names
const (
	Auto    = "auto"
	UTF8    = "utf-8"
	UTF16   = "utf-16"
	UTF16LE = "utf-16-le"
	UTF16BE = "utf-16-be"
	Big5    = "big5"
	GBK     = "gbk"
	GB2312  = "gb2312"
	GB18030 = "gb18030"
	HZ      = "hz"
)

var aliases = map[string]string{
	"utf8":       UTF8,
	"utf16":      UTF16,
	"utf-16le":   UTF16LE,
	"utf-16be":   UTF16BE,
	"big-5":      Big5,
	"cp950":      Big5,
	"cp936":      GBK,
	"hz-gb-2312": HZ,
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Decoded is text read from raw bytes
type Decoded struct {
	Text    string
	Charset string // canonical name actually used
	BOM     bool   // input started with a byte order mark
}

// NormalizeName folds case, separators and known aliases to a canonical name
func NormalizeName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer("_", "-", " ", "-").Replace(n)
	if a, ok := aliases[n]; ok {
		return a
	}
	return n
}

// Supported reports whether charset can be decoded and encoded
func Supported(charset string) bool {
	switch NormalizeName(charset) {
	case Auto, "":
		return true
	}
	_, err := lookup(NormalizeName(charset))
	return err == nil
}

// CanRepresentTraditional reports whether charset can hold every
// Traditional Chinese character; fixing into a charset that can't is lossy
func CanRepresentTraditional(charset string) bool {
	switch n := NormalizeName(charset); n {
	case GBK, GB2312, HZ, "iso-2022-cn":
		return false
	case Big5, GB18030:
		return true
	default:
		return strings.HasPrefix(n, "utf")
	}
}

func lookup(charset string) (encoding.Encoding, error) {
	switch charset {
	case UTF8:
		return unicode.UTF8, nil
	case UTF16:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	case Big5:
		return traditionalchinese.Big5, nil
	case GBK, GB2312:
		return simplifiedchinese.GBK, nil
	case GB18030:
		return simplifiedchinese.GB18030, nil
	case HZ:
		return simplifiedchinese.HZGB2312, nil
	default:
		return nil, perr.WithField(perr.InvalidArgf("textcodec: unsupported charset %q", charset), "encoding")
	}
}

// sniff picks a charset from a leading byte order mark, defaulting to UTF-8
func sniff(raw []byte) string {
	switch {
	case bytes.HasPrefix(raw, bomUTF8):
		return UTF8
	case bytes.HasPrefix(raw, bomUTF16LE):
		return UTF16LE
	case bytes.HasPrefix(raw, bomUTF16BE):
		return UTF16BE
	default:
		return UTF8
	}
}

func hasBOM(raw []byte, charset string) bool {
	switch charset {
	case UTF8:
		return bytes.HasPrefix(raw, bomUTF8)
	case UTF16LE:
		return bytes.HasPrefix(raw, bomUTF16LE)
	case UTF16BE:
		return bytes.HasPrefix(raw, bomUTF16BE)
	case UTF16:
		return bytes.HasPrefix(raw, bomUTF16LE) || bytes.HasPrefix(raw, bomUTF16BE)
	default:
		return false
	}
}

// Decode converts raw to UTF-8 using charset ("auto" or "" sniffs the BOM).
// A leading BOM is stripped from Text and reported in BOM
func Decode(raw []byte, charset string) (Decoded, error) {
	cs := NormalizeName(charset)
	if cs == "" || cs == Auto {
		cs = sniff(raw)
	}
	enc, err := lookup(cs)
	if err != nil {
		return Decoded{}, err
	}
	out := Decoded{Charset: cs, BOM: hasBOM(raw, cs)}

	if cs == UTF8 {
		if !utf8.Valid(raw) {
			return Decoded{}, perr.WithField(perr.Encodingf("textcodec: input is not valid UTF-8"), "encoding")
		}
		out.Text = strings.TrimPrefix(string(raw), "\ufeff")
		return out, nil
	}

	b, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return Decoded{}, perr.WithField(perr.Wrapf(err, perr.ErrorCodeEncoding, "textcodec: decode %s", cs), "encoding")
	}
	out.Text = strings.TrimPrefix(string(b), "\ufeff")
	return out, nil
}

// Encode converts text to charset. A BOM is written only when bom is set
// and the charset is a Unicode form
func Encode(text, charset string, bom bool) ([]byte, error) {
	cs := NormalizeName(charset)
	if cs == "" || cs == Auto {
		cs = UTF8
	}
	enc, err := lookup(cs)
	if err != nil {
		return nil, err
	}
	text = strings.TrimPrefix(text, "\ufeff")

	switch cs {
	case UTF8:
		if bom {
			return append(append([]byte{}, bomUTF8...), text...), nil
		}
		return []byte(text), nil
	case UTF16:
		// UseBOM always writes a mark on encode
		if !bom {
			enc = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
		}
	case UTF16LE, UTF16BE:
		if bom {
			text = "\ufeff" + text
		}
	}

	b, _, err := transform.Bytes(enc.NewEncoder(), []byte(text))
	if err != nil {
		return nil, perr.WithField(perr.Wrapf(err, perr.ErrorCodeEncoding, "textcodec: encode %s", cs), "encoding")
	}
	return b, nil
}

// OutputCharset picks the charset to write back with.
// "auto" keeps the input charset when it can hold Traditional Chinese and
// falls back to UTF-8 otherwise; "keep" always keeps it
func OutputCharset(mode string, in Decoded) string {
	switch m := NormalizeName(mode); m {
	case "", Auto:
		if in.Charset != "" && CanRepresentTraditional(in.Charset) {
			return in.Charset
		}
		return UTF8
	case "keep":
		if in.Charset == "" {
			return UTF8
		}
		return in.Charset
	default:
		return m
	}
}

// DisplayName returns a human label for charset
func DisplayName(charset string) string {
	switch n := NormalizeName(charset); n {
	case UTF8:
		return "UTF-8"
	case UTF16:
		return "UTF-16"
	case UTF16LE:
		return "UTF-16 LE"
	case UTF16BE:
		return "UTF-16 BE"
	case Big5:
		return "Big5"
	case GBK:
		return "GBK"
	case GB2312:
		return "GB2312"
	case GB18030:
		return "GB18030"
	default:
		return strings.ToUpper(n)
	}
}
