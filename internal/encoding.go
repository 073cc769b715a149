package internal

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

var (
	// Pre-compiled regex patterns for charset detection
	charsetPattern    = regexp.MustCompile(`(?i)<meta\s+[^>]*http-equiv=["']?content-type["']?[^>]*content=["']?[^;]*;\s*charset=([^"'\s>]+)`)
	charsetPatternAlt = regexp.MustCompile(`(?i)<meta\s+charset=["']?([^"'\s>]+)`)
)

// DetectCharset determines the encoding of an HTML body. The order of
// precedence is byte order mark, the charset parameter of contentType,
// a <meta> declaration, UTF-8 validity, then windows-1252.
func DetectCharset(data []byte, contentType string) string {
	switch {
	case bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}):
		return "utf-8"
	case bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		return "utf-16be"
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}):
		return "utf-16le"
	}

	if contentType != "" {
		if _, params, err := mime.ParseMediaType(contentType); err == nil {
			if cs, enc := lookupCharset(params["charset"]); enc != nil {
				return cs
			}
		}
	}

	sample := data
	if len(sample) > charsetSniffSize {
		sample = sample[:charsetSniffSize]
	}
	head := string(sample)
	declared := ""
	if m := charsetPattern.FindStringSubmatch(head); len(m) > 1 {
		declared, _ = lookupCharset(m[1])
	} else if m := charsetPatternAlt.FindStringSubmatch(head); len(m) > 1 {
		declared, _ = lookupCharset(m[1])
	}

	// Pages often declare a legacy charset while actually serving UTF-8.
	// Trust the bytes when they contain valid multi-byte sequences.
	if utf8.Valid(data) && (declared == "" || declared == "utf-8" || hasUTF8Sequences(data)) {
		return "utf-8"
	}
	if declared != "" {
		return declared
	}
	return "windows-1252"
}

// hasUTF8Sequences reports whether data contains bytes outside ASCII.
func hasUTF8Sequences(data []byte) bool {
	for _, b := range data {
		if b >= 0x80 {
			return true
		}
	}
	return false
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ToUTF8 converts data from charset to UTF-8. Unknown charsets are
// returned unchanged. A leading byte order mark is dropped.
func ToUTF8(data []byte, charset string) ([]byte, error) {
	name, enc := lookupCharset(charset)
	if enc == nil || name == "utf-8" {
		return bytes.TrimPrefix(data, utf8BOM), nil
	}
	converted, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), enc.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return bytes.TrimPrefix(converted, utf8BOM), nil
}

// NewReaderLabel returns a reader that decodes input from the named
// charset to UTF-8. It has the signature of xml.Decoder.CharsetReader.
func NewReaderLabel(label string, input io.Reader) (io.Reader, error) {
	name, enc := lookupCharset(label)
	switch {
	case enc == nil:
		return nil, fmt.Errorf("unsupported charset %q", label)
	case name == "utf-8":
		return input, nil
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}

// lookupCharset resolves a charset label to its canonical WHATWG name and
// encoding, so "latin1" and "ISO-8859-1" both become windows-1252. Unknown
// labels yield "" and a nil encoding.
func lookupCharset(label string) (string, encoding.Encoding) {
	label = strings.Trim(strings.TrimSpace(label), `"'`)
	if label == "" {
		return "", nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return "", nil
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return "", nil
	}
	return name, enc
}
