package internal

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestDetectCharset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		data        []byte
		contentType string
		expected    string
	}{
		{
			name:     "UTF-8 with BOM",
			data:     []byte{0xEF, 0xBB, 0xBF, '<', 'h', 't', 'm', 'l', '>'},
			expected: "utf-8",
		},
		{
			name:     "UTF-16 LE BOM",
			data:     []byte{0xFF, 0xFE, 0x3C, 0x00},
			expected: "utf-16le",
		},
		{
			name:     "UTF-16 BE BOM",
			data:     []byte{0xFE, 0xFF, 0x00, 0x3C},
			expected: "utf-16be",
		},
		{
			name:        "content type header",
			data:        []byte("<html><body>caf\xe9</body></html>"),
			contentType: "text/html; charset=ISO-8859-1",
			expected:    "windows-1252",
		},
		{
			name:        "content type header without charset",
			data:        []byte("<html><body>café</body></html>"),
			contentType: "text/html",
			expected:    "utf-8",
		},
		{
			name:     "windows-1252 in meta tag",
			data:     []byte(`<html><head><meta http-equiv="Content-Type" content="text/html; charset=windows-1252"></head></html>`),
			expected: "windows-1252",
		},
		{
			name:     "charset attribute",
			data:     []byte(`<html><head><meta charset="utf-8"></head></html>`),
			expected: "utf-8",
		},
		{
			name:     "meta declares latin1 but bytes are UTF-8",
			data:     []byte(`<html><head><meta charset="iso-8859-1"></head><body>café</body></html>`),
			expected: "utf-8",
		},
		{
			name:     "plain ASCII",
			data:     []byte(`<table><tr><td>x</td></tr></table>`),
			expected: "utf-8",
		},
		{
			name:     "invalid UTF-8 without declaration",
			data:     []byte("<p>caf\xe9</p>"),
			expected: "windows-1252",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DetectCharset(tt.data, tt.contentType); got != tt.expected {
				t.Errorf("DetectCharset() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestLookupCharset(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"UTF-8":        "utf-8",
		"utf8":         "utf-8",
		"Windows-1252": "windows-1252",
		"cp1252":       "windows-1252",
		"ISO-8859-1":   "windows-1252",
		"latin1":       "windows-1252",
		"us-ascii":     "windows-1252",
		"Shift_JIS":    "shift_jis",
		"GB2312":       "gbk",
		"UTF-16":       "utf-16le",
		`"utf-8"`:      "utf-8",
		" koi8-r ":     "koi8-r",
		"x-unknown":    "",
		"":             "",
	}
	for in, want := range tests {
		got, enc := lookupCharset(in)
		if got != want {
			t.Errorf("lookupCharset(%q) = %q, want %q", in, got, want)
		}
		if (enc != nil) != (want != "") {
			t.Errorf("lookupCharset(%q) encoding = %v, want present=%v", in, enc, want != "")
		}
	}
}

func TestToUTF8(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		charset string
		want    string
	}{
		{"windows-1252 smart quotes", []byte{0x93, 'h', 'i', 0x94}, "windows-1252", "“hi”"},
		{"iso-8859-1", []byte("caf\xe9"), "iso-8859-1", "café"},
		{"utf-8 passthrough", []byte("café"), "utf-8", "café"},
		{"utf-8 BOM stripped", append([]byte{0xEF, 0xBB, 0xBF}, "x"...), "utf-8", "x"},
		{"unknown charset unchanged", []byte("abc"), "x-unknown", "abc"},
		{"utf-16le BOM stripped", []byte{0xFF, 0xFE, 'o', 0x00, 'k', 0x00}, "utf-16le", "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ToUTF8(tt.data, tt.charset)
			if err != nil {
				t.Fatalf("ToUTF8() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("ToUTF8() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewReaderLabel(t *testing.T) {
	t.Parallel()

	r, err := NewReaderLabel("ISO-8859-1", bytes.NewReader([]byte("na\xefve")))
	if err != nil {
		t.Fatalf("NewReaderLabel() error = %v", err)
	}
	got, _ := io.ReadAll(r)
	if string(got) != "naïve" {
		t.Errorf("decoded = %q, want %q", got, "naïve")
	}

	src := strings.NewReader("plain")
	if r, err := NewReaderLabel("UTF-8", src); err != nil || r != io.Reader(src) {
		t.Errorf("NewReaderLabel(UTF-8) = %v, %v, want input reader", r, err)
	}

	if _, err := NewReaderLabel("x-klingon", strings.NewReader("")); err == nil {
		t.Error("NewReaderLabel() should fail for unsupported charsets")
	}
}
