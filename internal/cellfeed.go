package internal

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// cellFeed is the subset of an Atom cell feed that carries cell values.
// Element names are matched regardless of namespace.
type cellFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Entries []cellEntry `xml:"entry"`
}

type cellEntry struct {
	Title   string `xml:"title"`
	Content string `xml:"content"`
}

// ParseCellFeed decodes an XML cell feed and reports each entry to set in
// document order. The entry title locates the cell ("B7") and the entry
// content is its value. The whole body must be one well-formed document:
// only whitespace, comments and processing instructions may surround the
// feed element.
func ParseCellFeed(r io.Reader, set SetFunc) error {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = NewReaderLabel

	start, err := rootElement(dec)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidXML, err)
	}
	var feed cellFeed
	if err := dec.DecodeElement(&feed, &start); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidXML, err)
	}
	if err := expectEOF(dec); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidXML, err)
	}

	for i, entry := range feed.Entries {
		ref, err := ParseCellRef(entry.Title)
		if err != nil {
			return fmt.Errorf("entry %d: %w", i+1, err)
		}
		set(ref.Row, ref.Column, entry.Content)
	}
	return nil
}

// rootElement reads the prolog and returns the document element.
func rootElement(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return xml.StartElement{}, errors.New("no root element")
		}
		if err != nil {
			return xml.StartElement{}, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return t, nil
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return xml.StartElement{}, errors.New("text before root element")
			}
		}
	}
}

// expectEOF consumes the epilog after the document element.
func expectEOF(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.Comment, xml.ProcInst:
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return errors.New("text after root element")
			}
		default:
			return fmt.Errorf("unexpected %T after root element", t)
		}
	}
}
