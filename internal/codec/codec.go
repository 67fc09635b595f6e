// Package codec encodes and decodes Gnip documents as XML or JSON.
package codec

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"
)

// Format selects a wire representation.
type Format string

const (
	XML  Format = "xml"
	JSON Format = "json"
)

// Codec converts between documents and bytes.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
	ContentType() string
	Format() Format
}

// ForFormat returns the codec for f. An empty format selects XML.
func ForFormat(f Format) (Codec, error) {
	switch Format(strings.ToLower(string(f))) {
	case "", XML:
		return XMLCodec{}, nil
	case JSON:
		return JSONCodec{}, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", f)
	}
}

// XMLCodec is the service's native representation.
type XMLCodec struct{}

func (XMLCodec) Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := xml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (XMLCodec) Decode(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}

func (XMLCodec) ContentType() string { return "application/xml" }

func (XMLCodec) Format() Format { return XML }

// JSONCodec is the alternative JSON representation.
type JSONCodec struct{}

func (JSONCodec) Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (JSONCodec) ContentType() string { return "application/json" }

func (JSONCodec) Format() Format { return JSON }
