package types

import "encoding/xml"

// Result is the outcome document of a mutating operation.
type Result struct {
	XMLName xml.Name `xml:"result" json:"-"`
	Message string   `xml:",chardata" json:"result"`
}
