package har

import (
	"encoding/json"

	"github.com/erraggy/har2oas/oaserrors"
)

// Archive is the root of an HTTP Archive (HAR) capture document.
//
// Only the fields the extractor consumes are modeled. Absent fields decode
// to zero values; a capture without log.entries is an empty capture, not an
// error.
type Archive struct {
	Log Log `json:"log"`
}

// Log holds the recorded entries of a capture.
type Log struct {
	Entries []Entry `json:"entries"`
}

// Entry is one recorded request/response pair.
type Entry struct {
	Request  Request  `json:"request"`
	Response Response `json:"response"`
}

// Request is the recorded HTTP request of an entry.
type Request struct {
	Method      string      `json:"method"`
	URL         string      `json:"url"`
	QueryString []NameValue `json:"queryString"`
	Headers     []NameValue `json:"headers"`
	PostData    *PostData   `json:"postData"`
}

// PostData carries the request body and its declared content type.
type PostData struct {
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
}

// Response is the recorded HTTP response of an entry.
type Response struct {
	Status     int         `json:"status"`
	StatusText string      `json:"statusText"`
	Headers    []NameValue `json:"headers"`
	Content    *Content    `json:"content"`
}

// Content carries the response body and its declared content type.
type Content struct {
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
}

// NameValue is a single name/value pair as used for headers and
// query-string entries.
type NameValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ParseArchive deserializes a HAR capture from JSON bytes.
func ParseArchive(data []byte) (*Archive, error) {
	var archive Archive
	if err := json.Unmarshal(data, &archive); err != nil {
		return nil, &oaserrors.ParseError{Message: "invalid HAR capture", Cause: err}
	}
	return &archive, nil
}
