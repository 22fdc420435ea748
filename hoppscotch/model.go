// Package hoppscotch converts Hoppscotch collection exports into OpenAPI 3.0
// documents.
//
// A collection export is a tree of folders holding saved requests. Each saved
// request contributes one operation to the generated document; JSON request
// bodies are synthesized into named component schemas. Collections record no
// responses, so every operation gets a default 200.
package hoppscotch

import (
	"bytes"
	"encoding/json"

	"github.com/erraggy/har2oas/oaserrors"
)

// Collection is one node of an exported collection tree. Folders nest
// arbitrarily deep and carry the same shape as the root collection.
type Collection struct {
	Name     string        `json:"name"`
	Folders  []*Collection `json:"folders"`
	Requests []*Request    `json:"requests"`
}

// Request is a saved request inside a collection.
type Request struct {
	Name     string     `json:"name"`
	Endpoint string     `json:"endpoint"`
	Method   string     `json:"method"`
	Params   []KeyValue `json:"params"`
	Headers  []KeyValue `json:"headers"`
	Body     *Body      `json:"body"`
}

// KeyValue is a param or header row. Rows toggled off in the client are
// exported with Active false and do not contribute parameters.
type KeyValue struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Active bool   `json:"active"`
}

// Body is a saved request body.
type Body struct {
	ContentType string `json:"contentType"`
	Body        string `json:"body"`
}

// ParseCollections decodes a collection export. Hoppscotch exports either a
// single collection object or an array of collections; both are accepted.
func ParseCollections(data []byte) ([]*Collection, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []*Collection
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, &oaserrors.ParseError{
				Message: "invalid collection export",
				Cause:   err,
			}
		}
		return list, nil
	}
	var single Collection
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return nil, &oaserrors.ParseError{
			Message: "invalid collection export",
			Cause:   err,
		}
	}
	return []*Collection{&single}, nil
}
