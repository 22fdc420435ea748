// Package har2oas converts recorded API traffic and REST-client collection
// exports into OpenAPI Specification documents, and structurally downgrades
// OpenAPI 3.x documents to OAS 2.0 (Swagger).
//
// # Overview
//
// The module consists of four primary packages:
//
//   - har: convert HAR capture files into OAS 3.0 documents
//   - hoppscotch: convert Hoppscotch collection exports into OAS 3.0 documents
//   - converter: downgrade OAS 3.0 documents to OAS 2.0
//   - spec: the shared document model, loading, and serialization
//
// Schema inference is performed by the inference package, which walks
// observed request and response bodies and synthesizes named, de-duplicated
// component schemas.
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/har2oas
//
// # Quick Start
//
// Convert a HAR capture:
//
//	import (
//		"github.com/erraggy/har2oas/har"
//		"github.com/erraggy/har2oas/spec"
//	)
//
//	data, _ := os.ReadFile("capture.har")
//	result, err := har.Convert(data, har.WithTitle("My API"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, _ := spec.EncodeYAML(result.Document)
//	fmt.Println(string(out))
//
// Downgrade an OAS 3.0 document to Swagger 2.0:
//
//	import (
//		"github.com/erraggy/har2oas/converter"
//		"github.com/erraggy/har2oas/spec"
//	)
//
//	doc, _ := spec.LoadOAS3(data)
//	result, err := converter.Downgrade(doc)
//
// The har2oas CLI wraps the same packages:
//
//	har2oas convert capture.har -o openapi.yaml
//	har2oas downgrade openapi.yaml -o swagger.yaml
package har2oas
