// Package spec defines the document model shared by the extraction and
// conversion packages: the OpenAPI 3.0 and Swagger 2.0 document shapes, the
// insertion-ordered schema registry, document loading, and serialization.
//
// The model is deliberately lean. It carries the fields the extraction and
// downgrade pipelines produce and consume; it is not a general-purpose
// OpenAPI parser. Unknown fields on loaded documents are ignored rather
// than rejected, matching the permissive posture of the converters.
package spec
