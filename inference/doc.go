// Package inference derives JSON-Schema-like type descriptions from
// observed values.
//
// Values are represented as *yaml.Node trees: the node kind and tag form a
// tagged union over objects, arrays, and the scalar primitives, and mapping
// nodes preserve the key order of the source text. JSON bodies are decoded
// through the YAML parser for the same reason (JSON is a YAML subset).
//
// [Infer] maps a single scalar node to an inline schema. [Synthesizer]
// walks composite values, registers a named schema for every object and
// array it encounters, and returns a reference to the top-level node.
package inference
