// Package errors provides structured error types for the loading layer.
//
// The query layer of wit-bindgen never fails, so these errors only occur
// while deserializing external input: the resolved-graph JSON document and
// the configuration YAML. Errors are categorized by Phase (which loader
// failed) and Kind (error category), and carry the document or element
// path where the failure occurred.
//
// Use the Builder for structured construction:
//
//	err := errors.New(errors.PhaseConfig, errors.KindUnknownTag).
//		Path("mappings", "ns:pkg:iface:widget").
//		Detail("unknown arm %q", tag).
//		Build()
//
// Or the convenience constructors for common patterns:
//
//	err := errors.BadReference(errors.PhaseGraph, path, "type", 42, 7)
//	err := errors.InvalidData(errors.PhaseConfig, path, "mapping entry must have exactly one arm")
//
// All errors implement the standard error interface and support
// errors.Is/As; two *Error values match when Phase and Kind agree.
package errors
