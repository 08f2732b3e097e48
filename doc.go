// Package witbindgen provides the configuration and type-shape core of a
// WIT bindings generator.
//
// Given a fully resolved WIT type graph, the library decides which concrete
// code shape an emitter should produce for each type and function: plain
// value object vs. class, tagged union vs. host-native enum, resource with
// manual lifecycle vs. iterator-like resource, list-of-pairs vs. dictionary.
// The decision combines user-supplied overrides, addressed by a canonical
// element path, with structural pattern detection over the type graph.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	wit-bindgen/
//	├── wit/        Id-indexed, immutable WIT type graph and builders
//	├── config/     Element paths, configuration store, per-element overrides
//	├── shape/      Structural classifiers (dictionary, iterator, resource union)
//	├── witjson/    Resolved-graph JSON document loader
//	├── witimport/  Importer for go.bytecodealliance.org/wit type trees
//	├── errors/     Structured error types for the loading layer
//	└── cmd/        witconfig CLI and interactive inspector
//
// # Quick Start
//
// Load a graph and resolve one element:
//
//	r, err := witjson.Decode(graphDoc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg, err := config.Load("bindgen.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	el := config.TypeElement{ID: id}
//	path := config.Path(r, el)                  // "wasi:io:streams:pollable"
//	iter := config.ResourceAsIterator(cfg.Get(r, el))
//	payload, ok := shape.IteratorPayload(r, wit.Ref(id))
//
// The emitter combines both answers: an override asks for a shape, the
// classifier says whether the structure supports it.
//
// # Concurrency
//
// The graph and the configuration store are built once and never mutated
// afterward. Every query in wit, config, and shape is a side-effect-free
// read over immutable data, so elements may be processed concurrently
// without locking.
//
// # Error Handling
//
// The query layer never fails: unknown configuration keys resolve to the
// None arm, kind-mismatched overrides read as false, and non-matching
// structural shapes report a false ok instead of an error. Failures exist
// only at the loading boundary (witjson, config.Load), where malformed
// input surfaces as a structured *errors.Error.
package witbindgen
