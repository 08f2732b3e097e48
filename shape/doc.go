// Package shape detects higher-level code generation shapes in the raw
// type graph.
//
// An emitter that wants to render list<tuple<string, T>> as a dictionary,
// a resource with next() -> option<T> as an iterator, or a variant of
// owned resource handles as a direct union of classes needs to know
// whether the structure actually matches. The classifiers here answer
// that, independently of any user configuration:
//
//	value, ok := shape.DictionaryValue(r, t)
//	payload, ok := shape.IteratorPayload(r, t)
//	defs, ok := shape.OwnedResourceCases(r, t)
//	defs, ok := shape.ResourceUnion(r, t)
//
// Every query is a pure read over the immutable graph: total, never
// panicking, safe to run concurrently, and recomputed on each call.
// A false ok means "shape not present", never an error. Callers needing
// amortization memoize externally.
package shape
