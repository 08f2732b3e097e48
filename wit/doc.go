// Package wit defines the resolved WIT type graph consumed by the rest of
// the library.
//
// The graph is arena-based: every world, package, interface, and type
// definition lives in a flat slice on Resolve and is addressed by a typed
// index (WorldID, PackageID, InterfaceID, TypeID). References between
// entities are indices, never pointers, so the whole graph can be built by
// an upstream producer, handed over, and then shared read-only across any
// number of goroutines.
//
// Types follow the WIT type system:
//
//   - Primitives: bool, u8-u64, s8-s64, f32, f64, char, string
//   - Compound: list<T>, option<T>, result<T, E>, tuple<...>
//   - Named: record, variant, enum, flags
//   - Resources: resource definitions plus own<T> / borrow<T> handles
//
// A Type is either a primitive singleton (wit.String{}, wit.U32{}, ...) or
// a Ref pointing at a TypeDef in the arena. TypeDef kinds and function
// kinds are closed sums discriminated by type switch.
//
// Construction happens through NewResolve and the Add* builders, once per
// compilation run. Nothing in this package mutates a graph after that, and
// the lookup accessors (Type, Interface, World, Package) are total: an
// out-of-range id yields nil rather than a panic.
package wit
