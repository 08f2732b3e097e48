// Package witjson loads a resolved WIT type graph from its JSON document
// form.
//
// The document is the flattened arena an upstream resolver emits: parallel
// arrays of packages, worlds, interfaces, and types, plus a function list
// attached to interfaces by index. Type references are either a primitive
// name ("u32", "string") or an arena index ({"id": 3}):
//
//	{
//	  "packages":   [{"namespace": "wasi", "name": "io"}],
//	  "interfaces": [{"name": "streams", "package": 0}],
//	  "types": [
//	    {"name": "pollable", "owner": {"interface": 0}, "kind": {"resource": {}}},
//	    {"kind": {"option": {"payload": "u32"}}}
//	  ],
//	  "functions": [
//	    {"interface": 0, "name": "ready", "kind": {"method": 0}, "results": ["bool"]}
//	  ]
//	}
//
// Decode validates structure only: every kind tag must be known and every
// index in range. Semantic validation of the graph (or of configuration
// against it) is not this package's concern.
package witjson
