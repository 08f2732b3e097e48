// Package config resolves per-element code generation overrides.
//
// Every type and function in a wit.Resolve has a canonical element path:
// segments for the owning world or package and interface, then the
// element's own name, joined by ':'. Functions bound to a resource append
// ".name()" to the resource's path:
//
//	wasi:io:streams:pollable             type pollable in interface streams
//	wasi:io:streams:pollable.ready()     method ready on that resource
//	cli:args                             type args declared inline in world cli
//
// A Configuration maps element paths (optionally suffixed ".member" for
// member-level overrides) to ElementConfig values. Lookups never fail: an
// absent key is identical to an explicit None arm, and the flag accessors
// read false off any non-matching arm. Detecting a user override that
// names the wrong arm for the element's real kind is deliberately not this
// package's job; such overrides degrade to default behavior.
//
// Configurations load from YAML (see Load) or are built in memory with New.
// Once built they are immutable and safe for concurrent readers.
package config
