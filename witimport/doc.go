// Package witimport converts go.bytecodealliance.org/wit type trees into
// the arena graph of package wit.
//
// Tooling that already holds bytecodealliance type definitions (a
// component decoder, a transcoder pipeline) can import them once and then
// run the config and shape queries against the arena:
//
//	r := wit.NewResolve()
//	im := witimport.New(r)
//	id := im.DefineType("pollable", upstream, wit.InterfaceOwner(iface))
//	payload, ok := shape.IteratorPayload(r, wit.Ref(id))
//
// The importer interns by upstream *wit.TypeDef pointer: importing the
// same definition twice yields the same TypeID, so shared subtrees stay
// shared in the arena. Names and owners do not travel with upstream type
// trees; callers that know them attach them through DefineType.
package witimport
