package shape

import "github.com/wippyai/wit-bindgen/wit"

// Structural resolution steps. Each one answers a single question with
// comma-ok so the classifiers chain them without nested branching, and
// each is testable on its own.

// deref follows t to its type definition, resolving through alias kinds,
// and reports the definition together with its arena id. The iteration
// bound keeps the walk total on malformed cyclic graphs.
func deref(r *wit.Resolve, t wit.Type) (wit.TypeID, *wit.TypeDef, bool) {
	for range len(r.Types) + 1 {
		ref, ok := t.(wit.Ref)
		if !ok {
			return 0, nil, false
		}
		id := wit.TypeID(ref)
		def := r.Type(id)
		if def == nil {
			return 0, nil, false
		}
		alias, ok := def.Kind.(*wit.Alias)
		if !ok {
			return id, def, true
		}
		t = alias.Target
	}
	return 0, nil, false
}

// listElement resolves t to list<E> and returns E.
func listElement(r *wit.Resolve, t wit.Type) (wit.Type, bool) {
	_, def, ok := deref(r, t)
	if !ok {
		return nil, false
	}
	list, ok := def.Kind.(*wit.List)
	if !ok {
		return nil, false
	}
	return list.Element, true
}

// tupleTypes resolves t to a tuple and returns its component types.
func tupleTypes(r *wit.Resolve, t wit.Type) ([]wit.Type, bool) {
	_, def, ok := deref(r, t)
	if !ok {
		return nil, false
	}
	tuple, ok := def.Kind.(*wit.Tuple)
	if !ok {
		return nil, false
	}
	return tuple.Types, true
}

// optionPayload resolves t to option<P> and returns P.
func optionPayload(r *wit.Resolve, t wit.Type) (wit.Type, bool) {
	_, def, ok := deref(r, t)
	if !ok {
		return nil, false
	}
	opt, ok := def.Kind.(*wit.Option)
	if !ok {
		return nil, false
	}
	return opt.Payload, true
}

// variantCases resolves t to a variant and returns its cases.
func variantCases(r *wit.Resolve, t wit.Type) ([]wit.Case, bool) {
	_, def, ok := deref(r, t)
	if !ok {
		return nil, false
	}
	variant, ok := def.Kind.(*wit.Variant)
	if !ok {
		return nil, false
	}
	return variant.Cases, true
}
