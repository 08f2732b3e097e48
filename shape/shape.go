package shape

import "github.com/wippyai/wit-bindgen/wit"

// DictionaryValue reports whether t resolves to list<tuple<string, V>> and
// returns V, the would-be dictionary's value type. Anything else - not a
// list, element not a 2-tuple, key component not string - is a false ok.
func DictionaryValue(r *wit.Resolve, t wit.Type) (wit.Type, bool) {
	elem, ok := listElement(r, t)
	if !ok {
		return nil, false
	}
	types, ok := tupleTypes(r, elem)
	if !ok {
		return nil, false
	}
	if len(types) != 2 || types[0] != (wit.String{}) {
		return nil, false
	}
	return types[1], true
}

// IteratorPayload reports whether t references a resource usable as an
// iterator and returns the iteration payload type. The resource qualifies
// when its owning interface declares a method named "next", bound to this
// resource, with exactly one result that resolves to option<T>. Statics
// and constructors are excluded from the scan, and the first method named
// "next" in declaration order wins.
func IteratorPayload(r *wit.Resolve, t wit.Type) (wit.Type, bool) {
	id, _, ok := deref(r, t)
	if !ok {
		return nil, false
	}
	for _, fn := range ResourceMethods(r, id) {
		if fn.Name != "next" {
			continue
		}
		if len(fn.Results) != 1 {
			return nil, false
		}
		return optionPayload(r, fn.Results[0])
	}
	return nil, false
}

// OwnedResourceCases reports whether t resolves to a variant and collects
// the resource definition behind each case whose payload resolves to an
// owned handle of a resource. Cases without a payload, or with a payload
// that is not an owned resource handle, are silently dropped, so the
// returned slice can be shorter than the variant's case list; callers
// deciding whether every case qualifies must compare its length against
// the case count (or use ResourceUnion, which does).
func OwnedResourceCases(r *wit.Resolve, t wit.Type) ([]*wit.TypeDef, bool) {
	cases, ok := variantCases(r, t)
	if !ok {
		return nil, false
	}
	var defs []*wit.TypeDef
	for _, c := range cases {
		if c.Type == nil {
			continue
		}
		_, payload, ok := deref(r, c.Type)
		if !ok {
			continue
		}
		own, ok := payload.Kind.(*wit.Own)
		if !ok {
			continue
		}
		_, res, ok := deref(r, wit.Ref(own.Resource))
		if !ok {
			continue
		}
		if _, ok := res.Kind.(*wit.Resource); !ok {
			continue
		}
		defs = append(defs, res)
	}
	return defs, true
}

// ResourceUnion is OwnedResourceCases with the cardinality check applied:
// it reports true only when t is a variant and every case carries an owned
// resource handle.
func ResourceUnion(r *wit.Resolve, t wit.Type) ([]*wit.TypeDef, bool) {
	cases, ok := variantCases(r, t)
	if !ok {
		return nil, false
	}
	defs, _ := OwnedResourceCases(r, t)
	if len(defs) != len(cases) {
		return nil, false
	}
	return defs, true
}

// ResourceMethods returns every function of id's owning interface whose
// kind is a method bound to id, in function-table order. It returns nil
// when id is out of range or the type is not owned by an interface.
func ResourceMethods(r *wit.Resolve, id wit.TypeID) []*wit.Function {
	def := r.Type(id)
	if def == nil {
		return nil
	}
	owner, ok := def.Owner.(wit.InterfaceOwner)
	if !ok {
		return nil
	}
	iface := r.Interface(wit.InterfaceID(owner))
	if iface == nil {
		return nil
	}
	var methods []*wit.Function
	for _, fn := range iface.Functions {
		if kind, ok := fn.Kind.(wit.Method); ok && kind.Type == id {
			methods = append(methods, fn)
		}
	}
	return methods
}
