package wit

import "strings"

// WIT name rendering used for display and diagnostics.

var primNames = map[Type]string{
	Bool{}:   "bool",
	U8{}:     "u8",
	S8{}:     "s8",
	U16{}:    "u16",
	S16{}:    "s16",
	U32{}:    "u32",
	S32{}:    "s32",
	U64{}:    "u64",
	S64{}:    "s64",
	F32{}:    "f32",
	F64{}:    "f64",
	Char{}:   "char",
	String{}: "string",
}

// TypeName renders t in WIT syntax: "u32", "list<tuple<string, u32>>",
// "own<widget>". Named definitions render as their name; anonymous ones
// render structurally. Unresolvable references render as "?".
func (r *Resolve) TypeName(t Type) string {
	return r.typeName(t, 0)
}

// depth guards against malformed cyclic graphs; well-formed WIT type
// structure is acyclic except through named definitions, which terminate
// the recursion anyway.
const maxNameDepth = 32

func (r *Resolve) typeName(t Type, depth int) string {
	if t == nil || depth > maxNameDepth {
		return "?"
	}
	if name, ok := primNames[t]; ok {
		return name
	}
	ref, ok := t.(Ref)
	if !ok {
		return "?"
	}
	def := r.Type(TypeID(ref))
	if def == nil {
		return "?"
	}
	if def.Name != "" {
		return def.Name
	}
	return r.kindName(def.Kind, depth+1)
}

func (r *Resolve) kindName(kind TypeDefKind, depth int) string {
	switch k := kind.(type) {
	case *Record:
		return "record"
	case *Resource:
		return "resource"
	case *Enum:
		return "enum"
	case *Variant:
		return "variant"
	case *Flags:
		return "flags"
	case *List:
		return "list<" + r.typeName(k.Element, depth) + ">"
	case *Option:
		return "option<" + r.typeName(k.Payload, depth) + ">"
	case *Result:
		switch {
		case k.OK == nil && k.Err == nil:
			return "result"
		case k.Err == nil:
			return "result<" + r.typeName(k.OK, depth) + ">"
		case k.OK == nil:
			return "result<_, " + r.typeName(k.Err, depth) + ">"
		default:
			return "result<" + r.typeName(k.OK, depth) + ", " + r.typeName(k.Err, depth) + ">"
		}
	case *Tuple:
		parts := make([]string, len(k.Types))
		for i, elem := range k.Types {
			parts[i] = r.typeName(elem, depth)
		}
		return "tuple<" + strings.Join(parts, ", ") + ">"
	case *Own:
		return "own<" + r.typeName(Ref(k.Resource), depth) + ">"
	case *Borrow:
		return "borrow<" + r.typeName(Ref(k.Resource), depth) + ">"
	case *Alias:
		return r.typeName(k.Target, depth)
	default:
		return "?"
	}
}
