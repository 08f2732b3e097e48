package witimport

import (
	upstream "go.bytecodealliance.org/wit"

	"github.com/wippyai/wit-bindgen/wit"
)

// Importer builds arena types from bytecodealliance type trees.
// Not safe for concurrent use; import first, query the graph after.
type Importer struct {
	r    *wit.Resolve
	seen map[*upstream.TypeDef]wit.TypeID
}

// New returns an importer targeting r.
func New(r *wit.Resolve) *Importer {
	return &Importer{
		r:    r,
		seen: make(map[*upstream.TypeDef]wit.TypeID),
	}
}

// DefineType imports def as a named, owned definition and returns its id.
// Upstream trees carry neither our names nor our owners, so the caller
// supplies both; either may be zero. Importing a def already seen attaches
// the name and owner to the existing arena entry.
func (im *Importer) DefineType(name string, def *upstream.TypeDef, owner wit.TypeOwner) wit.TypeID {
	id := im.typeDef(def)
	if td := im.r.Type(id); td != nil {
		if name != "" {
			td.Name = name
		}
		if owner != nil {
			td.Owner = owner
		}
	}
	return id
}

// Type converts an upstream type use into an arena type use, interning any
// definitions it references. Unknown upstream shapes come back as nil.
func (im *Importer) Type(t upstream.Type) wit.Type {
	switch t := t.(type) {
	case upstream.Bool:
		return wit.Bool{}
	case upstream.U8:
		return wit.U8{}
	case upstream.S8:
		return wit.S8{}
	case upstream.U16:
		return wit.U16{}
	case upstream.S16:
		return wit.S16{}
	case upstream.U32:
		return wit.U32{}
	case upstream.S32:
		return wit.S32{}
	case upstream.U64:
		return wit.U64{}
	case upstream.S64:
		return wit.S64{}
	case upstream.F32:
		return wit.F32{}
	case upstream.F64:
		return wit.F64{}
	case upstream.Char:
		return wit.Char{}
	case upstream.String:
		return wit.String{}
	case *upstream.TypeDef:
		return wit.Ref(im.typeDef(t))
	default:
		return nil
	}
}

func (im *Importer) typeDef(def *upstream.TypeDef) wit.TypeID {
	if def == nil {
		// Handles in hand-built upstream trees sometimes point at no
		// definition; give them a synthetic resource so the arena stays
		// well formed.
		return im.r.AddType("", &wit.Resource{}, nil)
	}
	if id, ok := im.seen[def]; ok {
		return id
	}

	// Reserve the slot before converting the kind so self-referential
	// definitions terminate.
	id := im.r.AddType("", nil, nil)
	im.seen[def] = id
	im.r.Type(id).Kind = im.kind(def.Kind)
	return id
}

func (im *Importer) kind(kind upstream.TypeDefKind) wit.TypeDefKind {
	switch kind := kind.(type) {
	case *upstream.Resource:
		return &wit.Resource{}
	case *upstream.Record:
		fields := make([]wit.Field, len(kind.Fields))
		for i, f := range kind.Fields {
			fields[i] = wit.Field{Name: f.Name, Type: im.Type(f.Type)}
		}
		return &wit.Record{Fields: fields}
	case *upstream.Enum:
		cases := make([]string, len(kind.Cases))
		for i, c := range kind.Cases {
			cases[i] = c.Name
		}
		return &wit.Enum{Cases: cases}
	case *upstream.Flags:
		names := make([]string, len(kind.Flags))
		for i, f := range kind.Flags {
			names[i] = f.Name
		}
		return &wit.Flags{Names: names}
	case *upstream.Variant:
		cases := make([]wit.Case, len(kind.Cases))
		for i, c := range kind.Cases {
			converted := wit.Case{Name: c.Name}
			if c.Type != nil {
				converted.Type = im.Type(c.Type)
			}
			cases[i] = converted
		}
		return &wit.Variant{Cases: cases}
	case *upstream.List:
		return &wit.List{Element: im.Type(kind.Type)}
	case *upstream.Option:
		return &wit.Option{Payload: im.Type(kind.Type)}
	case *upstream.Result:
		converted := &wit.Result{}
		if kind.OK != nil {
			converted.OK = im.Type(kind.OK)
		}
		if kind.Err != nil {
			converted.Err = im.Type(kind.Err)
		}
		return converted
	case *upstream.Tuple:
		types := make([]wit.Type, len(kind.Types))
		for i, t := range kind.Types {
			types[i] = im.Type(t)
		}
		return &wit.Tuple{Types: types}
	case *upstream.Own:
		return &wit.Own{Resource: im.typeDef(kind.Type)}
	case *upstream.Borrow:
		return &wit.Borrow{Resource: im.typeDef(kind.Type)}
	case upstream.Type:
		// A kind that is itself a type use is an alias.
		return &wit.Alias{Target: im.Type(kind)}
	default:
		return nil
	}
}
