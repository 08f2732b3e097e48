package main

import (
	"fmt"
	"strings"

	"github.com/wippyai/wit-bindgen/config"
	"github.com/wippyai/wit-bindgen/shape"
	"github.com/wippyai/wit-bindgen/wit"
)

// entry is one addressable element with everything the inspector shows.
type entry struct {
	path   string
	kind   string
	config string
	shapes []string
}

type report struct {
	entries    []entry
	configured int
}

// newReport walks every named type and every function and resolves its
// path, override, and structural shapes.
func newReport(r *wit.Resolve, cfg *config.Configuration) *report {
	rep := &report{configured: cfg.Len()}

	for id := range r.Types {
		def := r.Types[id]
		if def.Name == "" {
			continue
		}
		el := config.TypeElement{ID: wit.TypeID(id)}
		rep.entries = append(rep.entries, entry{
			path:   config.Path(r, el),
			kind:   r.TypeName(wit.Ref(id)) + " (" + kindName(def.Kind) + ")",
			config: describeConfig(cfg.Get(r, el)),
			shapes: describeShapes(r, wit.TypeID(id)),
		})
	}

	for _, iface := range r.Interfaces {
		for _, fn := range iface.Functions {
			el := config.FuncElement{Func: fn}
			rep.entries = append(rep.entries, entry{
				path:   config.Path(r, el),
				kind:   funcKindName(fn.Kind),
				config: describeConfig(cfg.Get(r, el)),
			})
		}
	}
	return rep
}

func (rep *report) find(path string) (entry, bool) {
	for _, e := range rep.entries {
		if e.path == path {
			return e, true
		}
	}
	return entry{}, false
}

func kindName(kind wit.TypeDefKind) string {
	switch kind.(type) {
	case *wit.Record:
		return "record"
	case *wit.Resource:
		return "resource"
	case *wit.Enum:
		return "enum"
	case *wit.Variant:
		return "variant"
	case *wit.Flags:
		return "flags"
	case *wit.List:
		return "list"
	case *wit.Option:
		return "option"
	case *wit.Result:
		return "result"
	case *wit.Tuple:
		return "tuple"
	case *wit.Own:
		return "own"
	case *wit.Borrow:
		return "borrow"
	case *wit.Alias:
		return "alias"
	default:
		return "unknown"
	}
}

func funcKindName(kind wit.FunctionKind) string {
	switch kind.(type) {
	case wit.Method:
		return "method"
	case wit.Static:
		return "static"
	case wit.Constructor:
		return "constructor"
	default:
		return "freestanding"
	}
}

// describeConfig renders an override arm and its set flags, e.g.
// "resource{as-iterator}" or "none".
func describeConfig(c config.ElementConfig) string {
	var arm string
	var flags []string
	switch c := c.(type) {
	case config.Record:
		arm = "record"
		if c.AsClass {
			flags = append(flags, "as-class")
		}
	case config.Resource:
		arm = "resource"
		if c.AsIterator {
			flags = append(flags, "as-iterator")
		}
		if c.UseGuestClass {
			flags = append(flags, "use-guest-class")
		}
	case config.Enum:
		arm = "enum"
		if c.AsTypeScriptEnum {
			flags = append(flags, "as-typescript-enum")
		}
	case config.Variant:
		arm = "variant"
		if c.AsDirectUnionOfResourceClasses {
			flags = append(flags, "as-direct-union-of-resource-classes")
		}
	case config.ListOfTuple:
		arm = "list-of-tuple"
		if c.AsDictionary {
			flags = append(flags, "as-dictionary")
		}
	default:
		return "none"
	}
	if len(flags) == 0 {
		return arm
	}
	return arm + "{" + strings.Join(flags, ", ") + "}"
}

// describeShapes runs every classifier against the type.
func describeShapes(r *wit.Resolve, id wit.TypeID) []string {
	t := wit.Ref(id)
	var shapes []string
	if value, ok := shape.DictionaryValue(r, t); ok {
		shapes = append(shapes, "dictionary of "+r.TypeName(value))
	}
	if payload, ok := shape.IteratorPayload(r, t); ok {
		shapes = append(shapes, "iterator of "+r.TypeName(payload))
	}
	if defs, ok := shape.ResourceUnion(r, t); ok && len(defs) > 0 {
		names := make([]string, len(defs))
		for i, def := range defs {
			names[i] = def.Name
		}
		shapes = append(shapes, fmt.Sprintf("union of %d resource classes (%s)",
			len(defs), strings.Join(names, ", ")))
	} else if partial, ok := shape.OwnedResourceCases(r, t); ok && len(partial) > 0 {
		shapes = append(shapes, fmt.Sprintf("partial resource union (%d qualifying cases)", len(partial)))
	}
	return shapes
}
