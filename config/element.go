package config

import (
	"strings"

	"github.com/wippyai/wit-bindgen/wit"
)

// Element addresses a configurable item of the graph: a type definition or
// a function. The sum is closed; Path dispatches on the two arms.
type Element interface {
	isElement()
}

// TypeElement addresses a type definition by id.
type TypeElement struct {
	ID wit.TypeID
}

// FuncElement addresses a function.
type FuncElement struct {
	Func *wit.Function
}

func (TypeElement) isElement() {}
func (FuncElement) isElement() {}

// Path computes the canonical element path used for configuration lookup.
// It is pure and deterministic over a given graph.
//
// For a type: world name, or [namespace, package-name] when the owning
// interface has a package followed by the interface name when it has one,
// then the type's own name when it has one, joined by ':'. Anonymous
// segments contribute nothing, so distinct anonymous types can collide;
// that is an accepted limitation of the addressing scheme.
//
// For a function: "<owner type path>.<local name>()" for methods, statics,
// and constructors. Freestanding functions use the bare local name with no
// enclosing world segment, so equally named freestanding functions in
// different worlds share a path.
func Path(r *wit.Resolve, el Element) string {
	switch el := el.(type) {
	case TypeElement:
		return typePath(r, el.ID)
	case FuncElement:
		return funcPath(r, el.Func)
	default:
		return ""
	}
}

func typePath(r *wit.Resolve, id wit.TypeID) string {
	def := r.Type(id)
	if def == nil {
		return ""
	}

	var segments []string
	switch owner := def.Owner.(type) {
	case wit.WorldOwner:
		if world := r.World(wit.WorldID(owner)); world != nil {
			segments = append(segments, world.Name)
		}
	case wit.InterfaceOwner:
		iface := r.Interface(wit.InterfaceID(owner))
		if iface != nil {
			if pkg := r.Package(iface.Package); pkg != nil {
				segments = append(segments, pkg.Namespace, pkg.Name)
			}
			if iface.Name != "" {
				segments = append(segments, iface.Name)
			}
		}
	}
	if def.Name != "" {
		segments = append(segments, def.Name)
	}
	return strings.Join(segments, ":")
}

func funcPath(r *wit.Resolve, fn *wit.Function) string {
	if fn == nil {
		return ""
	}
	switch kind := fn.Kind.(type) {
	case wit.Method:
		return typePath(r, kind.Type) + "." + fn.Name + "()"
	case wit.Static:
		return typePath(r, kind.Type) + "." + fn.Name + "()"
	case wit.Constructor:
		return typePath(r, kind.Type) + "." + fn.Name + "()"
	default:
		return fn.Name
	}
}
