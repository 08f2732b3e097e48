package wit

// Typed arena indices. NoPackage is the only sentinel in regular use;
// the accessors treat any out-of-range id as absent.
type (
	TypeID      int
	InterfaceID int
	WorldID     int
	PackageID   int
)

// NoPackage marks an interface without an owning package.
const NoPackage PackageID = -1

// Resolve is the fully resolved type graph. It is built once by an
// upstream producer and read-only afterward.
type Resolve struct {
	Types      []*TypeDef
	Interfaces []*Interface
	Worlds     []*World
	Packages   []*Package
}

// Interface is a named or anonymous collection of types and functions.
// Functions preserves declaration order.
type Interface struct {
	Functions []*Function
	Name      string // empty for anonymous/inline interfaces
	Package   PackageID
}

// Package identifies a WIT package by namespace and name.
type Package struct {
	Namespace string
	Name      string
}

// World is a named world. Types declared inline in a world point back at
// it through WorldOwner.
type World struct {
	Name string
}

// NewResolve returns an empty graph ready for the Add* builders.
func NewResolve() *Resolve {
	return &Resolve{}
}

// Type returns the type definition for id, or nil if id is out of range.
func (r *Resolve) Type(id TypeID) *TypeDef {
	if id < 0 || int(id) >= len(r.Types) {
		return nil
	}
	return r.Types[id]
}

// Interface returns the interface for id, or nil if id is out of range.
func (r *Resolve) Interface(id InterfaceID) *Interface {
	if id < 0 || int(id) >= len(r.Interfaces) {
		return nil
	}
	return r.Interfaces[id]
}

// World returns the world for id, or nil if id is out of range.
func (r *Resolve) World(id WorldID) *World {
	if id < 0 || int(id) >= len(r.Worlds) {
		return nil
	}
	return r.Worlds[id]
}

// Package returns the package for id, or nil if id is out of range.
func (r *Resolve) Package(id PackageID) *Package {
	if id < 0 || int(id) >= len(r.Packages) {
		return nil
	}
	return r.Packages[id]
}

// AddPackage appends a package and returns its id.
func (r *Resolve) AddPackage(namespace, name string) PackageID {
	r.Packages = append(r.Packages, &Package{Namespace: namespace, Name: name})
	return PackageID(len(r.Packages) - 1)
}

// AddWorld appends a world and returns its id.
func (r *Resolve) AddWorld(name string) WorldID {
	r.Worlds = append(r.Worlds, &World{Name: name})
	return WorldID(len(r.Worlds) - 1)
}

// AddInterface appends an interface and returns its id. Pass NoPackage for
// an interface without an owning package, and an empty name for an
// anonymous interface.
func (r *Resolve) AddInterface(name string, pkg PackageID) InterfaceID {
	r.Interfaces = append(r.Interfaces, &Interface{Name: name, Package: pkg})
	return InterfaceID(len(r.Interfaces) - 1)
}

// AddType appends a type definition and returns its id. Name may be empty
// for anonymous types and owner may be nil for unowned ones.
func (r *Resolve) AddType(name string, kind TypeDefKind, owner TypeOwner) TypeID {
	r.Types = append(r.Types, &TypeDef{Name: name, Kind: kind, Owner: owner})
	return TypeID(len(r.Types) - 1)
}

// AddFunction appends fn to the interface's function table, preserving
// declaration order. It is a no-op for an out-of-range interface id.
func (r *Resolve) AddFunction(id InterfaceID, fn *Function) {
	iface := r.Interface(id)
	if iface == nil || fn == nil {
		return
	}
	iface.Functions = append(iface.Functions, fn)
}
