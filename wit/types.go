package wit

// Type is a use of a WIT type: either a primitive singleton or a Ref
// pointing at a TypeDef in the arena.
type Type interface {
	isType()
}

// Primitive types. Each is an empty comparable struct so Type values can be
// compared directly, e.g. t == wit.String{}.
type (
	Bool   struct{}
	U8     struct{}
	S8     struct{}
	U16    struct{}
	S16    struct{}
	U32    struct{}
	S32    struct{}
	U64    struct{}
	S64    struct{}
	F32    struct{}
	F64    struct{}
	Char   struct{}
	String struct{}
)

func (Bool) isType()   {}
func (U8) isType()     {}
func (S8) isType()     {}
func (U16) isType()    {}
func (S16) isType()    {}
func (U32) isType()    {}
func (S32) isType()    {}
func (U64) isType()    {}
func (S64) isType()    {}
func (F32) isType()    {}
func (F64) isType()    {}
func (Char) isType()   {}
func (String) isType() {}

// Ref references a TypeDef by arena index.
type Ref TypeID

func (Ref) isType() {}

// TypeDef is a type definition in the arena. Name is empty for anonymous
// types (inline lists, tuples, handles). Owner is nil for unowned types.
type TypeDef struct {
	Kind  TypeDefKind
	Owner TypeOwner
	Name  string
}

// TypeDefKind is the closed sum of WIT type definition shapes.
type TypeDefKind interface {
	isTypeDefKind()
}

// Record is a struct-like collection of named fields.
type Record struct {
	Fields []Field
}

// Field is a named field of a record.
type Field struct {
	Name string
	Type Type
}

// Resource is an opaque, handle-backed type with identity and methods.
type Resource struct{}

// Enum is a tag-only variant: named cases without payloads.
type Enum struct {
	Cases []string
}

// Variant is a tagged union. A case with a nil Type carries no payload.
type Variant struct {
	Cases []Case
}

// Case is one case of a variant.
type Case struct {
	Type Type // nil when the case has no payload
	Name string
}

// Flags is a set of named booleans.
type Flags struct {
	Names []string
}

// List is list<Element>.
type List struct {
	Element Type
}

// Option is option<Payload>.
type Option struct {
	Payload Type
}

// Result is result<OK, Err>. Either side may be nil.
type Result struct {
	OK  Type
	Err Type
}

// Tuple is tuple<Types...>.
type Tuple struct {
	Types []Type
}

// Own is an owned handle to a resource definition.
type Own struct {
	Resource TypeID
}

// Borrow is a borrowed handle to a resource definition.
type Borrow struct {
	Resource TypeID
}

// Alias names another type. Lookups that care about structure resolve
// through it.
type Alias struct {
	Target Type
}

func (*Record) isTypeDefKind()   {}
func (*Resource) isTypeDefKind() {}
func (*Enum) isTypeDefKind()     {}
func (*Variant) isTypeDefKind()  {}
func (*Flags) isTypeDefKind()    {}
func (*List) isTypeDefKind()     {}
func (*Option) isTypeDefKind()   {}
func (*Result) isTypeDefKind()   {}
func (*Tuple) isTypeDefKind()    {}
func (*Own) isTypeDefKind()      {}
func (*Borrow) isTypeDefKind()   {}
func (*Alias) isTypeDefKind()    {}

// TypeOwner is the closed sum of type ownership: a world, an interface, or
// nil for unowned types.
type TypeOwner interface {
	isTypeOwner()
}

// WorldOwner marks a type as declared inline in a world.
type WorldOwner WorldID

// InterfaceOwner marks a type as declared in an interface.
type InterfaceOwner InterfaceID

func (WorldOwner) isTypeOwner()     {}
func (InterfaceOwner) isTypeOwner() {}
