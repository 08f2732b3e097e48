package wit

// Function is a WIT function as it appears in an interface's function
// table. Name is the local name: "next" for a method, not
// "[method]iterator.next". Results preserves declaration order.
type Function struct {
	Kind    FunctionKind
	Name    string
	Params  []Param
	Results []Type
}

// Param is a named function parameter.
type Param struct {
	Name string
	Type Type
}

// FunctionKind is the closed sum of function binding kinds.
type FunctionKind interface {
	isFunctionKind()
}

// Freestanding marks a function not bound to any type.
type Freestanding struct{}

// Method marks an instance method of a resource.
type Method struct {
	Type TypeID
}

// Static marks a static function of a resource.
type Static struct {
	Type TypeID
}

// Constructor marks the constructor of a resource.
type Constructor struct {
	Type TypeID
}

func (Freestanding) isFunctionKind() {}
func (Method) isFunctionKind()       {}
func (Static) isFunctionKind()       {}
func (Constructor) isFunctionKind()  {}
