package config

// ElementConfig is the closed sum of per-element overrides, one arm per
// element category. The zero state is the None arm: an element absent from
// the configuration and one explicitly mapped to None are observationally
// identical.
type ElementConfig interface {
	isElementConfig()
}

// None carries no override.
type None struct{}

// Record configures a record type.
type Record struct {
	AsClass bool
}

// Resource configures a resource type.
type Resource struct {
	AsIterator    bool
	UseGuestClass bool
}

// Enum configures an enum type.
type Enum struct {
	AsTypeScriptEnum bool
}

// Variant configures a variant type.
type Variant struct {
	AsDirectUnionOfResourceClasses bool
}

// ListOfTuple configures a list-of-pairs type.
type ListOfTuple struct {
	AsDictionary bool
}

func (None) isElementConfig()        {}
func (Record) isElementConfig()      {}
func (Resource) isElementConfig()    {}
func (Enum) isElementConfig()        {}
func (Variant) isElementConfig()     {}
func (ListOfTuple) isElementConfig() {}

// Kind-safe flag accessors. Each reads its flag off the matching arm and
// false off every other arm, including None. Callers invoke the accessor
// for the element kind they are processing; a mismatched arm means either
// "not configured" or a wrong-kind user override, and both fall back to
// default behavior instead of failing.

// EnumAsTypeScriptEnum reports the Enum arm's AsTypeScriptEnum flag.
func EnumAsTypeScriptEnum(c ElementConfig) bool {
	if e, ok := c.(Enum); ok {
		return e.AsTypeScriptEnum
	}
	return false
}

// RecordAsClass reports the Record arm's AsClass flag.
func RecordAsClass(c ElementConfig) bool {
	if rec, ok := c.(Record); ok {
		return rec.AsClass
	}
	return false
}

// ResourceAsIterator reports the Resource arm's AsIterator flag.
func ResourceAsIterator(c ElementConfig) bool {
	if res, ok := c.(Resource); ok {
		return res.AsIterator
	}
	return false
}

// ResourceUseGuestClass reports the Resource arm's UseGuestClass flag.
func ResourceUseGuestClass(c ElementConfig) bool {
	if res, ok := c.(Resource); ok {
		return res.UseGuestClass
	}
	return false
}

// VariantAsDirectUnionOfResourceClasses reports the Variant arm's flag.
func VariantAsDirectUnionOfResourceClasses(c ElementConfig) bool {
	if v, ok := c.(Variant); ok {
		return v.AsDirectUnionOfResourceClasses
	}
	return false
}

// ListOfTupleAsDictionary reports the ListOfTuple arm's AsDictionary flag.
func ListOfTupleAsDictionary(c ElementConfig) bool {
	if l, ok := c.(ListOfTuple); ok {
		return l.AsDictionary
	}
	return false
}
