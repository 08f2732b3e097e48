package shape

import (
	"testing"

	"github.com/wippyai/wit-bindgen/wit"
)

func TestDictionaryValue(t *testing.T) {
	r := wit.NewResolve()

	strU32 := r.AddType("", &wit.Tuple{Types: []wit.Type{wit.String{}, wit.U32{}}}, nil)
	u32U32 := r.AddType("", &wit.Tuple{Types: []wit.Type{wit.U32{}, wit.U32{}}}, nil)
	triple := r.AddType("", &wit.Tuple{Types: []wit.Type{wit.String{}, wit.U32{}, wit.U32{}}}, nil)

	dict := r.AddType("", &wit.List{Element: wit.Ref(strU32)}, nil)
	wrongKey := r.AddType("", &wit.List{Element: wit.Ref(u32U32)}, nil)
	wrongArity := r.AddType("", &wit.List{Element: wit.Ref(triple)}, nil)
	plainList := r.AddType("", &wit.List{Element: wit.U32{}}, nil)

	tests := []struct {
		name   string
		typ    wit.Type
		want   wit.Type
		wantOK bool
	}{
		{"list of string-u32 pairs", wit.Ref(dict), wit.U32{}, true},
		{"key not string", wit.Ref(wrongKey), nil, false},
		{"tuple arity three", wit.Ref(wrongArity), nil, false},
		{"list of non-tuple", wit.Ref(plainList), nil, false},
		{"bare tuple outside a list", wit.Ref(strU32), nil, false},
		{"primitive", wit.U32{}, nil, false},
		{"dangling ref", wit.Ref(999), nil, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := DictionaryValue(r, tc.typ)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if tc.wantOK && got != tc.want {
				t.Errorf("value type = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDictionaryValueThroughAlias(t *testing.T) {
	r := wit.NewResolve()
	pair := r.AddType("", &wit.Tuple{Types: []wit.Type{wit.String{}, wit.F64{}}}, nil)
	dict := r.AddType("", &wit.List{Element: wit.Ref(pair)}, nil)
	alias := r.AddType("headers", &wit.Alias{Target: wit.Ref(dict)}, nil)

	got, ok := DictionaryValue(r, wit.Ref(alias))
	if !ok || got != (wit.F64{}) {
		t.Errorf("DictionaryValue(alias) = %v, %v, want f64, true", got, ok)
	}
}

// iteratorFixture builds interface "iter" with a resource and a next
// method shaped by results.
func iteratorFixture(results []wit.Type) (*wit.Resolve, wit.TypeID) {
	r := wit.NewResolve()
	iface := r.AddInterface("iter", wit.NoPackage)
	res := r.AddType("cursor", &wit.Resource{}, wit.InterfaceOwner(iface))
	r.AddFunction(iface, &wit.Function{
		Name:    "next",
		Kind:    wit.Method{Type: res},
		Results: results,
	})
	return r, res
}

func TestIteratorPayload(t *testing.T) {
	t.Run("next returns option", func(t *testing.T) {
		r, res := iteratorFixture(nil)
		opt := r.AddType("", &wit.Option{Payload: wit.String{}}, nil)
		r.Interface(0).Functions[0].Results = []wit.Type{wit.Ref(opt)}

		got, ok := IteratorPayload(r, wit.Ref(res))
		if !ok || got != (wit.String{}) {
			t.Errorf("payload = %v, %v, want string, true", got, ok)
		}
	})

	t.Run("next returns non-option", func(t *testing.T) {
		r, res := iteratorFixture([]wit.Type{wit.U32{}})
		if _, ok := IteratorPayload(r, wit.Ref(res)); ok {
			t.Error("non-option result must not qualify")
		}
	})

	t.Run("next has two results", func(t *testing.T) {
		r, res := iteratorFixture(nil)
		opt := r.AddType("", &wit.Option{Payload: wit.U32{}}, nil)
		r.Interface(0).Functions[0].Results = []wit.Type{wit.Ref(opt), wit.Bool{}}

		if _, ok := IteratorPayload(r, wit.Ref(res)); ok {
			t.Error("two results must not qualify")
		}
	})

	t.Run("no next method", func(t *testing.T) {
		r := wit.NewResolve()
		iface := r.AddInterface("iter", wit.NoPackage)
		res := r.AddType("cursor", &wit.Resource{}, wit.InterfaceOwner(iface))
		r.AddFunction(iface, &wit.Function{Name: "read", Kind: wit.Method{Type: res}})

		if _, ok := IteratorPayload(r, wit.Ref(res)); ok {
			t.Error("resource without next must not qualify")
		}
	})

	t.Run("static next is excluded", func(t *testing.T) {
		r := wit.NewResolve()
		iface := r.AddInterface("iter", wit.NoPackage)
		res := r.AddType("cursor", &wit.Resource{}, wit.InterfaceOwner(iface))
		opt := r.AddType("", &wit.Option{Payload: wit.U32{}}, nil)
		r.AddFunction(iface, &wit.Function{
			Name:    "next",
			Kind:    wit.Static{Type: res},
			Results: []wit.Type{wit.Ref(opt)},
		})

		if _, ok := IteratorPayload(r, wit.Ref(res)); ok {
			t.Error("static next must not qualify")
		}
	})

	t.Run("next bound to another resource", func(t *testing.T) {
		r := wit.NewResolve()
		iface := r.AddInterface("iter", wit.NoPackage)
		res := r.AddType("cursor", &wit.Resource{}, wit.InterfaceOwner(iface))
		other := r.AddType("stream", &wit.Resource{}, wit.InterfaceOwner(iface))
		opt := r.AddType("", &wit.Option{Payload: wit.U32{}}, nil)
		r.AddFunction(iface, &wit.Function{
			Name:    "next",
			Kind:    wit.Method{Type: other},
			Results: []wit.Type{wit.Ref(opt)},
		})

		if _, ok := IteratorPayload(r, wit.Ref(res)); ok {
			t.Error("next on a different resource must not qualify")
		}
	})

	t.Run("world owned resource", func(t *testing.T) {
		r := wit.NewResolve()
		world := r.AddWorld("host")
		res := r.AddType("cursor", &wit.Resource{}, wit.WorldOwner(world))

		if _, ok := IteratorPayload(r, wit.Ref(res)); ok {
			t.Error("resource without owning interface must not qualify")
		}
	})
}

// Duplicate next methods resolve to the first in declaration order.
// Pinned intentionally: upstream leaves the tie-break unspecified.
func TestIteratorPayloadDuplicateNext(t *testing.T) {
	r := wit.NewResolve()
	iface := r.AddInterface("iter", wit.NoPackage)
	res := r.AddType("cursor", &wit.Resource{}, wit.InterfaceOwner(iface))
	optU32 := r.AddType("", &wit.Option{Payload: wit.U32{}}, nil)
	optStr := r.AddType("", &wit.Option{Payload: wit.String{}}, nil)
	r.AddFunction(iface, &wit.Function{
		Name: "next", Kind: wit.Method{Type: res}, Results: []wit.Type{wit.Ref(optU32)},
	})
	r.AddFunction(iface, &wit.Function{
		Name: "next", Kind: wit.Method{Type: res}, Results: []wit.Type{wit.Ref(optStr)},
	})

	got, ok := IteratorPayload(r, wit.Ref(res))
	if !ok || got != (wit.U32{}) {
		t.Errorf("payload = %v, %v, want u32 from first declaration", got, ok)
	}
}

func TestOwnedResourceCases(t *testing.T) {
	r := wit.NewResolve()
	iface := r.AddInterface("shapes", wit.NoPackage)
	x := r.AddType("circle", &wit.Resource{}, wit.InterfaceOwner(iface))
	y := r.AddType("square", &wit.Resource{}, wit.InterfaceOwner(iface))
	ownX := r.AddType("", &wit.Own{Resource: x}, nil)
	ownY := r.AddType("", &wit.Own{Resource: y}, nil)
	borrowX := r.AddType("", &wit.Borrow{Resource: x}, nil)

	allHandles := r.AddType("shape", &wit.Variant{Cases: []wit.Case{
		{Name: "a", Type: wit.Ref(ownX)},
		{Name: "b", Type: wit.Ref(ownY)},
	}}, wit.InterfaceOwner(iface))
	mixed := r.AddType("partial", &wit.Variant{Cases: []wit.Case{
		{Name: "a", Type: wit.Ref(ownX)},
		{Name: "b", Type: wit.U32{}},
	}}, wit.InterfaceOwner(iface))
	borrowed := r.AddType("views", &wit.Variant{Cases: []wit.Case{
		{Name: "a", Type: wit.Ref(borrowX)},
	}}, wit.InterfaceOwner(iface))
	payloadless := r.AddType("tags", &wit.Variant{Cases: []wit.Case{
		{Name: "a", Type: wit.Ref(ownX)},
		{Name: "b"},
	}}, wit.InterfaceOwner(iface))

	t.Run("all cases owned handles", func(t *testing.T) {
		defs, ok := OwnedResourceCases(r, wit.Ref(allHandles))
		if !ok {
			t.Fatal("variant should report ok")
		}
		if len(defs) != 2 || defs[0].Name != "circle" || defs[1].Name != "square" {
			t.Errorf("defs = %v, want [circle, square]", defNames(defs))
		}
	})

	t.Run("non-handle case dropped", func(t *testing.T) {
		defs, ok := OwnedResourceCases(r, wit.Ref(mixed))
		if !ok {
			t.Fatal("variant should report ok")
		}
		// One of two cases qualified: callers must detect the shorter
		// sequence to reject the all-handles shape.
		if len(defs) != 1 || defs[0].Name != "circle" {
			t.Errorf("defs = %v, want [circle]", defNames(defs))
		}
	})

	t.Run("borrowed handle dropped", func(t *testing.T) {
		defs, _ := OwnedResourceCases(r, wit.Ref(borrowed))
		if len(defs) != 0 {
			t.Errorf("defs = %v, want empty", defNames(defs))
		}
	})

	t.Run("payloadless case dropped", func(t *testing.T) {
		defs, _ := OwnedResourceCases(r, wit.Ref(payloadless))
		if len(defs) != 1 {
			t.Errorf("defs = %v, want [circle]", defNames(defs))
		}
	})

	t.Run("not a variant", func(t *testing.T) {
		if _, ok := OwnedResourceCases(r, wit.Ref(x)); ok {
			t.Error("resource is not a variant")
		}
		if _, ok := OwnedResourceCases(r, wit.String{}); ok {
			t.Error("primitive is not a variant")
		}
	})
}

func TestResourceUnion(t *testing.T) {
	r := wit.NewResolve()
	iface := r.AddInterface("shapes", wit.NoPackage)
	x := r.AddType("circle", &wit.Resource{}, wit.InterfaceOwner(iface))
	ownX := r.AddType("", &wit.Own{Resource: x}, nil)

	union := r.AddType("", &wit.Variant{Cases: []wit.Case{
		{Name: "a", Type: wit.Ref(ownX)},
	}}, nil)
	partial := r.AddType("", &wit.Variant{Cases: []wit.Case{
		{Name: "a", Type: wit.Ref(ownX)},
		{Name: "b", Type: wit.U32{}},
	}}, nil)

	if defs, ok := ResourceUnion(r, wit.Ref(union)); !ok || len(defs) != 1 {
		t.Errorf("full union = %v, %v, want [circle], true", defNames(defs), ok)
	}
	if _, ok := ResourceUnion(r, wit.Ref(partial)); ok {
		t.Error("partial union must not qualify")
	}
	if _, ok := ResourceUnion(r, wit.U32{}); ok {
		t.Error("non-variant must not qualify")
	}
}

func TestResourceMethods(t *testing.T) {
	r := wit.NewResolve()
	iface := r.AddInterface("streams", wit.NoPackage)
	res := r.AddType("stream", &wit.Resource{}, wit.InterfaceOwner(iface))
	other := r.AddType("pollable", &wit.Resource{}, wit.InterfaceOwner(iface))

	read := &wit.Function{Name: "read", Kind: wit.Method{Type: res}}
	ready := &wit.Function{Name: "ready", Kind: wit.Method{Type: other}}
	create := &wit.Function{Name: "create", Kind: wit.Static{Type: res}}
	ctor := &wit.Function{Name: "constructor", Kind: wit.Constructor{Type: res}}
	free := &wit.Function{Name: "flush", Kind: wit.Freestanding{}}
	write := &wit.Function{Name: "write", Kind: wit.Method{Type: res}}
	for _, fn := range []*wit.Function{read, ready, create, ctor, free, write} {
		r.AddFunction(iface, fn)
	}

	methods := ResourceMethods(r, res)
	if len(methods) != 2 || methods[0] != read || methods[1] != write {
		t.Errorf("methods = %v, want [read, write] in table order", fnNames(methods))
	}

	if got := ResourceMethods(r, wit.TypeID(99)); got != nil {
		t.Errorf("methods of missing type = %v, want nil", fnNames(got))
	}
	unowned := r.AddType("loose", &wit.Resource{}, nil)
	if got := ResourceMethods(r, unowned); got != nil {
		t.Errorf("methods of unowned type = %v, want nil", fnNames(got))
	}
}

// Repeated invocation with unchanged inputs yields equal results.
func TestClassifiersIdempotent(t *testing.T) {
	r := wit.NewResolve()
	pair := r.AddType("", &wit.Tuple{Types: []wit.Type{wit.String{}, wit.U32{}}}, nil)
	dict := r.AddType("", &wit.List{Element: wit.Ref(pair)}, nil)

	first, ok1 := DictionaryValue(r, wit.Ref(dict))
	second, ok2 := DictionaryValue(r, wit.Ref(dict))
	if ok1 != ok2 || first != second {
		t.Errorf("results differ across calls: (%v, %v) vs (%v, %v)", first, ok1, second, ok2)
	}
}

func defNames(defs []*wit.TypeDef) []string {
	names := make([]string, len(defs))
	for i, def := range defs {
		names[i] = def.Name
	}
	return names
}

func fnNames(fns []*wit.Function) []string {
	names := make([]string, len(fns))
	for i, fn := range fns {
		names[i] = fn.Name
	}
	return names
}
