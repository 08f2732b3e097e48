package wit

import "testing"

func TestTypeNamePrimitives(t *testing.T) {
	r := NewResolve()
	tests := []struct {
		typ  Type
		want string
	}{
		{Bool{}, "bool"},
		{U8{}, "u8"},
		{S64{}, "s64"},
		{F32{}, "f32"},
		{Char{}, "char"},
		{String{}, "string"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := r.TypeName(tc.typ); got != tc.want {
				t.Errorf("TypeName = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTypeNameCompound(t *testing.T) {
	r := NewResolve()
	widget := r.AddType("widget", &Resource{}, nil)
	ownWidget := r.AddType("", &Own{Resource: widget}, nil)
	pair := r.AddType("", &Tuple{Types: []Type{String{}, U32{}}}, nil)
	dict := r.AddType("", &List{Element: Ref(pair)}, nil)
	maybe := r.AddType("", &Option{Payload: Ref(ownWidget)}, nil)
	named := r.AddType("registry", &Record{Fields: []Field{{Name: "id", Type: U32{}}}}, nil)

	tests := []struct {
		typ  Type
		want string
	}{
		{Ref(widget), "widget"},
		{Ref(ownWidget), "own<widget>"},
		{Ref(pair), "tuple<string, u32>"},
		{Ref(dict), "list<tuple<string, u32>>"},
		{Ref(maybe), "option<own<widget>>"},
		{Ref(named), "registry"},
		{Ref(999), "?"},
		{nil, "?"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := r.TypeName(tc.typ); got != tc.want {
				t.Errorf("TypeName = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTypeNameResult(t *testing.T) {
	r := NewResolve()
	tests := []struct {
		kind TypeDefKind
		want string
	}{
		{&Result{}, "result"},
		{&Result{OK: U32{}}, "result<u32>"},
		{&Result{Err: String{}}, "result<_, string>"},
		{&Result{OK: U32{}, Err: String{}}, "result<u32, string>"},
	}
	for _, tc := range tests {
		id := r.AddType("", tc.kind, nil)
		if got := r.TypeName(Ref(id)); got != tc.want {
			t.Errorf("TypeName(%v) = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestTypeNameAliasResolvesThrough(t *testing.T) {
	r := NewResolve()
	inner := r.AddType("", &List{Element: U8{}}, nil)
	alias := r.AddType("", &Alias{Target: Ref(inner)}, nil)
	if got := r.TypeName(Ref(alias)); got != "list<u8>" {
		t.Errorf("TypeName(alias) = %q, want list<u8>", got)
	}

	// A named alias renders as its own name.
	named := r.AddType("bytes", &Alias{Target: Ref(inner)}, nil)
	if got := r.TypeName(Ref(named)); got != "bytes" {
		t.Errorf("TypeName(named alias) = %q, want bytes", got)
	}
}
