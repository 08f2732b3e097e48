package witjson

import (
	"encoding/json"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/wippyai/wit-bindgen/errors"
	"github.com/wippyai/wit-bindgen/wit"
)

type document struct {
	Packages   []jsonPackage   `json:"packages"`
	Worlds     []jsonWorld     `json:"worlds"`
	Interfaces []jsonInterface `json:"interfaces"`
	Types      []jsonType      `json:"types"`
	Functions  []jsonFunction  `json:"functions"`
}

type jsonPackage struct {
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
}

type jsonWorld struct {
	Name string `json:"name"`
}

type jsonInterface struct {
	Package *int   `json:"package"`
	Name    string `json:"name"`
}

type jsonType struct {
	Kind  map[string]json.RawMessage `json:"kind"`
	Owner *jsonOwner                 `json:"owner"`
	Name  string                     `json:"name"`
}

type jsonOwner struct {
	World     *int `json:"world"`
	Interface *int `json:"interface"`
}

type jsonFunction struct {
	Kind      map[string]int    `json:"kind"` // method/static/constructor; absent means freestanding
	Name      string            `json:"name"`
	Params    []jsonParam       `json:"params"`
	Results   []json.RawMessage `json:"results"`
	Interface int               `json:"interface"`
}

type jsonParam struct {
	Name string          `json:"name"`
	Type json.RawMessage `json:"type"`
}

// Load reads and decodes a graph document file.
func Load(filename string) (*wit.Resolve, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.IO(errors.PhaseGraph, filename, err)
	}
	return Decode(data)
}

// Decode decodes a graph document into a freshly built wit.Resolve.
func Decode(data []byte) (*wit.Resolve, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.New(errors.PhaseGraph, errors.KindInvalidData).
			Cause(err).
			Detail("document is not valid JSON").
			Build()
	}

	d := &decoder{doc: &doc, r: wit.NewResolve()}
	if err := d.run(); err != nil {
		return nil, err
	}

	Logger().Debug("decoded graph document",
		zap.Int("packages", len(d.r.Packages)),
		zap.Int("worlds", len(d.r.Worlds)),
		zap.Int("interfaces", len(d.r.Interfaces)),
		zap.Int("types", len(d.r.Types)))
	return d.r, nil
}

type decoder struct {
	doc *document
	r   *wit.Resolve
}

func (d *decoder) run() error {
	for _, pkg := range d.doc.Packages {
		d.r.AddPackage(pkg.Namespace, pkg.Name)
	}
	for _, world := range d.doc.Worlds {
		d.r.AddWorld(world.Name)
	}
	for i, iface := range d.doc.Interfaces {
		pkg := wit.NoPackage
		if iface.Package != nil {
			if *iface.Package < 0 || *iface.Package >= len(d.doc.Packages) {
				return errors.BadReference(errors.PhaseGraph,
					[]string{"interfaces", strconv.Itoa(i)},
					"package", *iface.Package, len(d.doc.Packages))
			}
			pkg = wit.PackageID(*iface.Package)
		}
		d.r.AddInterface(iface.Name, pkg)
	}

	// Kinds may forward-reference types, so every index checks against the
	// final arena size rather than the portion built so far.
	for i, jt := range d.doc.Types {
		path := []string{"types", strconv.Itoa(i)}
		owner, err := d.owner(jt.Owner, path)
		if err != nil {
			return err
		}
		kind, err := d.kind(jt.Kind, path)
		if err != nil {
			return err
		}
		d.r.AddType(jt.Name, kind, owner)
	}

	for i, jf := range d.doc.Functions {
		path := []string{"functions", strconv.Itoa(i)}
		fn, iface, err := d.function(jf, path)
		if err != nil {
			return err
		}
		d.r.AddFunction(iface, fn)
	}
	return nil
}

func (d *decoder) owner(o *jsonOwner, path []string) (wit.TypeOwner, error) {
	switch {
	case o == nil:
		return nil, nil
	case o.World != nil:
		if *o.World < 0 || *o.World >= len(d.doc.Worlds) {
			return nil, errors.BadReference(errors.PhaseGraph, path, "world", *o.World, len(d.doc.Worlds))
		}
		return wit.WorldOwner(*o.World), nil
	case o.Interface != nil:
		if *o.Interface < 0 || *o.Interface >= len(d.doc.Interfaces) {
			return nil, errors.BadReference(errors.PhaseGraph, path, "interface", *o.Interface, len(d.doc.Interfaces))
		}
		return wit.InterfaceOwner(*o.Interface), nil
	default:
		return nil, errors.InvalidData(errors.PhaseGraph, path, "owner must name a world or an interface")
	}
}

var primTypes = map[string]wit.Type{
	"bool":   wit.Bool{},
	"u8":     wit.U8{},
	"s8":     wit.S8{},
	"u16":    wit.U16{},
	"s16":    wit.S16{},
	"u32":    wit.U32{},
	"s32":    wit.S32{},
	"u64":    wit.U64{},
	"s64":    wit.S64{},
	"f32":    wit.F32{},
	"f64":    wit.F64{},
	"char":   wit.Char{},
	"string": wit.String{},
}

// typeRef decodes a type reference: a primitive name or {"id": n}.
func (d *decoder) typeRef(raw json.RawMessage, path []string) (wit.Type, error) {
	if len(raw) == 0 {
		return nil, errors.InvalidData(errors.PhaseGraph, path, "missing type reference")
	}

	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		if t, ok := primTypes[name]; ok {
			return t, nil
		}
		return nil, errors.UnknownKind(errors.PhaseGraph, path, name)
	}

	var ref struct {
		ID *int `json:"id"`
	}
	if err := json.Unmarshal(raw, &ref); err != nil || ref.ID == nil {
		return nil, errors.InvalidData(errors.PhaseGraph, path, "type reference must be a primitive name or {\"id\": n}")
	}
	if *ref.ID < 0 || *ref.ID >= len(d.doc.Types) {
		return nil, errors.BadReference(errors.PhaseGraph, path, "type", *ref.ID, len(d.doc.Types))
	}
	return wit.Ref(*ref.ID), nil
}

// optionalTypeRef is typeRef for slots that may be absent (result sides,
// variant case payloads).
func (d *decoder) optionalTypeRef(raw json.RawMessage, path []string) (wit.Type, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	return d.typeRef(raw, path)
}

func (d *decoder) typeID(index int, path []string) (wit.TypeID, error) {
	if index < 0 || index >= len(d.doc.Types) {
		return 0, errors.BadReference(errors.PhaseGraph, path, "type", index, len(d.doc.Types))
	}
	return wit.TypeID(index), nil
}

func (d *decoder) kind(kind map[string]json.RawMessage, path []string) (wit.TypeDefKind, error) {
	if len(kind) != 1 {
		return nil, errors.InvalidData(errors.PhaseGraph, path, "kind must have exactly one tag")
	}
	for tag, raw := range kind {
		return d.kindPayload(tag, raw, append(path, tag))
	}
	return nil, nil // unreachable, len(kind) == 1
}

func (d *decoder) kindPayload(tag string, raw json.RawMessage, path []string) (wit.TypeDefKind, error) {
	switch tag {
	case "resource":
		return &wit.Resource{}, nil

	case "record":
		var payload struct {
			Fields []jsonParam `json:"fields"`
		}
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, errors.New(errors.PhaseGraph, errors.KindInvalidData).Path(path...).Cause(err).Build()
		}
		fields := make([]wit.Field, len(payload.Fields))
		for i, f := range payload.Fields {
			t, err := d.typeRef(f.Type, append(path, f.Name))
			if err != nil {
				return nil, err
			}
			fields[i] = wit.Field{Name: f.Name, Type: t}
		}
		return &wit.Record{Fields: fields}, nil

	case "enum":
		var payload struct {
			Cases []string `json:"cases"`
		}
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, errors.New(errors.PhaseGraph, errors.KindInvalidData).Path(path...).Cause(err).Build()
		}
		return &wit.Enum{Cases: payload.Cases}, nil

	case "flags":
		var payload struct {
			Names []string `json:"names"`
		}
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, errors.New(errors.PhaseGraph, errors.KindInvalidData).Path(path...).Cause(err).Build()
		}
		return &wit.Flags{Names: payload.Names}, nil

	case "variant":
		var payload struct {
			Cases []struct {
				Name string          `json:"name"`
				Type json.RawMessage `json:"type"`
			} `json:"cases"`
		}
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, errors.New(errors.PhaseGraph, errors.KindInvalidData).Path(path...).Cause(err).Build()
		}
		cases := make([]wit.Case, len(payload.Cases))
		for i, c := range payload.Cases {
			t, err := d.optionalTypeRef(c.Type, append(path, c.Name))
			if err != nil {
				return nil, err
			}
			cases[i] = wit.Case{Name: c.Name, Type: t}
		}
		return &wit.Variant{Cases: cases}, nil

	case "list":
		var payload struct {
			Element json.RawMessage `json:"element"`
		}
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, errors.New(errors.PhaseGraph, errors.KindInvalidData).Path(path...).Cause(err).Build()
		}
		elem, err := d.typeRef(payload.Element, path)
		if err != nil {
			return nil, err
		}
		return &wit.List{Element: elem}, nil

	case "option":
		var payload struct {
			Payload json.RawMessage `json:"payload"`
		}
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, errors.New(errors.PhaseGraph, errors.KindInvalidData).Path(path...).Cause(err).Build()
		}
		inner, err := d.typeRef(payload.Payload, path)
		if err != nil {
			return nil, err
		}
		return &wit.Option{Payload: inner}, nil

	case "result":
		var payload struct {
			OK  json.RawMessage `json:"ok"`
			Err json.RawMessage `json:"err"`
		}
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, errors.New(errors.PhaseGraph, errors.KindInvalidData).Path(path...).Cause(err).Build()
		}
		okType, err := d.optionalTypeRef(payload.OK, append(path, "ok"))
		if err != nil {
			return nil, err
		}
		errType, err := d.optionalTypeRef(payload.Err, append(path, "err"))
		if err != nil {
			return nil, err
		}
		return &wit.Result{OK: okType, Err: errType}, nil

	case "tuple":
		var payload struct {
			Types []json.RawMessage `json:"types"`
		}
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, errors.New(errors.PhaseGraph, errors.KindInvalidData).Path(path...).Cause(err).Build()
		}
		types := make([]wit.Type, len(payload.Types))
		for i, rawType := range payload.Types {
			t, err := d.typeRef(rawType, append(path, strconv.Itoa(i)))
			if err != nil {
				return nil, err
			}
			types[i] = t
		}
		return &wit.Tuple{Types: types}, nil

	case "own", "borrow":
		var payload struct {
			Resource *int `json:"resource"`
		}
		if err := json.Unmarshal(raw, &payload); err != nil || payload.Resource == nil {
			return nil, errors.InvalidData(errors.PhaseGraph, path, "handle requires a resource index")
		}
		id, err := d.typeID(*payload.Resource, path)
		if err != nil {
			return nil, err
		}
		if tag == "own" {
			return &wit.Own{Resource: id}, nil
		}
		return &wit.Borrow{Resource: id}, nil

	case "alias":
		var payload struct {
			Target json.RawMessage `json:"target"`
		}
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, errors.New(errors.PhaseGraph, errors.KindInvalidData).Path(path...).Cause(err).Build()
		}
		target, err := d.typeRef(payload.Target, path)
		if err != nil {
			return nil, err
		}
		return &wit.Alias{Target: target}, nil

	default:
		return nil, errors.UnknownKind(errors.PhaseGraph, path, tag)
	}
}

func (d *decoder) function(jf jsonFunction, path []string) (*wit.Function, wit.InterfaceID, error) {
	if jf.Interface < 0 || jf.Interface >= len(d.doc.Interfaces) {
		return nil, 0, errors.BadReference(errors.PhaseGraph, path, "interface", jf.Interface, len(d.doc.Interfaces))
	}

	kind, err := d.functionKind(jf.Kind, path)
	if err != nil {
		return nil, 0, err
	}

	params := make([]wit.Param, len(jf.Params))
	for i, p := range jf.Params {
		t, err := d.typeRef(p.Type, append(path, "params", p.Name))
		if err != nil {
			return nil, 0, err
		}
		params[i] = wit.Param{Name: p.Name, Type: t}
	}

	results := make([]wit.Type, len(jf.Results))
	for i, raw := range jf.Results {
		t, err := d.typeRef(raw, append(path, "results", strconv.Itoa(i)))
		if err != nil {
			return nil, 0, err
		}
		results[i] = t
	}

	fn := &wit.Function{Name: jf.Name, Kind: kind, Params: params, Results: results}
	return fn, wit.InterfaceID(jf.Interface), nil
}

func (d *decoder) functionKind(kind map[string]int, path []string) (wit.FunctionKind, error) {
	if len(kind) == 0 {
		return wit.Freestanding{}, nil
	}
	if len(kind) != 1 {
		return nil, errors.InvalidData(errors.PhaseGraph, path, "function kind must have at most one tag")
	}
	for tag, index := range kind {
		id, err := d.typeID(index, append(path, tag))
		if err != nil {
			return nil, err
		}
		switch tag {
		case "method":
			return wit.Method{Type: id}, nil
		case "static":
			return wit.Static{Type: id}, nil
		case "constructor":
			return wit.Constructor{Type: id}, nil
		default:
			return nil, errors.UnknownTag(errors.PhaseGraph, append(path, "kind"), tag)
		}
	}
	return nil, nil // unreachable, len(kind) == 1
}
