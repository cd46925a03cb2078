// Package data contains the default [domain.Document] implementation and
// the conversion of caller records (maps, structs, nested slices) into
// documents.
package data

import (
	"iter"
	"maps"
	"slices"
	"strings"
	"time"

	goreflect "github.com/goccy/go-reflect"

	"github.com/vinicius-lino-figueiredo/seeq/domain"
)

// TagName is the struct tag read when converting struct records.
const TagName = "seeq"

var timeTyp = goreflect.TypeOf(*new(time.Time))

// M implements [domain.Document] by using a hashed map. Duplicates
// replace old values.
type M map[string]any

// NewDocument returns a new instance of [domain.Document]. It accepts
// maps with string keys and structs, converting nested maps, structs,
// slices and arrays along the way, so documents only ever hold M,
// []any and primitive values. Struct fields honor the "seeq" tag: "-"
// skips a field, ",omitempty" drops nil fields and ",omitzero" drops
// zero-value fields. nil records, nil pointers and typed-nil documents
// all yield an empty document.
func NewDocument(in any) (domain.Document, error) {
	if in == nil {
		return M{}, nil
	}

	// unwrap before any interface dispatch: a typed-nil pointer may
	// still satisfy domain.Document and must not be called
	r := goreflect.ValueOf(in)
	for r.Kind() == goreflect.Interface || r.Kind() == goreflect.Ptr {
		if r.IsNil() {
			return M{}, nil
		}
		r = r.Elem()
	}

	if doc, ok := r.Interface().(domain.Document); ok {
		res := make(M, doc.Len())
		for key, v := range doc.Iter() {
			value, err := convert(goreflect.ValueOf(v))
			if err != nil {
				return nil, err
			}
			res[key] = value
		}
		return res, nil
	}

	if k := r.Kind(); k != goreflect.Struct && k != goreflect.Map {
		return nil, domain.ErrDocumentType{Reason: "expected map or struct, got " + r.Type().String()}
	}
	doc, err := convert(r)
	if err != nil {
		return nil, err
	}
	return doc.(domain.Document), nil
}

func convert(r goreflect.Value) (any, error) {
	for r.Kind() == goreflect.Ptr || r.Kind() == goreflect.Interface {
		if r.IsNil() {
			return nil, nil
		}
		r = r.Elem()
	}
	switch r.Kind() {
	case goreflect.Invalid:
		return nil, nil
	case goreflect.Slice:
		if r.IsNil() {
			return nil, nil
		}
		fallthrough
	case goreflect.Array:
		return convertList(r)
	case goreflect.Struct:
		if r.Type() == timeTyp {
			return r.Interface(), nil
		}
		return convertStruct(r)
	case goreflect.Map:
		if r.IsNil() {
			return nil, nil
		}
		return convertMap(r)
	default:
		return r.Interface(), nil
	}
}

func convertStruct(r goreflect.Value) (domain.Document, error) {
	typ := r.Type()
	numField := r.NumField()

	res := make(M, numField)
	for n := range numField {
		field := typ.Field(n)
		if field.PkgPath != "" {
			continue
		}
		name, keep := fieldName(r.Field(n), field)
		if !keep {
			continue
		}
		value, err := convert(r.Field(n))
		if err != nil {
			return nil, err
		}
		res[name] = value
	}
	return res, nil
}

func fieldName(r goreflect.Value, typ goreflect.StructField) (string, bool) {
	name := typ.Name
	var directives []string
	if tag, ok := typ.Tag.Lookup(TagName); ok {
		if tag == "-" {
			return "", false
		}
		directives = strings.Split(tag, ",")
		if directives[0] != "" {
			name = directives[0]
		}
		directives = directives[1:]
	}
	if slices.Contains(directives, "omitempty") && isNullable(typ.Type) && r.IsNil() {
		return "", false
	}
	if slices.Contains(directives, "omitzero") && r.IsZero() {
		return "", false
	}
	return name, true
}

func convertMap(r goreflect.Value) (domain.Document, error) {
	if r.Type().Key().Kind() != goreflect.String {
		return nil, domain.ErrDocumentType{Reason: "map keys must be strings, got " + r.Type().Key().String()}
	}
	res := make(M, r.Len())
	for _, k := range r.MapKeys() {
		value, err := convert(r.MapIndex(k))
		if err != nil {
			return nil, err
		}
		res[k.String()] = value
	}
	return res, nil
}

func convertList(r goreflect.Value) (any, error) {
	length := r.Len()
	res := make([]any, length)
	for i := range length {
		value, err := convert(r.Index(i))
		if err != nil {
			return nil, err
		}
		res[i] = value
	}
	return res, nil
}

func isNullable(t goreflect.Type) bool {
	switch t.Kind() {
	case goreflect.Ptr, goreflect.Slice, goreflect.Map, goreflect.Interface,
		goreflect.Func, goreflect.Chan:
		return true
	}
	return false
}

// Get implements [domain.Document].
func (d M) Get(key string) any { return d[key] }

// Set implements [domain.Document].
func (d M) Set(key string, value any) { d[key] = value }

// Has implements [domain.Document].
func (d M) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// Iter implements [domain.Document].
func (d M) Iter() iter.Seq2[string, any] { return maps.All(d) }

// Keys implements [domain.Document].
func (d M) Keys() iter.Seq[string] { return maps.Keys(d) }

// Len implements [domain.Document].
func (d M) Len() int { return len(d) }
