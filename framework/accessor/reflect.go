package accessor

import (
	"reflect"
	"sort"

	"github.com/gobuffalo/flect"
	"github.com/pkg/errors"
)

// Reflect reads attributes from structs and string-keyed maps using
// the reflect package. Attribute names are snake_case on the outside
// and inflected to exported Go field names on the inside, so
// "addr_street" reaches the field AddrStreet. Pointers and interfaces
// are followed transparently; a nil along the way is an ordinary
// non-match.
//
// It also implements the optional attribute-listing, indexing and
// element-enumeration capabilities over the same value kinds.
type Reflect struct{}

func (Reflect) Attribute(object interface{}, name string) (interface{}, bool, error) {
	v, ok := deref(object)
	if !ok {
		return nil, false, nil
	}
	switch v.Kind() {
	case reflect.Struct:
		f := v.FieldByName(flect.Pascalize(name))
		if !f.IsValid() || !f.CanInterface() {
			return nil, false, nil
		}
		return f.Interface(), true, nil
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, false, nil
		}
		mv := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key()))
		if !mv.IsValid() {
			return nil, false, nil
		}
		return mv.Interface(), true, nil
	}
	return nil, false, nil
}

// IsInstanceOf accepts three descriptor shapes: a reflect.Type, a
// string naming a type or kind ("Simple", "map", "float64"), or any
// sample value standing in for its own dynamic type. Interface
// descriptors match every implementation, which is as close to "or a
// subtype" as the host language gets.
func (Reflect) IsInstanceOf(object interface{}, descriptor interface{}) (bool, error) {
	if descriptor == nil {
		return false, errors.New("nil type descriptor")
	}
	if object == nil {
		return false, nil
	}
	ot := reflect.TypeOf(object)
	switch d := descriptor.(type) {
	case reflect.Type:
		return typeSatisfies(ot, d), nil
	case string:
		return typeNameMatches(ot, d), nil
	default:
		dt := reflect.TypeOf(descriptor)
		// Subtype((*io.Reader)(nil)) names the interface itself
		if dt.Kind() == reflect.Ptr && dt.Elem().Kind() == reflect.Interface {
			dt = dt.Elem()
		}
		return typeSatisfies(ot, dt), nil
	}
}

func (Reflect) AttributeNames(object interface{}) ([]string, error) {
	v, ok := deref(object)
	if !ok {
		return nil, nil
	}
	var names []string
	switch v.Kind() {
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.PkgPath != "" { // unexported
				continue
			}
			names = append(names, flect.Underscore(f.Name))
		}
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, nil
		}
		for _, k := range v.MapKeys() {
			names = append(names, k.String())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (Reflect) Index(object interface{}, i int) (interface{}, bool, error) {
	v, ok := deref(object)
	if !ok {
		return nil, false, nil
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if i < 0 || i >= v.Len() {
			return nil, false, nil
		}
		return v.Index(i).Interface(), true, nil
	}
	return nil, false, nil
}

func (Reflect) Elements(object interface{}) ([]interface{}, bool, error) {
	v, ok := deref(object)
	if !ok {
		return nil, false, nil
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		elems := make([]interface{}, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			elems = append(elems, v.Index(i).Interface())
		}
		return elems, true, nil
	}
	return nil, false, nil
}

func deref(object interface{}) (reflect.Value, bool) {
	v := reflect.ValueOf(object)
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v, false
		}
		v = v.Elem()
	}
	return v, v.IsValid()
}

func typeSatisfies(ot, dt reflect.Type) bool {
	if dt.Kind() == reflect.Interface {
		return ot.Implements(dt)
	}
	if ot == dt {
		return true
	}
	// a *T focus satisfies a T descriptor and the other way around
	if ot.Kind() == reflect.Ptr && ot.Elem() == dt {
		return true
	}
	if dt.Kind() == reflect.Ptr && dt.Elem() == ot {
		return true
	}
	return false
}

func typeNameMatches(ot reflect.Type, name string) bool {
	for ot.Kind() == reflect.Ptr {
		ot = ot.Elem()
	}
	if ot.Name() == name {
		return true
	}
	return ot.Kind().String() == name
}
