package module

import (
	"fmt"
	"reflect"
)

// PortsOf finds a T in m's port bundle: the bundle itself, or the first
// exported non-nil field of a struct (or pointer to struct) bundle
func PortsOf[T any](m Module) (T, bool) {
	return find[T](m.Ports())
}

// MustPortsOf is PortsOf for bootstrap code, where a missing port is a bug
func MustPortsOf[T any](m Module) T {
	v, ok := PortsOf[T](m)
	if !ok {
		panic(fmt.Sprintf("module %s: no %v in ports %T", m.Name(), reflect.TypeFor[T](), m.Ports()))
	}
	return v
}

// Lookup finds a T among the ports registered under name
func Lookup[T any](name string) (T, bool) {
	p, ok := global.get(name)
	if !ok {
		var zero T
		return zero, false
	}
	return find[T](p)
}

func find[T any](bundle any) (T, bool) {
	var zero T
	if bundle == nil {
		return zero, false
	}
	if v, ok := bundle.(T); ok {
		return v, true
	}
	rv := reflect.Indirect(reflect.ValueOf(bundle))
	if rv.Kind() != reflect.Struct {
		return zero, false
	}
	rt := rv.Type()
	for i := range rt.NumField() {
		if !rt.Field(i).IsExported() {
			continue
		}
		f := rv.Field(i)
		switch f.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice:
			if f.IsNil() {
				continue
			}
		}
		if v, ok := f.Interface().(T); ok {
			return v, true
		}
	}
	return zero, false
}
