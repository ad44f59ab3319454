// Package module defines the minimal contract for a modkit module
package module

import (
	"reflect"

	phttp "tutorhub/internal/platform/net/http"
)

// Module is what api.Mount needs from every module
// kept apart from modkit so a module can export its own ports type without import knots
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}

// PortsOf finds T in m.Ports(): the bundle itself, or the first exported field
// of a struct (or pointer to struct) bundle that holds a T
func PortsOf[T any](m Module) (T, bool) {
	var zero T
	p := m.Ports()
	if p == nil {
		return zero, false
	}
	if v, ok := p.(T); ok {
		return v, true
	}
	rv := reflect.Indirect(reflect.ValueOf(p))
	if rv.Kind() != reflect.Struct {
		return zero, false
	}
	for i := range rv.NumField() {
		if !rv.Type().Field(i).IsExported() {
			continue
		}
		if v, ok := rv.Field(i).Interface().(T); ok {
			return v, true
		}
	}
	return zero, false
}
