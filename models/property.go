package models

import (
	"fmt"
	"reflect"
)

// Propertied is implemented by values that expose named properties.
type Propertied interface {
	Property(name string) (any, bool)
}

// Property returns the named property of object when it has one, and the
// string form of object otherwise. Nil objects and nil pointers read as "".
func Property(object any, name string) any {
	if isNil(object) {
		return ""
	}
	if p, ok := object.(Propertied); ok {
		if v, ok := p.Property(name); ok {
			return v
		}
	}
	return fmt.Sprint(object)
}

func isNil(object any) bool {
	if object == nil {
		return true
	}
	v := reflect.ValueOf(object)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
