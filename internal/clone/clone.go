// Package clone provides a generic deep-copy helper for the planner's
// open attribute-bag state model, where cloning must be deep: planner
// branches must never alias a nested map or slice stored under a state
// attribute.
//
// Go has no standard deepcopy, so this walks arbitrary values via reflect
// instead of hand-writing a clone method per domain attribute shape.
package clone

import "reflect"

// Value deep-copies v, recursing through pointers, interfaces, maps,
// slices, arrays and structs; other kinds are copied by value. A struct's
// unexported fields are not copied: they are left at their zero value in
// the result. Incomparable leaf kinds such as func and chan are returned
// unchanged since they represent shared, not owned, state.
func Value(v any) any {
	if v == nil {
		return nil
	}
	return deepCopy(reflect.ValueOf(v)).Interface()
}

func deepCopy(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type().Elem())
		out.Elem().Set(deepCopy(v.Elem()))
		return out
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(deepCopy(v.Elem()))
		return out
	case reflect.Map:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(deepCopy(iter.Key()), deepCopy(iter.Value()))
		}
		return out
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(deepCopy(v.Index(i)))
		}
		return out
	case reflect.Array:
		out := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(deepCopy(v.Index(i)))
		}
		return out
	case reflect.Struct:
		out := reflect.New(v.Type()).Elem()
		for i := 0; i < v.NumField(); i++ {
			field := out.Field(i)
			if !field.CanSet() {
				// Unexported fields can't be copied from outside the
				// declaring package; leave the zero value rather than
				// reach for unsafe to write across the boundary.
				continue
			}
			field.Set(deepCopy(v.Field(i)))
		}
		return out
	default:
		return v
	}
}
