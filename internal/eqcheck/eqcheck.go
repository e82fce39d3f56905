// Package eqcheck detects values that satisfy the comparable constraint at
// compile time but would panic under == or as a map key at run time.
//
// Interface types such as any satisfy comparable, yet an interface holding
// a slice, map or func cannot be compared. The same holds for structs and
// arrays with interface-typed parts. Element types with no interface inside
// them are always safe and skip the per-element walk.
package eqcheck

import "reflect"

// FirstUncomparable returns the index of the first element of s whose
// dynamic value cannot be compared with ==, or -1 if every element can.
//
// Complexity: O(1) when E holds no interface, otherwise O(n) reflection checks.
func FirstUncomparable[E comparable](s []E) int {
	if !mayHoldUncomparable(reflect.TypeFor[E]()) {
		return -1
	}
	for i := range s {
		if !reflect.ValueOf(&s[i]).Elem().Comparable() {
			return i
		}
	}

	return -1
}

// Comparable reports whether v can be compared with == without panicking.
func Comparable[E comparable](v E) bool {
	if !mayHoldUncomparable(reflect.TypeFor[E]()) {
		return true
	}

	return reflect.ValueOf(&v).Elem().Comparable()
}

// mayHoldUncomparable reports whether t has an interface anywhere in it.
func mayHoldUncomparable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return true
	case reflect.Array:
		return mayHoldUncomparable(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if mayHoldUncomparable(t.Field(i).Type) {
				return true
			}
		}
	}

	return false
}
