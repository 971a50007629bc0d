package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary keys into readable names. Arena ids are small
// integers that all look alike in a log, so a name like "BraveWombat" is much
// easier to follow across a dozen insertion steps. Names are generated lazily
// and memoised for the life of the process, which leaks, but only matters when
// debug output is actually being produced.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Names are handed out in order of demand, so the same id can get a
	// different name on the next run. Nondeterministic mode makes that obvious.
	petname.NonDeterministicMode()
}

// Name returns the memoised name for a key. Typed ids are distinct keys, so
// TriangleID(3) and VertexID(3) get different names. Nil pointers and the
// absent-triangle sentinel (any negative integer) are shown as "Ø".
func Name(obj interface{}) string {
	if isAbsent(obj) {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

func isAbsent(obj interface{}) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return v.IsNil()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() < 0
	}
	return false
}
