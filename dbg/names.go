// Package dbg assigns stable, readable names to otherwise anonymous values
// (Voronoi cells, clipped rings) so that diagnostics from a failed
// generation run can be matched up across log lines. Names are memoized for
// the life of the process, which leaks a little memory per named value;
// that only matters if something is already going wrong.
package dbg

import (
	"fmt"
	"reflect"
	"sync"
	"unicode"
	"unicode/utf8"

	petname "github.com/dustinkirkland/golang-petname"
)

var (
	mu   sync.Mutex
	memo = map[interface{}]string{}
)

func init() {
	// Names are handed out in order of demand, so make them nondeterministic
	// as a reminder that the same name never refers to the same value across
	// runs.
	petname.NonDeterministicMode()
}

// Name returns the memoized readable name for obj, which must be a pointer.
// Nil gets a fixed marker.
func Name(obj interface{}) string {
	if obj == nil || reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}
	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
	memo[obj] = r
	return r
}

func title(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
