// Package dbg turns pointers into readable names for debug logging.
package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
)

// This converts arbitrary pointers into random readable names. It leaks memory
// but generates the names lazily, so it's not a problem unless debug logging is
// actually enabled. Skeleton edges and vertices are much easier to follow in a
// log as "GentleMarmot" than as "0xc000123450".

var (
	memoMu sync.Mutex
	memo   = make(map[interface{}]string)
)

func init() {
	// Names are handed out in order of demand, so they are made
	// nondeterministic to remind the reader that the same name doesn't refer
	// to the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	memoMu.Lock()
	defer memoMu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

// Tone selects the colour of a coloured name.
type Tone int

const (
	Plain Tone = iota
	Inner
	Outer
	Cap
	Dead
)

// ColorName is Name, coloured for terminal output.
func ColorName(obj interface{}, tone Tone) string {
	name := Name(obj)
	switch tone {
	case Inner:
		return aurora.Green(name).String()
	case Outer:
		return aurora.Cyan(name).String()
	case Cap:
		return aurora.Yellow(name).String()
	case Dead:
		return aurora.Red(name).String()
	}
	return name
}

// Dump pretty prints a value for a debug log attribute.
func Dump(obj interface{}) string {
	return pretty.Sprint(obj)
}
