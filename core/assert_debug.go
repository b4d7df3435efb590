//go:build !release

package core

import "fmt"

// Assert panics when cond is false
// Development builds treat violated invariants as programmer errors
func Assert(cond bool, format string, args ...any) bool {
	if !cond {
		panic(fmt.Sprintf("assertion failed: "+format, args...))
	}
	return true
}
