//go:build release

package core

// Assert reports cond without panicking
// Release builds leave recovery to the caller
func Assert(cond bool, format string, args ...any) bool {
	return cond
}
