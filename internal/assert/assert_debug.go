//go:build debug

package assert

import "fmt"

// DEBUG reports whether assertions are compiled in.
const DEBUG = true

// Assert panics with msg (fmt.Sprintf-formatted) if test is false.
func Assert(test bool, msg string, a ...interface{}) {
	if !test {
		panic(fmt.Sprintf(msg, a...))
	}
}
