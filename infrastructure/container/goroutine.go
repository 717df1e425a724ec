package container

import (
	"runtime"
	"strconv"
	"strings"
)

// goid returns the current goroutine ID, parsed from the stack header.
// Resolution chains are tracked per goroutine so that a factory resolving
// its own capability is reported as a cycle instead of deadlocking.
func goid() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	idField := strings.Fields(strings.TrimPrefix(string(buf[:n]), "goroutine "))[0]
	id, _ := strconv.ParseInt(idField, 10, 64)
	return id
}
