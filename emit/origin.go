package emit

import (
	"runtime"
	"strings"
)

// Origin returns the package-qualified name of the function that called it,
// e.g. "run.(*Holder).Report". Workers use it to fill the Function field of
// their record.
func Origin() string {
	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		return "unknown"
	}
	name := runtime.FuncForPC(pc).Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
