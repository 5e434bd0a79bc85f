package config

import (
	"runtime"
	"strings"
)

/*
GetPackageName returns the short package name of the caller, e.g.
"echo-middleware" for a function in valuation-report/src/pkg/echo-middleware.

Used by packages to label their own configuration log lines without
hardcoding the name twice.
*/
func GetPackageName() string {
	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		return "unknown"
	}

	fullName := runtime.FuncForPC(pc).Name() // e.g. valuation-report/src/pkg/echo-middleware.InitializeConfig
	lastSlash := strings.LastIndex(fullName, "/")
	shortName := fullName[lastSlash+1:] // e.g. echo-middleware.InitializeConfig
	firstDot := strings.Index(shortName, ".")
	if firstDot < 0 {
		return shortName
	}
	return shortName[:firstDot]
}
