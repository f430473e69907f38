package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Parse  bool
	Align  bool
	Patch  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("NEON_DEBUG_TOKENS")
	d.Parse = boolEnv("NEON_DEBUG_PARSE")
	d.Align = boolEnv("NEON_DEBUG_ALIGN")
	d.Patch = boolEnv("NEON_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Parse() bool {
	return d.Parse
}
func Align() bool {
	return d.Align
}
func Patch() bool {
	return d.Patch
}
