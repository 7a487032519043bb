package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Encode  bool
	Cascade bool
	Refs    bool
	Patch   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("PBX_DEBUG_PARSE")
	d.Encode = boolEnv("PBX_DEBUG_ENCODE")
	d.Cascade = boolEnv("PBX_DEBUG_CASCADE")
	d.Refs = boolEnv("PBX_DEBUG_REFS")
	d.Patch = boolEnv("PBX_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Cascade() bool {
	return d.Cascade
}
func Refs() bool {
	return d.Refs
}
func Patch() bool {
	return d.Patch
}
