package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse    bool
	Encode   bool
	Validate bool
	Convert  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("TOON_DEBUG_PARSE")
	d.Encode = boolEnv("TOON_DEBUG_ENCODE")
	d.Validate = boolEnv("TOON_DEBUG_VALIDATE")
	d.Convert = boolEnv("TOON_DEBUG_CONVERT")
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
func Validate() bool {
	return d.Validate
}
func Convert() bool {
	return d.Convert
}
