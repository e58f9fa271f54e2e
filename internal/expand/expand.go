package expand

import (
	"os"
	"regexp"
	"strings"
)

var re = regexp.MustCompile(`\$\{([a-zA-Z0-9_.-]+)\}`)

// Expand replaces each ${key} in v with mapping(key).
func Expand(v string, mapping func(string) string) string {
	return re.ReplaceAllStringFunc(v, func(s string) string {
		return mapping(s[2 : len(s)-1])
	})
}

// Env resolves keys of the form "env.NAME" from the process environment.
// Other keys resolve to the empty string.
func Env(key string) string {
	if name, ok := strings.CutPrefix(key, "env."); ok {
		return os.Getenv(name)
	}
	return ""
}
