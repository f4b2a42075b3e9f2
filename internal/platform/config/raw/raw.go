// Package raw reads environment variables during bootstrap. The logger
// depends on it, so it must never import the logger or config packages
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf is a prefixed view over a variable source, the process environment
// unless built with FromMap
type Conf struct {
	prefix string
	src    func(string) (string, bool)
}

// New returns an unprefixed view over the process environment
func New() Conf { return Conf{src: os.LookupEnv} }

// FromMap returns a view over fixed values
func FromMap(m map[string]string) Conf {
	return Conf{src: func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}}
}

// Prefix narrows c, so c.Prefix("LOG_").Get("LEVEL") reads LOG_LEVEL
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p, src: c.src} }

// Lookup returns the trimmed value and whether it is set and non-blank
func (c Conf) Lookup(key string) (string, bool) {
	src := c.src
	if src == nil {
		src = os.LookupEnv
	}
	v, _ := src(c.prefix + key)
	v = strings.TrimSpace(v)
	return v, v != ""
}

// Get returns the value of key or def
func (c Conf) Get(key, def string) string {
	if v, ok := c.Lookup(key); ok {
		return v
	}
	return def
}

// GetBool understands 1/0, true/false, yes/no and on/off in any case.
// Anything else yields def
func (c Conf) GetBool(key string, def bool) bool {
	v, _ := c.Lookup(key)
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

// GetInt returns a non-negative integer, or def when unset or malformed
func (c Conf) GetInt(key string, def int) int {
	v, ok := c.Lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}
