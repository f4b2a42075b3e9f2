package config

import (
	"testing"
	"time"

	kit "termswap/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	api := New().Prefix("TERMSWAP_").Prefix("API_")
	if got := api.Key("PORT"); got != "TERMSWAP_API_PORT" {
		t.Fatalf("Key() = %q", got)
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_DICT", "  terms.json ")
	if got := c.MustString("DICT"); got != "terms.json" {
		t.Fatalf("MustString = %q", got)
	}
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMustInt(t *testing.T) {
	c := New().Prefix("SVC_")
	t.Setenv("SVC_WORKERS", "  8 ")
	if got := c.MustInt("WORKERS"); got != 8 {
		t.Fatalf("MustInt = %d", got)
	}
	kit.MustPanic(t, func() { _ = c.MustInt("MISSING") })
	t.Setenv("SVC_BAD", "x")
	kit.MustPanic(t, func() { _ = c.MustInt("BAD") })
}

func TestRequire(t *testing.T) {
	c := New().Prefix("REQ_")
	t.Setenv("REQ_A", "x")
	t.Setenv("REQ_WS", "   ")
	kit.MustNotPanic(t, func() { c.Require("A") })
	kit.MustPanic(t, func() { c.Require("A", "C") })
	kit.MustPanic(t, func() { c.Require("WS") })
	if c.Has("WS") || !c.Has("A") {
		t.Fatalf("Has should treat blank as missing")
	}
}

func TestMayString(t *testing.T) {
	c := New().Prefix("S_")
	if got := c.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("MayString default = %q", got)
	}
	t.Setenv("S_NAME", " termswap ")
	if got := c.MayString("NAME", "x"); got != "termswap" {
		t.Fatalf("MayString value = %q", got)
	}
}

func TestMayInt(t *testing.T) {
	c := New().Prefix("I_")
	if got := c.MayInt("MISSING", 9); got != 9 {
		t.Fatalf("MayInt default = %d", got)
	}
	t.Setenv("I_OK", " 7 ")
	if got := c.MayInt("OK", 0); got != 7 {
		t.Fatalf("MayInt ok = %d", got)
	}
	t.Setenv("I_BAD", "x")
	if got := c.MayInt("BAD", 3); got != 3 {
		t.Fatalf("MayInt bad -> default = %d", got)
	}
}

func TestMayIntRange(t *testing.T) {
	c := New().Prefix("R_")
	cases := []struct {
		env  string
		want int
	}{
		{"", 4},
		{"0", 1},
		{"-3", 1},
		{"12", 12},
		{"500", 64},
	}
	for _, tc := range cases {
		t.Setenv("R_WORKERS", tc.env)
		if got := c.MayIntRange("WORKERS", 4, 1, 64); got != tc.want {
			t.Fatalf("MayIntRange(%q) = %d, want %d", tc.env, got, tc.want)
		}
	}
}

func TestMayBool(t *testing.T) {
	c := New().Prefix("B_")
	if !c.MayBool("MISSING", true) {
		t.Fatalf("MayBool default true expected")
	}
	t.Setenv("B_T", "true")
	if !c.MayBool("T", false) {
		t.Fatalf("MayBool true expected")
	}
	t.Setenv("B_BAD", "nope")
	if c.MayBool("BAD", false) {
		t.Fatalf("MayBool bad -> default false expected")
	}
}

func TestMayDuration(t *testing.T) {
	c := New().Prefix("DUR_")
	if got := c.MayDuration("MISS", 5*time.Second); got != 5*time.Second {
		t.Fatalf("MayDuration default expected")
	}
	t.Setenv("DUR_OK", "150ms")
	if got := c.MayDuration("OK", time.Second); got != 150*time.Millisecond {
		t.Fatalf("MayDuration ok = %v", got)
	}
	t.Setenv("DUR_BAD", "nope")
	if got := c.MayDuration("BAD", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration bad -> default expected")
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("CSV_")
	if got := c.MayCSV("MISS", []string{"cn", "hk"}); len(got) != 2 || got[0] != "cn" {
		t.Fatalf("MayCSV default mismatch: %#v", got)
	}
	t.Setenv("CSV_VALS", " cn, hk , ,tw ,, ")
	got := c.MayCSV("VALS", nil)
	want := []string{"cn", "hk", "tw"}
	if len(got) != len(want) {
		t.Fatalf("MayCSV = %#v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("MayCSV[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	t.Setenv("CSV_EMPTY", " , ,  ,")
	if got := c.MayCSV("EMPTY", []string{"fallback"}); len(got) != 1 || got[0] != "fallback" {
		t.Fatalf("all-empty list should fall back: %#v", got)
	}
}

func TestMayCSVEnum(t *testing.T) {
	c := New().Prefix("CE_")
	t.Setenv("CE_SOURCES", "cn,HK")
	if got := c.MayCSVEnum("SOURCES", nil, "cn", "hk"); len(got) != 2 {
		t.Fatalf("MayCSVEnum = %#v", got)
	}
	t.Setenv("CE_BAD", "cn,xx")
	kit.MustPanic(t, func() { _ = c.MayCSVEnum("BAD", nil, "cn", "hk") })
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("E_")
	if got := c.MayEnum("MISS", "json", "json", "console"); got != "json" {
		t.Fatalf("MayEnum default = %q", got)
	}
	if got := c.MayEnum("MISS", "", "json", "console"); got != "" {
		t.Fatalf("MayEnum empty default = %q", got)
	}
	t.Setenv("E_FMT", "Console")
	if got := c.MayEnum("FMT", "json", "json", "console"); got != "console" {
		t.Fatalf("MayEnum allowed value = %q", got)
	}
	t.Setenv("E_BAD", "xml")
	kit.MustPanic(t, func() { _ = c.MayEnum("BAD", "json", "json", "console") })
}

func TestMayAddr(t *testing.T) {
	c := New().Prefix("A_")
	if got := c.MayAddr("PORT", ":4000"); got != ":4000" {
		t.Fatalf("default addr = %q", got)
	}
	t.Setenv("A_PORT", "8080")
	if got := c.MayAddr("PORT", ":4000"); got != ":8080" {
		t.Fatalf("bare port = %q", got)
	}
	t.Setenv("A_HOST", "127.0.0.1:9000")
	if got := c.MayAddr("HOST", ""); got != "127.0.0.1:9000" {
		t.Fatalf("host:port = %q", got)
	}
	t.Setenv("A_BAD", "70000")
	kit.MustPanic(t, func() { _ = c.MayAddr("BAD", "") })
}
