package strings

import (
	"testing"

	kit "termswap/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	if got := IfEmpty(nil, []string{"cn"}); len(got) != 1 || got[0] != "cn" {
		t.Fatalf("IfEmpty nil = %v", got)
	}
	if got := IfEmpty([]string{"hk"}, []string{"cn"}); got[0] != "hk" {
		t.Fatalf("IfEmpty kept = %v", got)
	}
}

func TestMustPrefix(t *testing.T) {
	cases := map[string]string{
		"convert":    "/convert",
		" /meta/ ":   "/meta",
		"//api/v1//": "/api/v1",
	}
	for in, want := range cases {
		if got := MustPrefix(in); got != want {
			t.Fatalf("MustPrefix(%q) = %q, want %q", in, got, want)
		}
	}
	kit.MustPanic(t, func() { _ = MustPrefix(" / ") })
}

func TestFlatten(t *testing.T) {
	if got := Flatten("a\r\nb\nc\td"); got != "a b c d" {
		t.Fatalf("Flatten = %q", got)
	}
}

func TestRuneWindows(t *testing.T) {
	s := "我的软件很好"
	cases := []struct {
		n          int
		head, tail string
	}{
		{0, "", ""},
		{2, "我的", "很好"},
		{6, s, s},
		{10, s, s},
	}
	for _, c := range cases {
		if got := TakeRunes(s, c.n); got != c.head {
			t.Fatalf("TakeRunes(%d) = %q, want %q", c.n, got, c.head)
		}
		if got := LastRunes(s, c.n); got != c.tail {
			t.Fatalf("LastRunes(%d) = %q, want %q", c.n, got, c.tail)
		}
	}
}
