package module

import (
	"slices"
	"testing"

	phttp "termswap/internal/platform/net/http"
)

type converter interface{ Convert(string) string }

type upper struct{}

func (upper) Convert(s string) string { return s + "!" }

type stub struct {
	name  string
	ports any
}

func (s stub) Name() string               { return s.name }
func (s stub) Ports() any                 { return s.ports }
func (s stub) MountRoutes(_ phttp.Router) {}

type bundle struct {
	Empty     converter
	Converter converter
	hidden    converter
}

func TestPortsOf(t *testing.T) {
	cases := []struct {
		name  string
		ports any
		ok    bool
	}{
		{"nil bundle", nil, false},
		{"bundle is the port", upper{}, true},
		{"struct field", bundle{Converter: upper{}}, true},
		{"pointer to struct", &bundle{Converter: upper{}}, true},
		{"nil fields skipped", bundle{}, false},
		{"unexported ignored", bundle{hidden: upper{}}, false},
		{"nil pointer", (*bundle)(nil), false},
		{"not a struct", 42, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := PortsOf[converter](stub{name: "m", ports: c.ports})
			if ok != c.ok {
				t.Fatalf("ok = %v, want %v", ok, c.ok)
			}
			if ok && got.Convert("x") != "x!" {
				t.Fatalf("wrong port returned")
			}
		})
	}
}

func TestMustPortsOfPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	MustPortsOf[converter](stub{name: "empty"})
}

func TestRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("convert", bundle{Converter: upper{}})
	Register("meta", nil)
	Register("convert", &bundle{Converter: upper{}})

	if got := Names(); !slices.Equal(got, []string{"convert", "meta"}) {
		t.Fatalf("Names() = %v", got)
	}
	if _, ok := PortsAs[bundle]("convert"); ok {
		t.Fatalf("re-registering should replace the bundle")
	}
	if _, ok := PortsAs[*bundle]("convert"); !ok {
		t.Fatalf("PortsAs should return the pointer bundle")
	}
	if c, ok := Lookup[converter]("convert"); !ok || c.Convert("a") != "a!" {
		t.Fatalf("Lookup should find the converter")
	}
	if _, ok := Lookup[converter]("meta"); ok {
		t.Fatalf("nil bundle has no ports")
	}
	if _, ok := Lookup[converter]("missing"); ok {
		t.Fatalf("unknown module has no ports")
	}
}
