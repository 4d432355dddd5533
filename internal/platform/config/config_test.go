package config

import (
	"testing"
	"time"

	kit "langshim/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	api := New().Prefix("LANGSHIM_").Prefix("API_")
	if got := api.key("PORT"); got != "LANGSHIM_API_PORT" {
		t.Fatalf("key() = %q, want %q", got, "LANGSHIM_API_PORT")
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_NAME", "  langshim ")
	if got := c.MustString("NAME"); got != "langshim" {
		t.Fatalf("MustString = %q, want %q", got, "langshim")
	}
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMayScalars(t *testing.T) {
	c := New().Prefix("SVC_")
	t.Setenv("SVC_INT", " 8 ")
	t.Setenv("SVC_BADINT", "eight")
	t.Setenv("SVC_I64", "1048576")
	t.Setenv("SVC_BOOL", "true")
	t.Setenv("SVC_BADBOOL", "perhaps")
	t.Setenv("SVC_DUR", "250ms")
	t.Setenv("SVC_BADDUR", "soon")

	if got := c.MayInt("INT", 1); got != 8 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayInt("BADINT", 3); got != 3 {
		t.Fatalf("MayInt(bad) = %d, want default", got)
	}
	if got := c.MayInt64("I64", 0); got != 1<<20 {
		t.Fatalf("MayInt64 = %d", got)
	}
	if !c.MayBool("BOOL", false) || !c.MayBool("BADBOOL", true) {
		t.Fatalf("MayBool mismatch")
	}
	if got := c.MayDuration("DUR", time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayDuration("BADDUR", time.Second); got != time.Second {
		t.Fatalf("MayDuration(bad) = %v", got)
	}
	if got := c.MayString("UNSET", "d"); got != "d" {
		t.Fatalf("MayString default = %q", got)
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("SVC_")
	t.Setenv("SVC_ORIGINS", " https://a.example , ,https://b.example ")
	t.Setenv("SVC_BLANKS", " , , ")

	got := c.MayCSV("ORIGINS", nil)
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Fatalf("MayCSV = %#v", got)
	}
	if def := c.MayCSV("BLANKS", []string{"*"}); len(def) != 1 || def[0] != "*" {
		t.Fatalf("MayCSV(blanks) = %#v, want default", def)
	}
}

func TestMayAddr(t *testing.T) {
	c := New().Prefix("SVC_")
	cases := []struct {
		env  string
		want string
	}{
		{"", ":4000"},
		{"8080", ":8080"},
		{":9090", ":9090"},
		{"127.0.0.1:7000", "127.0.0.1:7000"},
		{"70000", ":4000"},
		{"127.0.0.1:0", "127.0.0.1:0"},
		{"http", ":4000"},
	}
	for _, tc := range cases {
		t.Setenv("SVC_PORT", tc.env)
		if got := c.MayAddr("PORT", ":4000"); got != tc.want {
			t.Fatalf("MayAddr(%q) = %q, want %q", tc.env, got, tc.want)
		}
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("SVC_")
	t.Setenv("SVC_FORMAT", "JSON")
	if got := c.MayEnum("FORMAT", "text", "text", "json"); got != "json" {
		t.Fatalf("MayEnum = %q, want canonical json", got)
	}
	if got := c.MayEnum("UNSET", "text", "text", "json"); got != "text" {
		t.Fatalf("MayEnum default = %q", got)
	}
	t.Setenv("SVC_FORMAT", "yaml")
	kit.MustPanic(t, func() { _ = c.MayEnum("FORMAT", "text", "text", "json") })
}
