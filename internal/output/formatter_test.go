package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/indaco/relmeta/internal/release"
	"github.com/pelletier/go-toml/v2"
)

var orderedKeys = []string{"version", "major_minor", "release_branch", "is_minor", "is_first_rc"}

func mustParse(t *testing.T, s string) release.ParsedVersion {
	t.Helper()
	pv, err := release.Parse(s)
	if err != nil {
		t.Fatalf("release.Parse(%q): %v", s, err)
	}
	return pv
}

// assertKeyOrder checks that every key appears in out, in the fixed order.
func assertKeyOrder(t *testing.T, out string) {
	t.Helper()
	last := -1
	for _, k := range orderedKeys {
		idx := strings.Index(out, k)
		if idx < 0 {
			t.Fatalf("key %q missing from output:\n%s", k, out)
		}
		if idx <= last {
			t.Errorf("key %q out of order in output:\n%s", k, out)
		}
		last = idx
	}
}

func TestFormatter_Env(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{
			input: "v2.99.0-rc1",
			want: "version=2.99.0-rc1\n" +
				"major_minor=2.99\n" +
				"release_branch=v2.99.x\n" +
				"is_minor=true\n" +
				"is_first_rc=true\n",
		},
		{
			input: "2.5.3",
			want: "version=2.5.3\n" +
				"major_minor=2.5\n" +
				"release_branch=v2.5.x\n" +
				"is_minor=false\n" +
				"is_first_rc=false\n",
		},
	}

	f := NewFormatter(FormatEnv)
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := f.Render(mustParse(t, tt.input))
			if err != nil {
				t.Fatalf("Render() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestFormatter_JSON(t *testing.T) {
	f := NewFormatter(FormatJSON)
	got, err := f.Render(mustParse(t, "v2.99.0-rc1"))
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	want := `{"version":"2.99.0-rc1","major_minor":"2.99","release_branch":"v2.99.x","is_minor":true,"is_first_rc":true}` + "\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["is_minor"] != true {
		t.Errorf("is_minor = %v, want true", decoded["is_minor"])
	}
}

func TestFormatter_YAML(t *testing.T) {
	f := NewFormatter(FormatYAML)
	got, err := f.Render(mustParse(t, "v2.99.0-rc1"))
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	assertKeyOrder(t, got)

	var ms yaml.MapSlice
	if err := yaml.Unmarshal([]byte(got), &ms); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, got)
	}
	if len(ms) != len(orderedKeys) {
		t.Fatalf("got %d keys, want %d", len(ms), len(orderedKeys))
	}

	wantValues := []string{"2.99.0-rc1", "2.99", "v2.99.x", "true", "true"}
	for i, item := range ms {
		if fmt.Sprint(item.Key) != orderedKeys[i] {
			t.Errorf("key[%d] = %v, want %q", i, item.Key, orderedKeys[i])
		}
		if fmt.Sprint(item.Value) != wantValues[i] {
			t.Errorf("value[%d] = %v, want %q", i, item.Value, wantValues[i])
		}
	}
	if b, ok := ms[3].Value.(bool); !ok || !b {
		t.Errorf("is_minor should decode as bool true, got %T %v", ms[3].Value, ms[3].Value)
	}
}

func TestFormatter_TOML(t *testing.T) {
	f := NewFormatter(FormatTOML)
	got, err := f.Render(mustParse(t, "v3.2.0"))
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	assertKeyOrder(t, got)

	var doc tomlDocument
	if err := toml.Unmarshal([]byte(got), &doc); err != nil {
		t.Fatalf("output is not valid TOML: %v\n%s", err, got)
	}
	want := tomlDocument{
		Version:       "3.2.0",
		MajorMinor:    "3.2",
		ReleaseBranch: "v3.2.x",
		IsMinor:       true,
		IsFirstRC:     false,
	}
	if doc != want {
		t.Errorf("decoded = %+v, want %+v", doc, want)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("output should end with a newline")
	}
}

func TestNewFormatter_InvalidFallsBackToEnv(t *testing.T) {
	f := NewFormatter(Format("xml"))
	if f.Format() != FormatEnv {
		t.Errorf("Format() = %q, want %q", f.Format(), FormatEnv)
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestFormatter_Write(t *testing.T) {
	pv := mustParse(t, "v1.0.0")

	var buf bytes.Buffer
	if err := NewFormatter(FormatEnv).Write(&buf, pv); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "version=1.0.0\n") {
		t.Errorf("unexpected output: %q", buf.String())
	}

	err := NewFormatter(FormatEnv).Write(failingWriter{}, pv)
	if err == nil {
		t.Fatal("expected error from failing writer, got nil")
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("error should wrap writer failure, got %v", err)
	}
}
