package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
name?: string
steps?: [...int]
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)

	var name string
	err := loader.AssignFirst("name", &name)
	if err != nil {
		t.Fatal(err)
	}
	if name != "flip" {
		t.Fatalf("got %q", name)
	}

	var steps []int
	err = loader.AssignFirst("steps", &steps)
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", steps); str != "[1 2 3]" {
		t.Fatalf("got %s", str)
	}

	err = loader.AssignFirst("not", &steps)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"test.cue",
		"test2.cue",
	}, testSchema)

	var names []string
	for value, err := range loader.IterCueValues("name") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		names = append(names, s)
	}
	if str := fmt.Sprintf("%v", names); str != "[flip beaver]" {
		t.Fatalf("got %q", str)
	}

	names = names[:0]
	for name := range All[string](loader, "name") {
		names = append(names, name)
	}
	if str := fmt.Sprintf("%v", names); str != "[flip beaver]" {
		t.Fatalf("got %q", str)
	}
}

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{
		"test2.cue",
		"test.cue",
	}, testSchema)

	if name := First[string](loader, "name"); name != "beaver" {
		t.Fatalf("got %q", name)
	}
	if name := First[string](loader, "missing"); name != "" {
		t.Fatalf("got %q", name)
	}
}

func TestFromSources(t *testing.T) {
	loader := FromSources(testSchema, Source{
		Name:    "inline.cue",
		Content: []byte(`name: "inline"`),
	})
	var name string
	if err := loader.AssignFirst("name", &name); err != nil {
		t.Fatal(err)
	}
	if name != "inline" {
		t.Fatalf("got %q", name)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"bad.cue",
	}, testSchema)
	var name string
	err := loader.AssignFirst("unknown_field", &name)
	if err == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{
		"no_such.cue",
	}, testSchema)
	var name string
	if err := loader.AssignFirst("name", &name); err == nil {
		t.Fatal("should error")
	}
}
