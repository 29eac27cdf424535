package openpanel

import "testing"

func TestPropertiesFrom(t *testing.T) {
	props := PropertiesFrom(map[string]any{
		"string": "x",
		"int":    42,
		"bool":   true,
		"float":  1.5,
	})

	want := Properties{
		"string": "x",
		"int":    "42",
		"bool":   "true",
		"float":  "1.5",
	}

	for key, wantValue := range want {
		if props[key] != wantValue {
			t.Errorf("props[%q] = %q, want %q", key, props[key], wantValue)
		}
	}
}

func TestPropertiesFromEmpty(t *testing.T) {
	props := PropertiesFrom(nil)
	if props == nil {
		t.Fatal("PropertiesFrom(nil) should return a non-nil map")
	}
	if len(props) != 0 {
		t.Errorf("len = %d, want 0", len(props))
	}
}

func TestPropertiesHas(t *testing.T) {
	p := Properties{"name": "go", "empty": ""}

	if !p.Has("name") {
		t.Error(`Has("name") = false`)
	}
	if !p.Has("empty") {
		t.Error(`Has("empty") = false, empty values still count as present`)
	}
	if p.Has("missing") {
		t.Error(`Has("missing") = true`)
	}
}

func TestPropertiesClone(t *testing.T) {
	orig := Properties{"a": "1"}
	cloned := orig.Clone()

	cloned["a"] = "2"
	cloned["b"] = "3"

	if orig["a"] != "1" {
		t.Error("Clone is not independent of the original")
	}
	if orig.Has("b") {
		t.Error("Clone is not independent of the original")
	}
}

func TestPropertiesCloneNil(t *testing.T) {
	var p Properties
	cloned := p.Clone()

	if cloned == nil {
		t.Fatal("Clone of nil should be a non-nil map")
	}
	cloned["a"] = "1" // must not panic
}

func TestPropertiesMerged(t *testing.T) {
	local := Properties{"env": "dev", "local": "yes"}
	globals := Properties{"env": "prod", "global": "yes"}

	merged := local.merged(globals)

	if merged["env"] != "prod" {
		t.Errorf(`merged["env"] = %q, want prod (global wins)`, merged["env"])
	}
	if merged["local"] != "yes" || merged["global"] != "yes" {
		t.Errorf("merged = %v, want both local and global keys", merged)
	}

	// Inputs stay untouched.
	if local["env"] != "dev" {
		t.Error("merged mutated its receiver")
	}
}

func TestPropertiesMergedNilReceiver(t *testing.T) {
	var p Properties
	merged := p.merged(Properties{"global": "yes"})

	if merged["global"] != "yes" {
		t.Errorf("merged = %v, want global key", merged)
	}
}
