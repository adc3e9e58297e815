package app

import "testing"

func TestUsableMap(t *testing.T) {
	cases := []struct {
		name    string
		payload map[string]any
		ok      bool
	}{
		{"nil payload", nil, false},
		{"missing status", map[string]any{"data": map[string]any{}}, false},
		{"error status", map[string]any{"status": "error", "data": map[string]any{}}, false},
		{"missing data", map[string]any{"status": "success"}, false},
		{"null data", map[string]any{"status": "success", "data": nil}, false},
		{"data wrong shape", map[string]any{"status": "success", "data": []any{}}, false},
		{"usable", map[string]any{"status": "success", "data": map[string]any{"x": 1.0}}, true},
	}
	for _, c := range cases {
		if _, got := usableMap(c.payload); got != c.ok {
			t.Fatalf("%s: usableMap = %v, want %v", c.name, got, c.ok)
		}
	}
}

func TestUsableList(t *testing.T) {
	p := map[string]any{"status": "success", "data": []any{
		map[string]any{"H_Name": "A"},
		"noise",
		map[string]any{"H_Name": "B"},
	}}
	list, ok := usableList(p)
	if !ok {
		t.Fatal("expected usable list")
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 objects, got %d", len(list))
	}

	if _, ok := usableList(map[string]any{"status": "success", "data": map[string]any{}}); ok {
		t.Fatal("object data must not validate as a list")
	}
}

func TestObjList(t *testing.T) {
	m := map[string]any{"homestays": []any{map[string]any{"H_Name": "A"}}}
	if got := objList(m, "homestays"); len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got := objList(m, "missing"); len(got) != 0 {
		t.Fatalf("expected empty for missing key, got %d", len(got))
	}
}

func TestLookupHelpers(t *testing.T) {
	m := map[string]any{
		"name":   "An Nhiên",
		"empty":  "",
		"num":    float64(120000),
		"numstr": "45000",
	}
	if got := lookupStr(m, "empty", "name"); got != "An Nhiên" {
		t.Fatalf("lookupStr = %q", got)
	}
	if got := lookupStr(m, "num"); got != "120000" {
		t.Fatalf("lookupStr numeric = %q", got)
	}
	if got := lookupInt64(m, "num"); got != 120000 {
		t.Fatalf("lookupInt64 float = %d", got)
	}
	if got := lookupInt64(m, "numstr"); got != 45000 {
		t.Fatalf("lookupInt64 string = %d", got)
	}
	if got := lookupInt64(m, "missing"); got != 0 {
		t.Fatalf("lookupInt64 missing = %d", got)
	}
}
