package sqlite

import "testing"

func TestCoerce_Integer(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		value any
		want  any
	}{
		{"embedded units", "1,234 runs", int64(1234)},
		{"percent", "45%", int64(45)},
		{"already numeric", float64(42), int64(42)},
		{"negative", "-12", int64(-12)},
		{"decimal truncated", "58.33", int64(58)},
		{"no digits", "N/A", nil},
		{"nil", nil, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Coerce(tc.value, "INTEGER"); got != tc.want {
				t.Fatalf("Coerce(%v, INTEGER) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestCoerce_Real(t *testing.T) {
	t.Parallel()

	if got := Coerce("58.33 avg", "REAL"); got != 58.33 {
		t.Fatalf("unexpected real coercion: %v", got)
	}
	if got := Coerce(nil, "REAL"); got != nil {
		t.Fatalf("expected nil for nil input, got %v", got)
	}
	if got := Coerce("no numbers here", "REAL"); got != nil {
		t.Fatalf("expected nil for non-numeric input, got %v", got)
	}
}

func TestCoerce_Text(t *testing.T) {
	t.Parallel()

	if got := Coerce(float64(7), "TEXT"); got != "7" {
		t.Fatalf("unexpected text coercion: %v", got)
	}
	if got := Coerce("  India ", "TEXT"); got != "  India " {
		t.Fatalf("text input must pass through unchanged, got %q", got)
	}
	if got := Coerce(nil, "TEXT"); got != nil {
		t.Fatalf("expected nil for nil input, got %v", got)
	}
}

func TestAffinity(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"INTEGER":                           "INTEGER",
		"integer primary key":               "INTEGER",
		"REAL":                              "REAL",
		"TEXT":                              "TEXT",
		"VARCHAR(64)":                       "TEXT",
		"INTEGER PRIMARY KEY AUTOINCREMENT": "INTEGER",
	}
	for declared, want := range cases {
		if got := affinity(declared); got != want {
			t.Fatalf("affinity(%q) = %q, want %q", declared, got, want)
		}
	}
}
