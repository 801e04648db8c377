package builder_test

import (
	"testing"

	"github.com/katalvlaran/pathfinder/builder"
)

// assertPanics fails the test if fn does not panic.
func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic, but none occurred", name)
		}
	}()
	fn()
}

// TestIDFns verifies each IDFn for correct outputs and for panics on invalid input.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"DefaultIDFn_zero", builder.DefaultIDFn, 0, "0", false},
		{"DefaultIDFn_multi", builder.DefaultIDFn, 123, "123", false},

		{"SymbolIDFn_min", builder.SymbolIDFn, 0, "A", false},
		{"SymbolIDFn_max", builder.SymbolIDFn, 25, "Z", false},
		{"SymbolIDFn_neg", builder.SymbolIDFn, -1, "", true},
		{"SymbolIDFn_tooHigh", builder.SymbolIDFn, 26, "", true},

		{"ExcelColumnIDFn_zero", builder.ExcelColumnIDFn, 0, "A", false},
		{"ExcelColumnIDFn_endSingle", builder.ExcelColumnIDFn, 25, "Z", false},
		{"ExcelColumnIDFn_startDouble", builder.ExcelColumnIDFn, 26, "AA", false},
		{"ExcelColumnIDFn_ZZ", builder.ExcelColumnIDFn, 701, "ZZ", false},
		{"ExcelColumnIDFn_AAA", builder.ExcelColumnIDFn, 702, "AAA", false},
		{"ExcelColumnIDFn_neg", builder.ExcelColumnIDFn, -1, "", true},

		{"SymbolNumberIDFn_zero", builder.SymbolNumberIDFn("S"), 0, "S0", false},
		{"SymbolNumberIDFn_multi", builder.SymbolNumberIDFn("S"), 17, "S17", false},
		{"SymbolNumberIDFn_neg", builder.SymbolNumberIDFn("S"), -3, "", true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				assertPanics(t, func() { tc.fn(tc.input) }, tc.name)
				return
			}
			if got := tc.fn(tc.input); got != tc.want {
				t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
			}
		})
	}
}
