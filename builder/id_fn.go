// SPDX-License-Identifier: MIT
// Package: pathfinder/builder
//
// id_fn.go - station ID schemes.

package builder

import (
	"fmt"
	"strconv"
)

// alphabetSize is the number of Latin capitals used by letter schemes.
const alphabetSize = 26

// IDFn generates a station ID from its zero-based index.
// It must be pure: the same idx always yields the same ID.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the capital letter for idx in [0..25], e.g. 0→"A", 25→"Z".
// Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx >= alphabetSize {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// ExcelColumnIDFn returns spreadsheet-style column letters, e.g. 0→"A", 25→"Z",
// 26→"AA", 701→"ZZ". Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var out []byte
	for i := idx; i >= 0; i = i/alphabetSize - 1 {
		out = append(out, byte('A'+i%alphabetSize))
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return string(out)
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "S0", "S1", ...
// The returned IDFn panics if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbolIDs sets the ID scheme to SymbolIDFn.
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}
