// Package testing provides test utilities for relq.
package testing

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/zoobzio/relq"
)

// AssertSQL compares expected and actual SQL, reporting detailed differences.
func AssertSQL(t *testing.T, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, actual)
	}
}

// AssertValues checks that values hold exactly the expected driver arguments,
// in order.
func AssertValues(t *testing.T, expected []any, actual relq.Values) {
	t.Helper()
	got := actual.Args()
	if len(expected) != len(got) {
		t.Errorf("Value count mismatch: expected %d, got %d\nExpected: %v\nActual: %v",
			len(expected), len(got), expected, got)
		return
	}
	for i := range expected {
		if !reflect.DeepEqual(expected[i], got[i]) {
			t.Errorf("Value %d mismatch: expected %#v, got %#v", i, expected[i], got[i])
		}
	}
}

// AssertAligned checks that sql carries exactly one placeholder per value
// and that positional placeholders count up from 1 without gaps.
func AssertAligned(t *testing.T, sql string, values relq.Values) {
	t.Helper()
	if n := CountPlaceholders(sql); n != values.Len() {
		t.Errorf("Placeholder/value mismatch: %d placeholders, %d values\nSQL: %s", n, values.Len(), sql)
	}
	for i, idx := range PlaceholderIndexes(sql) {
		if idx != i+1 {
			t.Errorf("Placeholder %d is numbered %d\nSQL: %s", i+1, idx, sql)
			return
		}
	}
}

// AssertUnsupported checks that err is an UnsupportedFeatureError for the
// given dialect and feature.
func AssertUnsupported(t *testing.T, err error, dialect, feature string) {
	t.Helper()
	var uf relq.UnsupportedFeatureError
	if !errors.As(err, &uf) {
		t.Fatalf("Expected UnsupportedFeatureError, got: %v", err)
	}
	if uf.Dialect != dialect || uf.Feature != feature {
		t.Errorf("Expected %s/%s, got %s/%s", dialect, feature, uf.Dialect, uf.Feature)
	}
}

// CountPlaceholders counts `?`, `$N` and `@pN` placeholders outside quoted
// identifiers and string literals.
func CountPlaceholders(sql string) int {
	n := 0
	scanPlaceholders(sql, func(int) { n++ })
	return n
}

// PlaceholderIndexes returns the numbers of positional placeholders (`$N`,
// `@pN`) in order of appearance.
func PlaceholderIndexes(sql string) []int {
	var out []int
	scanPlaceholders(sql, func(idx int) {
		if idx > 0 {
			out = append(out, idx)
		}
	})
	return out
}

// scanPlaceholders calls fn for each placeholder with its number, or 0 for `?`.
func scanPlaceholders(sql string, fn func(int)) {
	var quote byte
	for i := 0; i < len(sql); i++ {
		ch := sql[i]
		if quote != 0 {
			if ch == quote {
				quote = 0
			}
			continue
		}
		switch ch {
		case '"', '`', '\'':
			quote = ch
		case '[':
			quote = ']'
		case '?':
			fn(0)
		case '$', '@':
			j := i + 1
			if ch == '@' {
				if j >= len(sql) || sql[j] != 'p' {
					continue
				}
				j++
			}
			k := j
			for k < len(sql) && sql[k] >= '0' && sql[k] <= '9' {
				k++
			}
			if k > j {
				idx, _ := strconv.Atoi(sql[j:k]) //nolint:errcheck // digits only
				fn(idx)
				i = k - 1
			}
		}
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
}

// AssertErrorContains checks that error message contains substring.
func AssertErrorContains(t *testing.T, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error containing %q but got nil", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("Expected error containing %q, got: %v", substr, err)
	}
}

// AssertPanics verifies that a function panics.
func AssertPanics(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic but function completed normally")
		}
	}()
	fn()
}
