package testing

import (
	"reflect"
	"testing"
)

// AssertEqual asserts that values are deeply equal.
func AssertEqual[T any](t testing.TB, a, b T) {
	t.Helper()

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected '%v' to be equal to '%v'", a, b)
	}
}

// AssertTrue asserts that the value is true.
func AssertTrue(t testing.TB, ok bool) {
	t.Helper()

	if !ok {
		t.Fatalf("expected true")
	}
}
