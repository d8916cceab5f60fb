// Package testutil provides shared test utilities for the chessboard-go project.
package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessboard-go/internal/chess"
)

// moveComparer compares moves through their accessors, since Move keeps
// its fields unexported.
var moveComparer = cmp.Comparer(func(a, b chess.Move) bool {
	return a.Valid() == b.Valid() && a.From() == b.From() && a.To() == b.To() &&
		a.Moved() == b.Moved() && a.Captured() == b.Captured()
})

// AssertEqual compares got and want using cmp.Diff and reports differences.
// Values containing chess.Move are compared field by field.
func AssertEqual(t *testing.T, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got, moveComparer); diff != "" {
		if msg := formatMessage(msgAndArgs...); msg != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", msg, diff)
		} else {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	}
}

// AssertBoard compares two boards and reports differing squares by name.
func AssertBoard(t *testing.T, got, want chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	if got == want {
		return
	}
	msg := formatMessage(msgAndArgs...)
	if msg == "" {
		msg = "board mismatch"
	}
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if got[row][col] != want[row][col] {
				t.Errorf("%s: %v = %v; want %v", msg, chess.Sq(row, col), got[row][col], want[row][col])
			}
		}
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		if msg := formatMessage(msgAndArgs...); msg != "" {
			t.Errorf("%s: unexpected error: %v", msg, err)
		} else {
			t.Errorf("unexpected error: %v", err)
		}
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !errors.Is(err, target) {
		if msg := formatMessage(msgAndArgs...); msg != "" {
			t.Errorf("%s: error = %v; want %v", msg, err, target)
		} else {
			t.Errorf("error = %v; want %v", err, target)
		}
	}
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if s, ok := msgAndArgs[0].(string); ok {
		if len(msgAndArgs) == 1 {
			return s
		}
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
