// Package testutil provides shared test helpers: go-cmp based assertions that
// understand chess values, and position fixtures.
package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// chessOptions lets cmp compare values with unexported fields.
var chessOptions = cmp.Options{
	cmp.Comparer(func(a, b chess.Square) bool { return a == b }),
	cmp.AllowUnexported(chess.Board{}),
}

// bySquareIndex orders squares a1, b1, ... h8.
var bySquareIndex = cmpopts.SortSlices(func(a, b chess.Square) bool {
	return a.Index() < b.Index()
})

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t *testing.T, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got, chessOptions); diff != "" {
		reportDiff(t, diff, msgAndArgs...)
	}
}

// AssertSameSquares compares two square lists ignoring order.
func AssertSameSquares(t *testing.T, got, want []chess.Square, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got, chessOptions, bySquareIndex, cmpopts.EquateEmpty()); diff != "" {
		reportDiff(t, diff, msgAndArgs...)
	}
}

// AssertSameMoves compares two move lists ignoring order.
func AssertSameMoves(t *testing.T, got, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(func(a, b string) bool {
		return a < b
	}), cmpopts.EquateEmpty()); diff != "" {
		reportDiff(t, diff, msgAndArgs...)
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

func reportDiff(t *testing.T, diff string, msgAndArgs ...interface{}) {
	t.Helper()
	if msg := formatMessage(msgAndArgs...); msg != "" {
		t.Errorf("%s: mismatch (-want +got):\n%s", msg, diff)
	} else {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if s, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
