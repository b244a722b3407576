// Package testutils has assertions shared by the tests of packages
// that hand out done channels.
package testutils

import (
	"context"
	"time"

	"github.com/stretchr/testify/assert"
)

type TestT interface {
	Helper()
	Errorf(string, ...any) // also used by testify/assert
}

// Closed returns true if ch is closed, without blocking.
func Closed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

// Done expects ch to be closed already.
func Done(t TestT, ch <-chan struct{}, msgAndArgs ...any) bool {
	t.Helper()
	return assert.True(t, Closed(ch), msgAndArgs...)
}

// NotDone expects ch to be open still.
func NotDone(t TestT, ch <-chan struct{}, msgAndArgs ...any) bool {
	t.Helper()
	return assert.False(t, Closed(ch), msgAndArgs...)
}

// DoneWithin expects ch to be closed within d. Use it with real
// clocks only.
func DoneWithin(t TestT, ch <-chan struct{}, d time.Duration) bool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()

	select {
	case <-ch:
		return true
	case <-ctx.Done():
		t.Errorf("not done within %s", d)
		return false
	}
}
