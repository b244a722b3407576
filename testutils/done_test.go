package testutils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeT struct {
	failed []string
}

func (*fakeT) Helper() {}

func (f *fakeT) Errorf(format string, args ...any) {
	f.failed = append(f.failed, fmt.Sprintf(format, args...))
}

func TestClosed(t *testing.T) {
	ch := make(chan struct{})
	assert.False(t, Closed(ch))
	close(ch)
	assert.True(t, Closed(ch))
}

func TestDone(t *testing.T) {
	ch := make(chan struct{})

	ft := &fakeT{}
	assert.False(t, Done(ft, ch))
	assert.True(t, NotDone(ft, ch))
	assert.Len(t, ft.failed, 1)

	close(ch)
	ft = &fakeT{}
	assert.True(t, Done(ft, ch))
	assert.False(t, NotDone(ft, ch))
	assert.Len(t, ft.failed, 1)
}

func TestDoneWithin(t *testing.T) {
	ch := make(chan struct{})
	time.AfterFunc(time.Millisecond, func() { close(ch) })
	assert.True(t, DoneWithin(t, ch, 5*time.Second))

	ft := &fakeT{}
	assert.False(t, DoneWithin(ft, make(chan struct{}), time.Millisecond))
	assert.Equal(t, []string{"not done within 1ms"}, ft.failed)
}
