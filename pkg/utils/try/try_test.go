package try_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/opst/leadline/pkg/utils/try"
)

type fataler struct {
	called []any
	helped bool
}

func (f *fataler) Fatal(args ...any) { f.called = append(f.called, args...) }
func (f *fataler) Helper()           { f.helped = true }

func TestTry(t *testing.T) {
	t.Run("value passes through", func(t *testing.T) {
		f := &fataler{}
		got := try.To(42, nil).OrFatal(f)
		if got != 42 || len(f.called) != 0 {
			t.Errorf("got %d, fatal calls %v", got, f.called)
		}
	})

	t.Run("error is reported", func(t *testing.T) {
		f := &fataler{}
		expected := errors.New("fake")
		try.To(0, expected).OrFatal(f)
		if len(f.called) != 1 || f.called[0] != expected {
			t.Errorf("fatal calls: %v", f.called)
		}
		if !f.helped {
			t.Error("Helper is not called")
		}
	})

	t.Run("Map converts only values", func(t *testing.T) {
		if got := try.Map(try.To(3, nil), func(i int) string { return fmt.Sprint(i * 2) }).OrDefault("x"); got != "6" {
			t.Errorf("got %s", got)
		}
		if got := try.Map(try.To(3, errors.New("fake")), func(i int) string { return "never" }).OrDefault("x"); got != "x" {
			t.Errorf("got %s", got)
		}
	})
}
