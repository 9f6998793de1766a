package recurring_test

import (
	"errors"
	"testing"
	"time"

	"github.com/opst/leadline/cmd/loops/recurring"
	"github.com/opst/leadline/pkg/loop"
)

func TestParsePolicy(t *testing.T) {
	for name, testcase := range map[string]struct {
		when   string
		then   string
		failed bool
	}{
		"forever":               {when: "forever", then: "forever:0s"},
		"forever with colon":    {when: "forever:", then: "forever:0s"},
		"forever with cooldown": {when: "forever:30s", then: "forever:30s"},
		"backlog":               {when: "backlog", then: "backlog"},
		"broken cooldown":       {when: "forever:soon", failed: true},
		"negative cooldown":     {when: "forever:-1s", failed: true},
		"backlog with param":    {when: "backlog:1s", failed: true},
		"unknown":               {when: "sometimes", failed: true},
	} {
		t.Run(name, func(t *testing.T) {
			p, err := recurring.ParsePolicy(testcase.when)
			if testcase.failed {
				if err == nil {
					t.Errorf("expected error, but parsed as %s", p)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if p.String() != testcase.then {
				t.Errorf("actual = %s, expected = %s", p, testcase.then)
			}
		})
	}
}

func TestPolicy(t *testing.T) {
	fake := errors.New("fake")
	for name, testcase := range map[string]struct {
		policy  recurring.Policy
		updated bool
		err     error
		then    loop.Next
	}{
		"forever continues at once when updated": {
			policy: recurring.Forever(time.Minute), updated: true, then: loop.Continue(0),
		},
		"forever cools down when not updated": {
			policy: recurring.Forever(time.Minute), then: loop.Continue(time.Minute),
		},
		"forever ignores errors": {
			policy: recurring.Forever(time.Minute), err: fake, then: loop.Continue(time.Minute),
		},
		"backlog continues when updated": {
			policy: recurring.Backlog(), updated: true, then: loop.Continue(0),
		},
		"backlog breaks when not updated": {
			policy: recurring.Backlog(), then: loop.Break(nil),
		},
		"until error breaks with error": {
			policy: recurring.UntilError(recurring.Forever(time.Minute)), updated: true, err: fake, then: loop.Break(fake),
		},
		"until error follows its base without error": {
			policy: recurring.UntilError(recurring.Forever(time.Minute)), then: loop.Continue(time.Minute),
		},
	} {
		t.Run(name, func(t *testing.T) {
			actual := testcase.policy.Next(testcase.updated, testcase.err)
			if actual.String() != testcase.then.String() {
				t.Errorf("actual = %s, expected = %s", actual, testcase.then)
			}
		})
	}
}
