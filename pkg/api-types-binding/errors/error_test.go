package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	binderr "github.com/opst/leadline/pkg/api-types-binding/errors"
	apierr "github.com/opst/leadline/pkg/api/types/errors"
	domerr "github.com/opst/leadline/pkg/domain/errors"
	xe "github.com/opst/leadline/pkg/errors"
)

func TestFromDomain(t *testing.T) {
	for name, testcase := range map[string]struct {
		when error
		then int
	}{
		"missing": {
			when: xe.Wrap(fmt.Errorf("%w: lead", domerr.ErrMissing)),
			then: http.StatusNotFound,
		},
		"invalid state changing": {
			when: xe.Wrap(fmt.Errorf("%w: approved -> rejected", domerr.ErrInvalidStateChanging)),
			then: http.StatusConflict,
		},
		"conflict": {
			when: domerr.ErrConflict,
			then: http.StatusConflict,
		},
		"invalid argument": {
			when: fmt.Errorf("%w: name is empty", domerr.ErrInvalidArgument),
			then: http.StatusBadRequest,
		},
		"forbidden": {
			when: domerr.ErrForbidden,
			then: http.StatusForbidden,
		},
		"unknown": {
			when: errors.New("fake error"),
			then: http.StatusInternalServerError,
		},
	} {
		t.Run(name, func(t *testing.T) {
			herr := binderr.FromDomain(testcase.when)
			if herr.Code != testcase.then {
				t.Errorf("status: (actual, expected) = (%d, %d)", herr.Code, testcase.then)
			}
			msg, ok := herr.Message.(apierr.ErrorMessage)
			if !ok {
				t.Fatalf("message is not ErrorMessage: %T", herr.Message)
			}
			if !errors.Is(msg, testcase.when) {
				t.Errorf("cause is lost: %+v", msg)
			}
		})
	}

	t.Run("nil is nil", func(t *testing.T) {
		if herr := binderr.FromDomain(nil); herr != nil {
			t.Errorf("unexpected error: %v", herr)
		}
	})
}
