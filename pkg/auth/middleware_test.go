package auth_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/opst/leadline/pkg/auth"
	"github.com/opst/leadline/pkg/domain"
)

type tokensStub struct {
	principal domain.Principal
	err       error
	got       []string
}

func (s *tokensStub) Issue(domain.Profile) (string, time.Time, error) {
	panic("it should not be called")
}

func (s *tokensStub) Verify(token string) (domain.Principal, error) {
	s.got = append(s.got, token)
	return s.principal, s.err
}

func statusOf(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var herr *echo.HTTPError
	if errors.As(err, &herr) {
		return herr.Code
	}
	return -1
}

func TestMiddleware(t *testing.T) {
	type when struct {
		header string
		verify error
		skip   bool
	}
	type then struct {
		status    int
		token     []string
		principal bool
	}

	for name, testcase := range map[string]struct {
		when
		then
	}{
		"valid bearer token passes with principal": {
			when: when{header: "Bearer tok-1"},
			then: then{status: http.StatusOK, token: []string{"tok-1"}, principal: true},
		},
		"scheme is case insensitive": {
			when: when{header: "bearer tok-1"},
			then: then{status: http.StatusOK, token: []string{"tok-1"}, principal: true},
		},
		"missing header is unauthorized": {
			when: when{header: ""},
			then: then{status: http.StatusUnauthorized},
		},
		"other scheme is unauthorized": {
			when: when{header: "Basic dXNlcjpwYXNz"},
			then: then{status: http.StatusUnauthorized},
		},
		"invalid token is unauthorized": {
			when: when{header: "Bearer tok-1", verify: auth.ErrInvalidToken},
			then: then{status: http.StatusUnauthorized, token: []string{"tok-1"}},
		},
		"skipped request passes without token": {
			when: when{header: "", skip: true},
			then: then{status: http.StatusOK},
		},
	} {
		t.Run(name, func(t *testing.T) {
			when, then := testcase.when, testcase.then
			stub := &tokensStub{
				principal: domain.Principal{ProfileId: "profile-1", Role: domain.Intern},
				err:       when.verify,
			}

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
			if when.header != "" {
				req.Header.Set(echo.HeaderAuthorization, when.header)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			var got *domain.Principal
			handler := auth.Middleware(stub, func(echo.Context) bool { return when.skip })(
				func(c echo.Context) error {
					if p, ok := auth.PrincipalOf(c); ok {
						got = &p
					}
					return nil
				},
			)

			err := handler(c)
			if s := statusOf(err); s != then.status {
				t.Errorf("status: actual = %d, expected = %d (err = %v)", s, then.status, err)
			}
			if len(stub.got) != len(then.token) || (len(then.token) != 0 && stub.got[0] != then.token[0]) {
				t.Errorf("verified tokens: actual = %v, expected = %v", stub.got, then.token)
			}
			if (got != nil) != then.principal {
				t.Errorf("principal: actual = %v, expected present = %v", got, then.principal)
			}
			if got != nil && *got != stub.principal {
				t.Errorf("principal: actual = %+v, expected = %+v", *got, stub.principal)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	for name, testcase := range map[string]struct {
		principal *domain.Principal
		allowed   []domain.Role
		status    int
	}{
		"allowed role passes": {
			principal: &domain.Principal{ProfileId: "p", Role: domain.Admin},
			allowed:   []domain.Role{domain.Admin},
			status:    http.StatusOK,
		},
		"one of allowed roles passes": {
			principal: &domain.Principal{ProfileId: "p", Role: domain.Intern},
			allowed:   []domain.Role{domain.Admin, domain.Intern},
			status:    http.StatusOK,
		},
		"other role is forbidden": {
			principal: &domain.Principal{ProfileId: "p", Role: domain.Sales},
			allowed:   []domain.Role{domain.Admin},
			status:    http.StatusForbidden,
		},
		"unauthenticated request is unauthorized": {
			allowed: []domain.Role{domain.Admin},
			status:  http.StatusUnauthorized,
		},
	} {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
			if testcase.principal != nil {
				auth.SetPrincipal(c, *testcase.principal)
			}
			called := false
			err := auth.RequireRole(testcase.allowed...)(func(echo.Context) error {
				called = true
				return nil
			})(c)
			if s := statusOf(err); s != testcase.status {
				t.Errorf("status: actual = %d, expected = %d", s, testcase.status)
			}
			if called != (testcase.status == http.StatusOK) {
				t.Errorf("next handler called = %v", called)
			}
		})
	}
}
