package handlers_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	handlers "github.com/opst/leadline/cmd/leadlined/handlers"
	httptestutil "github.com/opst/leadline/internal/testutils/http"
	"github.com/opst/leadline/pkg/auth"
	"github.com/opst/leadline/pkg/domain"
	mockdb "github.com/opst/leadline/pkg/domain/profile/db/mock"
)

func TestUpdateProfileHandler(t *testing.T) {
	for name, testcase := range map[string]struct {
		target  string
		body    string
		then    int
		updated bool
	}{
		"admins can rename themselves":     {target: admin.ProfileId, body: `{"fullName": "Root"}`, then: http.StatusOK, updated: true},
		"admins can not demote themselves": {target: admin.ProfileId, body: `{"role": "sales"}`, then: http.StatusConflict},
		"admins can not deactivate themselves": {
			target: admin.ProfileId, body: `{"active": false}`, then: http.StatusConflict,
		},
		"admins can demote others":   {target: "5a1e5000-0000-4000-8000-000000000001", body: `{"role": "intern"}`, then: http.StatusOK, updated: true},
		"unknown roles are rejected": {target: "5a1e5000-0000-4000-8000-000000000001", body: `{"role": "boss"}`, then: http.StatusBadRequest},
	} {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			dbprofile := mockdb.NewProfileInterface()
			dbprofile.Impl.Update = func(ctx context.Context, id string, change domain.ProfileChange) (domain.Profile, error) {
				return domain.Profile{Id: id, Role: domain.Sales, Active: true}, nil
			}
			c, _ := httptestutil.Put(e, "/api/profiles/"+testcase.target, strings.NewReader(testcase.body), httptestutil.JSON())
			c = httptestutil.Params(httptestutil.As(c, admin), "profileId", testcase.target)
			err := handlers.UpdateProfileHandler(dbprofile, "profileId")(c)
			if got := statusOf(t, err); got != testcase.then {
				t.Errorf("status: got %d, want %d", got, testcase.then)
			}
			if got := len(dbprofile.Calls.Update) == 1; got != testcase.updated {
				t.Errorf("updated: %v", got)
			}
		})
	}
}

func TestSetPasswordHandler(t *testing.T) {
	for name, testcase := range map[string]struct {
		who    domain.Principal
		target string
		body   string
		then   int
	}{
		"one changes their own":           {who: intern, target: intern.ProfileId, body: `{"password": "s3cret-pass"}`, then: http.StatusNoContent},
		"admins change others'":           {who: admin, target: intern.ProfileId, body: `{"password": "s3cret-pass"}`, then: http.StatusNoContent},
		"others can not":                  {who: sales, target: intern.ProfileId, body: `{"password": "s3cret-pass"}`, then: http.StatusForbidden},
		"too short passwords are refused": {who: intern, target: intern.ProfileId, body: `{"password": "short"}`, then: http.StatusBadRequest},
	} {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			dbprofile := mockdb.NewProfileInterface()
			var hash []byte
			dbprofile.Impl.SetPassword = func(ctx context.Context, id string, h []byte) error {
				hash = h
				return nil
			}
			c, resp := httptestutil.Put(e, "/api/profiles/"+testcase.target+"/password", strings.NewReader(testcase.body), httptestutil.JSON())
			c = httptestutil.Params(httptestutil.As(c, testcase.who), "profileId", testcase.target)
			err := handlers.SetPasswordHandler(dbprofile, "profileId")(c)
			if err != nil {
				if got := statusOf(t, err); got != testcase.then {
					t.Errorf("status: got %d, want %d", got, testcase.then)
				}
				return
			}
			if resp.Code != testcase.then {
				t.Errorf("status: got %d, want %d", resp.Code, testcase.then)
			}
			if err := auth.ComparePassword(hash, "s3cret-pass"); err != nil {
				t.Errorf("stored hash does not match: %v", err)
			}
		})
	}
}
