package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/labstack/echo/v4"
	handlers "github.com/opst/leadline/cmd/leadlined/handlers"
	httptestutil "github.com/opst/leadline/internal/testutils/http"
	apireviews "github.com/opst/leadline/pkg/api/types/reviews"
	"github.com/opst/leadline/pkg/domain"
	domerr "github.com/opst/leadline/pkg/domain/errors"
	mockdb "github.com/opst/leadline/pkg/domain/review/db/mock"
	"github.com/opst/leadline/pkg/utils/pointer"
)

func TestDecideReviewsHandler(t *testing.T) {
	t.Run("it decides reviews across entity types at once", func(t *testing.T) {
		e := echo.New()
		dbreview := mockdb.NewReviewInterface()
		dbreview.Impl.Decide = func(ctx context.Context, d domain.ReviewDecision) ([]domain.ReviewOutcome, error) {
			return []domain.ReviewOutcome{
				{Review: domain.Review{
					Id: "4e110000-0000-4000-8000-000000000001", EntityType: domain.EntityLead, EntityId: "1ead0000-0000-4000-8000-000000000001",
					SubmittedBy: "1e000000-0000-4000-8000-000000000001", Status: d.Verdict, ReviewedBy: pointer.Ref(d.ReviewedBy),
				}},
				{
					Review: domain.Review{
						Id: "4e110000-0000-4000-8000-000000000002", EntityType: domain.EntityRawData, EntityId: "da7a0000-0000-4000-8000-000000000001",
						SubmittedBy: "1e000000-0000-4000-8000-000000000001", Status: d.Verdict, ReviewedBy: pointer.Ref(d.ReviewedBy),
					},
					CreatedLeadId: pointer.Ref("1ead0000-0000-4000-8000-000000000009"),
				},
			}, nil
		}

		c, resp := httptestutil.Put(e, "/api/reviews/decision", strings.NewReader(
			`{"reviewIds": ["4e110000-0000-4000-8000-000000000001", "4e110000-0000-4000-8000-000000000002"], "decision": "approved", "note": "looks good"}`,
		), httptestutil.JSON())
		if err := handlers.DecideReviewsHandler(dbreview)(httptestutil.As(c, admin)); err != nil {
			t.Fatal(err)
		}

		want := domain.ReviewDecision{
			ReviewIds:  []string{"4e110000-0000-4000-8000-000000000001", "4e110000-0000-4000-8000-000000000002"},
			Verdict:    domain.ReviewApproved,
			ReviewedBy: admin.ProfileId,
			Note:       "looks good",
		}
		if diff := cmp.Diff(want, dbreview.Calls.Decide[0]); diff != "" {
			t.Errorf("decision (-want, +got):\n%s", diff)
		}

		body := []apireviews.Outcome{}
		if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if len(body) != 2 {
			t.Fatalf("outcomes: %+v", body)
		}
		if body[0].CreatedLeadId != nil {
			t.Errorf("lead review should not create leads: %+v", body[0])
		}
		if body[1].CreatedLeadId == nil || *body[1].CreatedLeadId != "1ead0000-0000-4000-8000-000000000009" {
			t.Errorf("raw data review should tell the created lead: %+v", body[1])
		}
	})

	for name, body := range map[string]string{
		"no reviews":         `{"reviewIds": [], "decision": "approved"}`,
		"pending as verdict": `{"reviewIds": ["4e110000-0000-4000-8000-000000000001"], "decision": "pending"}`,
		"unknown verdict":    `{"reviewIds": ["4e110000-0000-4000-8000-000000000001"], "decision": "maybe"}`,
	} {
		t.Run("it rejects "+name, func(t *testing.T) {
			e := echo.New()
			dbreview := mockdb.NewReviewInterface()
			c, _ := httptestutil.Put(e, "/api/reviews/decision", strings.NewReader(body), httptestutil.JSON())
			err := handlers.DecideReviewsHandler(dbreview)(httptestutil.As(c, admin))
			if got := statusOf(t, err); got != http.StatusBadRequest {
				t.Errorf("status: %d", got)
			}
			if len(dbreview.Calls.Decide) != 0 {
				t.Error("Decide should not be called")
			}
		})
	}

	for name, testcase := range map[string]struct {
		err  error
		then int
	}{
		"a missing review fails whole batch with 404": {
			err: fmt.Errorf("%w: review 4e110000-0000-4000-8000-000000000002", domerr.ErrMissing), then: http.StatusNotFound,
		},
		"a decided review fails whole batch with 409": {
			err: domain.NewErrReviewNotPending(domain.Review{
				Id: "4e110000-0000-4000-8000-000000000002", EntityType: domain.EntityClient, EntityId: "c1000000-0000-4000-8000-000000000001", Status: domain.ReviewRejected,
			}),
			then: http.StatusConflict,
		},
	} {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			dbreview := mockdb.NewReviewInterface()
			dbreview.Impl.Decide = func(ctx context.Context, d domain.ReviewDecision) ([]domain.ReviewOutcome, error) {
				return nil, testcase.err
			}
			c, _ := httptestutil.Put(e, "/api/reviews/decision", strings.NewReader(
				`{"reviewIds": ["4e110000-0000-4000-8000-000000000001", "4e110000-0000-4000-8000-000000000002"], "decision": "rejected"}`,
			), httptestutil.JSON())
			err := handlers.DecideReviewsHandler(dbreview)(httptestutil.As(c, admin))
			if got := statusOf(t, err); got != testcase.then {
				t.Errorf("status: got %d, want %d", got, testcase.then)
			}
		})
	}
}

func TestFindReviewsHandler(t *testing.T) {
	for name, testcase := range map[string]struct {
		who  domain.Principal
		url  string
		then domain.ReviewQuery
	}{
		"admins see the whole queue": {
			who: admin,
			url: "/api/reviews?status=pending&entity=lead,raw_data",
			then: domain.ReviewQuery{
				SubmittedBy: []string{},
				Status:      []domain.ReviewStatus{domain.ReviewPending},
				EntityType:  []domain.EntityType{domain.EntityLead, domain.EntityRawData},
			},
		},
		"interns see their own submissions": {
			who: intern,
			url: "/api/reviews?submitter=1e000000-0000-4000-8000-000000000002",
			then: domain.ReviewQuery{
				SubmittedBy: []string{intern.ProfileId},
				Status:      []domain.ReviewStatus{},
				EntityType:  []domain.EntityType{},
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			dbreview := mockdb.NewReviewInterface()
			dbreview.Impl.Find = func(ctx context.Context, query domain.ReviewQuery) ([]domain.Review, error) {
				return []domain.Review{}, nil
			}
			c, _ := httptestutil.Get(e, testcase.url)
			if err := handlers.FindReviewsHandler(dbreview)(httptestutil.As(c, testcase.who)); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(testcase.then, dbreview.Calls.Find[0]); diff != "" {
				t.Errorf("query (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestSubmitReviewHandler(t *testing.T) {
	e := echo.New()
	dbreview := mockdb.NewReviewInterface()
	dbreview.Impl.Submit = func(ctx context.Context, spec domain.ReviewSpec) (domain.Review, error) {
		return domain.Review{
			Id: "4e110000-0000-4000-8000-000000000001", EntityType: spec.EntityType, EntityId: spec.EntityId,
			SubmittedBy: spec.SubmittedBy, Status: domain.ReviewPending,
		}, nil
	}

	c, resp := httptestutil.Post(e, "/api/reviews", strings.NewReader(
		`{"entityType": "document", "entityId": "d0c00000-0000-4000-8000-000000000001"}`,
	), httptestutil.JSON())
	if err := handlers.SubmitReviewHandler(dbreview)(httptestutil.As(c, sales)); err != nil {
		t.Fatal(err)
	}
	if resp.Code != http.StatusCreated {
		t.Errorf("status: %d", resp.Code)
	}
	want := domain.ReviewSpec{EntityType: domain.EntityDocument, EntityId: "d0c00000-0000-4000-8000-000000000001", SubmittedBy: sales.ProfileId}
	if diff := cmp.Diff(want, dbreview.Calls.Submit[0]); diff != "" {
		t.Errorf("spec (-want, +got):\n%s", diff)
	}
}
