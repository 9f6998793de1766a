package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/labstack/echo/v4"
	handlers "github.com/opst/leadline/cmd/leadlined/handlers"
	httptestutil "github.com/opst/leadline/internal/testutils/http"
	apiclients "github.com/opst/leadline/pkg/api/types/clients"
	"github.com/opst/leadline/pkg/domain"
	domerr "github.com/opst/leadline/pkg/domain/errors"
	mockdb "github.com/opst/leadline/pkg/domain/lead/db/mock"
	"github.com/opst/leadline/pkg/utils/pointer"
	"github.com/opst/leadline/pkg/utils/rfctime"
	"github.com/opst/leadline/pkg/utils/try"
)

func TestFindLeadsHandler(t *testing.T) {
	since := try.To(rfctime.ParseRFC3339DateTime("2024-04-01T12:00:00+00:00")).OrFatal(t).Time()
	until := since.Add(2*time.Hour + 30*time.Minute)

	for name, testcase := range map[string]struct {
		who  domain.Principal
		url  string
		then domain.LeadQuery
	}{
		"admins query as they ask": {
			who: admin,
			url: "/api/leads?status=new,qualified&review=approved&assignee=5a1e5000-0000-4000-8000-000000000001&creator=1e000000-0000-4000-8000-000000000001&since=2024-04-01T12%3A00%3A00%2B00%3A00&duration=2h30m",
			then: domain.LeadQuery{
				Status:       []domain.LeadStatus{domain.LeadNew, domain.LeadQualified},
				ReviewStatus: []domain.ReviewStatus{domain.ReviewApproved},
				AssignedTo:   []string{"5a1e5000-0000-4000-8000-000000000001"},
				CreatedBy:    []string{"1e000000-0000-4000-8000-000000000001"},
				UpdatedSince: &since,
				UpdatedUntil: &until,
			},
		},
		"sales see leads visible to them": {
			who: sales,
			url: "/api/leads",
			then: domain.LeadQuery{
				Status:       []domain.LeadStatus{},
				ReviewStatus: []domain.ReviewStatus{},
				AssignedTo:   []string{},
				CreatedBy:    []string{},
				VisibleTo:    pointer.Ref(sales.ProfileId),
			},
		},
		"interns see leads they created": {
			who: intern,
			url: "/api/leads?creator=50e00000-0000-4000-8000-000000000001",
			then: domain.LeadQuery{
				Status:       []domain.LeadStatus{},
				ReviewStatus: []domain.ReviewStatus{},
				AssignedTo:   []string{},
				CreatedBy:    []string{intern.ProfileId},
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			dblead := mockdb.NewLeadInterface()
			dblead.Impl.Find = func(ctx context.Context, query domain.LeadQuery) ([]domain.Lead, error) {
				return nil, nil
			}
			c, _ := httptestutil.Get(e, testcase.url)
			if err := handlers.FindLeadsHandler(dblead)(httptestutil.As(c, testcase.who)); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(testcase.then, dblead.Calls.Find[0]); diff != "" {
				t.Errorf("query (-want, +got):\n%s", diff)
			}
		})
	}

	for name, url := range map[string]string{
		"unknown status":         "/api/leads?status=hot",
		"duration without since": "/api/leads?duration=1h",
		"broken since":           "/api/leads?since=yesterday",
		"malformed assignee":     "/api/leads?assignee=foo",
		"malformed creator":      "/api/leads?creator=1ead0000-0000-4000-8000-000000000001,bar",
	} {
		t.Run("it rejects "+name, func(t *testing.T) {
			e := echo.New()
			dblead := mockdb.NewLeadInterface()
			c, _ := httptestutil.Get(e, url)
			err := handlers.FindLeadsHandler(dblead)(httptestutil.As(c, admin))
			if got := statusOf(t, err); got != http.StatusBadRequest {
				t.Errorf("status: %d", got)
			}
			if len(dblead.Calls.Find) != 0 {
				t.Errorf("Find should not be called")
			}
		})
	}
}

func TestCreateLeadHandler(t *testing.T) {
	for name, testcase := range map[string]struct {
		who  domain.Principal
		then domain.LeadSpec
	}{
		"leads by sales are approved as they are": {
			who: sales,
			then: domain.LeadSpec{
				Name: "Jane", Company: "ACME", AssignedTo: pointer.Ref("5a1e5000-0000-4000-8000-000000000002"),
				CreatedBy: sales.ProfileId, ReviewStatus: domain.ReviewApproved,
			},
		},
		"leads by interns wait for review, and are not assigned": {
			who: intern,
			then: domain.LeadSpec{
				Name: "Jane", Company: "ACME",
				CreatedBy: intern.ProfileId, ReviewStatus: domain.ReviewPending,
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			dblead := mockdb.NewLeadInterface()
			dblead.Impl.Create = func(ctx context.Context, spec domain.LeadSpec) (domain.Lead, error) {
				return domain.Lead{
					Id: "1ead0000-0000-4000-8000-000000000001", Name: spec.Name, Company: spec.Company, Status: domain.LeadNew,
					AssignedTo: spec.AssignedTo, CreatedBy: spec.CreatedBy, ReviewStatus: spec.ReviewStatus,
				}, nil
			}
			c, resp := httptestutil.Post(e, "/api/leads", strings.NewReader(
				`{"name": "Jane", "company": "ACME", "assignedTo": "5a1e5000-0000-4000-8000-000000000002"}`,
			), httptestutil.JSON())
			if err := handlers.CreateLeadHandler(dblead)(httptestutil.As(c, testcase.who)); err != nil {
				t.Fatal(err)
			}
			if resp.Code != http.StatusCreated {
				t.Errorf("status: %d", resp.Code)
			}
			if diff := cmp.Diff(testcase.then, dblead.Calls.Create[0]); diff != "" {
				t.Errorf("spec (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestGetLeadHandler(t *testing.T) {
	lead := domain.Lead{
		Id: "1ead0000-0000-4000-8000-000000000001", Name: "Jane", Status: domain.LeadContacted,
		AssignedTo: pointer.Ref("5a1e5000-0000-4000-8000-000000000001"), CreatedBy: "1e000000-0000-4000-8000-000000000001", ReviewStatus: domain.ReviewApproved,
	}
	for name, testcase := range map[string]struct {
		who  domain.Principal
		then int
	}{
		"admins see any lead":   {who: admin, then: http.StatusOK},
		"the assignee sees it":  {who: sales, then: http.StatusOK},
		"the creator sees it":   {who: intern, then: http.StatusOK},
		"other sales can not":   {who: domain.Principal{ProfileId: "5a1e5000-0000-4000-8000-000000000002", Role: domain.Sales}, then: http.StatusNotFound},
		"other interns can not": {who: domain.Principal{ProfileId: "1e000000-0000-4000-8000-000000000002", Role: domain.Intern}, then: http.StatusNotFound},
	} {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			dblead := mockdb.NewLeadInterface()
			dblead.Impl.Get = func(ctx context.Context, ids []string) (map[string]domain.Lead, error) {
				return map[string]domain.Lead{lead.Id: lead}, nil
			}
			c, _ := httptestutil.Get(e, "/api/leads/1ead0000-0000-4000-8000-000000000001")
			c = httptestutil.Params(httptestutil.As(c, testcase.who), "leadId", "1ead0000-0000-4000-8000-000000000001")
			err := handlers.GetLeadHandler(dblead, "leadId")(c)
			if got := statusOf(t, err); got != testcase.then {
				t.Errorf("status: got %d, want %d", got, testcase.then)
			}
		})
	}

	t.Run("malformed ids name nothing", func(t *testing.T) {
		e := echo.New()
		dblead := mockdb.NewLeadInterface()
		c, _ := httptestutil.Get(e, "/api/leads/xyz")
		c = httptestutil.Params(httptestutil.As(c, admin), "leadId", "xyz")
		err := handlers.GetLeadHandler(dblead, "leadId")(c)
		if got := statusOf(t, err); got != http.StatusNotFound {
			t.Errorf("status: %d", got)
		}
		if len(dblead.Calls.Get) != 0 {
			t.Errorf("Get should not be called")
		}
	})
}

func TestSetLeadStatusHandler(t *testing.T) {
	t.Run("converting is not a status change", func(t *testing.T) {
		e := echo.New()
		dblead := mockdb.NewLeadInterface()
		c, _ := httptestutil.Put(e, "/api/leads/1ead0000-0000-4000-8000-000000000001/status", strings.NewReader(`{"status": "converted"}`), httptestutil.JSON())
		c = httptestutil.Params(httptestutil.As(c, sales), "leadId", "1ead0000-0000-4000-8000-000000000001")
		err := handlers.SetLeadStatusHandler(dblead, "leadId")(c)
		if got := statusOf(t, err); got != http.StatusBadRequest {
			t.Errorf("status: %d", got)
		}
	})

	t.Run("terminal leads do not change", func(t *testing.T) {
		e := echo.New()
		dblead := mockdb.NewLeadInterface()
		dblead.Impl.Get = func(ctx context.Context, ids []string) (map[string]domain.Lead, error) {
			return map[string]domain.Lead{"1ead0000-0000-4000-8000-000000000001": {Id: "1ead0000-0000-4000-8000-000000000001", CreatedBy: sales.ProfileId, Status: domain.LeadLost}}, nil
		}
		dblead.Impl.SetStatus = func(ctx context.Context, id string, status domain.LeadStatus) (domain.Lead, error) {
			return domain.Lead{}, domain.NewErrInvalidLeadStateChanging(domain.LeadLost, status)
		}
		c, _ := httptestutil.Put(e, "/api/leads/1ead0000-0000-4000-8000-000000000001/status", strings.NewReader(`{"status": "contacted"}`), httptestutil.JSON())
		c = httptestutil.Params(httptestutil.As(c, sales), "leadId", "1ead0000-0000-4000-8000-000000000001")
		err := handlers.SetLeadStatusHandler(dblead, "leadId")(c)
		if got := statusOf(t, err); got != http.StatusConflict {
			t.Errorf("status: %d", got)
		}
	})
}

func TestConvertLeadHandler(t *testing.T) {
	t.Run("it makes a client owned by the caller", func(t *testing.T) {
		e := echo.New()
		dblead := mockdb.NewLeadInterface()
		dblead.Impl.Get = func(ctx context.Context, ids []string) (map[string]domain.Lead, error) {
			return map[string]domain.Lead{"1ead0000-0000-4000-8000-000000000001": {
				Id: "1ead0000-0000-4000-8000-000000000001", Name: "Jane", AssignedTo: pointer.Ref(sales.ProfileId), Status: domain.LeadQualified,
			}}, nil
		}
		dblead.Impl.Convert = func(ctx context.Context, id string, by string) (domain.Lead, domain.Client, error) {
			l := domain.Lead{Id: id, Name: "Jane", Status: domain.LeadConverted}
			spec := domain.ClientFromLead(l, by)
			return l, domain.Client{
				Id: "c1000000-0000-4000-8000-000000000001", LeadId: spec.LeadId, Name: spec.Name, Owner: spec.Owner, ReviewStatus: spec.ReviewStatus,
			}, nil
		}

		c, resp := httptestutil.Post(e, "/api/leads/1ead0000-0000-4000-8000-000000000001/convert", nil)
		c = httptestutil.Params(httptestutil.As(c, sales), "leadId", "1ead0000-0000-4000-8000-000000000001")
		if err := handlers.ConvertLeadHandler(dblead, "leadId")(c); err != nil {
			t.Fatal(err)
		}
		if resp.Code != http.StatusCreated {
			t.Errorf("status: %d", resp.Code)
		}
		if diff := cmp.Diff(sales.ProfileId, dblead.Calls.Convert[0].By); diff != "" {
			t.Errorf("converted by (-want, +got):\n%s", diff)
		}

		body := apiclients.Conversion{}
		if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if body.LeadId != "1ead0000-0000-4000-8000-000000000001" || body.Client.Owner != sales.ProfileId || body.Client.Name != "Jane" {
			t.Errorf("unexpected body: %+v", body)
		}
	})

	t.Run("leads not qualified are not converted", func(t *testing.T) {
		e := echo.New()
		dblead := mockdb.NewLeadInterface()
		dblead.Impl.Get = func(ctx context.Context, ids []string) (map[string]domain.Lead, error) {
			return map[string]domain.Lead{"1ead0000-0000-4000-8000-000000000001": {Id: "1ead0000-0000-4000-8000-000000000001", CreatedBy: sales.ProfileId, Status: domain.LeadNew}}, nil
		}
		dblead.Impl.Convert = func(ctx context.Context, id string, by string) (domain.Lead, domain.Client, error) {
			return domain.Lead{}, domain.Client{}, domerr.ErrInvalidStateChanging
		}
		c, _ := httptestutil.Post(e, "/api/leads/1ead0000-0000-4000-8000-000000000001/convert", nil)
		c = httptestutil.Params(httptestutil.As(c, sales), "leadId", "1ead0000-0000-4000-8000-000000000001")
		err := handlers.ConvertLeadHandler(dblead, "leadId")(c)
		if got := statusOf(t, err); got != http.StatusConflict {
			t.Errorf("status: %d", got)
		}
	})
}

func TestAssignLeadHandler(t *testing.T) {
	for name, testcase := range map[string]struct {
		leadId string
		body   string
		then   int
	}{
		"malformed lead ids are 404": {leadId: "xyz", body: `{"assignedTo": "5a1e5000-0000-4000-8000-000000000001"}`, then: http.StatusNotFound},
		"malformed assignees are 400": {
			leadId: "1ead0000-0000-4000-8000-000000000001", body: `{"assignedTo": "sales"}`, then: http.StatusBadRequest,
		},
	} {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			dblead := mockdb.NewLeadInterface()
			c, _ := httptestutil.Put(e, "/api/leads/"+testcase.leadId+"/assign", strings.NewReader(testcase.body), httptestutil.JSON())
			c = httptestutil.Params(httptestutil.As(c, admin), "leadId", testcase.leadId)
			err := handlers.AssignLeadHandler(dblead, "leadId")(c)
			if got := statusOf(t, err); got != testcase.then {
				t.Errorf("status: got %d, want %d", got, testcase.then)
			}
			if len(dblead.Calls.Assign) != 0 {
				t.Errorf("Assign should not be called")
			}
		})
	}

	t.Run("null unassigns", func(t *testing.T) {
		e := echo.New()
		dblead := mockdb.NewLeadInterface()
		dblead.Impl.Assign = func(ctx context.Context, id string, profileId *string) (domain.Lead, error) {
			return domain.Lead{Id: id}, nil
		}
		c, _ := httptestutil.Put(e, "/api/leads/1ead0000-0000-4000-8000-000000000001/assign", strings.NewReader(`{"assignedTo": null}`), httptestutil.JSON())
		c = httptestutil.Params(httptestutil.As(c, admin), "leadId", "1ead0000-0000-4000-8000-000000000001")
		if err := handlers.AssignLeadHandler(dblead, "leadId")(c); err != nil {
			t.Fatal(err)
		}
		if got := dblead.Calls.Assign[0].ProfileId; got != nil {
			t.Errorf("assignee: %v", *got)
		}
	})
}

func TestDeleteLeadHandler(t *testing.T) {
	e := echo.New()
	dblead := mockdb.NewLeadInterface()
	c, _ := httptestutil.Delete(e, "/api/leads/not-a-lead")
	c = httptestutil.Params(httptestutil.As(c, admin), "leadId", "not-a-lead")
	err := handlers.DeleteLeadHandler(dblead, "leadId")(c)
	if got := statusOf(t, err); got != http.StatusNotFound {
		t.Errorf("status: %d", got)
	}
	if len(dblead.Calls.Delete) != 0 {
		t.Errorf("Delete should not be called")
	}
}
