package mock

import (
	"context"
	"io"
	"testing"

	"github.com/opst/leadline/cmd/leadline/rest"
	apiauth "github.com/opst/leadline/pkg/api/types/auth"
	apiclients "github.com/opst/leadline/pkg/api/types/clients"
	apidashboard "github.com/opst/leadline/pkg/api/types/dashboard"
	apidocuments "github.com/opst/leadline/pkg/api/types/documents"
	apileads "github.com/opst/leadline/pkg/api/types/leads"
	apiprofiles "github.com/opst/leadline/pkg/api/types/profiles"
	apirequests "github.com/opst/leadline/pkg/api/types/requests"
	apireviews "github.com/opst/leadline/pkg/api/types/reviews"
)

type LoginArgs struct {
	Email    string
	Password string
}

type DecisionArgs struct {
	RequestId string
	Note      string
}

// Client is a rest.Client replying with Impl.
//
// Calling a method without Impl fails the test.
type Client struct {
	t    *testing.T
	Impl struct {
		Login            func(ctx context.Context, email string, password string) (apiauth.LoginResponse, error)
		Me               func(ctx context.Context) (apiprofiles.Profile, error)
		FindReviews      func(ctx context.Context, query rest.ReviewQuery) ([]apireviews.Review, error)
		DecideReviews    func(ctx context.Context, decision apireviews.DecisionRequest) ([]apireviews.Outcome, error)
		FindRequests     func(ctx context.Context, query rest.RequestQuery) ([]apirequests.Request, error)
		CreateRequest    func(ctx context.Context, req apirequests.CreateRequest) (apirequests.Request, error)
		ApproveRequest   func(ctx context.Context, requestId string, note string) (apirequests.Approval, error)
		RejectRequest    func(ctx context.Context, requestId string, note string) (apirequests.Request, error)
		CancelRequest    func(ctx context.Context, requestId string) (apirequests.Request, error)
		FindLeads        func(ctx context.Context, query rest.LeadQuery) ([]apileads.Lead, error)
		CreateLead       func(ctx context.Context, req apileads.CreateRequest) (apileads.Lead, error)
		ConvertLead      func(ctx context.Context, leadId string) (apiclients.Conversion, error)
		UploadDocument   func(ctx context.Context, meta rest.DocumentUpload, body io.Reader) (apidocuments.Document, error)
		DownloadDocument func(ctx context.Context, documentId string, handler func(rest.Download) error) error
		Dashboard        func(ctx context.Context) (apidashboard.Dashboard, error)
	}
	Calls struct {
		Login            []LoginArgs
		Me               int
		FindReviews      []rest.ReviewQuery
		DecideReviews    []apireviews.DecisionRequest
		FindRequests     []rest.RequestQuery
		CreateRequest    []apirequests.CreateRequest
		ApproveRequest   []DecisionArgs
		RejectRequest    []DecisionArgs
		CancelRequest    []string
		FindLeads        []rest.LeadQuery
		CreateLead       []apileads.CreateRequest
		ConvertLead      []string
		UploadDocument   []rest.DocumentUpload
		DownloadDocument []string
		Dashboard        int
	}
}

func New(t *testing.T) *Client {
	return &Client{t: t}
}

var _ rest.Client = &Client{}

func (m *Client) notReady(name string) {
	m.t.Helper()
	m.t.Fatalf("%s is not ready to be called", name)
}

func (m *Client) Login(ctx context.Context, email string, password string) (apiauth.LoginResponse, error) {
	m.t.Helper()
	m.Calls.Login = append(m.Calls.Login, LoginArgs{Email: email, Password: password})
	if m.Impl.Login == nil {
		m.notReady("Login")
	}
	return m.Impl.Login(ctx, email, password)
}

func (m *Client) Me(ctx context.Context) (apiprofiles.Profile, error) {
	m.t.Helper()
	m.Calls.Me += 1
	if m.Impl.Me == nil {
		m.notReady("Me")
	}
	return m.Impl.Me(ctx)
}

func (m *Client) FindReviews(ctx context.Context, query rest.ReviewQuery) ([]apireviews.Review, error) {
	m.t.Helper()
	m.Calls.FindReviews = append(m.Calls.FindReviews, query)
	if m.Impl.FindReviews == nil {
		m.notReady("FindReviews")
	}
	return m.Impl.FindReviews(ctx, query)
}

func (m *Client) DecideReviews(ctx context.Context, decision apireviews.DecisionRequest) ([]apireviews.Outcome, error) {
	m.t.Helper()
	m.Calls.DecideReviews = append(m.Calls.DecideReviews, decision)
	if m.Impl.DecideReviews == nil {
		m.notReady("DecideReviews")
	}
	return m.Impl.DecideReviews(ctx, decision)
}

func (m *Client) FindRequests(ctx context.Context, query rest.RequestQuery) ([]apirequests.Request, error) {
	m.t.Helper()
	m.Calls.FindRequests = append(m.Calls.FindRequests, query)
	if m.Impl.FindRequests == nil {
		m.notReady("FindRequests")
	}
	return m.Impl.FindRequests(ctx, query)
}

func (m *Client) CreateRequest(ctx context.Context, req apirequests.CreateRequest) (apirequests.Request, error) {
	m.t.Helper()
	m.Calls.CreateRequest = append(m.Calls.CreateRequest, req)
	if m.Impl.CreateRequest == nil {
		m.notReady("CreateRequest")
	}
	return m.Impl.CreateRequest(ctx, req)
}

func (m *Client) ApproveRequest(ctx context.Context, requestId string, note string) (apirequests.Approval, error) {
	m.t.Helper()
	m.Calls.ApproveRequest = append(m.Calls.ApproveRequest, DecisionArgs{RequestId: requestId, Note: note})
	if m.Impl.ApproveRequest == nil {
		m.notReady("ApproveRequest")
	}
	return m.Impl.ApproveRequest(ctx, requestId, note)
}

func (m *Client) RejectRequest(ctx context.Context, requestId string, note string) (apirequests.Request, error) {
	m.t.Helper()
	m.Calls.RejectRequest = append(m.Calls.RejectRequest, DecisionArgs{RequestId: requestId, Note: note})
	if m.Impl.RejectRequest == nil {
		m.notReady("RejectRequest")
	}
	return m.Impl.RejectRequest(ctx, requestId, note)
}

func (m *Client) CancelRequest(ctx context.Context, requestId string) (apirequests.Request, error) {
	m.t.Helper()
	m.Calls.CancelRequest = append(m.Calls.CancelRequest, requestId)
	if m.Impl.CancelRequest == nil {
		m.notReady("CancelRequest")
	}
	return m.Impl.CancelRequest(ctx, requestId)
}

func (m *Client) FindLeads(ctx context.Context, query rest.LeadQuery) ([]apileads.Lead, error) {
	m.t.Helper()
	m.Calls.FindLeads = append(m.Calls.FindLeads, query)
	if m.Impl.FindLeads == nil {
		m.notReady("FindLeads")
	}
	return m.Impl.FindLeads(ctx, query)
}

func (m *Client) CreateLead(ctx context.Context, req apileads.CreateRequest) (apileads.Lead, error) {
	m.t.Helper()
	m.Calls.CreateLead = append(m.Calls.CreateLead, req)
	if m.Impl.CreateLead == nil {
		m.notReady("CreateLead")
	}
	return m.Impl.CreateLead(ctx, req)
}

func (m *Client) ConvertLead(ctx context.Context, leadId string) (apiclients.Conversion, error) {
	m.t.Helper()
	m.Calls.ConvertLead = append(m.Calls.ConvertLead, leadId)
	if m.Impl.ConvertLead == nil {
		m.notReady("ConvertLead")
	}
	return m.Impl.ConvertLead(ctx, leadId)
}

func (m *Client) UploadDocument(ctx context.Context, meta rest.DocumentUpload, body io.Reader) (apidocuments.Document, error) {
	m.t.Helper()
	m.Calls.UploadDocument = append(m.Calls.UploadDocument, meta)
	if m.Impl.UploadDocument == nil {
		m.notReady("UploadDocument")
	}
	return m.Impl.UploadDocument(ctx, meta, body)
}

func (m *Client) DownloadDocument(ctx context.Context, documentId string, handler func(rest.Download) error) error {
	m.t.Helper()
	m.Calls.DownloadDocument = append(m.Calls.DownloadDocument, documentId)
	if m.Impl.DownloadDocument == nil {
		m.notReady("DownloadDocument")
	}
	return m.Impl.DownloadDocument(ctx, documentId, handler)
}

func (m *Client) Dashboard(ctx context.Context) (apidashboard.Dashboard, error) {
	m.t.Helper()
	m.Calls.Dashboard += 1
	if m.Impl.Dashboard == nil {
		m.notReady("Dashboard")
	}
	return m.Impl.Dashboard(ctx)
}
