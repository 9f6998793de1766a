package rest

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	kprof "github.com/opst/leadline/cmd/leadline/config/profiles"
	apiauth "github.com/opst/leadline/pkg/api/types/auth"
	apiclients "github.com/opst/leadline/pkg/api/types/clients"
	apidashboard "github.com/opst/leadline/pkg/api/types/dashboard"
	apidocuments "github.com/opst/leadline/pkg/api/types/documents"
	apileads "github.com/opst/leadline/pkg/api/types/leads"
	apiprofiles "github.com/opst/leadline/pkg/api/types/profiles"
	apirequests "github.com/opst/leadline/pkg/api/types/requests"
	apireviews "github.com/opst/leadline/pkg/api/types/reviews"
	"github.com/opst/leadline/pkg/utils"
)

var ErrChecksumUnmatch = errors.New("checksum unmatch")

// Client talks to the leadline API as the logged-in user of a profile.
type Client interface {
	// Login exchanges credentials for a token.
	//
	// It works without the token in the profile.
	Login(ctx context.Context, email string, password string) (apiauth.LoginResponse, error)

	// Me returns the profile of the logged-in user.
	Me(ctx context.Context) (apiprofiles.Profile, error)

	FindReviews(ctx context.Context, query ReviewQuery) ([]apireviews.Review, error)

	// DecideReviews approves or rejects reviews at once.
	//
	// All of reviews are decided, or none of them when it returns error.
	DecideReviews(ctx context.Context, decision apireviews.DecisionRequest) ([]apireviews.Outcome, error)

	FindRequests(ctx context.Context, query RequestQuery) ([]apirequests.Request, error)
	CreateRequest(ctx context.Context, req apirequests.CreateRequest) (apirequests.Request, error)
	ApproveRequest(ctx context.Context, requestId string, note string) (apirequests.Approval, error)
	RejectRequest(ctx context.Context, requestId string, note string) (apirequests.Request, error)
	CancelRequest(ctx context.Context, requestId string) (apirequests.Request, error)

	FindLeads(ctx context.Context, query LeadQuery) ([]apileads.Lead, error)
	CreateLead(ctx context.Context, req apileads.CreateRequest) (apileads.Lead, error)
	ConvertLead(ctx context.Context, leadId string) (apiclients.Conversion, error)

	// UploadDocument sends body as the content of a new document.
	UploadDocument(ctx context.Context, meta DocumentUpload, body io.Reader) (apidocuments.Document, error)

	// DownloadDocument reads the content of the document.
	//
	// The handler is called with the content stream.
	// After the handler returns, the checksum is verified and ErrChecksumUnmatch is returned on mismatch.
	DownloadDocument(ctx context.Context, documentId string, handler func(Download) error) error

	Dashboard(ctx context.Context) (apidashboard.Dashboard, error)
}

type client struct {
	httpclient *http.Client
	api        string
	token      string
}

// NewClient creates a Client for the profile.
//
// It returns ErrProfileInvalid when the profile is broken.
func NewClient(prof *kprof.Profile) (Client, error) {
	if err := prof.Verify(); err != nil {
		return nil, err
	}
	httpclient := new(http.Client)
	if prof.Cert.CA != "" {
		hc, err := trustCa(httpclient, prof.Cert.CA)
		if err != nil {
			return nil, err
		}
		httpclient = hc
	}

	return &client{
		httpclient: httpclient,
		api:        strings.TrimSuffix(prof.ApiRoot, "/"),
		token:      prof.Token,
	}, nil
}

// apipath builds URL of the API. Paths end with "/" as the server expects.
func (c *client) apipath(path ...string) string {
	path = utils.Map(path, func(p string) string {
		return url.PathEscape(strings.Trim(p, "/"))
	})
	return strings.Join(append([]string{c.api}, path...), "/") + "/"
}

func (c *client) newRequest(ctx context.Context, method string, target string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// sendJSON sends payload as json, and reads json response into T.
//
// payload can be nil to send no body.
func sendJSON[T any](ctx context.Context, c *client, method string, target string, payload any, messageFor MessageFor) (T, error) {
	var zero T

	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return zero, err
		}
		body = bytes.NewReader(buf)
	}

	req, err := c.newRequest(ctx, method, target, body)
	if err != nil {
		return zero, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpclient.Do(req)
	if err != nil {
		return zero, err
	}
	defer resp.Body.Close()

	ret := new(T)
	if err := unmarshalJsonResponse(resp, ret, messageFor); err != nil {
		return zero, err
	}
	return *ret, nil
}

func trustCa(hc *http.Client, b64ca string) (*http.Client, error) {
	if hc.Transport == nil {
		hc.Transport = http.DefaultTransport
	}
	tran, ok := hc.Transport.(*http.Transport)
	if !ok {
		return nil, fmt.Errorf("failed to add ca cert")
	}
	tran = tran.Clone()

	tcc := tran.TLSClientConfig.Clone()
	if tcc == nil {
		tcc = &tls.Config{}
	}
	if tcc.RootCAs == nil {
		tcc.RootCAs = x509.NewCertPool()
	}

	bin, err := base64.StdEncoding.DecodeString(b64ca)
	if err != nil {
		return nil, err
	}
	if !tcc.RootCAs.AppendCertsFromPEM(bin) {
		return nil, fmt.Errorf("failed to add ca cert")
	}

	tran.TLSClientConfig = tcc
	hc.Transport = tran
	return hc, nil
}
