package hook_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/opst/leadline/cmd/loops/hook"
	"github.com/opst/leadline/pkg/utils/retry"
	"github.com/opst/leadline/pkg/utils/try"
)

type Value struct {
	Content string `json:"content"`
}

type Resp struct {
	StatusCode  int
	ContentType string
	Content     string
}

func TestWebHook_After(t *testing.T) {
	type When struct {
		value Value
		resp1 []Resp
		resp2 []Resp
		retry bool
	}

	type Then struct {
		invoked1 int
		invoked2 int
		err      error
	}

	theory := func(when When, then Then) func(t *testing.T) {
		return func(t *testing.T) {
			serve := func(name string, resps []Resp, count *int) *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					resp := resps[min(*count, len(resps)-1)]
					*count += 1

					if r.Method != http.MethodPost {
						t.Errorf("%s: unexpected method: %s", name, r.Method)
					}
					if ct := r.Header.Get("Content-Type"); ct != "application/json" {
						t.Errorf("%s: unexpected content type: %s", name, ct)
					}
					var got Value
					if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
						t.Fatalf("%s: unexpected error: %v", name, err)
					}
					if got != when.value {
						t.Errorf("%s: Expected: %v, Got: %v", name, when.value, got)
					}

					if resp.ContentType != "" {
						w.Header().Set("Content-Type", resp.ContentType)
					}
					w.WriteHeader(resp.StatusCode)
					if resp.Content != "" {
						w.Write([]byte(resp.Content))
					}
				}))
			}

			invoked1, invoked2 := 0, 0
			server1 := serve("server1", when.resp1, &invoked1)
			defer server1.Close()
			server2 := serve("server2", when.resp2, &invoked2)
			defer server2.Close()

			testee := hook.Web[Value]{
				URLs: []*url.URL{
					try.To(url.Parse(server1.URL)).OrFatal(t),
					try.To(url.Parse(server2.URL)).OrFatal(t),
				},
			}
			if when.retry {
				testee.Backoff = func() retry.Backoff {
					return retry.Limited(2, retry.StaticBackoff(time.Millisecond))
				}
			}

			err := testee.After(context.Background(), when.value)
			if then.err == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			} else if !errors.Is(err, then.err) {
				t.Errorf("Want: %v, Got: %v", then.err, err)
			}

			if invoked1 != then.invoked1 {
				t.Errorf("server1 invoked: Want: %d, Got: %d", then.invoked1, invoked1)
			}
			if invoked2 != then.invoked2 {
				t.Errorf("server2 invoked: Want: %d, Got: %d", then.invoked2, invoked2)
			}
		}
	}

	t.Run("all servers succeed", theory(
		When{
			value: Value{Content: "approved"},
			resp1: []Resp{{StatusCode: http.StatusOK}},
			resp2: []Resp{{StatusCode: http.StatusNoContent}},
		},
		Then{invoked1: 1, invoked2: 1},
	))

	t.Run("failure of the first server stops the hook", theory(
		When{
			value: Value{Content: "approved"},
			resp1: []Resp{{StatusCode: http.StatusBadRequest, ContentType: "text/plain", Content: "no"}},
			resp2: []Resp{{StatusCode: http.StatusOK}},
		},
		Then{invoked1: 1, invoked2: 0, err: hook.ErrHookFailed},
	))

	t.Run("failure of the second server fails the hook", theory(
		When{
			value: Value{Content: "approved"},
			resp1: []Resp{{StatusCode: http.StatusOK}},
			resp2: []Resp{{StatusCode: http.StatusInternalServerError, ContentType: "application/json", Content: `{"message":"down"}`}},
		},
		Then{invoked1: 1, invoked2: 1, err: hook.ErrHookFailed},
	))

	t.Run("server error is retried with backoff", theory(
		When{
			value: Value{Content: "approved"},
			resp1: []Resp{{StatusCode: http.StatusServiceUnavailable}, {StatusCode: http.StatusOK}},
			resp2: []Resp{{StatusCode: http.StatusOK}},
			retry: true,
		},
		Then{invoked1: 2, invoked2: 1},
	))

	t.Run("client error is not retried", theory(
		When{
			value: Value{Content: "approved"},
			resp1: []Resp{{StatusCode: http.StatusNotFound}, {StatusCode: http.StatusOK}},
			resp2: []Resp{{StatusCode: http.StatusOK}},
			retry: true,
		},
		Then{invoked1: 1, invoked2: 0, err: hook.ErrHookFailed},
	))

	t.Run("retrying gives up", theory(
		When{
			value: Value{Content: "approved"},
			resp1: []Resp{{StatusCode: http.StatusBadGateway}},
			resp2: []Resp{{StatusCode: http.StatusOK}},
			retry: true,
		},
		Then{invoked1: 3, invoked2: 0, err: retry.ErrGaveUp},
	))
}

func TestWebHook_NoURLs(t *testing.T) {
	testee := hook.Web[Value]{}
	if err := testee.After(context.Background(), Value{}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFuncHook(t *testing.T) {
	t.Run("nil function does nothing", func(t *testing.T) {
		if err := (hook.Func[Value]{}).After(context.Background(), Value{}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("error is marked as hook failure", func(t *testing.T) {
		expected := errors.New("fake")
		testee := hook.Func[Value]{
			AfterFn: func(context.Context, Value) error { return expected },
		}
		err := testee.After(context.Background(), Value{})
		if !errors.Is(err, expected) || !errors.Is(err, hook.ErrHookFailed) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
