package hook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/opst/leadline/pkg/utils/retry"
)

// Web posts values as JSON to URLs.
//
// The hook succeeds if and only if every URL responds with a 2xx status code.
// URLs are called in order, and the first failure stops it.
type Web[T any] struct {
	URLs []*url.URL

	// Client sends requests. If nil, http.DefaultClient is used.
	Client *http.Client

	// Backoff makes a backoff for each URL.
	// Requests failed with connection errors or 5xx responses are retried with it.
	//
	// If nil, requests are not retried.
	Backoff func() retry.Backoff
}

func (w Web[T]) client() *http.Client {
	if w.Client == nil {
		return http.DefaultClient
	}
	return w.Client
}

func (w Web[T]) send(ctx context.Context, u *url.URL, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(payload))
	if err != nil {
		return errors.Join(err, ErrHookFailed)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client().Do(req)
	if err != nil {
		return errors.Join(err, retry.ErrRetry, ErrHookFailed)
	}
	defer resp.Body.Close()

	if 200 <= resp.StatusCode && resp.StatusCode < 300 {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	err = ErrHookFailed
	if 500 <= resp.StatusCode {
		err = errors.Join(ErrHookFailed, retry.ErrRetry)
	}

	ctype := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ctype, "text/") && !(strings.HasPrefix(ctype, "application/") && strings.Contains(ctype, "json")) {
		return fmt.Errorf("%w (%s %d, Content-Type: %s)", err, u, resp.StatusCode, ctype)
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return fmt.Errorf("%w (%s %d, Content-Type: %s): %s", err, u, resp.StatusCode, ctype, string(body))
}

func (w Web[T]) After(ctx context.Context, value T) error {
	if len(w.URLs) == 0 {
		return nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}

	for _, u := range w.URLs {
		if w.Backoff == nil {
			if err := w.send(ctx, u, payload); err != nil {
				return err
			}
			continue
		}
		_, err := retry.Blocking(ctx, w.Backoff(), func() (struct{}, error) {
			return struct{}{}, w.send(ctx, u, payload)
		})
		if err != nil {
			return errors.Join(err, ErrHookFailed)
		}
	}
	return nil
}
