package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	cerr "github.com/opst/leadline/cmd/leadline/errors"
	apierr "github.com/opst/leadline/pkg/api/types/errors"
)

// MessageFor is the summary of errors per status code range.
type MessageFor map[StatusCodeRange]string

const (
	notAllowed = "you are not allowed to do it (status code = %d)"
	notFound   = "not found (status code = %d)"
)

// unmarshalJsonResponse reads a json response into v.
//
// For 4xx and 5xx responses, it returns CUIError with messageFor and the server message.
func unmarshalJsonResponse[T any](resp *http.Response, v *T, messageFor MessageFor) error {
	if StatusCodeRangeOf(resp) == Status2xx {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			return cerr.New(
				fmt.Sprintf("unexpected response: %s (status code = %d)", err, resp.StatusCode),
				cerr.WithCause(err),
			)
		}
		return nil
	}
	return errorResponse(resp, messageFor)
}

// unmarshalStreamResponse returns the body of successful responses.
func unmarshalStreamResponse(resp *http.Response, messageFor MessageFor) (io.ReadCloser, error) {
	if StatusCodeRangeOf(resp) == Status2xx {
		return resp.Body, nil
	}
	return nil, errorResponse(resp, messageFor)
}

func errorResponse(resp *http.Response, messageFor MessageFor) error {
	scr := StatusCodeRangeOf(resp)
	message, ok := messageFor[scr]
	if !ok {
		message = fmt.Sprintf("%s (status code = %d)", scr, resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		message += "\nyour login may be expired. try `leadline login` again."
	case http.StatusForbidden:
		message = fmt.Sprintf(notAllowed, resp.StatusCode)
	case http.StatusNotFound:
		message = fmt.Sprintf(notFound, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return cerr.New(
			fmt.Sprintf("%s\ncan not read server message: %s", message, err),
			cerr.WithCause(err),
		)
	}

	detail := parseErrorMessage(body)
	return cerr.New(
		message,
		cerr.WithDetail(func(summary string) (string, error) {
			if detail == "" {
				return summary, nil
			}
			return summary + "\n" + detail, nil
		}),
	)
}

// parseErrorMessage formats error bodies from the server.
//
// Bodies are ErrorMessage for errors handled by the API, or {"message": ...} for others.
func parseErrorMessage(body []byte) string {
	em := new(apierr.ErrorMessage)
	if err := json.Unmarshal(body, em); err == nil {
		return em.String()
	}

	msg := new(struct {
		Message *string `json:"message"`
	})
	if err := json.Unmarshal(body, msg); err == nil && msg.Message != nil {
		return *msg.Message
	}

	return string(body)
}
