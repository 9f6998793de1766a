package errors

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrorMessage is the body of error responses.
//
// Cause is kept for server-side logs and never sent.
type ErrorMessage struct {
	Reason string `json:"reason"`
	Advice string `json:"advice,omitempty"`
	Cause  error  `json:"-"`
}

var errNoReason = errors.New(`required field missing: "reason"`)

func (em *ErrorMessage) UnmarshalJSON(b []byte) error {
	var body struct {
		Reason *string `json:"reason"`
		Advice string  `json:"advice"`
	}
	if err := json.Unmarshal(b, &body); err != nil {
		return err
	}
	if body.Reason == nil {
		return errNoReason
	}
	*em = ErrorMessage{Reason: *body.Reason, Advice: body.Advice}
	return nil
}

func (em ErrorMessage) String() string {
	sb := new(strings.Builder)
	sb.WriteString(em.Reason)
	if em.Advice != "" {
		sb.WriteString("\n" + em.Advice)
	}
	if em.Cause != nil {
		sb.WriteString("\n caused by:" + em.Cause.Error())
	}
	return sb.String()
}

func (em ErrorMessage) Error() string { return em.String() }

func (em ErrorMessage) Unwrap() error { return em.Cause }
