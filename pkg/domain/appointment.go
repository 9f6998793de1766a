package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	domerr "github.com/opst/leadline/pkg/domain/errors"
)

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

var ErrUnknownAppointmentStatus = errors.New("unknown appointment status")

func (s AppointmentStatus) String() string {
	return string(s)
}

func AsAppointmentStatus(s string) (AppointmentStatus, error) {
	switch AppointmentStatus(s) {
	case AppointmentScheduled, AppointmentCompleted, AppointmentCancelled:
		return AppointmentStatus(s), nil
	}
	return "", fmt.Errorf(`%w: "%s"`, ErrUnknownAppointmentStatus, s)
}

// only scheduled appointments can be completed or cancelled.
func (s AppointmentStatus) CanChangeTo(next AppointmentStatus) bool {
	return s == AppointmentScheduled && next != AppointmentScheduled
}

type Appointment struct {
	Id        string
	Title     string
	LeadId    *string
	ClientId  *string
	Owner     string
	StartsAt  time.Time
	EndsAt    time.Time
	Location  string
	Notes     string
	Status    AppointmentStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

func validateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start and end are required", domerr.ErrInvalidArgument)
	}
	if !start.Before(end) {
		return fmt.Errorf(
			"%w: end (%s) is not after start (%s)",
			domerr.ErrInvalidArgument, end.Format(time.RFC3339), start.Format(time.RFC3339),
		)
	}
	return nil
}

type AppointmentSpec struct {
	Title    string
	LeadId   *string
	ClientId *string
	Owner    string
	StartsAt time.Time
	EndsAt   time.Time
	Location string
	Notes    string
}

func (s AppointmentSpec) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("%w: appointment title is empty", domerr.ErrInvalidArgument)
	}
	return validateRange(s.StartsAt, s.EndsAt)
}

type AppointmentChange struct {
	Title    *string
	StartsAt *time.Time
	EndsAt   *time.Time
	Location *string
	Notes    *string
}

func (c AppointmentChange) Apply(a Appointment) (Appointment, error) {
	if c.Title != nil {
		if strings.TrimSpace(*c.Title) == "" {
			return a, fmt.Errorf("%w: appointment title is empty", domerr.ErrInvalidArgument)
		}
		a.Title = *c.Title
	}
	if c.StartsAt != nil {
		a.StartsAt = *c.StartsAt
	}
	if c.EndsAt != nil {
		a.EndsAt = *c.EndsAt
	}
	if c.Location != nil {
		a.Location = *c.Location
	}
	if c.Notes != nil {
		a.Notes = *c.Notes
	}
	return a, validateRange(a.StartsAt, a.EndsAt)
}

type AppointmentQuery struct {
	Owner  []string
	Status []AppointmentStatus

	// appointments overlapping [From, To) are returned.
	From *time.Time
	To   *time.Time
}

type AppointmentRequestStatus string

const (
	// waiting for the decision of an admin.
	RequestPending AppointmentRequestStatus = "pending"

	// approved by an admin. A client appointment has been created.
	RequestApproved AppointmentRequestStatus = "approved"

	// rejected by an admin.
	RequestRejected AppointmentRequestStatus = "rejected"

	// withdrawn by the requester or an admin, or expired.
	RequestCancelled AppointmentRequestStatus = "cancelled"
)

var ErrUnknownAppointmentRequestStatus = errors.New("unknown appointment request status")

func (s AppointmentRequestStatus) String() string {
	return string(s)
}

func AsAppointmentRequestStatus(s string) (AppointmentRequestStatus, error) {
	switch AppointmentRequestStatus(s) {
	case RequestPending, RequestApproved, RequestRejected, RequestCancelled:
		return AppointmentRequestStatus(s), nil
	}
	return "", fmt.Errorf(`%w: "%s"`, ErrUnknownAppointmentRequestStatus, s)
}

// Only pending requests can be decided. Decided requests never change.
func (s AppointmentRequestStatus) CanChangeTo(next AppointmentRequestStatus) bool {
	return s == RequestPending && next != RequestPending
}

func NewErrInvalidRequestStateChanging(from, to AppointmentRequestStatus) error {
	return fmt.Errorf("%w: appointment request %s -> %s", domerr.ErrInvalidStateChanging, from, to)
}

// DecisionNoteExpired is the decision note of requests cancelled because their start has passed.
const DecisionNoteExpired = "expired"

type AppointmentRequest struct {
	Id             string
	ClientId       string
	RequestedBy    string
	RequestedStart time.Time
	RequestedEnd   time.Time
	Purpose        string
	Status         AppointmentRequestStatus
	DecidedBy      *string
	DecidedAt      *time.Time
	DecisionNote   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type AppointmentRequestSpec struct {
	ClientId       string
	RequestedBy    string
	RequestedStart time.Time
	RequestedEnd   time.Time
	Purpose        string
}

// Validate checks the spec. The requested range should start after now.
func (s AppointmentRequestSpec) Validate(now time.Time) error {
	if s.ClientId == "" {
		return fmt.Errorf("%w: client is not set", domerr.ErrInvalidArgument)
	}
	if err := validateRange(s.RequestedStart, s.RequestedEnd); err != nil {
		return err
	}
	if !now.Before(s.RequestedStart) {
		return fmt.Errorf("%w: requested start is in the past", domerr.ErrInvalidArgument)
	}
	return nil
}

type AppointmentRequestQuery struct {
	Status      []AppointmentRequestStatus
	RequestedBy []string
	ClientId    []string
}

// Decision is what an admin (or the requester, for cancel) says to a pending request.
type Decision struct {
	RequestId string
	By        string
	Note      string
}

// ClientAppointment is the appointment with a client, derived from an approved request.
type ClientAppointment struct {
	Id        string
	RequestId string
	ClientId  string

	// the requester.
	Host      string
	StartsAt  time.Time
	EndsAt    time.Time
	Purpose   string
	CreatedAt time.Time
}

type ClientAppointmentQuery struct {
	ClientId []string
	Host     []string
	From     *time.Time
	To       *time.Time
}

type AppointmentEventType string

const (
	EventRequested AppointmentEventType = "requested"
	EventApproved  AppointmentEventType = "approved"
	EventRejected  AppointmentEventType = "rejected"
	EventCancelled AppointmentEventType = "cancelled"
)

// AppointmentEvent is a record of a change on an appointment request, to be notified.
type AppointmentEvent struct {
	Id        int64
	Type      AppointmentEventType
	Actor     string
	Request   AppointmentRequest
	CreatedAt time.Time

	// set when the event is approved.
	ClientAppointment *ClientAppointment
}
