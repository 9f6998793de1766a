package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	domerr "github.com/opst/leadline/pkg/domain/errors"
)

type ProjectStatus string

const (
	ProjectPlanned   ProjectStatus = "planned"
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCancelled ProjectStatus = "cancelled"
)

var ErrUnknownProjectStatus = errors.New("unknown project status")

func (s ProjectStatus) String() string {
	return string(s)
}

func AsProjectStatus(s string) (ProjectStatus, error) {
	switch ProjectStatus(s) {
	case ProjectPlanned, ProjectActive, ProjectCompleted, ProjectCancelled:
		return ProjectStatus(s), nil
	}
	return "", fmt.Errorf(`%w: "%s"`, ErrUnknownProjectStatus, s)
}

var projectTransitions = map[ProjectStatus][]ProjectStatus{
	ProjectPlanned: {ProjectActive, ProjectCancelled},
	ProjectActive:  {ProjectCompleted, ProjectCancelled},
}

func (s ProjectStatus) CanChangeTo(next ProjectStatus) bool {
	return slices.Contains(projectTransitions[s], next)
}

func NewErrInvalidProjectStateChanging(from, to ProjectStatus) error {
	return fmt.Errorf("%w: project %s -> %s", domerr.ErrInvalidStateChanging, from, to)
}

type Project struct {
	Id          string
	ClientId    string
	Name        string
	Description string
	Status      ProjectStatus
	ValueCents  int64
	StartDate   *time.Time
	EndDate     *time.Time
	Owner       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ProjectSpec struct {
	ClientId    string
	Name        string
	Description string
	ValueCents  int64
	StartDate   *time.Time
	EndDate     *time.Time
	Owner       string
}

func validatePeriod(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return fmt.Errorf(
			"%w: end date (%s) precedes start date (%s)",
			domerr.ErrInvalidArgument, end.Format(time.DateOnly), start.Format(time.DateOnly),
		)
	}
	return nil
}

func (s ProjectSpec) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: project name is empty", domerr.ErrInvalidArgument)
	}
	if s.ClientId == "" {
		return fmt.Errorf("%w: project client is not set", domerr.ErrInvalidArgument)
	}
	if s.ValueCents < 0 {
		return fmt.Errorf("%w: project value is negative", domerr.ErrInvalidArgument)
	}
	return validatePeriod(s.StartDate, s.EndDate)
}

type ProjectChange struct {
	Name        *string
	Description *string
	ValueCents  *int64
	StartDate   *time.Time
	EndDate     *time.Time
}

// Apply returns p changed by c, checking the result is valid.
func (c ProjectChange) Apply(p Project) (Project, error) {
	if c.Name != nil {
		if strings.TrimSpace(*c.Name) == "" {
			return p, fmt.Errorf("%w: project name is empty", domerr.ErrInvalidArgument)
		}
		p.Name = *c.Name
	}
	if c.Description != nil {
		p.Description = *c.Description
	}
	if c.ValueCents != nil {
		if *c.ValueCents < 0 {
			return p, fmt.Errorf("%w: project value is negative", domerr.ErrInvalidArgument)
		}
		p.ValueCents = *c.ValueCents
	}
	if c.StartDate != nil {
		p.StartDate = c.StartDate
	}
	if c.EndDate != nil {
		p.EndDate = c.EndDate
	}
	return p, validatePeriod(p.StartDate, p.EndDate)
}

type ProjectQuery struct {
	ClientId []string
	Owner    []string
	Status   []ProjectStatus
}
