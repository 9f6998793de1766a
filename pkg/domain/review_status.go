package domain

import (
	"errors"
	"fmt"
)

// ReviewStatus is the review state of a reviewable entity and of a review item.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

var ErrUnknownReviewStatus = errors.New("unknown review status")

func (s ReviewStatus) String() string {
	return string(s)
}

func AsReviewStatus(s string) (ReviewStatus, error) {
	switch ReviewStatus(s) {
	case ReviewPending, ReviewApproved, ReviewRejected:
		return ReviewStatus(s), nil
	}
	return "", fmt.Errorf(`%w: "%s"`, ErrUnknownReviewStatus, s)
}

func ReviewStatuses() []ReviewStatus {
	return []ReviewStatus{ReviewPending, ReviewApproved, ReviewRejected}
}

// InitialReviewStatus is the review status of an entity created by the role.
func InitialReviewStatus(r Role) ReviewStatus {
	if r.SubmissionNeedsReview() {
		return ReviewPending
	}
	return ReviewApproved
}
