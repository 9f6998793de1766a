package rest

import (
	"net/url"
	"strings"
)

type ReviewQuery struct {
	Status     []string
	EntityType []string
	Submitter  []string
}

type RequestQuery struct {
	Status    []string
	Client    []string
	Requester []string
}

type LeadQuery struct {
	Status   []string
	Assignee []string
	Creator  []string
	Review   []string
}

// values builds query string. Each parameter is comma separated and empty ones are omitted.
func values(params map[string][]string) string {
	q := url.Values{}
	for k, v := range params {
		if len(v) == 0 {
			continue
		}
		q.Set(k, strings.Join(v, ","))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func (q ReviewQuery) encode() string {
	return values(map[string][]string{
		"status":    q.Status,
		"entity":    q.EntityType,
		"submitter": q.Submitter,
	})
}

func (q RequestQuery) encode() string {
	return values(map[string][]string{
		"status":    q.Status,
		"client":    q.Client,
		"requester": q.Requester,
	})
}

func (q LeadQuery) encode() string {
	return values(map[string][]string{
		"status":   q.Status,
		"assignee": q.Assignee,
		"creator":  q.Creator,
		"review":   q.Review,
	})
}
