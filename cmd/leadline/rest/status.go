package rest

import "net/http"

// StatusCodeRange is the class of HTTP status codes, like "4xx".
type StatusCodeRange int

const (
	StatusUnknown StatusCodeRange = 0
	Status1xx     StatusCodeRange = 1
	Status2xx     StatusCodeRange = 2
	Status3xx     StatusCodeRange = 3
	Status4xx     StatusCodeRange = 4
	Status5xx     StatusCodeRange = 5
)

var rangeNames = map[StatusCodeRange]string{
	Status1xx: "informational response",
	Status2xx: "success",
	Status3xx: "redirect",
	Status4xx: "client error",
	Status5xx: "server error",
}

func (sc StatusCodeRange) String() string {
	if n, ok := rangeNames[sc]; ok {
		return n
	}
	return "unknown status"
}

func StatusCodeRangeOf(resp *http.Response) StatusCodeRange {
	r := StatusCodeRange(resp.StatusCode / 100)
	if _, ok := rangeNames[r]; !ok {
		return StatusUnknown
	}
	return r
}
