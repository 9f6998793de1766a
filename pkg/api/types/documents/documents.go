package documents

import "github.com/opst/leadline/pkg/utils/rfctime"

type Document struct {
	Id           string          `json:"id"`
	Owner        string          `json:"owner"`
	ClientId     *string         `json:"clientId,omitempty"`
	ProjectId    *string         `json:"projectId,omitempty"`
	Title        string          `json:"title"`
	FileName     string          `json:"fileName"`
	ContentType  string          `json:"contentType"`
	Size         int64           `json:"size"`
	Checksum     string          `json:"checksum"`
	ReviewStatus string          `json:"reviewStatus"`
	CreatedAt    rfctime.RFC3339 `json:"createdAt"`
}

// form fields of upload requests. The content is in the part "file".
const (
	FormFile      = "file"
	FormTitle     = "title"
	FormClientId  = "clientId"
	FormProjectId = "projectId"
)

// HeaderChecksum carries the checksum of downloaded contents.
const HeaderChecksum = "X-Leadline-Checksum"
