package documents

import (
	"github.com/opst/leadline/pkg/api/types/documents"
	"github.com/opst/leadline/pkg/domain"
	"github.com/opst/leadline/pkg/utils/rfctime"
)

// Compose makes the document for responses. Storage keys are not exposed.
func Compose(d domain.Document) documents.Document {
	return documents.Document{
		Id:           d.Id,
		Owner:        d.Owner,
		ClientId:     d.ClientId,
		ProjectId:    d.ProjectId,
		Title:        d.Title,
		FileName:     d.FileName,
		ContentType:  d.ContentType,
		Size:         d.Size,
		Checksum:     d.Checksum,
		ReviewStatus: string(d.ReviewStatus),
		CreatedAt:    rfctime.RFC3339(d.CreatedAt),
	}
}
