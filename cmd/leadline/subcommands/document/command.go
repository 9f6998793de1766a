package document

import (
	document_download "github.com/opst/leadline/cmd/leadline/subcommands/document/download"
	document_upload "github.com/opst/leadline/cmd/leadline/subcommands/document/upload"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	upload, err := document_upload.New()
	if err != nil {
		return nil, err
	}
	download, err := document_download.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Upload and download documents.",
		struct{}{},
		flarc.WithSubcommand("upload", upload),
		flarc.WithSubcommand("download", download),
	)
}
