package upload

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/cheggaaa/pb/v3"
	krst "github.com/opst/leadline/cmd/leadline/rest"
	"github.com/opst/leadline/cmd/leadline/subcommands/common"
	kpath "github.com/opst/leadline/pkg/utils/path"
	"github.com/youta-t/flarc"
)

type Flag struct {
	Title   string `flag:"title" help:"Title of the document. Default: the file name."`
	Client  string `flag:"client" metavar:"CLIENT_ID" help:"Client the document is about."`
	Project string `flag:"project" metavar:"PROJECT_ID" help:"Project the document is about."`
}

const ARG_FILE = "FILE"

type Option struct {
	progress io.Writer
}

// WithProgressOutput sets where the progress bar is drawn. Default: stderr.
func WithProgressOutput(w io.Writer) func(*Option) *Option {
	return func(o *Option) *Option {
		o.progress = w
		return o
	}
}

func New(options ...func(*Option) *Option) (flarc.Command, error) {
	option := &Option{progress: os.Stderr}
	for _, o := range options {
		option = o(option)
	}

	return flarc.NewCommand(
		"Upload a document.",
		Flag{},
		flarc.Args{
			{
				Name: ARG_FILE, Required: true,
				Help: "Path to the file to be uploaded.",
			},
		},
		common.NewTask(Task(option.progress)),
		flarc.WithDescription(`
Upload a file as a document, and print the registered document.

Documents uploaded by interns are pending until an admin approves their review.

Example
-------

	{{ .Command }} --client client-1 --title "signed contract" ./contract.pdf
`),
	)
}

func Task(progress io.Writer) common.Task[Flag] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		client krst.Client,
		cl flarc.Commandline[Flag],
		params []any,
	) error {
		path, err := kpath.Resolve(cl.Args()[ARG_FILE][0])
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		stat, err := f.Stat()
		if err != nil {
			return err
		}
		if !stat.Mode().IsRegular() {
			return fmt.Errorf("%w: %s is not a regular file", flarc.ErrUsage, path)
		}

		flags := cl.Flags()
		meta := krst.DocumentUpload{
			Title:     flags.Title,
			FileName:  filepath.Base(path),
			ClientId:  flags.Client,
			ProjectId: flags.Project,
		}
		if meta.Title == "" {
			meta.Title = meta.FileName
		}

		bar := pb.New64(stat.Size())
		bar.Set(pb.Bytes, true)
		bar.Set("prefix", ellipsis(meta.FileName, 40)+":")
		bar.SetWriter(progress)
		if err := bar.Err(); err != nil {
			return err
		}
		bar.Start()
		doc, err := client.UploadDocument(ctx, meta, bar.NewProxyReader(f))
		bar.Finish()
		if err != nil {
			return err
		}

		logger.Printf("uploaded: %s -> document %s (review: %s)", path, doc.Id, doc.ReviewStatus)
		return common.PrintJSON(cl.Stdout(), doc)
	}
}

func ellipsis(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return "[...]" + s[len(s)-length+5:]
}
