package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/cheggaaa/pb/v3"
	krst "github.com/opst/leadline/cmd/leadline/rest"
	"github.com/opst/leadline/cmd/leadline/subcommands/common"
	kio "github.com/opst/leadline/pkg/io"
	kpath "github.com/opst/leadline/pkg/utils/path"
	"github.com/youta-t/flarc"
)

const (
	ARG_DOCUMENT_ID = "DOCUMENT_ID"
	ARG_DEST        = "DEST"
)

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
		"Download the content of a document.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_DOCUMENT_ID, Required: true,
				Help: "Id of the document.",
			},
			{
				Name: ARG_DEST, Required: false,
				Help: `
Directory where the file is saved. It is created if missing.
The file is named as it was uploaded.
If you set "-", the content is written to stdout.
Default: current directory ".".
`,
			},
		},
		common.NewTask(Task(option.progress)),
	)
}

const counter pb.ProgressBarTemplate = `{{with string . "prefix"}}{{.}} {{end}}{{counters . }} {{bar . }} {{percent . }}`

func Task(progress io.Writer) common.Task[struct{}] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		client krst.Client,
		cl flarc.Commandline[struct{}],
		params []any,
	) error {
		id := cl.Args()[ARG_DOCUMENT_ID][0]
		dest := "."
		if d := cl.Args()[ARG_DEST]; 0 < len(d) {
			dest = d[0]
		}
		if dest != "-" {
			resolved, err := kpath.Resolve(dest)
			if err != nil {
				return fmt.Errorf("path resolving error for '%s': %w", dest, err)
			}
			dest = resolved
		}

		saved := ""
		err := client.DownloadDocument(ctx, id, func(d krst.Download) error {
			if dest == "-" {
				_, err := io.Copy(cl.Stdout(), d.Body)
				return err
			}

			// never write outside of dest
			name := filepath.Base(filepath.Clean("/" + d.FileName))
			if name == "/" || name == "." {
				name = id
			}
			saved = filepath.Join(dest, name)

			f, err := kio.CreateAll(saved, os.FileMode(0644), os.FileMode(0755))
			if err != nil {
				return err
			}
			defer f.Close()

			bar := pb.New64(d.Size).SetTemplate(counter)
			bar.Set(pb.Bytes, true)
			bar.Set("prefix", fmt.Sprintf("%s:", name))
			bar.SetWriter(progress)
			bar.Start()
			defer bar.Finish()

			_, err = io.Copy(bar.NewProxyWriter(f), d.Body)
			return err
		})
		if errors.Is(err, krst.ErrChecksumUnmatch) {
			return fmt.Errorf("[WARN] document is saved, but it may be corrupted: %w", err)
		}
		if err != nil {
			return err
		}
		if saved != "" {
			logger.Printf("document %s is saved at %s", id, saved)
		}
		return nil
	}
}
