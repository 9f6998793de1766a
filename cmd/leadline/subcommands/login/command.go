package login

import (
	"bufio"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/opst/leadline/cmd/leadline/config/profiles"
	krst "github.com/opst/leadline/cmd/leadline/rest"
	"github.com/opst/leadline/cmd/leadline/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flag struct {
	ApiRoot string `flag:"api-root" metavar:"URL" help:"Root URL of the leadline API (e.g. https://leadline.example.com/api). Required for a new profile."`
	CACert  string `flag:"cacert" metavar:"path/to/ca.pem" help:"CA certificate to trust for the server. Optional."`
}

const ARG_EMAIL = "EMAIL"

type Option struct {
	newClient func(*profiles.Profile) (krst.Client, error)
}

func WithClient(newClient func(*profiles.Profile) (krst.Client, error)) func(*Option) *Option {
	return func(o *Option) *Option {
		o.newClient = newClient
		return o
	}
}

func New(options ...func(*Option) *Option) (flarc.Command, error) {
	option := &Option{newClient: krst.NewClient}
	for _, o := range options {
		option = o(option)
	}

	return flarc.NewCommand(
		"Log in to leadline and save the token in the profile.",
		Flag{},
		flarc.Args{
			{
				Name: ARG_EMAIL, Required: true,
				Help: "Email address of your account.",
			},
		},
		common.NewTaskWithCommonFlag(Task(option.newClient, time.Now)),
		flarc.WithDescription(`
Log in to leadline. The password is read from the first line of stdin.

The token is saved in the profile (selected with --profile) of the profile store.
If the profile does not exist, it is created with --api-root.

Example
-------

	{{ .Command }} --api-root https://leadline.example.com/api jane@example.com

To use another profile:

	{{ .Command }} --profile staging --api-root http://localhost:8080/api jane@example.com
`),
	)
}

func Task(
	newClient func(*profiles.Profile) (krst.Client, error),
	now func() time.Time,
) common.TaskWithCommonFlag[Flag] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		commonFlag common.CommonFlags,
		cl flarc.Commandline[Flag],
		params []any,
	) error {
		store, err := profiles.LoadProfileStore(commonFlag.ProfileStore)
		if errors.Is(err, profiles.ErrProfileStoreNotFound) {
			store = profiles.ProfileStore{}
		} else if err != nil {
			return err
		}

		prof := &profiles.Profile{}
		if p, ok := store[commonFlag.Profile]; ok {
			*prof = *p
		}

		flags := cl.Flags()
		if flags.ApiRoot != "" {
			prof.ApiRoot = flags.ApiRoot
		}
		if prof.ApiRoot == "" {
			return fmt.Errorf("%w: --api-root is required for the new profile '%s'", flarc.ErrUsage, commonFlag.Profile)
		}
		if flags.CACert != "" {
			pem, err := os.ReadFile(flags.CACert)
			if err != nil {
				return fmt.Errorf("can not read CA certificate: %w", err)
			}
			prof.Cert.CA = base64.StdEncoding.EncodeToString(pem)
		}
		prof.Token = ""
		prof.ExpiresAt = time.Time{}

		password, err := readPassword(cl.Stdin())
		if err != nil {
			return err
		}

		// the client keeps its own copy. prof is updated with the new token below.
		forLogin := *prof
		client, err := newClient(&forLogin)
		if err != nil {
			return fmt.Errorf("%w: check --api-root and --cacert", err)
		}

		email := cl.Args()[ARG_EMAIL][0]
		resp, err := client.Login(ctx, email, password)
		if err != nil {
			return err
		}

		prof.Token = resp.Token
		prof.ExpiresAt = resp.ExpiresAt.Time()
		store[commonFlag.Profile] = prof
		if err := store.Save(commonFlag.ProfileStore); err != nil {
			return fmt.Errorf("logged in, but the profile can not be saved: %w", err)
		}

		logger.Printf(
			"logged in as %s (%s). the login expires in %s.",
			resp.Profile.Email, resp.Profile.Role,
			prof.ExpiresAt.Sub(now()).Round(time.Minute),
		)
		return nil
	}
}

func readPassword(stdin io.Reader) (string, error) {
	if stdin == nil {
		return "", errors.New("password is not given from stdin")
	}
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", fmt.Errorf("%w: password is empty", flarc.ErrUsage)
	}
	return password, nil
}
