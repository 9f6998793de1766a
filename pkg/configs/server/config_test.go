package server_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/opst/leadline/pkg/configs/server"
)

func TestUnmarshal(t *testing.T) {
	// 32 bytes of "k"
	key := "a2tra2tra2tra2tra2tra2tra2tra2tra2tra2tra2s="

	t.Run("it reads a full config", func(t *testing.T) {
		conf, err := server.Unmarshal([]byte(`
dburi: postgres://user:pass@db:5432/leadline
port: 9090
auth:
  signKey: ` + key + `
  tokenTTL: 30m
documents:
  root: /var/lib/leadline
metrics:
  public: true
`))
		if err != nil {
			t.Fatal(err)
		}
		if got := conf.DBURI(); got != "postgres://user:pass@db:5432/leadline" {
			t.Errorf("dburi: %s", got)
		}
		if got := conf.Port(); got != 9090 {
			t.Errorf("port: %d", got)
		}
		if got := conf.SignKey(); !bytes.Equal(got, bytes.Repeat([]byte("k"), 32)) {
			t.Errorf("sign key: %q", got)
		}
		if got := conf.TokenTTL(); got != 30*time.Minute {
			t.Errorf("token ttl: %s", got)
		}
		if got := conf.DocumentRoot(); got != "/var/lib/leadline" {
			t.Errorf("document root: %s", got)
		}
		if !conf.PublicMetrics() {
			t.Error("metrics should be public")
		}
	})

	t.Run("it fills defaults", func(t *testing.T) {
		conf, err := server.Unmarshal([]byte(`
dburi: postgres://db/leadline
auth:
  signKey: ` + key + `
documents:
  root: /docs
`))
		if err != nil {
			t.Fatal(err)
		}
		if conf.Port() != server.DefaultPort {
			t.Errorf("port: %d", conf.Port())
		}
		if conf.TokenTTL() != server.DefaultTokenTTL {
			t.Errorf("token ttl: %s", conf.TokenTTL())
		}
		if conf.PublicMetrics() {
			t.Error("metrics should not be public by default")
		}
	})

	for name, content := range map[string]string{
		"without dburi": `
auth: {signKey: ` + key + `}
documents: {root: /docs}
`,
		"with short key": `
dburi: postgres://db/leadline
auth: {signKey: c2hvcnQ=}
documents: {root: /docs}
`,
		"with broken key": `
dburi: postgres://db/leadline
auth: {signKey: "!!!"}
documents: {root: /docs}
`,
		"with negative ttl": `
dburi: postgres://db/leadline
auth: {signKey: ` + key + `, tokenTTL: -1h}
documents: {root: /docs}
`,
		"without document root": `
dburi: postgres://db/leadline
auth: {signKey: ` + key + `}
`,
		"empty": ``,
	} {
		t.Run("it rejects config "+name, func(t *testing.T) {
			_, err := server.Unmarshal([]byte(content))
			if !errors.Is(err, server.ErrInvalidConfig) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
