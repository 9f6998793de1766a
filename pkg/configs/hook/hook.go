package config

import (
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the content of the hook file given to loops.
type Config struct {
	// called after appointment requests change.
	Appointment WebHook `yaml:"appointment-hooks,omitempty"`
}

// WebHook is a set of endpoints which receive events by POST.
type WebHook struct {
	After []*url.URL
}

func (wh *WebHook) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		After []string `yaml:"after"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	after := make([]*url.URL, 0, len(raw.After))
	for _, u := range raw.After {
		parsed, err := url.Parse(u)
		if err != nil {
			return fmt.Errorf("hook %q: %w", u, err)
		}
		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			return fmt.Errorf("hook %q: scheme should be http or https", u)
		}
		after = append(after, parsed)
	}
	wh.After = after
	return nil
}

// Load reads the hook file. An empty file configures no hooks.
func Load(filename string) (Config, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{}
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}
