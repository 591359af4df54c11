package serve

import (
	"context"
	"flag"
	"time"

	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/martinjakubec/fxproxy/cmd/env"
	"github.com/martinjakubec/fxproxy/server/config"
)

// serveCfg wraps the serve configuration
type serveCfg struct {
	config *config.Config

	configPath string

	apiURL  string
	apiKey  string
	apiTier string

	prewarm         string
	prewarmInterval time.Duration
}

// NewServeCmd creates the serve subcommand
func NewServeCmd() *ffcli.Command {
	cfg := &serveCfg{
		config: config.DefaultConfig(),
	}

	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfg.registerFlags(fs)

	cmd := &ffcli.Command{
		Name:       "serve",
		ShortUsage: "serve <subcommand> [flags]",
		LongHelp:   "Serves the fxproxy backend",
		FlagSet:    fs,
		Exec: func(_ context.Context, _ []string) error {
			return flag.ErrHelp
		},
		Options: []ff.Option{
			// Allow using ENV variables
			ff.WithEnvVars(),
			ff.WithEnvVarPrefix(env.Prefix),
		},
	}

	cmd.Subcommands = []*ffcli.Command{
		newServeSQLCmd(cfg),
		newServeMemoryCmd(cfg),
	}

	return cmd
}

func (c *serveCfg) registerFlags(fs *flag.FlagSet) {
	fs.StringVar(
		&c.config.ListenAddress,
		"listen",
		config.DefaultListenAddress,
		"the IP:PORT URL for the server",
	)

	fs.StringVar(
		&c.configPath,
		"config",
		"",
		"the path to the server TOML configuration, if any",
	)

	fs.StringVar(
		&c.apiURL,
		"api-url",
		"",
		"the base URL of the upstream rate provider",
	)

	fs.StringVar(
		&c.apiKey,
		"api-key",
		"",
		"the API key for the upstream rate provider",
	)

	fs.StringVar(
		&c.apiTier,
		"api-tier",
		"free",
		"the upstream access tier; \"free\" enables the synthetic history fallback",
	)

	fs.StringVar(
		&c.prewarm,
		"prewarm",
		"",
		"comma-separated base currencies to keep today's snapshot warm for",
	)

	fs.DurationVar(
		&c.prewarmInterval,
		"prewarm-interval",
		time.Hour,
		"the interval at which prewarm jobs re-run",
	)
}
