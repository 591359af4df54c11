package serve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/martinjakubec/fxproxy/fill"
	"github.com/martinjakubec/fxproxy/metrics"
	"github.com/martinjakubec/fxproxy/provider/currencies"
	"github.com/martinjakubec/fxproxy/provider/exchangerate"
	"github.com/martinjakubec/fxproxy/refresh"
	"github.com/martinjakubec/fxproxy/server"
	"github.com/martinjakubec/fxproxy/server/config"
	"github.com/martinjakubec/fxproxy/storage"
	"github.com/martinjakubec/fxproxy/storage/types"
)

const upstreamTimeout = time.Second * 15

var errMissingAPIURL = errors.New("missing upstream API URL")

// loadConfig reads the server TOML configuration, if a path is set
func (c *serveCfg) loadConfig() error {
	if c.configPath == "" {
		return nil
	}

	serverCfg, err := config.Read(c.configPath)
	if err != nil {
		return fmt.Errorf("unable to read server config, %w", err)
	}

	c.config = serverCfg

	return nil
}

// run wires the cache-fill service and the HTTP surface over the given
// store, and serves until interrupted
func (c *serveCfg) run(ctx context.Context, logger *slog.Logger, store storage.Storage) error {
	if c.apiURL == "" {
		return errMissingAPIURL
	}

	// Create the upstream client
	client := exchangerate.NewClient(c.apiURL, c.apiKey, upstreamTimeout)

	// Create the cache-fill service
	svc := fill.NewService(
		store,
		client,
		fill.WithLogger(logger),
		fill.WithMetrics(metrics.NewMetrics()),
		fill.WithRestricted(c.apiTier == "free"),
	)

	// Create the server instance
	s, err := server.New(
		svc,
		server.WithLogger(logger),
		server.WithConfig(c.config),
	)
	if err != nil {
		return fmt.Errorf("unable to create server, %w", err)
	}

	runCtx, cancelFn := signal.NotifyContext(
		ctx,
		os.Interrupt,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancelFn()

	group, gCtx := errgroup.WithContext(runCtx)

	// Start the HTTP server
	group.Go(func() error {
		return s.Serve(gCtx)
	})

	// Start the prewarm scheduler, if any currencies are configured
	if c.prewarm != "" {
		scheduler := refresh.New(refresh.WithLogger(logger))

		jobs, err := prewarmJobs(svc, c.prewarm, c.prewarmInterval)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			if err := scheduler.Register(job); err != nil {
				return fmt.Errorf("unable to register refresh job: %w", err)
			}
		}

		group.Go(func() error {
			return scheduler.Start(gCtx)
		})
	}

	return group.Wait()
}

// latestRefreshJob keeps today's snapshot warm for a single base currency
type latestRefreshJob struct {
	svc      *fill.Service
	currency types.Currency
	interval time.Duration
}

func (j *latestRefreshJob) Name() string {
	return "latest-" + j.currency.String()
}

func (j *latestRefreshJob) Interval() time.Duration {
	return j.interval
}

func (j *latestRefreshJob) Run(ctx context.Context) error {
	_, err := j.svc.Latest(ctx, j.currency)

	return err
}

// prewarmJobs builds one refresh job per configured base currency
func prewarmJobs(
	svc *fill.Service,
	list string,
	interval time.Duration,
) ([]refresh.Job, error) {
	codes := strings.Split(list, ",")

	jobs := make([]refresh.Job, 0, len(codes))

	for _, code := range codes {
		currency := types.Currency(strings.TrimSpace(code))

		if !currencies.Supported(currency) {
			return nil, fmt.Errorf("unsupported prewarm currency %q", currency)
		}

		jobs = append(jobs, &latestRefreshJob{
			svc:      svc,
			currency: currency,
			interval: interval,
		})
	}

	return jobs, nil
}
