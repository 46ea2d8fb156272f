package main

import (
	"context"
	"go-practice/internal/hackernews"
	"go-practice/internal/logger"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

type options struct {
	count       int
	concurrency int
	out         string
	baseURL     string
	timeout     time.Duration
	retries     int
	logLevel    string
}

func newRootCmd() *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:          "hnfetch",
		Short:        "Save the current Hacker News top stories as JSON",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.Setup(opts.logLevel, true)
			return run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.count, "count", "n", hackernews.DefaultCount, "number of top stories to fetch")
	flags.IntVarP(&opts.concurrency, "concurrency", "c", hackernews.DefaultConcurrency, "maximum requests in flight")
	flags.StringVarP(&opts.out, "out", "o", "data.json", "output file")
	flags.StringVar(&opts.baseURL, "base-url", hackernews.DefaultBaseURL, "API base URL")
	flags.DurationVar(&opts.timeout, "timeout", 10*time.Second, "per-request timeout")
	flags.IntVar(&opts.retries, "retries", 2, "retries for network errors and 5xx responses")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level")
	return cmd
}

func run(ctx context.Context, opts options) error {
	client := hackernews.NewClient(hackernews.ClientConfig{
		BaseURL: opts.baseURL,
		Timeout: opts.timeout,
		Retries: opts.retries,
	})

	res, err := hackernews.NewFetcher(client, opts.concurrency).Fetch(ctx, opts.count)
	if err != nil {
		return err
	}
	if err := hackernews.Save(opts.out, res.Stories); err != nil {
		return err
	}

	logger.Info().
		Int("stories", len(res.Stories)).
		Int("failed", len(res.Failures)).
		Msgf("Data saved to %s", opts.out)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logger.Error().Err(err).Msg("hnfetch failed")
		stop()
		os.Exit(1)
	}
}
