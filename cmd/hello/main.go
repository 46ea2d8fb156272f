package main

import (
	"context"
	"go-practice/internal/hello"
	"go-practice/internal/logger"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		addr     string
		delay    time.Duration
		logLevel string
	)

	cmd := &cobra.Command{
		Use:          "hello",
		Short:        "Serve a static hello page over raw TCP",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.Setup(logLevel, true)

			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return err
			}
			logger.Info().Str("addr", ln.Addr().String()).Msg("hello server listening")

			srv := hello.New()
			srv.SleepDelay = delay
			return srv.Serve(cmd.Context(), ln)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", hello.DefaultAddr, "listen address")
	cmd.Flags().DurationVar(&delay, "sleep", hello.DefaultSleepDelay, "delay applied to GET /sleep")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level")
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logger.Error().Err(err).Msg("hello server failed")
		stop()
		os.Exit(1)
	}
}
