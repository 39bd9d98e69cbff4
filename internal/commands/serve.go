package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fuelview/fuelview/internal/web"
)

func newServeCommand(g *globalFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, g, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address; overrides the config")

	return cmd
}

func runServe(ctx context.Context, g *globalFlags, addr string) error {
	s, err := openSession(g, true)
	if err != nil {
		return err
	}
	defer s.close()

	if addr == "" {
		addr = s.cfg.Server.Addr
	}

	handler := web.NewHandler(s.records, s.cfg.SelectorOptions(), s.logger)
	router := web.NewRouter(handler, s.cfg.Server.AllowedOrigins)
	server := web.NewServer(addr, router, s.logger)

	if err := server.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
