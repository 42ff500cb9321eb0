package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// catalog serve
func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Aliases: []string{"run"},
		Short:   "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a := newApplication()
			if err := a.Boot(ctx); err != nil {
				return err
			}
			defer a.Close()

			return a.Serve(ctx)
		},
	}
}

// catalog route:list
func routeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route:list",
		Short: "List every registered route",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return newApplication().PrintRoutes(cmd.OutOrStdout())
		},
	}
}

// catalog seed
func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo products into an empty catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			a := newApplication()
			if err := a.Boot(ctx); err != nil {
				return err
			}
			defer a.Close()

			return a.Seed(ctx, cmd.OutOrStdout())
		},
	}
}
