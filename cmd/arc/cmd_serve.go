package main

import (
	"fmt"
	"net/http"

	"github.com/dhamidi/arc/ui"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web playground",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.Serve.Addr
			}

			server, err := ui.NewServer(a.cfg.Grammar)
			if err != nil {
				return fmt.Errorf("create server: %w", err)
			}

			commonlog.GetLogger("arc.serve").Noticef("listening on http://%s", addr)
			return http.ListenAndServe(addr, server)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "address to listen on")

	return cmd
}
