// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/pdiddy/brand-engine/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Serve exposes the brand workflow over HTTP: project intake, strategy
generation, single-asset generation, and complete-package assembly.
All routes live under /api/.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	orch, st, err := buildOrchestrator(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	srv, err := server.New(orch)
	if err != nil {
		return err
	}

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = engineConfig(cmd).Server.Addr
	}

	log.Printf("brand-engine %s listening on %s", version, addr)
	return http.ListenAndServe(addr, srv.Routes())
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")

	rootCmd.AddCommand(serveCmd)
}
