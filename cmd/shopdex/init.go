package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taoshops/shopdex/internal/config"
	"github.com/taoshops/shopdex/internal/home"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the home directory and a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}
		if err := config.WriteDefault(h.ConfigPath()); err != nil {
			return err
		}
		fmt.Printf("Initialized %s\n", h.Path())
		fmt.Printf("Edit %s to point pdf_path at the partner-shop PDF.\n", h.ConfigPath())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
