package main

import (
	"fmt"
	"os"

	"github.com/emzola/libraryportal/config"
	"github.com/spf13/cobra"
)

//go:generate swag init --generalInfo main.go --dir ./,../../handler,../../data,../../data/dto --output ../../docs --outputTypes go

// @title        Library Portal API
// @version      1.0.0
// @description  REST API for registering books and borrowers and for borrowing and returning books.
// @BasePath     /
// @securityDefinitions.basic  BasicAuth
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	rootCmd := &cobra.Command{
		Use:           "libraryportal",
		Short:         "Library portal REST API for books, borrowers and loans",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", os.Getenv("CONFIG_PATH"), "Config file path (env CONFIG_PATH)")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP API server",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(configPath)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create the database schema",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMigrate(configPath)
			},
		},
		&cobra.Command{
			Use:   "export",
			Short: "Upload a JSON snapshot of the catalog to S3",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				key, err := runExport(configPath)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), key)
				return nil
			},
		},
		&cobra.Command{
			Use:   "config",
			Short: "Print the effective configuration with secrets masked",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := config.Decode(configPath)
				if err != nil {
					return err
				}
				out, err := cfg.RedactedYAML()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(out)
				return err
			},
		},
	)
	return rootCmd
}
