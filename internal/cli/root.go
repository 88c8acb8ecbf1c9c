// Package cli implements the gallery command line tool built on cobra.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var serverURL string

var rootCmd = &cobra.Command{
	Use:   "gallery-cli",
	Short: "A CLI tool for managing albums on a gallery server",
	Long: `Gallery CLI talks to a running gallery server over its HTTP API.
It can list, create, rename and delete albums, upload photo batches
(including paired light/max trees) and download album archives.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8082", "Base URL of the gallery server")
}
