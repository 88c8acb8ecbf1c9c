package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"photoGallery/internal/gallery"
)

var downloadCmd = &cobra.Command{
	Use:   "download <album-id>",
	Short: "Download an album as a ZIP archive",
	Long: `Download an album's ZIP archive from the gallery server.
The archive is written to the current directory unless --output is given.

Example:
  gallery-cli download 3f8a2c1d-...
  gallery-cli download 3f8a2c1d-... --output /tmp/wedding.zip`,
	Args: cobra.ExactArgs(1),
	RunE: runDownload,
}

func init() {
	rootCmd.AddCommand(downloadCmd)

	downloadCmd.Flags().StringP("output", "o", "", "Path to write the archive to")
}

func runDownload(cmd *cobra.Command, args []string) error {
	albumID := args[0]
	output := mustGetString(cmd, "output")

	client, err := gallery.New(serverURL)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp("", "gallery-download-*.zip")
	if err != nil {
		return fmt.Errorf("could not create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	name, err := client.DownloadAlbum(cmd.Context(), albumID, tmp)
	if err != nil {
		tmp.Close()
		return fmt.Errorf("failed to download album: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not flush archive: %w", err)
	}

	if output == "" {
		output = filepath.Join(".", name)
	}

	if err := os.Rename(tmp.Name(), output); err != nil {
		// Rename fails across filesystems, fall back to a copy.
		data, readErr := os.ReadFile(tmp.Name())
		if readErr != nil {
			return fmt.Errorf("could not move archive: %w", err)
		}
		if writeErr := os.WriteFile(output, data, 0644); writeErr != nil {
			return fmt.Errorf("could not write archive: %w", writeErr)
		}
	}

	info, err := os.Stat(output)
	if err != nil {
		return fmt.Errorf("could not stat archive: %w", err)
	}

	fmt.Printf("Saved %s (%d bytes)\n", output, info.Size())
	return nil
}
