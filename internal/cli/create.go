package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"photoGallery/internal/gallery"
)

var createCmd = &cobra.Command{
	Use:   "create <album-name>",
	Short: "Create a new album",
	Long: `Create a new empty album on the gallery server.

Example:
  gallery-cli create "Summer Vacation 2026"`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

var renameCmd = &cobra.Command{
	Use:   "rename <album-id> <new-name>",
	Short: "Rename an album",
	Args:  cobra.ExactArgs(2),
	RunE:  runRename,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <album-id>",
	Short: "Delete an album and all of its files",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(deleteCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	client, err := gallery.New(serverURL)
	if err != nil {
		return err
	}

	album, err := client.CreateAlbum(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to create album: %w", err)
	}

	fmt.Printf("Created album: %s\n", album.Name)
	fmt.Printf("ID: %s\n", album.ID)

	return nil
}

func runRename(cmd *cobra.Command, args []string) error {
	client, err := gallery.New(serverURL)
	if err != nil {
		return err
	}

	album, err := client.RenameAlbum(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("failed to rename album: %w", err)
	}

	fmt.Printf("Renamed album %s to %q\n", album.ID, album.Name)

	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	client, err := gallery.New(serverURL)
	if err != nil {
		return err
	}

	if err := client.DeleteAlbum(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete album: %w", err)
	}

	fmt.Printf("Deleted album %s\n", args[0])

	return nil
}
