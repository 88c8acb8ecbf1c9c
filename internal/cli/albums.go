package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"photoGallery/internal/gallery"
)

var albumsCmd = &cobra.Command{
	Use:   "albums",
	Short: "List all albums on the gallery server",
	Long:  `Retrieves and displays all albums from the gallery server.`,
	RunE:  runAlbums,
}

func init() {
	rootCmd.AddCommand(albumsCmd)
}

func runAlbums(cmd *cobra.Command, args []string) error {
	client, err := gallery.New(serverURL)
	if err != nil {
		return err
	}

	albums, err := client.ListAlbums(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list albums: %w", err)
	}

	if len(albums) == 0 {
		fmt.Println("No albums found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPHOTOS\tLIGHT/MAX\tUPDATED")
	fmt.Fprintln(w, "--\t----\t------\t---------\t-------")

	for i := range albums {
		structure := "no"
		if albums[i].HasLightMax {
			structure = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			albums[i].ID, albums[i].Name, len(albums[i].Photos), structure,
			albums[i].UpdatedAt.Format("2006-01-02 15:04"))
	}

	w.Flush()

	fmt.Printf("\nTotal: %d albums\n", len(albums))

	return nil
}
