package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"photoGallery/internal/gallery"
)

// chunkSize caps how many files go into one multipart request so large
// shoots don't produce gigabyte-sized requests.
const chunkSize = 30

var uploadCmd = &cobra.Command{
	Use:   "upload <album-name> <folder-path>",
	Short: "Upload photos from a folder to an album",
	Long: `Upload photos from a folder to an album on the gallery server.
The album is created when it does not exist yet.

If the folder contains light/ and max/ subdirectories, files are uploaded
as a paired batch: light files become web photos and max files are stored
as print originals. Files are matched across the two by name.

Supported formats: jpg, jpeg, png, gif, webp

Example:
  gallery-cli upload "Wedding" /path/to/photos
  gallery-cli upload "Wedding" /path/to/shoot   # with shoot/light and shoot/max`,
	Args: cobra.ExactArgs(2),
	RunE: runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

// isImageFile checks if a file has a supported image extension
func isImageFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	supported := map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
		".webp": true,
	}
	return supported[ext]
}

// listImages returns image files directly inside dir, sorted by ReadDir order.
func listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read folder %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if isImageFile(entry.Name()) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// collectParts builds the upload parts for folderPath. When the folder has
// light/ and max/ subdirectories, parts carry the variant prefix in their
// names and are ordered so every chunk contains both variants.
func collectParts(folderPath string) ([]gallery.UploadPart, []string, error) {
	lightDir := filepath.Join(folderPath, "light")
	maxDir := filepath.Join(folderPath, "max")

	if !dirExists(lightDir) || !dirExists(maxDir) {
		files, err := listImages(folderPath)
		if err != nil {
			return nil, nil, err
		}

		var parts []gallery.UploadPart
		for _, f := range files {
			parts = append(parts, gallery.UploadPart{Name: filepath.Base(f), Path: f})
		}
		return parts, nil, nil
	}

	lightFiles, err := listImages(lightDir)
	if err != nil {
		return nil, nil, err
	}
	maxFiles, err := listImages(maxDir)
	if err != nil {
		return nil, nil, err
	}

	maxByName := make(map[string]string, len(maxFiles))
	for _, f := range maxFiles {
		maxByName[filepath.Base(f)] = f
	}

	// Interleave matched light/max pairs so the server sees a paired
	// batch in every chunk. Files without a counterpart are left behind.
	var parts []gallery.UploadPart
	var unmatched []string
	for _, lf := range lightFiles {
		name := filepath.Base(lf)
		mf, ok := maxByName[name]
		if !ok {
			unmatched = append(unmatched, "light/"+name)
			continue
		}
		delete(maxByName, name)
		parts = append(parts,
			gallery.UploadPart{Name: "light/" + name, Path: lf},
			gallery.UploadPart{Name: "max/" + name, Path: mf},
		)
	}
	for name := range maxByName {
		unmatched = append(unmatched, "max/"+name)
	}

	return parts, unmatched, nil
}

func uploadBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Uploading"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files"),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

func runUpload(cmd *cobra.Command, args []string) error {
	albumName := args[0]
	folderPath := args[1]

	if !dirExists(folderPath) {
		return fmt.Errorf("%s is not a directory", folderPath)
	}

	parts, unmatched, err := collectParts(folderPath)
	if err != nil {
		return err
	}

	for _, name := range unmatched {
		fmt.Printf("Skipping %s: no light/max counterpart\n", name)
	}

	if len(parts) == 0 {
		fmt.Println("No image files found in the specified folder.")
		return nil
	}

	fmt.Printf("Found %d file(s) to upload to album '%s'\n\n", len(parts), albumName)

	client, err := gallery.New(serverURL)
	if err != nil {
		return err
	}

	bar := uploadBar(len(parts))

	var skipped []string
	for start := 0; start < len(parts); start += chunkSize {
		end := start + chunkSize
		if end > len(parts) {
			end = len(parts)
		}
		chunk := parts[start:end]

		res, err := client.BulkUpload(cmd.Context(), albumName, chunk)
		if err != nil {
			fmt.Println()
			return fmt.Errorf("upload failed: %w", err)
		}

		skipped = append(skipped, res.Skipped...)
		bar.Add(len(chunk))
	}
	fmt.Println()

	for _, name := range skipped {
		fmt.Printf("Rejected by server: %s\n", name)
	}

	fmt.Printf("\nDone! Uploaded %d file(s) to album '%s'\n", len(parts)-len(skipped), albumName)
	return nil
}
