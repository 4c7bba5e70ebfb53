package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"verba/internal/fileingest"
)

var ingestCategory string

var ingestCmd = &cobra.Command{
	Use:   "ingest [dir]",
	Short: "Enqueue post files from a directory for background ingestion",
	Long: `Walks the directory for .txt, .md, and .html files and enqueues one
background ingest task per file. Run "verba worker" to consume the queue.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		category := ingestCategory
		if category == "" {
			category = appInstance.Config.Ingest.DefaultCategory
		}

		files, err := fileingest.DiscoverPostFiles(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to discover post files in %s: %w", args[0], err)
		}
		if len(files) == 0 {
			fmt.Println("No post files found.")
			return nil
		}

		var enqueued, failed int
		for _, f := range files {
			taskID, err := appInstance.JobClient.EnqueuePostIngest(cmd.Context(), f.Path, category)
			if err != nil {
				fmt.Printf("  - ERROR enqueuing %s: %v\n", f.Path, err)
				failed++
				continue
			}
			fmt.Printf("  - Enqueued %s (task %s)\n", f.Path, taskID)
			enqueued++
		}

		fmt.Printf("Enqueued %d ingest tasks (%d failed).\n", enqueued, failed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
	ingestCmd.Flags().StringVarP(&ingestCategory, "category", "c", "", "Category for ingested posts (defaults to ingest.default_category)")
}
