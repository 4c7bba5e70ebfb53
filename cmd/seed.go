package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"verba/internal/models"
)

// seedPosts is the sample data set used during development; the tests use
// the same six posts.
var seedPosts = []models.Post{
	{Category: "tech", Content: "SQLAlchemy is great for Python ORM."},
	{Category: "news", Content: "FastAPI provides amazing speed."},
	{Category: "tech", Content: "Async Python with asyncio is powerful."},
	{Category: "tech", Content: "Another post about Python."},
	{Category: "life", Content: "Simple life hacks."},
	{Category: "tech", Content: "More Python content here."},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert sample posts for development",
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		for i := range seedPosts {
			post := seedPosts[i]
			if err := appInstance.PostStore.CreatePost(cmd.Context(), &post); err != nil {
				return fmt.Errorf("failed to seed post %d: %w", i+1, err)
			}
			fmt.Printf("Seeded post %d (category: %s)\n", post.ID, post.Category)
		}
		fmt.Printf("Seeded %d posts.\n", len(seedPosts))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
