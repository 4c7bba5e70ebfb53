package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"verba/internal/util"
	"verba/internal/wordfreq"
)

var addCategory string

var addCmd = &cobra.Command{
	Use:   "add [content]",
	Short: "Add a new post",
	Long: `Adds a single post from the argument. If the argument names an existing
file its contents are used; otherwise the argument itself is stored as the
post content.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		content := args[0]
		if info, statErr := os.Stat(content); statErr == nil && !info.IsDir() {
			raw, readErr := os.ReadFile(content)
			if readErr != nil {
				return fmt.Errorf("failed to read %s: %w", content, readErr)
			}
			content, err = util.CleanText(raw, args[0])
			if err != nil {
				return err
			}
		}

		post, err := appInstance.PostService.AddPost(cmd.Context(), addCategory, content)
		if err != nil {
			return fmt.Errorf("failed to add post: %w", err)
		}

		fmt.Printf("Post added (ID: %d, category: %s, distinct words: %d).\n",
			post.ID, post.Category, len(wordfreq.Frequencies(post.Content)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "general", "Category label for the post")
}
