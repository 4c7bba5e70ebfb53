package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"verba/internal/clix"
	"verba/internal/services"
)

var (
	listLimit    int
	listOffset   int
	listCategory string
	listKeywords string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored posts",
	Long: `Displays a page of stored posts with their word counts.
Supports pagination plus category and keyword filtering (keywords are
conjunctive, case-insensitive substring matches).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pagination, err := clix.ParsePagination(cmd.Flags())
		if err != nil {
			return err
		}
		keywords, err := clix.ParseKeywords(cmd.Flags())
		if err != nil {
			return err
		}

		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		params := services.ListPostsParams{
			Category: listCategory,
			Keywords: keywords,
			Limit:    pagination.Limit,
			Offset:   pagination.Offset,
		}
		total, posts, err := appInstance.PostService.ListProcessedPosts(cmd.Context(), params)
		if err != nil {
			return fmt.Errorf("failed to list posts: %w", err)
		}

		if len(posts) == 0 {
			fmt.Println("No posts found.")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"ID", "Category", "Words", "Top Words"})
		for _, post := range posts {
			table.Append([]string{
				fmt.Sprintf("%d", post.ID),
				post.Category,
				fmt.Sprintf("%d", totalWords(post.WordFrequency)),
				topWords(post.WordFrequency, 5),
			})
		}
		table.Render()

		color.Green("Showing %d of %d matching posts (offset %d).", len(posts), total, pagination.Offset)
		return nil
	},
}

// totalWords sums the counts in a word-frequency mapping.
func totalWords(freq map[string]int) int {
	total := 0
	for _, n := range freq {
		total += n
	}
	return total
}

// topWords renders the n most frequent words as "word(count)", breaking
// count ties alphabetically.
func topWords(freq map[string]int, n int) string {
	words := make([]string, 0, len(freq))
	for w := range freq {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if freq[words[i]] != freq[words[j]] {
			return freq[words[i]] > freq[words[j]]
		}
		return words[i] < words[j]
	})
	if len(words) > n {
		words = words[:n]
	}
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = fmt.Sprintf("%s(%d)", w, freq[w])
	}
	return strings.Join(parts, " ")
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().IntVarP(&listLimit, "limit", "l", 10, "Number of posts to display per page")
	listCmd.Flags().IntVarP(&listOffset, "offset", "o", 0, "Number of posts to skip (for pagination)")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Filter by exact category")
	listCmd.Flags().StringVarP(&listKeywords, "keywords", "k", "", "Comma-separated keywords (all must match)")
}
