package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"kinblog/internal/client"
	"kinblog/internal/models"
)

var (
	listPage   int
	listLimit  int
	listSearch string

	postTitle    string
	postContent  string
	postCategory string
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Browse and manage posts",
}

var postsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List posts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		list, err := c.ListPosts(cmd.Context(), listPage, listLimit, listSearch)
		if err != nil {
			return err
		}
		for i := range list.Posts {
			printPostLine(&list.Posts[i])
		}
		fmt.Printf("page %d of %d (%d posts total)\n",
			list.Pagination.Page, list.Pagination.Pages, list.Pagination.Total)
		return nil
	},
}

var postsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		post, err := c.GetPost(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printPostLine(post)
		fmt.Println()
		fmt.Println(post.Content)
		return nil
	},
}

var postsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Publish a new post",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		post, err := c.CreatePost(cmd.Context(), postTitle, postContent, postCategory)
		if err != nil {
			return err
		}
		fmt.Printf("created post %s\n", post.ID)
		return nil
	},
}

var postsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Edit a post you authored",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		// only flags the user actually set go into the patch
		var patch client.PostPatch
		if cmd.Flags().Changed("title") {
			patch.Title = &postTitle
		}
		if cmd.Flags().Changed("content") {
			patch.Content = &postContent
		}
		if cmd.Flags().Changed("category") {
			patch.Category = &postCategory
		}
		post, err := c.UpdatePost(cmd.Context(), args[0], patch)
		if err != nil {
			return err
		}
		fmt.Printf("updated post %s\n", post.ID)
		return nil
	},
}

var postsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a post you authored",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		if err := c.DeletePost(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("post removed")
		return nil
	},
}

func printPostLine(p *models.Post) {
	category := p.Category
	if category == "" {
		category = "-"
	}
	fmt.Printf("%s  [%s]  %s  by %s  (%s)\n",
		p.ID, category, p.Title, p.Author.Name, p.CreatedAt.Format("2006-01-02 15:04"))
}

func init() {
	postsListCmd.Flags().IntVar(&listPage, "page", 0, "Page number (server default 1)")
	postsListCmd.Flags().IntVar(&listLimit, "limit", 0, "Posts per page (server default 6)")
	postsListCmd.Flags().StringVar(&listSearch, "search", "", "Case-insensitive title/content filter")

	for _, cmd := range []*cobra.Command{postsCreateCmd, postsUpdateCmd} {
		cmd.Flags().StringVar(&postTitle, "title", "", "Post title (min 3 characters)")
		cmd.Flags().StringVar(&postContent, "content", "", "Post body")
		cmd.Flags().StringVar(&postCategory, "category", "", "Optional category")
	}
	_ = postsCreateCmd.MarkFlagRequired("title")
	_ = postsCreateCmd.MarkFlagRequired("content")

	postsCmd.AddCommand(postsListCmd, postsGetCmd, postsCreateCmd, postsUpdateCmd, postsDeleteCmd)
	rootCmd.AddCommand(postsCmd)
}
