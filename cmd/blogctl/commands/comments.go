package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var commentContent string

var commentsCmd = &cobra.Command{
	Use:   "comments",
	Short: "Read and manage comments",
}

var commentsListCmd = &cobra.Command{
	Use:   "list <post-id>",
	Short: "List a post's comments, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		comments, err := c.ListComments(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		for i := range comments {
			cm := &comments[i]
			fmt.Printf("%s  %s  (%s): %s\n",
				cm.ID, cm.Author.Name, cm.CreatedAt.Format("2006-01-02 15:04"), cm.Content)
		}
		return nil
	},
}

var commentsAddCmd = &cobra.Command{
	Use:   "add <post-id>",
	Short: "Comment on a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		comment, err := c.AddComment(cmd.Context(), args[0], commentContent)
		if err != nil {
			return err
		}
		fmt.Printf("added comment %s\n", comment.ID)
		return nil
	},
}

var commentsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Edit a comment you authored",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		comment, err := c.UpdateComment(cmd.Context(), args[0], commentContent)
		if err != nil {
			return err
		}
		fmt.Printf("updated comment %s\n", comment.ID)
		return nil
	},
}

var commentsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a comment you authored",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		if err := c.DeleteComment(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("comment removed")
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{commentsAddCmd, commentsUpdateCmd} {
		cmd.Flags().StringVar(&commentContent, "content", "", "Comment body")
		_ = cmd.MarkFlagRequired("content")
	}

	commentsCmd.AddCommand(commentsListCmd, commentsAddCmd, commentsUpdateCmd, commentsDeleteCmd)
	rootCmd.AddCommand(commentsCmd)
}
