package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile",
}

var profileUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a profile picture",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		user, err := c.UploadAvatar(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("profile picture updated: %s\n", user.ProfilePicture)
		return nil
	},
}

func init() {
	profileCmd.AddCommand(profileUploadCmd)
	rootCmd.AddCommand(profileCmd)
}
