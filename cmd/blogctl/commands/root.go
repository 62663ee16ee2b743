package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"kinblog/internal/client"
)

var (
	// Global flags
	serverURL   string
	sessionPath string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "blogctl",
	Short: "Command-line client for the KinBlog API",
	Long: `blogctl drives a KinBlog server from the terminal: register or log in,
browse and search posts, publish and edit your own articles, comment,
and upload a profile picture.

The session (token and user) is kept in a local file and attached to
every authenticated request until you log out.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "Base URL of the KinBlog API")
	rootCmd.PersistentFlags().StringVar(&sessionPath, "session-file", "", "Path of the session file (default: <user config dir>/blogctl/session.json)")
}

// newClient builds an API client with the persisted session loaded.
func newClient() (*client.Client, error) {
	path := sessionPath
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		path = filepath.Join(dir, "blogctl", "session.json")
	}

	store := client.NewSessionStore(path)
	if err := store.Load(); err != nil {
		return nil, err
	}
	return client.New(serverURL, store), nil
}
