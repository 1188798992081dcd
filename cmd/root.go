package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jot/internal/cli"
	"github.com/thenoetrevino/jot/internal/cli/note"
	"github.com/thenoetrevino/jot/internal/launcher"
)

var rootCmd = &cobra.Command{
	Use:   "jot",
	Short: "Jot - terminal notes",
	Long: `Jot is a terminal note-taking app. Run it without arguments to open
the notes list, where 'n' opens the add note dialog.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch()
	},
}

func init() {
	rootCmd.AddCommand(note.NoteCmd())
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	})
}

// Execute runs the root command and prints errors no command has shown yet
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !cli.IsReported(err) {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}
