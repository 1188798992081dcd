package note

import (
	"github.com/spf13/cobra"
)

// ListCmd returns the note list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes, newest first",
		RunE:  runList,
	}

	cmd.Flags().String("user", "", "Owner of the notes (defaults to the current user)")
	addOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	formatter := formatterFor(cmd)
	userID, _ := cmd.Flags().GetString("user")

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	if userID == "" {
		userID = cliInstance.UserID
	}

	notes, err := cliInstance.App.NoteService.ListNotes(cmd.Context(), userID)
	if err != nil {
		return report(formatter, err)
	}
	return formatter.Notes(notes)
}
