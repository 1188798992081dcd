package note

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jot/internal/cli"
	"github.com/thenoetrevino/jot/internal/types"
)

// ShowCmd returns the note show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a single note",
		RunE:  runShow,
	}

	cmd.Flags().Int("id", 0, "Note ID (required)")
	addOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	formatter := formatterFor(cmd)
	noteID, _ := cmd.Flags().GetInt("id")
	if !cmd.Flags().Changed("id") {
		return report(formatter, fmt.Errorf("%w: --id is required", cli.ErrUsage))
	}

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	note, err := cliInstance.App.NoteService.GetNote(cmd.Context(), types.NoteIDFromInt(noteID))
	if err != nil {
		return report(formatter, err)
	}
	return formatter.Success(note)
}
