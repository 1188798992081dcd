package note

import (
	"fmt"

	"charm.land/huh/v2"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jot/internal/cli"
	"github.com/thenoetrevino/jot/internal/tui/huhforms"
	"github.com/thenoetrevino/jot/internal/types"
)

// DeleteCmd returns the note delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a note",
		Long: `Delete a note by ID. Without --force, jot asks for confirmation,
which requires a terminal.`,
		RunE: runDelete,
	}

	cmd.Flags().Int("id", 0, "Note ID (required)")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	addOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := formatterFor(cmd)
	noteID, _ := cmd.Flags().GetInt("id")
	force, _ := cmd.Flags().GetBool("force")
	if !cmd.Flags().Changed("id") {
		return report(formatter, fmt.Errorf("%w: --id is required", cli.ErrUsage))
	}

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	id := types.NoteIDFromInt(noteID)
	note, err := cliInstance.App.NoteService.GetNote(ctx, id)
	if err != nil {
		return report(formatter, err)
	}

	if !force {
		if !interactive(cmd) {
			return report(formatter, fmt.Errorf("%w: pass --force to delete without a terminal", cli.ErrUsage))
		}
		var confirmed bool
		err := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete note %q?", note.Title)).
				Value(&confirmed),
		)).WithTheme(huhforms.CreateJotTheme(cliInstance.Config.ColorScheme)).Run()
		if err != nil {
			return promptFailed(formatter, err)
		}
		if !confirmed {
			return formatter.Success("Cancelled")
		}
	}

	if err := cliInstance.App.NoteService.DeleteNote(ctx, id); err != nil {
		return report(formatter, err)
	}

	if formatter.Quiet {
		return formatter.Success(note)
	}
	if formatter.JSON {
		return formatter.Success(map[string]any{"deleted": note.GetID()})
	}
	return formatter.Success(fmt.Sprintf("Deleted note #%d %s", note.GetID(), note.Title))
}
