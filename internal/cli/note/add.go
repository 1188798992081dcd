package note

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jot/internal/cli"
	noteservice "github.com/thenoetrevino/jot/internal/services/note"
	"github.com/thenoetrevino/jot/internal/tui/huhforms"
)

// AddCmd returns the note add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new note",
		Long: `Add a new note. The title must be 3-15 characters and the
description 8-200 characters.

When a flag is missing and stdin is a terminal, an interactive form asks
for the remaining fields.

Examples:
  # Simple note (human-readable output)
  jot note add --title="Groceries" --description="Buy milk and eggs"

  # Description from stdin
  echo "Buy milk and eggs" | jot note add --title="Groceries" --description=-

  # Quiet mode for bash capture
  NOTE_ID=$(jot note add --title="Groceries" --description="Buy milk and eggs" --quiet)
`,
		RunE: runAdd,
	}

	cmd.Flags().String("title", "", "Note title")
	cmd.Flags().String("description", "", "Note description (use - for stdin)")
	cmd.Flags().String("user", "", "Owner of the note (defaults to the current user)")
	addOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := formatterFor(cmd)

	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	userID, _ := cmd.Flags().GetString("user")

	// Handle description from stdin
	if description == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return report(formatter, fmt.Errorf("%w: %v", cli.ErrInput, err))
		}
		description = strings.TrimRight(string(data), "\n")
	}

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	if title == "" || description == "" {
		if !interactive(cmd) || formatter.JSON || formatter.Quiet {
			return report(formatter, fmt.Errorf("%w: --title and --description are required", cli.ErrUsage))
		}
		form := huhforms.CreateNoteForm(&title, &description).
			WithTheme(huhforms.CreateJotTheme(cliInstance.Config.ColorScheme))
		if err := form.Run(); err != nil {
			return promptFailed(formatter, err)
		}
	}

	if userID == "" {
		userID = cliInstance.UserID
	}

	note, err := cliInstance.App.NoteService.CreateNote(ctx, noteservice.CreateNoteRequest{
		UserID:      userID,
		Title:       title,
		Description: description,
	})
	if err != nil {
		return report(formatter, err)
	}

	return formatter.Success(note)
}
