package note

import (
	"errors"
	"fmt"
	"log"
	"os"

	"charm.land/huh/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jot/internal/cli"
	noteservice "github.com/thenoetrevino/jot/internal/services/note"
)

// NoteCmd returns the note parent command
func NoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage notes",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// addOutputFlags registers the flags every note command takes
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

func formatterFor(cmd *cobra.Command) *cli.OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// report prints err through the formatter and hands it back for the exit code
func report(f *cli.OutputFormatter, err error) error {
	code, suggestion := describe(err)
	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		log.Printf("Error formatting error message: %v", fmtErr)
	}
	return cli.MarkReported(err)
}

// promptFailed handles an error from an interactive form. Backing out of the
// form with esc or ctrl+c is a cancellation and exits 0.
func promptFailed(f *cli.OutputFormatter, err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return f.Success("Cancelled")
	}
	return report(f, fmt.Errorf("%w: %v", cli.ErrInput, err))
}

func describe(err error) (code, suggestion string) {
	switch {
	case errors.Is(err, noteservice.ErrNoteNotFound):
		return "NOTE_NOT_FOUND", "Use 'jot note list' to see your notes"
	case errors.Is(err, noteservice.ErrInvalidTitle):
		return "INVALID_TITLE", ""
	case errors.Is(err, noteservice.ErrInvalidDescription):
		return "INVALID_DESCRIPTION", ""
	case errors.Is(err, noteservice.ErrEmptyUserID):
		return "INVALID_USER", "Pass --user or set JOT_USER"
	case errors.Is(err, noteservice.ErrInvalidNoteID):
		return "INVALID_NOTE_ID", "Note IDs are positive integers"
	case errors.Is(err, cli.ErrUsage):
		return "USAGE_ERROR", "Run with --help for usage"
	case errors.Is(err, cli.ErrInput):
		return "STDIN_READ_ERROR", ""
	default:
		return "INTERNAL_ERROR", ""
	}
}

// openCLI resolves the CLI for cmd, reporting failures through f
func openCLI(cmd *cobra.Command, f *cli.OutputFormatter) (*cli.CLI, func(), error) {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		if fmtErr := f.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return nil, nil, cli.MarkReported(err)
	}
	closeFn := func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}
	return cliInstance, closeFn, nil
}

// interactive reports whether cmd reads from a terminal, so huh prompts can run
func interactive(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
