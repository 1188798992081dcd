package cli

import (
	"context"
	"database/sql"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/jot/internal/app"
	jotcli "github.com/thenoetrevino/jot/internal/cli"
	"github.com/thenoetrevino/jot/internal/database"
	"github.com/thenoetrevino/jot/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance.
// Kept in its own package so service tests can import testutil without a cycle.
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	// no event bus: publishing is covered by the service tests
	appInstance := app.New(database.NewRepository(db))

	return db, appInstance
}

// ExecuteCLICommand runs cmd with args against testApp and returns captured stdout
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	cmd.SetArgs(args)

	// GetCLIFromContext picks the app up from here instead of opening ~/.jot
	ctx := jotcli.WithApp(context.Background(), testApp)
	cmd.SetContext(ctx)

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctx)
	})

	return output, executeErr
}
