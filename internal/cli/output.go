package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/thenoetrevino/jot/internal/cli/styles"
	"github.com/thenoetrevino/jot/internal/models"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			fmt.Printf("%d\n", idGetter.GetID())
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	return f.prettyPrint(data)
}

// Notes outputs a list of notes: one ID per line in quiet mode
func (f *OutputFormatter) Notes(notes []*models.Note) error {
	if f.Quiet {
		for _, n := range notes {
			fmt.Printf("%d\n", n.GetID())
		}
		return nil
	}
	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"notes":   notes,
		})
	}

	if len(notes) == 0 {
		fmt.Println("No notes found")
		return nil
	}
	for _, n := range notes {
		fmt.Printf("%s %s %s\n",
			styles.SubtitleStyle.Render(fmt.Sprintf("#%d", n.GetID())),
			styles.TitleStyle.Render(n.Title),
			styles.SubtitleStyle.Render(n.CreatedAt.Local().Format("2006-01-02 15:04")))
	}
	return nil
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(os.Stderr, "%s %s\n", styles.ErrorStyle.Render("Error:"), message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "Suggestion: %s\n", suggestion)
	}
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	switch v := data.(type) {
	case *models.Note:
		body := styles.TitleStyle.Render(v.Title) + "\n" +
			styles.SubtitleStyle.Render(fmt.Sprintf("#%d · %s · %s", v.GetID(), v.UserID, v.CreatedAt.Local().Format("2006-01-02 15:04"))) + "\n\n" +
			styles.ValueStyle.Render(v.Description)
		fmt.Println(styles.CardStyle.Render(body))
	case string:
		fmt.Println(styles.SuccessStyle.Render(v))
	default:
		fmt.Printf("%+v\n", data)
	}
	return nil
}
