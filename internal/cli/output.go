package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/calumh/ghostsnake/internal/model"
)

// UserResult is the printable view of an account
type UserResult struct {
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryResult is the printable view of one user's score history
type HistoryResult struct {
	Username string              `json:"username"`
	Best     int                 `json:"best"`
	Entries  []*model.ScoreEntry `json:"entries"`
}

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case UserResult:
		fmt.Printf("Username: %s\n", v.Username)
		fmt.Printf("Admin:    %v\n", v.IsAdmin)
		fmt.Printf("Created:  %s\n", v.CreatedAt.Format(time.RFC3339))
	case HistoryResult:
		fmt.Printf("%s  Best: %d\n", v.Username, v.Best)
		for _, e := range v.Entries {
			fmt.Printf("  %s  %d\n", e.RecordedAt.Format(time.RFC3339), e.Score)
		}
		if len(v.Entries) == 0 {
			fmt.Println("  no games recorded")
		}
	case []model.RankedScore:
		if len(v) == 0 {
			fmt.Println("No scores recorded yet")
			return
		}
		fmt.Println("Top Scores")
		for _, r := range v {
			fmt.Printf("%3d. %-20s %5d  %s\n",
				r.Rank, r.Entry.Username, r.Entry.Score,
				r.Entry.RecordedAt.Format("2006-01-02 15:04"))
		}
	default:
		fmt.Printf("%+v\n", v)
	}
}
