// Package report renders issue creation results for the console.
package report

import (
	"fmt"
	"io"

	"github.com/clintrovert/issueseed/pkg/types"
)

// Render writes one line per created issue and two lines per failure:
// the failure notice followed by the error body GitHub returned.
func Render(w io.Writer, results []types.Result) error {
	for _, r := range results {
		if err := renderOne(w, r); err != nil {
			return err
		}
	}
	return nil
}

func renderOne(w io.Writer, r types.Result) error {
	if r.Created() {
		_, err := fmt.Fprintf(w, "✅ Created: %s\n", r.Record.Title)
		return err
	}

	if _, err := fmt.Fprintf(w, "❌ Failed: %s - %d\n", r.Record.Title, r.StatusCode); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%s\n", r.ErrorPayload())
	return err
}
