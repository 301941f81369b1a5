// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/service"
)

const (
	// MenuTitle heads the action menu.
	MenuTitle = "Menu:"

	// rowFormat lays out one listing row: position, priority, status, description.
	rowFormat = "%3s  %-8s  %-9s  %s\n"
)

// MenuItem is one numbered action in the menu.
type MenuItem struct {
	Key   string
	Label string
}

// FormatMenu writes a blank line, the menu title and one "{KEY}. {LABEL}" line per item.
func FormatMenu(w io.Writer, items []MenuItem) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, MenuTitle)
	for _, item := range items {
		fmt.Fprintf(w, "%s. %s\n", item.Key, item.Label)
	}
}

// FormatTable writes the task listing with a header row.
//
//	No.  Priority  Status     Description
//	---  --------  ---------  -----------
//	  1  Medium    Pending    buy milk
func FormatTable(w io.Writer, entries []service.Entry) {
	fmt.Fprintf(w, rowFormat, "No.", "Priority", "Status", "Description")
	fmt.Fprintf(w, rowFormat, "---", "--------", "---------", "-----------")
	for _, e := range entries {
		FormatEntry(w, e)
	}
}

// FormatEntry writes a single listing row.
func FormatEntry(w io.Writer, e service.Entry) {
	fmt.Fprintf(w, rowFormat,
		fmt.Sprint(e.Position),
		e.Task.Priority.String(),
		Status(e.Task),
		Description(e.Task))
}

// Status returns "Completed" or "Pending".
func Status(t service.Task) string {
	if t.IsCompleted {
		return "Completed"
	}
	return "Pending"
}

// Description normalizes a task description for display.
// - Empty or whitespace-only descriptions become "(untitled)"
// - Newlines are replaced with spaces
func Description(t service.Task) string {
	desc := strings.ReplaceAll(t.Description, "\r", " ")
	desc = strings.ReplaceAll(desc, "\n", " ")

	if strings.TrimSpace(desc) == "" {
		return "(untitled)"
	}
	return desc
}
