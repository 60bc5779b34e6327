package sheets

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"jobtrack/internal/model"
)

// Header is the exact first row the mirror maintains in the worksheet.
var Header = []string{
	"User Email", "Job Link", "Company Name", "Job Role", "Job Location", "Status",
	"Recruiter Name", "Recruiter Email", "Recruiter Phone", "Days Since Created",
	"Comments", "Created At",
}

// Mirror keeps the worksheet in step with the local application store.
// Append and Delete never fail: every outcome, success or not, is folded
// into the returned status message so callers can report it without
// letting a sheet problem break the local operation.
type Mirror interface {
	Append(ctx context.Context, app *model.JobApplication) string
	Delete(ctx context.Context, userEmail, jobLink string) string
	Reset(ctx context.Context) error
}

type mirror struct {
	ws  Worksheet
	now func() time.Time
}

// NewMirror creates a mirror over the given worksheet.
func NewMirror(ws Worksheet) Mirror {
	return &mirror{ws: ws, now: time.Now}
}

// Append writes one application row, making sure the header row is in
// place first.
func (m *mirror) Append(ctx context.Context, app *model.JobApplication) string {
	if err := m.ensureHeader(ctx); err != nil {
		return fmt.Sprintf("Failed to append job to Google Sheets: %v", err)
	}

	days := daysBetween(app.CreatedAt, m.now().UTC())
	row := []string{
		app.UserEmail,
		app.JobLink,
		app.CompanyName,
		app.JobRole,
		app.JobLocation,
		app.Status,
		app.RecruiterName,
		app.RecruiterEmail,
		app.RecruiterPhone,
		strconv.Itoa(days),
		app.Comments,
		app.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if err := m.ws.AppendRow(ctx, row); err != nil {
		return fmt.Sprintf("Failed to append job to Google Sheets: %v", err)
	}
	return "Job appended to Google Sheets."
}

// Delete removes every row whose User Email and Job Link cells both match,
// scanning below the header and deleting bottom-up so earlier deletions do
// not shift the remaining matches.
func (m *mirror) Delete(ctx context.Context, userEmail, jobLink string) string {
	values, err := m.ws.Values(ctx)
	if err != nil {
		return fmt.Sprintf("Failed to delete from Google Sheets: %v", err)
	}
	if len(values) <= 1 {
		return "No rows to delete in Google Sheet."
	}

	emailCol := columnIndex(values[0], "User Email")
	linkCol := columnIndex(values[0], "Job Link")
	if emailCol == 0 || linkCol == 0 {
		return "Required columns not found in Google Sheet."
	}
	widest := emailCol
	if linkCol > widest {
		widest = linkCol
	}

	var matches []int
	for i, row := range values[1:] {
		if len(row) < widest {
			continue
		}
		if row[emailCol-1] == userEmail && row[linkCol-1] == jobLink {
			matches = append(matches, i+2)
		}
	}
	if len(matches) == 0 {
		return "No matching row found in Google Sheet."
	}

	for i := len(matches) - 1; i >= 0; i-- {
		if err := m.ws.DeleteRow(ctx, matches[i]); err != nil {
			return fmt.Sprintf("Failed to delete from Google Sheets: %v", err)
		}
	}
	return "Deleted from Google Sheet."
}

// Reset wipes the worksheet and writes a fresh header row. Unlike Append
// and Delete this propagates errors, since it only runs from the full
// reset entry points where the caller decides what a failure means.
func (m *mirror) Reset(ctx context.Context) error {
	if err := m.ws.Clear(ctx); err != nil {
		return err
	}
	return m.ws.AppendRow(ctx, Header)
}

// ensureHeader makes the first row usable before an append: an empty sheet
// gets the header appended, a sheet whose first row disagrees with Header
// is cleared and rewritten. Extra trailing columns are tolerated.
func (m *mirror) ensureHeader(ctx context.Context) error {
	values, err := m.ws.Values(ctx)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return m.ws.AppendRow(ctx, Header)
	}
	if headerMatches(values[0]) {
		return nil
	}
	if err := m.ws.Clear(ctx); err != nil {
		return err
	}
	return m.ws.AppendRow(ctx, Header)
}

// headerMatches compares the first twelve cells against Header, trimming
// whitespace on both sides of each comparison.
func headerMatches(first []string) bool {
	if len(first) < len(Header) {
		return false
	}
	for i, want := range Header {
		if strings.TrimSpace(first[i]) != strings.TrimSpace(want) {
			return false
		}
	}
	return true
}

// columnIndex returns the 1-based position of name in the header row, or 0
// when absent. The match is exact; cells are not trimmed here.
func columnIndex(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i + 1
		}
	}
	return 0
}

// daysBetween is the whole number of days from created to now, truncated.
func daysBetween(created, now time.Time) int {
	return int(now.Sub(created).Hours() / 24)
}
