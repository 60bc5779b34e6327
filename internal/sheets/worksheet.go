package sheets

import "context"

// Worksheet is the minimal surface of a single spreadsheet tab that the
// mirror needs. Row indexes are 1-based, matching how spreadsheets number
// their rows.
type Worksheet interface {
	Values(ctx context.Context) ([][]string, error)
	AppendRow(ctx context.Context, row []string) error
	DeleteRow(ctx context.Context, index int) error
	Clear(ctx context.Context) error
}

// Disabled returns a Worksheet whose every operation fails with err. It
// stands in for the real sheet when credentials or configuration are
// missing, so mirror calls degrade to their failure messages instead of
// taking the caller down.
func Disabled(err error) Worksheet {
	return disabledWorksheet{err: err}
}

type disabledWorksheet struct {
	err error
}

func (d disabledWorksheet) Values(context.Context) ([][]string, error) { return nil, d.err }
func (d disabledWorksheet) AppendRow(context.Context, []string) error  { return d.err }
func (d disabledWorksheet) DeleteRow(context.Context, int) error       { return d.err }
func (d disabledWorksheet) Clear(context.Context) error                { return d.err }
