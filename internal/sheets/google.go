package sheets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// GoogleSheet is a Worksheet backed by the first tab of a Google
// spreadsheet, accessed through the Sheets API with service account
// credentials.
type GoogleSheet struct {
	svc           *sheets.Service
	spreadsheetID string
	title         string
	sheetID       int64
}

var _ Worksheet = (*GoogleSheet)(nil)

// NewGoogleSheet opens the first worksheet of the given spreadsheet.
func NewGoogleSheet(ctx context.Context, credentialsFile, spreadsheetID string) (*GoogleSheet, error) {
	if strings.TrimSpace(spreadsheetID) == "" {
		return nil, errors.New("spreadsheet id is required")
	}

	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
	if strings.TrimSpace(credentialsFile) != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	meta, err := svc.Spreadsheets.Get(spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	if len(meta.Sheets) == 0 {
		return nil, errors.New("spreadsheet has no worksheets")
	}
	props := meta.Sheets[0].Properties

	return &GoogleSheet{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		title:         props.Title,
		sheetID:       props.SheetId,
	}, nil
}

// Values returns every populated cell of the worksheet as strings.
func (g *GoogleSheet) Values(ctx context.Context) ([][]string, error) {
	resp, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, g.title).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// AppendRow appends one row after the last populated row.
func (g *GoogleSheet) AppendRow(ctx context.Context, row []string) error {
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}
	vr := &sheets.ValueRange{Values: [][]interface{}{cells}}
	_, err := g.svc.Spreadsheets.Values.Append(g.spreadsheetID, g.title, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	return err
}

// DeleteRow removes the worksheet row at the given 1-based index.
func (g *GoogleSheet) DeleteRow(ctx context.Context, index int) error {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    g.sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(index - 1),
					EndIndex:   int64(index),
				},
			},
		}},
	}
	_, err := g.svc.Spreadsheets.BatchUpdate(g.spreadsheetID, req).Context(ctx).Do()
	return err
}

// Clear wipes every value in the worksheet, leaving formatting alone.
func (g *GoogleSheet) Clear(ctx context.Context) error {
	_, err := g.svc.Spreadsheets.Values.Clear(g.spreadsheetID, g.title, &sheets.ClearValuesRequest{}).Context(ctx).Do()
	return err
}
