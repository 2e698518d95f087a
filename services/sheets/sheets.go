package sheets

import (
	"context"
	"fmt"
	"time"

	"go.hacdias.com/folio/core"
	"go.hacdias.com/folio/log"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	appendTimeout    = 10 * time.Second
	valueInputOption = "USER_ENTERED"
)

// Sheets appends leads as rows to a Google spreadsheet.
type Sheets struct {
	log           *zap.SugaredLogger
	service       *sheets.Service
	spreadsheetID string
	rng           string
}

func NewSheets(ctx context.Context, c *core.Sheets, opts ...option.ClientOption) (*Sheets, error) {
	if len(opts) == 0 {
		creds, err := c.Credentials()
		if err != nil {
			return nil, fmt.Errorf("could not read sheets credentials: %w", err)
		}

		opts = []option.ClientOption{
			option.WithCredentialsJSON(creds),
			option.WithScopes(sheets.SpreadsheetsScope),
		}
	}

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &Sheets{
		log:           log.S().Named("sheets"),
		service:       service,
		spreadsheetID: c.SpreadsheetID,
		rng:           c.Range,
	}, nil
}

// AppendLead appends a single row with the lead's name, email, message and
// submission time.
func (s *Sheets) AppendLead(ctx context.Context, lead *core.Lead) error {
	ctx, cancel := context.WithTimeout(ctx, appendTimeout)
	defer cancel()

	row := make([]any, 0, len(core.LeadHeader))
	for _, field := range lead.Record() {
		row = append(row, field)
	}

	res, err := s.service.Spreadsheets.Values.
		Append(s.spreadsheetID, s.rng, &sheets.ValueRange{
			Values: [][]any{row},
		}).
		ValueInputOption(valueInputOption).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("could not append lead to spreadsheet: %w", err)
	}

	if res.Updates != nil {
		s.log.Debugw("lead appended", "range", res.Updates.UpdatedRange)
	}

	return nil
}
