package csvfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"go.hacdias.com/folio/core"
)

// CSVFile appends leads to a local CSV file. Every field is quoted and inner
// quotes are doubled. The header is written when the file is created.
type CSVFile struct {
	mu   sync.Mutex
	fs   afero.Fs
	path string
}

func NewCSVFile(fs afero.Fs, path string) *CSVFile {
	return &CSVFile{
		fs:   fs,
		path: path,
	}
}

func (c *CSVFile) AppendLead(ctx context.Context, lead *core.Lead) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	exists, err := afero.Exists(c.fs, c.path)
	if err != nil {
		return err
	}

	var sb strings.Builder
	if !exists {
		err = c.fs.MkdirAll(filepath.Dir(c.path), 0o755)
		if err != nil {
			return err
		}

		sb.WriteString(Line(core.LeadHeader))
	}
	sb.WriteString(Line(lead.Record()))

	f, err := c.fs.OpenFile(c.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	_, err = f.WriteString(sb.String())
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("could not append lead: %w", err)
	}

	return f.Close()
}

// Line encodes fields as a CSV line terminated by a newline.
func Line(fields []string) string {
	quoted := make([]string, len(fields))
	for i, field := range fields {
		quoted[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",") + "\n"
}
