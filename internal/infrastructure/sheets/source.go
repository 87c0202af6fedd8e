package sheets

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/m-orlov/sheet-order-service/internal/domain"
)

// CSVExportSource fetches the published CSV export of a Google Sheet. Rows
// come back in sheet order; the header row is included and discarded by the
// reconciliation cycle, not here.
type CSVExportSource struct {
	client    *http.Client
	exportURL string
}

func NewCSVExportSource(exportURL string, timeout time.Duration) *CSVExportSource {
	return &CSVExportSource{
		client: &http.Client{
			Timeout: timeout,
		},
		exportURL: exportURL,
	}
}

func (s *CSVExportSource) FetchRows(ctx context.Context) ([]domain.RawRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.exportURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: sheet export returned status %d", domain.ErrSourceUnavailable, resp.StatusCode)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: parse sheet csv: %v", domain.ErrSourceUnavailable, err)
	}

	rows := make([]domain.RawRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, domain.RawRow(record))
	}
	return rows, nil
}
