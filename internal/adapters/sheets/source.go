// Package sheets implements the RateSource port against the Google
// Sheets values API.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"freight-quotation-service/internal/domain"
	"freight-quotation-service/internal/platform/obs"
)

// Source fetches the vendor rate table from one spreadsheet range and
// writes rows back best-effort.
//
// It coordinates values-grid decoding, header mapping and external API
// calls with retry/backoff. The source is safe for concurrent use.
type Source struct {
	session       *http.Client
	baseURL       string
	apiKey        string
	spreadsheetID string
	readRange     string
	sheetName     string
}

func New(apiKey, spreadsheetID, readRange string) (*Source, error) {
	if apiKey == "" {
		return nil, errors.New("sheets source: api key is empty")
	}
	if spreadsheetID == "" {
		return nil, errors.New("sheets source: spreadsheet id is empty")
	}
	if readRange == "" {
		readRange = "Sheet1"
	}

	sheetName := readRange
	if i := strings.IndexByte(readRange, '!'); i >= 0 {
		sheetName = readRange[:i]
	}

	return &Source{
		session:       &http.Client{Timeout: 10 * time.Second},
		baseURL:       "https://sheets.googleapis.com",
		apiKey:        apiKey,
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
		sheetName:     sheetName,
	}, nil
}

// SetBaseURL overrides the API endpoint. Used for self-hosted proxies
// and in tests against httptest servers.
func (s *Source) SetBaseURL(baseURL string) {
	s.baseURL = strings.TrimRight(baseURL, "/")
}

type valuesResponse struct {
	Values [][]any `json:"values"`
}

// FetchRawRows downloads the configured range and maps the values grid
// onto RawRows keyed by the header row.
func (s *Source) FetchRawRows(ctx context.Context) (_ []domain.RawRow, err error) {
	defer obs.Time(ctx, "sheets.fetch")(&err)

	resp, err := s.doWithRetry(ctx, func() (*http.Request, error) {
		return s.newRequest(ctx, http.MethodGet, s.valuesURL(s.readRange), nil)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch sheet values: %w", err)
	}
	defer resp.Body.Close()

	var vr valuesResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, fmt.Errorf("fetch sheet values: decode response: %w", err)
	}
	if len(vr.Values) < 2 {
		return []domain.RawRow{}, nil
	}

	headers := make([]string, len(vr.Values[0]))
	for i, cell := range vr.Values[0] {
		headers[i] = strings.TrimSpace(cellString(cell))
	}

	rows := make([]domain.RawRow, 0, len(vr.Values)-1)
	for _, cells := range vr.Values[1:] {
		row := make(domain.RawRow, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(cells) {
				row[header] = cells[i]
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// UpdateRow writes one data row back in the sheet's header order.
// rowIndex is zero-based over data rows; the header occupies sheet row 1.
func (s *Source) UpdateRow(ctx context.Context, row domain.RawRow, rowIndex int) (_ bool, err error) {
	defer obs.Time(ctx, "sheets.update")(&err)

	if rowIndex < 0 {
		return false, fmt.Errorf("update sheet row: invalid row index %d", rowIndex)
	}

	headers, err := s.headerRow(ctx)
	if err != nil {
		return false, fmt.Errorf("update sheet row: %w", err)
	}

	values := make([]any, len(headers))
	for i, header := range headers {
		if v, ok := row[header]; ok {
			values[i] = v
		} else {
			values[i] = ""
		}
	}

	payload, err := json.Marshal(map[string]any{"values": [][]any{values}})
	if err != nil {
		return false, fmt.Errorf("update sheet row: encode payload: %w", err)
	}

	target := fmt.Sprintf("%s!A%d", s.sheetName, rowIndex+2)
	resp, err := s.doWithRetry(ctx, func() (*http.Request, error) {
		return s.newRequest(
			ctx,
			http.MethodPut,
			s.valuesURL(target)+"&valueInputOption=RAW",
			bytes.NewReader(payload),
		)
	})
	if err != nil {
		return false, fmt.Errorf("update sheet row %d: %w", rowIndex, err)
	}
	resp.Body.Close()

	return true, nil
}

func (s *Source) headerRow(ctx context.Context) ([]string, error) {
	resp, err := s.doWithRetry(ctx, func() (*http.Request, error) {
		return s.newRequest(ctx, http.MethodGet, s.valuesURL(s.sheetName+"!1:1"), nil)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch header row: %w", err)
	}
	defer resp.Body.Close()

	var vr valuesResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, fmt.Errorf("fetch header row: decode response: %w", err)
	}
	if len(vr.Values) == 0 || len(vr.Values[0]) == 0 {
		return nil, errors.New("fetch header row: sheet has no header")
	}

	headers := make([]string, len(vr.Values[0]))
	for i, cell := range vr.Values[0] {
		headers[i] = strings.TrimSpace(cellString(cell))
	}
	return headers, nil
}

func (s *Source) valuesURL(rng string) string {
	return fmt.Sprintf(
		"%s/v4/spreadsheets/%s/values/%s?key=%s",
		s.baseURL,
		url.PathEscape(s.spreadsheetID),
		url.PathEscape(rng),
		url.QueryEscape(s.apiKey),
	)
}

func cellString(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
