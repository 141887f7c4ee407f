package sheets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/encoding/json"

	"ilm-dashboard/internal/ilm"
)

const defaultBaseURL = "https://sheets.googleapis.com"

// apiClient reads worksheet values over the spreadsheet values API with a
// bearer token. Values are requested unformatted so numbers arrive as
// numbers, which the normalizer handles on equal footing with text.
type apiClient struct {
	cfg        Config
	httpClient *http.Client
}

func newAPIClient(cfg Config) *apiClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 90 * time.Second
	}
	return &apiClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type valuesResponse struct {
	Range  string          `json:"range"`
	Values [][]interface{} `json:"values"`
}

type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Fetch retrieves one worksheet and slices it by the shared layout contract.
func (c *apiClient) Fetch(ctx context.Context, worksheet string) (*RawSheet, error) {
	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?valueRenderOption=UNFORMATTED_VALUE",
		c.cfg.BaseURL, url.PathEscape(c.cfg.SpreadsheetID), url.PathEscape(worksheet))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build values request: %w", err)
	}
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	log.Debug().Str("worksheet", worksheet).Msg("Fetching worksheet from values API")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("values request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read values response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.mapAPIError(worksheet, resp.StatusCode, body)
	}

	var vr valuesResponse
	if err := json.Unmarshal(body, &vr); err != nil {
		return nil, fmt.Errorf("%w: decode values response: %v", ErrMalformedFile, err)
	}
	return sliceSheet(worksheet, toCells(vr.Values))
}

// mapAPIError translates API failures into the typed error taxonomy.
func (c *apiClient) mapAPIError(worksheet string, status int, body []byte) error {
	var ae apiErrorResponse
	_ = json.Unmarshal(body, &ae)
	msg := ae.Error.Message
	if msg == "" {
		msg = http.StatusText(status)
	}

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrAuth, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrSpreadsheetNotFound, msg)
	case http.StatusBadRequest:
		// The API reports an unknown worksheet as an unparsable range.
		if strings.Contains(strings.ToLower(msg), "parse range") {
			return fmt.Errorf("%w: %s: %s", ErrWorksheetNotFound, worksheet, msg)
		}
		return fmt.Errorf("%w: %s", ErrMalformedFile, msg)
	default:
		return fmt.Errorf("values API status %d: %s", status, msg)
	}
}

// toCells converts the dynamically typed API matrix into the raw cell union.
func toCells(values [][]interface{}) [][]ilm.Cell {
	rows := make([][]ilm.Cell, len(values))
	for i, raw := range values {
		row := make([]ilm.Cell, len(raw))
		for j, v := range raw {
			switch tv := v.(type) {
			case string:
				row[j] = ilm.TextCell(tv)
			case float64:
				row[j] = ilm.NumberCell(tv)
			case bool:
				if tv {
					row[j] = ilm.NumberCell(1)
				} else {
					row[j] = ilm.NumberCell(0)
				}
			default:
				row[j] = ilm.MissingCell()
			}
		}
		rows[i] = row
	}
	return rows
}

// sliceSheet applies the shared row-offset contract to a full worksheet
// matrix: header labels verbatim from the header row, data below the
// annotation row.
func sliceSheet(worksheet string, rows [][]ilm.Cell) (*RawSheet, error) {
	if len(rows) <= headerRow {
		return nil, fmt.Errorf("%w: worksheet %s has %d rows, header expected at row %d",
			ErrMalformedFile, worksheet, len(rows), headerRow+1)
	}

	header := make([]string, len(rows[headerRow]))
	for i, c := range rows[headerRow] {
		// Labels are matched byte-for-byte downstream; only the cell's text
		// form is taken, never trimmed.
		if c.Kind == ilm.CellText {
			header[i] = c.Text
		} else {
			header[i] = c.String()
		}
	}

	sheet := &RawSheet{Header: header}
	if len(rows) > dataRow {
		sheet.Rows = rows[dataRow:]
	}
	return sheet, nil
}
