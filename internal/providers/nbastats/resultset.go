package nbastats

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/XavierBriggs/fortuna/services/player-report-service/pkg/contracts"
)

// response is the envelope every stats.nba.com endpoint returns
type response struct {
	Resource   string      `json:"resource"`
	ResultSets []resultSet `json:"resultSets"`
}

// resultSet is one named table: column headers plus positional rows
type resultSet struct {
	Name    string          `json:"name"`
	Headers []string        `json:"headers"`
	RowSet  [][]interface{} `json:"rowSet"`
}

// row is one result set row keyed by column header
type row map[string]interface{}

// set returns the result set called name
func (r *response) set(name string) (*resultSet, error) {
	for i := range r.ResultSets {
		if r.ResultSets[i].Name == name {
			return &r.ResultSets[i], nil
		}
	}
	return nil, fmt.Errorf("%s: result set %q missing: %w", r.Resource, name, contracts.ErrEmptyResultSet)
}

// rows zips headers with each row; rows with the wrong width are malformed
func (s *resultSet) rows() ([]row, error) {
	out := make([]row, 0, len(s.RowSet))
	for i, values := range s.RowSet {
		if len(values) != len(s.Headers) {
			return nil, fmt.Errorf("%s row %d: %d values for %d headers: %w",
				s.Name, i, len(values), len(s.Headers), contracts.ErrEmptyResultSet)
		}
		r := make(row, len(values))
		for j, h := range s.Headers {
			r[strings.ToUpper(h)] = values[j]
		}
		out = append(out, r)
	}
	return out, nil
}

// firstRow returns the only row a single-row table must carry
func (s *resultSet) firstRow() (row, error) {
	rows, err := s.rows()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s has no rows: %w", s.Name, contracts.ErrEmptyResultSet)
	}
	return rows[0], nil
}

// String returns a column as text; numbers are formatted without decimals when integral
func (r row) String(key string) string {
	switch val := r[key].(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(val)
	}
}

// Float returns a column as float64, 0 for null
func (r row) Float(key string) float64 {
	return parseFloat(r[key])
}

// Int returns a column as int, 0 for null
func (r row) Int(key string) int {
	return parseInt(r[key])
}

// Has reports whether key is present and not null
func (r row) Has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

// parseFloat parses a float from interface{}
func parseFloat(v interface{}) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(val), 64)
		return f
	case int:
		return float64(val)
	default:
		return 0.0
	}
}

// parseInt parses an int from interface{}
func parseInt(v interface{}) int {
	switch val := v.(type) {
	case float64:
		return int(val)
	case string:
		i, _ := strconv.Atoi(strings.TrimSpace(val))
		return i
	case int:
		return val
	default:
		return 0
	}
}
