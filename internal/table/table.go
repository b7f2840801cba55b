// Package table implements the generic table engine: a pure transform of
// (rows, search text, sort state, hidden columns) into ordered, filtered,
// projected rows, plus CSV export of the visible result. The engine never
// touches the store; it only derives views.
package table

import (
	"slices"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Column describes one table column for rows of type T. Value extracts
// the cell value; the engine formats, compares, and searches on it.
// Columns take part in search by default; set NoSearch to opt out.
type Column[T any] struct {
	ID       string
	Header   string
	Sortable bool
	NoSearch bool
	Value    func(T) any
}

// Sort is the single-key sort state. A zero Key means unsorted: rows keep
// their filtered order.
type Sort struct {
	Key  string
	Desc bool
}

// Sorted reports whether any sort is active.
func (s Sort) Sorted() bool { return s.Key != "" }

// Toggle advances the tri-state cycle for a column click: unsorted ->
// ascending -> descending -> unsorted. Clicking a different column starts
// a fresh ascending sort.
func (s Sort) Toggle(key string) Sort {
	if s.Key != key {
		return Sort{Key: key}
	}
	if !s.Desc {
		return Sort{Key: key, Desc: true}
	}
	return Sort{}
}

// ToggleSort applies Toggle only when the clicked column is sortable;
// clicks on unsortable or unknown columns leave the state unchanged.
func ToggleSort[T any](cols []Column[T], cur Sort, id string) Sort {
	for _, col := range cols {
		if col.ID == id {
			if !col.Sortable {
				return cur
			}
			return cur.Toggle(id)
		}
	}
	return cur
}

// Visible returns the columns not in the hidden set, preserving order.
// Visibility is independent of search and sort state.
func Visible[T any](cols []Column[T], hidden map[string]bool) []Column[T] {
	out := make([]Column[T], 0, len(cols))
	for _, col := range cols {
		if !hidden[col.ID] {
			out = append(out, col)
		}
	}
	return out
}

// Filter returns the rows where any searchable column's formatted value
// contains the query, case-insensitively. An empty query returns all
// rows.
func Filter[T any](rows []T, cols []Column[T], query string) []T {
	if query == "" {
		return rows
	}
	needle := strings.ToLower(query)
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		for _, col := range cols {
			if col.NoSearch {
				continue
			}
			if strings.Contains(strings.ToLower(Format(col.Value(row))), needle) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

// Apply runs the full pipeline: filter by query, then sort by the active
// sort key. The input slice is never reordered; the result is a fresh
// slice. Hidden columns do not affect which rows come back, only which
// cells render (see Visible and CSV).
func Apply[T any](rows []T, cols []Column[T], query string, sort Sort) []T {
	filtered := Filter(rows, cols, query)
	if !sort.Sorted() {
		if len(filtered) == len(rows) {
			// Filter returned the input slice; copy before handing out.
			return append([]T(nil), filtered...)
		}
		return filtered
	}

	var key *Column[T]
	for i := range cols {
		if cols[i].ID == sort.Key {
			key = &cols[i]
			break
		}
	}
	if key == nil {
		return append([]T(nil), filtered...)
	}

	out := append([]T(nil), filtered...)
	// Stable: rows with equal keys keep their filtered order.
	slices.SortStableFunc(out, func(a, b T) int {
		c := Compare(key.Value(a), key.Value(b))
		if sort.Desc {
			return -c
		}
		return c
	})
	return out
}

// Format renders a cell value the way it is searched, compared as a
// fallback, and exported. Slices of strings join on commas, matching how
// the values read in an exported file.
func Format(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []string:
		return strings.Join(t, ",")
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return cast.ToString(t)
	}
}

// Compare orders two cell values: numeric compare when both sides are
// numbers, lexicographic for strings, chronological for times. Columns
// mixing value types fall back to comparing formatted strings and get no
// ordering guarantee; that is a documented limitation, not a bug.
func Compare(a, b any) int {
	if af, aok := asFloat(a); aok {
		if bf, bok := asFloat(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}
	if as, aok := a.(string); aok {
		if bs, bok := b.(string); bok {
			return strings.Compare(as, bs)
		}
	}
	if at, aok := a.(time.Time); aok {
		if bt, bok := b.(time.Time); bok {
			return at.Compare(bt)
		}
	}
	return strings.Compare(Format(a), Format(b))
}

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case float32:
		return float64(t), true
	case float64:
		return t, true
	default:
		return 0, false
	}
}
