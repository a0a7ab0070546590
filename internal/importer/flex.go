package importer

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// flexString decodes a JSON value that may be a string, a list of
// values, or another scalar into a single space-joined string.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = flexString(coalesce(v))
	return nil
}

func coalesce(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []any:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			parts = append(parts, coalesce(e))
		}
		return strings.Join(parts, " ")
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// flexAmount decodes a numeric amount. Missing, null, or non-numeric
// values decode to zero rather than failing the whole file.
type flexAmount struct {
	value decimal.Decimal
}

func (f *flexAmount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	d, err := decimal.NewFromString(s)
	if err != nil {
		f.value = decimal.Zero
		return nil
	}
	f.value = d
	return nil
}

// Decimal returns the decoded amount.
func (f flexAmount) Decimal() decimal.Decimal {
	return f.value
}
