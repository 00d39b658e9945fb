package monarch

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Record is one monarch from the dataset. Slice order is chronological:
// the last element is the current monarch.
type Record struct {
	ID      int    `json:"id"`
	Name    string `json:"nm"`
	Country string `json:"cty"`
	House   string `json:"hse"`
	Years   string `json:"yrs"`
}

// UnmarshalJSON decodes one dataset entry field by field so a badly typed
// value only blanks that field. Numbers are accepted for the text fields and
// numeric strings for id; anything else unusable decodes to the zero value.
func (r *Record) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var raw struct {
		ID      json.RawMessage `json:"id"`
		Name    json.RawMessage `json:"nm"`
		Country json.RawMessage `json:"cty"`
		House   json.RawMessage `json:"hse"`
		Years   json.RawMessage `json:"yrs"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = Record{
		ID:      intField(raw.ID),
		Name:    textField(raw.Name),
		Country: textField(raw.Country),
		House:   textField(raw.House),
		Years:   textField(raw.Years),
	}
	return nil
}

func textField(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func intField(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, ok := parseYear(s); ok {
			return n
		}
	}
	return 0
}

// FirstName returns the part of Name before the first space, or the whole
// name when it has no space. Returns "" for an empty name.
func (r Record) FirstName() string {
	first, _, _ := strings.Cut(r.Name, " ")
	return first
}

// ParseReignYears returns the length of the reign encoded in yrs.
// currentYear is used as the end year of an ongoing reign ("1952-").
//
// It never fails: unparseable input yields 0. Inconsistent ranges yield a
// negative result, which is returned as-is.
func ParseReignYears(yrs string, currentYear int) int {
	if yrs == "" {
		return 0
	}

	parts := strings.Split(yrs, "-")

	start, ok := parseYear(parts[0])
	if !ok {
		return 0
	}

	// One segment is a single-year reign. A second segment that does not
	// parse (usually empty, as in "1952-") marks the reign as ongoing.
	end := start
	if len(parts) > 1 {
		end = currentYear
		if parsed, ok := parseYear(parts[1]); ok {
			end = parsed
		}
	}
	return end - start
}

// ReignYears is ParseReignYears against the current wall-clock year.
func ReignYears(yrs string) int {
	return ParseReignYears(yrs, time.Now().Year())
}

// parseYear accepts an optionally signed integer surrounded by whitespace.
func parseYear(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}
