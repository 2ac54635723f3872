package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ── lenient JSON scalars ──
//
// Browser forms post numbers as strings and old backups carry timestamps
// without a zone, so payload scalars accept either shape.

// FlexInt decodes a JSON number or numeric string. "" decodes to 0.
type FlexInt int

func (n *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := ParseFlexInt(s)
		if err != nil {
			return err
		}
		*n = FlexInt(v)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("expected a number, got %s", b)
	}
	*n = FlexInt(int(f))
	return nil
}

// Int returns the value, 0 for nil.
func (n *FlexInt) Int() int {
	if n == nil {
		return 0
	}
	return int(*n)
}

// ParseFlexInt parses integer text, accepting a decimal form such as "5.0"
// (spreadsheets store counts as floats). Blank text is 0.
func ParseFlexInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return int(f), nil
}

// FlexString decodes a JSON string, or a number kept as its literal text.
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return fmt.Errorf("expected a string, got %s", b)
	}
	*s = FlexString(num.String())
	return nil
}

// Ptr converts to the model's nullable text, nil stays nil.
func (s *FlexString) Ptr() *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

// flexTimeLayouts are tried in order; the last one matches timestamps
// written without a zone, read as UTC.
var flexTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// FlexTime decodes a timestamp in any of flexTimeLayouts. Unparseable text
// decodes to the zero time, which the store replaces with now.
type FlexTime struct {
	time.Time
}

func (t *FlexTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range flexTimeLayouts {
		if v, err := time.Parse(layout, s); err == nil {
			t.Time = v.UTC()
			return nil
		}
	}
	t.Time = time.Time{}
	return nil
}

// Value returns the time, zero for nil.
func (t *FlexTime) Value() time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.Time
}
