package schedge

import "strconv"

// RawRecord is one schema-less record as returned by the API. Schedge's
// field names vary across deployments (subjectCode vs subject,
// startTime vs beginTime, ...), so records are kept as plain maps and
// read through the accessor methods below, each of which takes an
// ordered list of candidate keys.
type RawRecord map[string]any

// RawCourse, RawSection and RawMeeting are all the same record shape at
// different nesting levels.
type (
	RawCourse  = RawRecord
	RawSection = RawRecord
	RawMeeting = RawRecord
)

// Text returns the value of the first candidate key that holds a
// non-empty scalar, rendered as a string. Numbers are formatted the way
// they would print (101 -> "101", 101.5 -> "101.5"), so numeric course
// numbers coerce cleanly. Empty strings and numeric zeros fall through
// to the next candidate, like an or-chain of defaults; the string "0"
// does not.
func (r RawRecord) Text(keys ...string) string {
	for _, k := range keys {
		if s, ok := scalarText(r[k]); ok && s != "" {
			return s
		}
	}
	return ""
}

// TextPtr is Text for nullable fields: nil when no candidate key holds
// a non-empty scalar. Like an or-chain, a final candidate that is
// present but empty still yields "" rather than nil.
func (r RawRecord) TextPtr(keys ...string) *string {
	for _, k := range keys {
		if s, ok := scalarText(r[k]); ok && s != "" {
			return &s
		}
	}
	if len(keys) > 0 {
		if s, ok := r[keys[len(keys)-1]].(string); ok {
			return &s
		}
	}
	return nil
}

// Verbatim returns the value under a single key as-is when it is a
// string, nil when absent or not a string. Unlike TextPtr it keeps a
// present-but-empty string.
func (r RawRecord) Verbatim(key string) *string {
	if s, ok := r[key].(string); ok {
		return &s
	}
	return nil
}

// Number returns the first candidate key holding a non-zero number.
func (r RawRecord) Number(keys ...string) float64 {
	for _, k := range keys {
		if f, ok := scalarNumber(r[k]); ok && f != 0 {
			return f
		}
	}
	return 0
}

// Records returns the list of nested records under key. Absent keys and
// wrong-shaped values read as empty; non-record list elements are
// skipped. This keeps the transform total over arbitrary payloads.
func (r RawRecord) Records(key string) []RawRecord {
	list, ok := r[key].([]any)
	if !ok {
		return nil
	}
	out := make([]RawRecord, 0, len(list))
	for _, el := range list {
		if m, ok := el.(map[string]any); ok {
			out = append(out, RawRecord(m))
		}
	}
	return out
}

func scalarText(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		if t == 0 {
			return "", false
		}
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		if t == 0 {
			return "", false
		}
		return strconv.Itoa(t), true
	case int64:
		if t == 0 {
			return "", false
		}
		return strconv.FormatInt(t, 10), true
	default:
		return "", false
	}
}

func scalarNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return f, true
		}
		return 0, false
	default:
		return 0, false
	}
}
