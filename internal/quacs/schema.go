package quacs

// Document is the top-level artifact the QuACS UI reads:
// {"courses": [...]}. Every field below is always present in the
// serialized output, possibly as an empty string, empty list, zero or
// null; the transform never omits a key.
type Document struct {
	Courses []Course `json:"courses"`
}

// Course is the canonical course representation all upstream variants
// map into.
type Course struct {
	ID       string    `json:"id"` // "{subject} {number}", trimmed
	Subject  string    `json:"subject"`
	Number   string    `json:"number"` // stringified even when upstream sends a number
	Title    string    `json:"title"`
	Credits  float64   `json:"credits"`
	Sections []Section `json:"sections"`
}

type Section struct {
	Section     string    `json:"section"`
	Instructors []string  `json:"instructors"`
	Meetings    []Meeting `json:"meetings"`
}

// Meeting keeps nullable fields as pointers so absent upstream values
// serialize as JSON null rather than "".
type Meeting struct {
	Days     string  `json:"days"` // e.g. "MWF" or "TuTh"
	Start    *string `json:"start"`
	End      *string `json:"end"`
	Campus   *string `json:"campus"`
	Building *string `json:"building"`
	Room     string  `json:"room"`
	Modality string  `json:"modality"`
}
