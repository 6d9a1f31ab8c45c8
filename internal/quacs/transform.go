package quacs

import (
	"strings"

	"schedge-fetch/internal/schedge"
)

// Transform maps raw Schedge course records onto the fixed QuACS shape.
// It is pure and total: malformed or empty input never fails, it just
// produces defaults. Field names vary across Schedge versions, so every
// lookup carries the known fallback keys.
func Transform(raw []schedge.RawCourse) Document {
	out := Document{Courses: make([]Course, 0, len(raw))}

	for _, c := range raw {
		subject := c.Text("subjectCode", "subject")
		number := c.Text("courseNumber", "code", "catalogNumber")

		course := Course{
			ID:       strings.TrimSpace(subject + " " + number),
			Subject:  subject,
			Number:   number,
			Title:    c.Text("name", "title"),
			Credits:  c.Number("credits", "minCredits"),
			Sections: make([]Section, 0),
		}

		for _, s := range c.Records("sections") {
			course.Sections = append(course.Sections, transformSection(s))
		}
		out.Courses = append(out.Courses, course)
	}
	return out
}

func transformSection(s schedge.RawSection) Section {
	sec := Section{
		Section:     s.Text("sectionCode", "code", "registrationNumber"),
		Instructors: make([]string, 0),
		Meetings:    make([]Meeting, 0),
	}

	for _, i := range s.Records("instructors") {
		if name := instructorName(i); name != "" {
			sec.Instructors = append(sec.Instructors, name)
		}
	}

	for _, m := range s.Records("meetings") {
		sec.Meetings = append(sec.Meetings, Meeting{
			Days:     m.Text("days", "pattern"),
			Start:    m.Verbatim("startTime"),
			End:      m.Verbatim("endTime"),
			Campus:   m.TextPtr("campus", "campusName"),
			Building: m.TextPtr("building", "buildingName"),
			Room:     m.Text("room"),
			Modality: m.Text("instructionMode", "mode"),
		})
	}
	return sec
}

// instructorName prefers a direct name field; otherwise it joins the
// first/last split. An empty result means the instructor is dropped.
func instructorName(i schedge.RawRecord) string {
	if name := i.Text("name"); name != "" {
		return name
	}
	return strings.TrimSpace(i.Text("firstName") + " " + i.Text("lastName"))
}
