package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"schedge-fetch/internal/quacs"
)

// One row per meeting (sections without meetings still get one row).
// Keep header order EXACT; downstream spreadsheets key on it.
var sectionsHeader = []string{
	"COURSE_ID",
	"SUBJECT",
	"NUMBER",
	"TITLE",
	"CREDITS",
	"SECTION",
	"INSTRUCTORS",
	"DAYS",
	"START",
	"END",
	"CAMPUS",
	"BUILDING",
	"ROOM",
	"MODALITY",
}

// WriteSectionsCSV writes a flattened course/section/meeting table.
func WriteSectionsCSV(w io.Writer, doc quacs.Document) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(sectionsHeader); err != nil {
		return err
	}

	for _, c := range doc.Courses {
		for _, s := range c.Sections {
			if len(s.Meetings) == 0 {
				if err := cw.Write(sectionRow(c, s, quacs.Meeting{})); err != nil {
					return err
				}
				continue
			}
			for _, m := range s.Meetings {
				if err := cw.Write(sectionRow(c, s, m)); err != nil {
					return err
				}
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSectionsCSVFile is the path convenience over WriteSectionsCSV.
func WriteSectionsCSVFile(path string, doc quacs.Document) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: mkdir %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}

	if err := WriteSectionsCSV(f, doc); err != nil {
		f.Close()
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", path, err)
	}
	return nil
}

func sectionRow(c quacs.Course, s quacs.Section, m quacs.Meeting) []string {
	credits := ""
	if c.Credits > 0 {
		credits = strconv.FormatFloat(c.Credits, 'f', -1, 64)
	}

	// avoid commas inside a cell
	instructors := strings.Join(s.Instructors, " | ")

	return []string{
		c.ID,              // COURSE_ID
		c.Subject,         // SUBJECT
		c.Number,          // NUMBER
		c.Title,           // TITLE
		credits,           // CREDITS
		s.Section,         // SECTION
		instructors,       // INSTRUCTORS
		m.Days,            // DAYS
		deref(m.Start),    // START
		deref(m.End),      // END
		deref(m.Campus),   // CAMPUS
		deref(m.Building), // BUILDING
		m.Room,            // ROOM
		m.Modality,        // MODALITY
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
