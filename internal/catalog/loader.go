// Package catalog loads course and specialization catalogs from CSV or
// JSON exports, builds each entry's combined matching text and applies
// the learning-hours ceiling before anything reaches the index.
package catalog

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ibero-edu/microcred-recommender/internal/schemas"
	"github.com/ibero-edu/microcred-recommender/internal/types"
)

// DefaultMaxHours is the default learning-hours ceiling for course entries.
const DefaultMaxHours = 20

// Course catalog column headers, as exported from the master spreadsheet.
const (
	colName        = "Course Name"
	colPartner     = "University / Industry Partner Name"
	colDifficulty  = "Difficulty Level"
	colHours       = "Avg Total Learning Hours"
	colRating      = "Course Rating"
	colURL         = "Course URL"
	colDescription = "Course Description"
	colSkills      = "Skills Learned"
	colCoreSkills  = "Core Skills"
	colDomain      = "Domain"
	colSubdomain   = "Sub-Domain"
	colLanguage    = "Course Language"
)

// Specialization catalog column headers.
const (
	scolName        = "Specialization Name"
	scolPartners    = "Partners"
	scolNumCourses  = "Number of Courses"
	scolDomain      = "Specialization Primary Domain"
	scolSubdomain   = "Specialization Primary Subdomain"
	scolDescription = "Specialization Description"
	scolDifficulty  = "Difficulty Level"
	scolURL         = "Specialization URL"
	scolType        = "Specialization Type"
)

// ParseError reports a malformed catalog file.
type ParseError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog parse error in %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// LoadCourses reads a course catalog file (.csv or .json) and returns the
// entries at or under maxHours learning hours, in file order, each with
// its combined text built. Rows whose hours cannot be parsed are dropped,
// matching the upstream spreadsheet cleanup.
func LoadCourses(path string, maxHours float64) ([]types.Course, error) {
	if maxHours <= 0 {
		maxHours = DefaultMaxHours
	}

	switch {
	case strings.HasSuffix(strings.ToLower(path), ".json"):
		return loadCoursesJSON(path, maxHours)
	case strings.HasSuffix(strings.ToLower(path), ".csv"):
		return loadCoursesCSV(path, maxHours)
	default:
		return nil, &ParseError{Path: path, Message: "unsupported catalog format (use .csv or .json)"}
	}
}

// LoadSpecializations reads a specialization catalog file (.csv or .json).
func LoadSpecializations(path string) ([]types.Specialization, error) {
	switch {
	case strings.HasSuffix(strings.ToLower(path), ".json"):
		return loadSpecializationsJSON(path)
	case strings.HasSuffix(strings.ToLower(path), ".csv"):
		return loadSpecializationsCSV(path)
	default:
		return nil, &ParseError{Path: path, Message: "unsupported catalog format (use .csv or .json)"}
	}
}

// Stats summarizes a loaded course catalog.
func Stats(courses []types.Course) types.CatalogStats {
	stats := types.CatalogStats{TotalCourses: len(courses)}
	if len(courses) == 0 {
		return stats
	}

	domains := make(map[string]struct{})
	languages := make(map[string]struct{})
	var totalHours float64
	for _, c := range courses {
		totalHours += c.Hours
		if c.Domain != "" {
			domains[c.Domain] = struct{}{}
		}
		if c.Language != "" {
			languages[c.Language] = struct{}{}
		}
	}
	stats.AvgHours = totalHours / float64(len(courses))
	stats.Domains = len(domains)
	stats.Languages = len(languages)
	return stats
}

// CombineCourseText builds the flat matching text for a course entry.
func CombineCourseText(c *types.Course) {
	c.CombinedText = strings.Join([]string{c.Name, c.Description, c.Skills, c.CoreSkills}, " ")
}

// CombineSpecializationText builds the flat matching text for a
// specialization entry.
func CombineSpecializationText(s *types.Specialization) {
	s.CombinedText = s.Name + " " + s.Description
}

func loadCoursesCSV(path string, maxHours float64) ([]types.Course, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	var courses []types.Course
	for _, row := range rows {
		hours, err := strconv.ParseFloat(strings.TrimSpace(header.get(row, colHours)), 64)
		if err != nil {
			continue // unparsable duration: row excluded, like the spreadsheet cleanup
		}
		if hours > maxHours {
			continue
		}

		c := types.Course{
			Name:        header.get(row, colName),
			Partner:     header.get(row, colPartner),
			Description: header.get(row, colDescription),
			Skills:      header.get(row, colSkills),
			CoreSkills:  header.get(row, colCoreSkills),
			Domain:      header.get(row, colDomain),
			Subdomain:   header.get(row, colSubdomain),
			Difficulty:  header.get(row, colDifficulty),
			Language:    header.get(row, colLanguage),
			Hours:       hours,
			URL:         header.get(row, colURL),
		}
		if rating, err := strconv.ParseFloat(strings.TrimSpace(header.get(row, colRating)), 64); err == nil {
			c.Rating = rating
		}
		CombineCourseText(&c)
		courses = append(courses, c)
	}
	return courses, nil
}

func loadSpecializationsCSV(path string) ([]types.Specialization, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	var specs []types.Specialization
	for _, row := range rows {
		s := types.Specialization{
			Name:        header.get(row, scolName),
			Partners:    header.get(row, scolPartners),
			Description: header.get(row, scolDescription),
			Domain:      header.get(row, scolDomain),
			Subdomain:   header.get(row, scolSubdomain),
			Difficulty:  header.get(row, scolDifficulty),
			Type:        header.get(row, scolType),
			URL:         header.get(row, scolURL),
		}
		if n, err := strconv.Atoi(strings.TrimSpace(header.get(row, scolNumCourses))); err == nil {
			s.NumCourses = n
		}
		CombineSpecializationText(&s)
		specs = append(specs, s)
	}
	return specs, nil
}

func loadCoursesJSON(path string, maxHours float64) ([]types.Course, error) {
	if err := validateAgainstSchema("schemas/courses.schema.json", path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Message: "cannot read file", Cause: err}
	}

	var raw []types.Course
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Path: path, Message: "invalid JSON", Cause: err}
	}

	courses := make([]types.Course, 0, len(raw))
	for _, c := range raw {
		if c.Hours > maxHours {
			continue
		}
		CombineCourseText(&c)
		courses = append(courses, c)
	}
	return courses, nil
}

func loadSpecializationsJSON(path string) ([]types.Specialization, error) {
	if err := validateAgainstSchema("schemas/specializations.schema.json", path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Message: "cannot read file", Cause: err}
	}

	var specs []types.Specialization
	if err := json.Unmarshal(data, &specs); err != nil {
		return nil, &ParseError{Path: path, Message: "invalid JSON", Cause: err}
	}
	for i := range specs {
		CombineSpecializationText(&specs[i])
	}
	return specs, nil
}

// validateAgainstSchema validates a JSON catalog against its schema when
// the schema file can be resolved; a missing schema skips validation.
func validateAgainstSchema(schemaRel, jsonPath string) error {
	schemaPath := schemas.ResolveSchemaPath(schemaRel)
	if schemaPath == "" {
		return nil
	}
	if err := schemas.ValidateJSON(schemaPath, jsonPath); err != nil {
		return &ParseError{Path: jsonPath, Message: "schema validation failed", Cause: err}
	}
	return nil
}

// headerIndex maps column names to their positions in the CSV header.
type headerIndex map[string]int

func (h headerIndex) get(row []string, col string) string {
	idx, ok := h[col]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func readCSV(path string) ([][]string, headerIndex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &ParseError{Path: path, Message: "cannot open file", Cause: err}
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // ragged rows tolerated; missing cells read as empty

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, &ParseError{Path: path, Message: "invalid CSV", Cause: err}
	}
	if len(records) == 0 {
		return nil, nil, &ParseError{Path: path, Message: "empty catalog file"}
	}

	header := make(headerIndex, len(records[0]))
	for i, name := range records[0] {
		header[strings.TrimSpace(name)] = i
	}
	return records[1:], header, nil
}
