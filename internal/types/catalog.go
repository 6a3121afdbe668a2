package types

// Course is one immutable catalog entry. CombinedText is pre-concatenated
// by the catalog loader (name + description + skills + core skills) and is
// the only field the index vectorizes; the rest are display attributes.
type Course struct {
	Name         string  `json:"name"`
	Partner      string  `json:"partner"`
	Description  string  `json:"description"`
	Skills       string  `json:"skills"`
	CoreSkills   string  `json:"core_skills"`
	Domain       string  `json:"domain"`
	Subdomain    string  `json:"subdomain"`
	Difficulty   string  `json:"difficulty"`
	Language     string  `json:"language"`
	Hours        float64 `json:"hours"`
	Rating       float64 `json:"rating"`
	URL          string  `json:"url"`
	CombinedText string  `json:"combined_text"`
}

// Specialization is one entry of the specialization/certificate catalog.
// It is shaped differently from Course: partners are a joined list and
// duration is expressed as a course count.
type Specialization struct {
	Name         string `json:"name"`
	Partners     string `json:"partners"`
	Description  string `json:"description"`
	Domain       string `json:"domain"`
	Subdomain    string `json:"subdomain"`
	Difficulty   string `json:"difficulty"`
	Type         string `json:"type"`
	NumCourses   int    `json:"num_courses"`
	URL          string `json:"url"`
	CombinedText string `json:"combined_text"`
}

// CatalogStats summarizes a loaded course catalog for display.
type CatalogStats struct {
	TotalCourses int     `json:"total_courses"`
	AvgHours     float64 `json:"avg_hours"`
	Domains      int     `json:"domains"`
	Languages    int     `json:"languages"`
}
