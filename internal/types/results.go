package types

// CourseMatch pairs a catalog course with its cosine similarity to the
// analyzed document and a human-readable justification.
type CourseMatch struct {
	Course        Course  `json:"course"`
	Score         float64 `json:"score"`
	Justification string  `json:"justification"`
}

// SpecializationMatch is the specialization-catalog counterpart of CourseMatch.
type SpecializationMatch struct {
	Specialization Specialization `json:"specialization"`
	Score          float64        `json:"score"`
	Justification  string         `json:"justification"`
}

// ExternalKind distinguishes how an external certification entry was produced.
type ExternalKind string

// External entry kinds.
const (
	KindIndustry ExternalKind = "Industria"
	KindPlatform ExternalKind = "Plataforma"
)

// ExternalCertification is a recommendation that is not backed by a catalog
// vector: either a known industry certification matched by domain rules or
// a keyword-search link on a partner platform.
type ExternalCertification struct {
	Name          string       `json:"name"`
	Platform      string       `json:"platform"`
	URL           string       `json:"url"`
	Duration      string       `json:"duration,omitempty"`
	Cost          string       `json:"cost,omitempty"`
	Description   string       `json:"description,omitempty"`
	Justification string       `json:"justification"`
	Kind          ExternalKind `json:"kind"`
}

// Recommendations is the assembled output of one analysis run.
type Recommendations struct {
	Summary         string                  `json:"summary,omitempty"`
	Terms           []CandidateTerm         `json:"terms"`
	Courses         []CourseMatch           `json:"courses"`
	Specializations []SpecializationMatch   `json:"specializations"`
	External        []ExternalCertification `json:"external"`
}
