package types

// ExternalAnalysisBundle carries the signals produced by the AI collaborator:
// embedding-space similarity plus qualitative skill and assessment fields.
// Every consumer must tolerate a nil bundle and zero-valued fields; absence
// of a field degrades to a neutral default, never an error.
type ExternalAnalysisBundle struct {
	SemanticSimilarity    float64  `json:"semantic_similarity"`
	MatchingSkills        []string `json:"matching_skills,omitempty"`
	MissingSkills         []string `json:"missing_skills,omitempty"`
	MissingQualifications []string `json:"missing_qualifications,omitempty"`
	Reasoning             string   `json:"reasoning,omitempty"`
	Strengths             []string `json:"strengths,omitempty"`
	Weaknesses            []string `json:"weaknesses,omitempty"`
	ExperienceAssessment  string   `json:"experience_assessment,omitempty"`
	EducationAssessment   string   `json:"education_assessment,omitempty"`
	Suggestions           []string `json:"suggestions,omitempty"`
}

// Similarity returns the semantic similarity, treating a nil bundle as 0.
func (b *ExternalAnalysisBundle) Similarity() float64 {
	if b == nil {
		return 0.0
	}
	return b.SemanticSimilarity
}

// Matching returns the matching-skill list, nil-safe.
func (b *ExternalAnalysisBundle) Matching() []string {
	if b == nil {
		return nil
	}
	return b.MatchingSkills
}

// Missing returns the missing-skill list, nil-safe.
func (b *ExternalAnalysisBundle) Missing() []string {
	if b == nil {
		return nil
	}
	return b.MissingSkills
}

// HasReasoning reports whether the bundle carries non-empty reasoning text.
func (b *ExternalAnalysisBundle) HasReasoning() bool {
	return b != nil && b.Reasoning != ""
}
