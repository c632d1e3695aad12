package domain

type VoiceCategory string

const (
	PremadeVoiceCategory      VoiceCategory = "premade"
	ProfessionalVoiceCategory VoiceCategory = "professional"
	GeneratedVoiceCategory    VoiceCategory = "generated"
	UnknownVoiceCategory      VoiceCategory = "unknown"
)

// Voice is one entry of the synthetic-speech catalog. Identity is the
// VoiceID alone; every other field is descriptive metadata used for
// persona matching.
type Voice struct {
	VoiceID     string        `json:"voice_id"`
	Name        string        `json:"name"`
	Category    VoiceCategory `json:"category"`
	Accent      string        `json:"accent"`
	Age         string        `json:"age"`
	Gender      string        `json:"gender"`
	UseCase     string        `json:"use_case"`
	Description string        `json:"description"`
	PreviewURL  string        `json:"preview_url"`
}

func (v Voice) Equal(other Voice) bool {
	return v.VoiceID == other.VoiceID
}

// Persona describes the voice characteristics wanted for a single
// speaker. AccentPreference empty means any accent is acceptable.
type Persona struct {
	Perspective      string `json:"perspective"`
	AgeRange         string `json:"age_range"`
	Gender           string `json:"gender"`
	Tone             string `json:"tone"`
	ExpertiseLevel   string `json:"expertise_level"`
	Background       string `json:"background"`
	SpeakingStyle    string `json:"speaking_style"`
	AccentPreference string `json:"accent_preference,omitempty"`
}

type VoiceMatch struct {
	Voice Voice   `json:"voice"`
	Score float64 `json:"score"`
}

type Article struct {
	URL   string
	Title string
	Text  string
}

type PerspectiveComment struct {
	Perspective  string       `json:"perspective"`
	Comment      string       `json:"comment"`
	VoiceMatches []VoiceMatch `json:"voice_matches"`
}

// CommentaryResult is the assembled output of one pipeline run.
// PerspectiveComments preserves the discovery order of perspectives;
// a perspective whose persona derivation failed is absent from it but
// still listed in PerspectivesChosen.
type CommentaryResult struct {
	Title                     string               `json:"title"`
	OriginalSummary           string               `json:"original_summary"`
	SummaryVoiceMatches       []VoiceMatch         `json:"summary_voice_matches"`
	StyledSummary             string               `json:"styled_summary"`
	StyledSummaryVoiceMatches []VoiceMatch         `json:"styled_summary_voice_matches"`
	PerspectivesChosen        []string             `json:"perspectives_chosen"`
	PerspectiveComments       []PerspectiveComment `json:"perspective_comments"`
}

// BestVoice returns the highest scoring match, or false when the list
// is empty.
func BestVoice(matches []VoiceMatch) (VoiceMatch, bool) {
	if len(matches) == 0 {
		return VoiceMatch{}, false
	}
	best := matches[0]
	for _, m := range matches[1:] {
		if m.Score > best.Score {
			best = m
		}
	}
	return best, true
}
