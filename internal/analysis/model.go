// Package analysis holds the credibility analysis document and the
// translation merge that keeps its structural fields intact.
package analysis

// AnalysisResult is the credibility document returned to clients. Text
// fields carry human-readable explanations and are eligible for
// translation; every other field (scores, counts, enums, URLs) is
// structural and must survive any merge untouched.
type AnalysisResult struct {
	Score          int            `json:"score"`
	Verdict        string         `json:"verdict,omitempty"`
	RiskLevel      string         `json:"riskLevel,omitempty"`
	Summary        string         `json:"summary,omitempty"`
	ArticleSummary string         `json:"articleSummary,omitempty"`
	Disclaimer     string         `json:"disclaimer,omitempty"`
	Breakdown      *Breakdown     `json:"breakdown,omitempty"`
	WebPresence    *WebPresence   `json:"webPresence,omitempty"`
	Corroboration  *Corroboration `json:"corroboration,omitempty"`
	ImageSignals   *ImageSignals  `json:"imageSignals,omitempty"`
	Result         *ProResult     `json:"result,omitempty"`
}

// Breakdown scores the analysis across five fixed categories.
type Breakdown struct {
	Sources      *BreakdownEntry `json:"sources,omitempty"`
	Factual      *BreakdownEntry `json:"factual,omitempty"`
	Tone         *BreakdownEntry `json:"tone,omitempty"`
	Context      *BreakdownEntry `json:"context,omitempty"`
	Transparency *BreakdownEntry `json:"transparency,omitempty"`
}

// BreakdownEntry is one scored category with its explanation.
type BreakdownEntry struct {
	Points    int    `json:"points"`
	MaxPoints int    `json:"maxPoints,omitempty"`
	Weight    int    `json:"weight,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// WebPresence summarizes whether the claim shows up on the open web.
type WebPresence struct {
	Found       bool   `json:"found"`
	Sources     int    `json:"sources"`
	Observation string `json:"observation,omitempty"`
}

// Corroboration holds the PRO web-corroboration pass counters.
type Corroboration struct {
	Performed     bool   `json:"performed"`
	Sources       int    `json:"sources"`
	Corroborating int    `json:"corroborating"`
	Contradicting int    `json:"contradicting"`
	Summary       string `json:"summary,omitempty"`
}

// ImageSignals reports manipulation signals for screenshot submissions.
type ImageSignals struct {
	Checked    bool     `json:"checked"`
	Summary    string   `json:"summary,omitempty"`
	Note       string   `json:"note,omitempty"`
	Indicators []string `json:"indicators,omitempty"`
	Conditions []string `json:"conditions,omitempty"`
}

// ProResult is the deeper corroboration result with ranked sources.
type ProResult struct {
	Summary   string       `json:"summary,omitempty"`
	BestLinks []SourceLink `json:"bestLinks,omitempty"`
	Sources   []SourceLink `json:"sources,omitempty"`
}

// SourceLink is one ranked outbound source. Only Title and WhyItMatters
// are translatable; URL, Publisher, TrustTier, and Stance are structural.
type SourceLink struct {
	Title        string `json:"title,omitempty"`
	URL          string `json:"url,omitempty"`
	Publisher    string `json:"publisher,omitempty"`
	TrustTier    string `json:"trustTier,omitempty"`
	Stance       string `json:"stance,omitempty"`
	WhyItMatters string `json:"whyItMatters,omitempty"`
}

// Clone returns a deep copy of the document.
func (a AnalysisResult) Clone() AnalysisResult {
	out := a
	if a.Breakdown != nil {
		b := Breakdown{
			Sources:      cloneEntry(a.Breakdown.Sources),
			Factual:      cloneEntry(a.Breakdown.Factual),
			Tone:         cloneEntry(a.Breakdown.Tone),
			Context:      cloneEntry(a.Breakdown.Context),
			Transparency: cloneEntry(a.Breakdown.Transparency),
		}
		out.Breakdown = &b
	}
	if a.WebPresence != nil {
		wp := *a.WebPresence
		out.WebPresence = &wp
	}
	if a.Corroboration != nil {
		c := *a.Corroboration
		out.Corroboration = &c
	}
	if a.ImageSignals != nil {
		is := *a.ImageSignals
		is.Indicators = append([]string(nil), a.ImageSignals.Indicators...)
		is.Conditions = append([]string(nil), a.ImageSignals.Conditions...)
		out.ImageSignals = &is
	}
	if a.Result != nil {
		r := *a.Result
		r.BestLinks = append([]SourceLink(nil), a.Result.BestLinks...)
		r.Sources = append([]SourceLink(nil), a.Result.Sources...)
		out.Result = &r
	}
	return out
}

func cloneEntry(e *BreakdownEntry) *BreakdownEntry {
	if e == nil {
		return nil
	}
	c := *e
	return &c
}
