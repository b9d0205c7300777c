package domain

// DerivedContext is the structured view of a session built by folding every
// answer in order. Later answers to the same facet overwrite earlier ones.
type DerivedContext struct {
	ProjectName       string          `json:"project_name" yaml:"project_name"`
	Description       string          `json:"description" yaml:"description"`
	Problem           string          `json:"problem" yaml:"problem"`
	PainLevel         int             `json:"pain_level" yaml:"pain_level"`
	TargetAudience    string          `json:"target_audience" yaml:"target_audience"`
	ValueProposition  string          `json:"value_proposition" yaml:"value_proposition"`
	MVPGoal           string          `json:"mvp_goal" yaml:"mvp_goal"`
	CoreFeatures      []string        `json:"core_features" yaml:"core_features"`
	ExtraFeatures     []string        `json:"extra_features" yaml:"extra_features"`
	TechStack         []string        `json:"tech_stack" yaml:"tech_stack"`
	UserCount         int             `json:"user_count" yaml:"user_count"`
	Timeline          string          `json:"timeline" yaml:"timeline"`
	TimelineWeeks     int             `json:"timeline_weeks" yaml:"timeline_weeks"`
	Experience        ExperienceLevel `json:"experience" yaml:"experience"`
	ReuseExistingCode bool            `json:"reuse_existing_code" yaml:"reuse_existing_code"`
	LaunchPlan        string          `json:"launch_plan" yaml:"launch_plan"`
}

// AllFeatures returns core features followed by extras.
func (c DerivedContext) AllFeatures() []string {
	out := make([]string, 0, len(c.CoreFeatures)+len(c.ExtraFeatures))
	out = append(out, c.CoreFeatures...)
	out = append(out, c.ExtraFeatures...)
	return out
}

// HasTimeline reports whether a timeline answer has been recorded.
func (c DerivedContext) HasTimeline() bool {
	return c.Timeline != ""
}
