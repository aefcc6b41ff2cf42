package types

// CandidateSkill is one skill row from a candidate's resume.
type CandidateSkill struct {
	Name              string `json:"skill_name"`
	Type              string `json:"skill_type,omitempty"`
	YearsOfExperience int    `json:"years_of_experience,omitempty"`
}

// CandidateProfile is a candidate joined with the skills of their latest
// resume. It is both the GET /candidates row shape and the source of the
// query-profile fallback when a recommendation request carries no explicit
// query.
type CandidateProfile struct {
	CandidateID int64            `json:"candidate_id"`
	FullName    string           `json:"fullname,omitempty"`
	Title       string           `json:"title,omitempty"`
	AboutMe     string           `json:"about_me,omitempty"`
	Skills      []CandidateSkill `json:"skills,omitempty"`
}

// QueryProfile derives the recommendation query from the stored profile.
func (c *CandidateProfile) QueryProfile() QueryProfile {
	skills := make([]string, 0, len(c.Skills))
	for _, s := range c.Skills {
		if s.Name != "" {
			skills = append(skills, s.Name)
		}
	}
	return QueryProfile{
		Skills:      skills,
		Title:       c.Title,
		Description: c.AboutMe,
	}
}
