package models

type ContactInfo struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	LinkedIn *string `json:"linkedin"`
	Location *string `json:"location"`
}

type Education struct {
	Institution    *string `json:"institution"`
	Degree         *string `json:"degree"`
	FieldOfStudy   *string `json:"field_of_study"`
	GraduationYear *string `json:"graduation_year"`
	GPA            *string `json:"gpa"`
}

type WorkExperience struct {
	Company     *string `json:"company"`
	Position    *string `json:"position"`
	Duration    *string `json:"duration"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
}

type Certification struct {
	Name   *string `json:"name"`
	Issuer *string `json:"issuer"`
	Date   *string `json:"date"`
}

type Project struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Technologies []string `json:"technologies"`
	Link         *string  `json:"link"`
}

// ParsedResume is the structured output the LLM is asked to produce for a
// single resume document.
type ParsedResume struct {
	IsResume        bool             `json:"is_resume"`
	NotResumeReason *string          `json:"not_resume_reason,omitempty"`
	ContactInfo     *ContactInfo     `json:"contact_info"`
	Education       []Education      `json:"education"`
	WorkExperience  []WorkExperience `json:"work_experience"`
	Skills          []string         `json:"skills"`
	Certifications  []Certification  `json:"certifications"`
	Projects        []Project        `json:"projects"`
	Summary         *string          `json:"summary,omitempty"`
}

// FillDefaults replaces nil collections with empty ones so the response shape
// stays stable regardless of what the model omitted.
func (r *ParsedResume) FillDefaults() {
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.WorkExperience == nil {
		r.WorkExperience = []WorkExperience{}
	}
	if r.Skills == nil {
		r.Skills = []string{}
	}
	if r.Certifications == nil {
		r.Certifications = []Certification{}
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
	for i := range r.Projects {
		if r.Projects[i].Technologies == nil {
			r.Projects[i].Technologies = []string{}
		}
	}
}
