package services

import "fmt"

// SystemPrompt is the fixed system instruction sent with every completion
// request.
const SystemPrompt = "You are an expert resume parser that extracts structured information from resumes. " +
	"Always respond with valid JSON only, no additional text."

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumePrompt embeds the extracted resume text into the fixed
// chain-of-thought instructional template. The template first asks the model
// to decide whether the document is a resume at all, then walks the
// seven-category extraction checklist, and finally demands exactly one JSON
// object matching the schema.
func (pb *PromptBuilder) BuildResumePrompt(resumeText string) string {
	return fmt.Sprintf(`You are an expert resume parser AI. Your task is to extract structured information from the provided document text using a systematic, step-by-step approach.

**Chain-of-Thought Process:**

Step 0: DECIDE WHETHER THIS IS A RESUME
- Check if the document describes a person's professional background (contact details, education, work history, skills)
- If it is NOT a resume (e.g. an invoice, an article, a cover letter without resume content), set "is_resume" to false, explain why in "not_resume_reason", and emit null/empty values for every other field — do NOT omit any field from the schema

Step 1: IDENTIFY CONTACT INFORMATION
- Scan for name (usually at the top)
- Look for email addresses (contains @ symbol)
- Find phone numbers (various formats: +91, (xxx) xxx-xxxx, etc.)
- Locate LinkedIn profile URLs
- Identify location/address if present

Step 2: EXTRACT EDUCATION HISTORY
- Find education section (keywords: Education, Academic, Qualification)
- For each entry, extract:
  * Institution/University name
  * Degree type (Bachelor's, Master's, PhD, etc.)
  * Field of study/Major
  * Graduation year or expected graduation
  * GPA/Percentage if mentioned

Step 3: ANALYZE WORK EXPERIENCE
- Locate work experience section (keywords: Experience, Employment, Work History)
- For each role, extract:
  * Company name
  * Job title/Position
  * Duration (start date - end date or "Present")
  * Key responsibilities and achievements
  * Location if mentioned

Step 4: IDENTIFY SKILLS
- Find skills section (keywords: Skills, Technical Skills, Core Competencies)
- Extract both technical and soft skills
- Include programming languages, tools, frameworks, methodologies

Step 5: EXTRACT CERTIFICATIONS
- Look for certifications section
- Extract certificate name, issuing organization, and date

Step 6: FIND PROJECTS
- Identify projects section
- For each project: name, description, technologies used, links

Step 7: CAPTURE PROFESSIONAL SUMMARY
- Look for summary/objective section at the beginning
- Extract the professional summary or career objective

**DOCUMENT TEXT:**
%s

**OUTPUT INSTRUCTIONS:**
Now, following the above steps, extract all information and provide ONLY a valid JSON response in this exact format (no additional text or explanation):

{
  "is_resume": true,
  "not_resume_reason": null,
  "contact_info": {
    "name": "Full Name",
    "email": "email@example.com",
    "phone": "+1234567890",
    "linkedin": "linkedin.com/in/profile",
    "location": "City, Country"
  },
  "education": [
    {
      "institution": "University Name",
      "degree": "Bachelor's/Master's",
      "field_of_study": "Computer Science",
      "graduation_year": "2023",
      "gpa": "3.8/4.0"
    }
  ],
  "work_experience": [
    {
      "company": "Company Name",
      "position": "Job Title",
      "duration": "Jan 2020 - Dec 2022",
      "description": "Key responsibilities and achievements",
      "location": "City, Country"
    }
  ],
  "skills": ["Python", "Machine Learning", "Go", "etc"],
  "certifications": [
    {
      "name": "Certification Name",
      "issuer": "Issuing Organization",
      "date": "2023"
    }
  ],
  "projects": [
    {
      "name": "Project Name",
      "description": "Brief description",
      "technologies": ["Tech1", "Tech2"],
      "link": "github.com/project"
    }
  ],
  "summary": "Professional summary or objective"
}

Return ONLY the JSON object, no other text.`, resumeText)
}
