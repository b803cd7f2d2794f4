package generation

import (
	"strings"
	"text/template"

	"skillsync-backend/internal/domain"
)

// Prompt templates for the structured capabilities. Input fields are
// substituted verbatim; list fields are comma-joined in input order.

var suggestSkillsTmpl = template.Must(template.New("suggestSkills").Parse(
	`You are an AI expert career advisor for freelancers. Your goal is to help them get hired.

Based on the provided work history and job preferences, suggest a list of skills that the freelancer should add to their profile to improve their chances of matching with high-quality job opportunities. Be concise and only list the skills.

Work History: {{.WorkHistory}}
Job Preferences: {{.JobPreferences}}

Ensure the suggested skills are commercially valuable and directly relevant to the freelancer's stated career goals.
`))

var jobDescriptionTmpl = template.Must(template.New("jobDescription").Parse(
	`You are an expert AI recruitment assistant. Your task is to generate a compelling and professional job posting.

Job Title: {{.Title}}

Key Responsibilities:
{{.Responsibilities}}

Based on the title and responsibilities, please generate:
1. A complete and engaging job description that outlines the role, requirements, and what makes the opportunity attractive. The description should be well-structured and formatted with paragraphs.
2. A list of suggested skills (e.g., specific programming languages, software, or soft skills) that are most relevant for this position.
`))

var matchJobsTmpl = template.Must(template.New("matchJobs").Parse(
	`You are an expert AI recruiter. Your task is to find the most relevant jobs for a freelancer based on their profile.

Analyze the provided freelancer profile:
- Name: {{.Freelancer.Name}}
- Title: {{.Freelancer.Title}}
- Bio: {{.Freelancer.Bio}}
- Skills: {{.Skills}}
- Work History: {{.Freelancer.WorkHistory}}
- Job Preferences: {{.Freelancer.JobPreferences}}

Now, review the following available job postings:
{{range .Jobs}}---
Job ID: {{.ID}}
Title: {{.Title}}
Company: {{.Company}}
Description: {{.Description}}
Required Skills: {{.Skills}}
Budget: {{.Budget}}
---
{{end}}
Based on your analysis, identify the top 3-5 job postings that are the best fit for the freelancer. For each match, provide the jobId and a concise reason (1-2 sentences) explaining why it's a strong match, considering their skills, experience, and preferences. Focus on high-quality matches over quantity.
`))

var chatResponseTmpl = template.Must(template.New("chatResponse").Parse(
	`You are acting as a freelancer in a chat conversation with a potential client. Your name is {{.Freelancer.Name}}, and you are a {{.Freelancer.Title}}. Your skills include: {{.Skills}}.

Keep your responses concise, professional, and friendly. Your goal is to answer the client's questions and encourage them to hire you.

Here is the recent chat history (the last message is from the client):
{{range .History}}**{{.Sender}}:** {{.Text}}
{{end}}
Based on this conversation, generate the next response from your perspective as the freelancer.
`))

func renderSuggestSkills(input domain.SuggestSkillsInput) (string, error) {
	return render(suggestSkillsTmpl, input)
}

func renderJobDescription(input domain.JobDescriptionInput) (string, error) {
	return render(jobDescriptionTmpl, input)
}

type promptJob struct {
	ID          string
	Title       string
	Company     string
	Description string
	Skills      string
	Budget      float64
}

func renderMatchJobs(freelancer *domain.FreelancerProfile, jobs []domain.JobPosting) (string, error) {
	promptJobs := make([]promptJob, 0, len(jobs))
	for _, job := range jobs {
		promptJobs = append(promptJobs, promptJob{
			ID:          job.ID,
			Title:       job.Title,
			Company:     job.Company,
			Description: job.Description,
			Skills:      strings.Join(job.RequiredSkills, ", "),
			Budget:      job.Budget,
		})
	}
	return render(matchJobsTmpl, struct {
		Freelancer *domain.FreelancerProfile
		Skills     string
		Jobs       []promptJob
	}{freelancer, strings.Join(freelancer.Skills, ", "), promptJobs})
}

func renderChatResponse(freelancer *domain.FreelancerProfile, history []domain.ChatMessage) (string, error) {
	return render(chatResponseTmpl, struct {
		Freelancer *domain.FreelancerProfile
		Skills     string
		History    []domain.ChatMessage
	}{freelancer, strings.Join(freelancer.Skills, ", "), history})
}

func render(tmpl *template.Template, data any) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
