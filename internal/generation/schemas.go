package generation

import "google.golang.org/genai"

// Output schemas for the structured capabilities. Each mirrors the
// corresponding output struct in internal/domain; the model is constrained
// to these shapes via ResponseSchema.

var suggestSkillsSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"suggestedSkills": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "Skills the freelancer should add to their profile.",
		},
	},
	Required: []string{"suggestedSkills"},
}

var jobDescriptionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"description": {
			Type:        genai.TypeString,
			Description: "The full, professionally written job description.",
		},
		"suggestedSkills": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "Recommended skills for this job.",
		},
	},
	Required: []string{"description", "suggestedSkills"},
}

var matchJobsSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"matchedJobs": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"jobId": {
						Type:        genai.TypeString,
						Description: "The ID of the matched job posting.",
					},
					"reason": {
						Type:        genai.TypeString,
						Description: "Why this job is a good match for the freelancer.",
					},
				},
				Required: []string{"jobId", "reason"},
			},
		},
	},
	Required: []string{"matchedJobs"},
}

var chatResponseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"response": {
			Type:        genai.TypeString,
			Description: "The freelancer's next chat message.",
		},
	},
	Required: []string{"response"},
}
