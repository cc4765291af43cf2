package chatbot

import "strings"

// Bucket is one scripted topic: keyword triggers and a pool of canned
// responses to pick from.
type Bucket struct {
	Name      string
	Keywords  []string
	Responses []string
}

// buckets is the ordered match list. Order matters: the first bucket whose
// keyword appears in the input wins, so the more specific topics sit above
// the generic ones and the fallback closes the list.
var buckets = []Bucket{
	{
		Name:     "jobs",
		Keywords: []string{"job", "vacancy", "opening", "position", "hiring", "work", "career"},
		Responses: []string{
			"You can browse all open positions from the Jobs tab. Use the filters to narrow by location, salary, or work mode.",
			"Looking for a job? Try the search bar with a role or skill, and save filters you use often.",
			"New openings are posted daily. Set your preferred filters and check the listings page regularly.",
		},
	},
	{
		Name:     "resume",
		Keywords: []string{"resume", "cv", "curriculum"},
		Responses: []string{
			"A strong resume highlights measurable results. Keep it to one or two pages and tailor it to each role.",
			"Make sure your resume is uploaded in your profile so employers see it with every application.",
			"Tip: mirror the key skills from the job description in your resume, as long as they're true.",
		},
	},
	{
		Name:     "company",
		Keywords: []string{"company", "employer", "organization", "organisation"},
		Responses: []string{
			"Every listing has a company section (size, industry, and website) so you can research before applying.",
			"You can see all jobs from one employer by opening the company name on any listing.",
		},
	},
	{
		Name:     "skills",
		Keywords: []string{"skill", "learn", "course", "training", "certification"},
		Responses: []string{
			"Add your skills to your profile: listings are matched against them, and employers filter by skills too.",
			"Not sure what to learn next? Open a few roles you want and note which skills keep appearing in the requirements.",
		},
	},
	{
		Name:     "interview",
		Keywords: []string{"interview", "prepare", "preparation"},
		Responses: []string{
			"For interviews, research the company, re-read the job description, and prepare examples using the STAR format.",
			"Once an employer shortlists you, interview details appear under My Applications.",
		},
	},
	{
		Name:     "salary",
		Keywords: []string{"salary", "pay", "compensation", "negotiate", "money"},
		Responses: []string{
			"You can filter jobs by minimum and maximum salary from the filters panel.",
			"Many listings mark salary as negotiable, and it never hurts to ask once you have an offer.",
		},
	},
	{
		Name:     "help",
		Keywords: []string{"help", "how", "support", "problem", "issue"},
		Responses: []string{
			"I can help with jobs, applications, your resume, interviews, and salary filters. What do you need?",
			"Tell me what you're stuck on (searching jobs, applying, or managing your profile) and I'll point you the right way.",
		},
	},
	{
		Name:     "greeting",
		Keywords: []string{"hello", "hi", "hey", "good morning", "good evening"},
		Responses: []string{
			"Hi! I'm the job portal assistant. Ask me about jobs, applications, or your profile.",
			"Hello! How can I help with your job search today?",
		},
	},
	{
		Name: "fallback",
		Responses: []string{
			"I'm not sure about that one. I can help with jobs, applications, resumes, interviews, and salaries.",
			"Could you rephrase? Try asking about jobs, your applications, or interview preparation.",
		},
	},
}

// MatchBucket returns the first bucket whose keyword is contained in input.
// The closing fallback bucket has no keywords and always matches.
func MatchBucket(input string) Bucket {
	text := strings.ToLower(input)
	for _, b := range buckets {
		if len(b.Keywords) == 0 {
			return b
		}
		for _, kw := range b.Keywords {
			if strings.Contains(text, kw) {
				return b
			}
		}
	}
	return buckets[len(buckets)-1]
}
