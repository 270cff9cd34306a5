package store

import (
	"time"

	"github.com/Sortedsinghal/URE-HR/internal/models"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func (s *Store) seed() {
	s.jobs = []models.Job{
		{ID: "1", Title: "Senior Frontend Developer", Location: "San Francisco, CA", Type: "full-time", Status: models.JobActive, Applicants: 24, CreatedAt: day("2025-01-10"), Channels: []string{"LinkedIn", "Indeed"}},
		{ID: "2", Title: "Product Manager", Location: "Remote", Type: "full-time", Status: models.JobDraft, Applicants: 0, CreatedAt: day("2025-01-11"), Channels: []string{}},
		{ID: "3", Title: "UX Designer", Location: "New York, NY", Type: "contract", Status: models.JobActive, Applicants: 18, CreatedAt: day("2025-01-08"), Channels: []string{"LinkedIn", "AngelList"}},
		{ID: "4", Title: "Backend Engineer", Location: "Austin, TX", Type: "full-time", Status: models.JobClosed, Applicants: 45, CreatedAt: day("2025-01-05"), Channels: []string{"Indeed", "Stack Overflow"}},
	}

	s.candidates = []models.Candidate{
		{ID: "1", Name: "Sarah Johnson", Email: "sarah.johnson@email.com", Phone: "+1 (555) 123-4567", Position: "Senior Frontend Developer", Status: models.CandidateScreening, AIScore: 95, Experience: "5+ years", Skills: []string{"React", "TypeScript", "Node.js"}},
		{ID: "2", Name: "Michael Chen", Email: "michael.chen@email.com", Phone: "+1 (555) 987-6543", Position: "Product Manager", Status: models.CandidateInterview, AIScore: 88, Experience: "7+ years", Skills: []string{"Product Strategy", "Agile", "Analytics"}},
		{ID: "3", Name: "Emily Rodriguez", Email: "emily.r@email.com", Phone: "+1 (555) 456-7890", Position: "UX Designer", Status: models.CandidateApplied, AIScore: 92, Experience: "4+ years", Skills: []string{"Figma", "User Research", "Prototyping"}},
	}

	s.interviews = []models.Interview{
		{ID: "1", CandidateName: "Sarah Johnson", Position: "Senior Frontend Developer", Date: "2024-01-20", Time: "10:00", DurationMinutes: 60, Type: models.InterviewVideo, Status: models.InterviewScheduled, Interviewers: []string{"John Smith", "Jane Doe"}, Location: "Zoom Meeting"},
		{ID: "2", CandidateName: "Michael Chen", Position: "Product Manager", Date: "2024-01-20", Time: "14:00", DurationMinutes: 45, Type: models.InterviewPhone, Status: models.InterviewScheduled, Interviewers: []string{"Alice Brown"}, Location: "Phone Call"},
		{ID: "3", CandidateName: "Emily Rodriguez", Position: "UX Designer", Date: "2024-01-19", Time: "11:00", DurationMinutes: 60, Type: models.InterviewInPerson, Status: models.InterviewCompleted, Interviewers: []string{"Bob Wilson", "Carol Davis"}, Location: "Conference Room A"},
	}

	s.interviewers = []models.Interviewer{
		{ID: "1", Name: "Sarah Johnson", Title: "Senior Engineer"},
		{ID: "2", Name: "Mike Chen", Title: "Engineering Manager"},
		{ID: "3", Name: "Lisa Rodriguez", Title: "Lead Designer"},
		{ID: "4", Name: "David Kim", Title: "Principal Engineer"},
	}

	s.offers = []models.Offer{
		{ID: "1", CandidateName: "Sarah Johnson", Position: "Senior Frontend Developer", Department: "Engineering", Salary: "$120,000", StartDate: "2024-02-01", Status: models.OfferPending, SentDate: "2024-01-18", ExpiryDate: "2024-01-25"},
		{ID: "2", CandidateName: "Michael Chen", Position: "Product Manager", Department: "Product", Salary: "$130,000", StartDate: "2024-02-15", Status: models.OfferAccepted, SentDate: "2024-01-15", AcceptedDate: "2024-01-17"},
		{ID: "3", CandidateName: "Emily Rodriguez", Position: "UX Designer", Department: "Design", Salary: "$95,000", StartDate: "2024-01-30", Status: models.OfferNegotiating, SentDate: "2024-01-16"},
	}

	s.templates = []models.Template{
		{ID: "1", Name: "Interview Invitation", Channel: models.ChannelEmail, Subject: "Interview Invitation - {{job.title}} Position", Content: "Dear {{candidate.name}},\n\nWe are pleased to invite you for an interview for the {{job.title}} position at {{company.name}}.\n\nPlease reply with your availability for the following dates:\n- {{interview.date1}}\n- {{interview.date2}}\n\nBest regards,\n{{recruiter.name}}", Category: "interview", Usage: 45},
		{ID: "2", Name: "Application Acknowledgment", Channel: models.ChannelEmail, Subject: "Thank you for your application - {{job.title}}", Content: "Hi {{candidate.name}},\n\nThank you for applying to the {{job.title}} position. We have received your application and will review it carefully.\n\nWe will contact you within {{review.timeframe}} with next steps.\n\nBest regards,\n{{company.name}} Hiring Team", Category: "acknowledgment", Usage: 128},
		{ID: "3", Name: "Interview Reminder", Channel: models.ChannelSMS, Content: "Hi {{candidate.name}}, this is a reminder of your interview tomorrow at {{interview.time}} for the {{job.title}} position. Meeting link: {{interview.link}}", Category: "reminder", Usage: 67},
	}

	s.integrations = []models.Integration{
		{ID: "1", Name: "Workday", Category: "hris", Description: "Sync employee data and automate onboarding workflows", Features: []string{"Employee sync", "Onboarding automation", "Data management"}, Status: models.IntegrationConnected, Settings: models.DefaultIntegrationSettings("hris")},
		{ID: "2", Name: "BambooHR", Category: "hris", Description: "Streamline HR processes and employee management", Features: []string{"Employee records", "Time tracking", "Performance management"}, Status: models.IntegrationAvailable},
		{ID: "3", Name: "Google Calendar", Category: "calendar", Description: "Sync interview schedules and automate meeting creation", Features: []string{"Calendar sync", "Meeting automation", "Availability checking"}, Status: models.IntegrationConnected, Settings: models.DefaultIntegrationSettings("calendar")},
		{ID: "4", Name: "Outlook Calendar", Category: "calendar", Description: "Integrate with Microsoft Outlook for seamless scheduling", Features: []string{"Outlook sync", "Teams integration", "Enterprise security"}, Status: models.IntegrationAvailable},
		{ID: "5", Name: "Slack", Category: "communication", Description: "Send notifications and updates to your team channels", Features: []string{"Team notifications", "Candidate updates", "Custom alerts"}, Status: models.IntegrationAvailable},
		{ID: "6", Name: "Microsoft Teams", Category: "communication", Description: "Collaborate and communicate within your organization", Features: []string{"Team collaboration", "Video interviews", "File sharing"}, Status: models.IntegrationAvailable},
		{ID: "7", Name: "Checkr", Category: "background", Description: "Automated background checks and verification", Features: []string{"Criminal background", "Employment verification", "Education checks"}, Status: models.IntegrationAvailable},
		{ID: "8", Name: "Sterling", Category: "background", Description: "Comprehensive background screening solutions", Features: []string{"Global screening", "Compliance management", "Real-time updates"}, Status: models.IntegrationAvailable},
	}

	s.assessments = []models.Assessment{
		{ID: "1", Name: "React Developer Assessment", Type: "technical", Duration: "60 minutes", Questions: 25, Candidates: 42, AvgScore: 78, Status: models.AssessmentActive, CreatedDate: "2024-01-10"},
		{ID: "2", Name: "Product Manager Aptitude Test", Type: "aptitude", Duration: "45 minutes", Questions: 30, Candidates: 18, AvgScore: 82, Status: models.AssessmentActive, CreatedDate: "2024-01-08"},
		{ID: "3", Name: "UX Design Portfolio Review", Type: "portfolio", Duration: "30 minutes", Questions: 10, Candidates: 12, AvgScore: 85, Status: models.AssessmentDraft, CreatedDate: "2024-01-15"},
	}

	s.results = []models.AssessmentResult{
		{ID: "1", CandidateName: "Sarah Johnson", AssessmentName: "React Developer Assessment", Status: models.ResultCompleted, Score: intPtr(92), CompletedDate: strPtr("2024-01-18")},
		{ID: "2", CandidateName: "Michael Chen", AssessmentName: "Product Manager Aptitude Test", Status: models.ResultCompleted, Score: intPtr(88), CompletedDate: strPtr("2024-01-17")},
		{ID: "3", CandidateName: "Emily Rodriguez", AssessmentName: "React Developer Assessment", Status: models.ResultInProgress},
	}

	s.talent = []models.TalentPoolEntry{
		{ID: "1", Name: "Sarah Johnson", Email: "sarah.j@email.com", Title: "Senior Frontend Developer", Location: "San Francisco, CA", Experience: "5+ years", Skills: []string{"React", "TypeScript", "Node.js", "AWS"}, Tags: []string{"top-performer-2024", "react-expert"}, LastActive: "2024-07-10", AIScore: 92, Availability: models.TalentAvailable, PreviousApplications: []string{"Frontend Developer at TechCorp", "React Developer at StartupX"}},
		{ID: "2", Name: "Michael Chen", Email: "m.chen@email.com", Title: "DevOps Engineer", Location: "Remote", Experience: "7+ years", Skills: []string{"Kubernetes", "Docker", "AWS", "Python"}, Tags: []string{"kubernetes-expert", "remote-ready"}, LastActive: "2024-07-08", AIScore: 88, Availability: models.TalentPassive, PreviousApplications: []string{"DevOps Engineer at CloudCorp"}},
		{ID: "3", Name: "Emily Rodriguez", Email: "emily.r@email.com", Title: "UX Designer", Location: "New York, NY", Experience: "4+ years", Skills: []string{"Figma", "User Research", "Prototyping", "Design Systems"}, Tags: []string{"design-system-expert", "user-research"}, LastActive: "2024-07-12", AIScore: 85, Availability: models.TalentAvailable, PreviousApplications: []string{"UX Designer at DesignStudio", "Product Designer at FinTech"}},
		{ID: "4", Name: "David Wilson", Email: "d.wilson@email.com", Title: "Data Scientist", Location: "Austin, TX", Experience: "6+ years", Skills: []string{"Python", "Machine Learning", "SQL", "TensorFlow"}, Tags: []string{"ml-expert", "python-specialist"}, LastActive: "2024-07-05", AIScore: 90, Availability: models.TalentPassive, PreviousApplications: []string{"Data Scientist at DataCorp", "ML Engineer at AIStart"}},
	}

	s.videos = []models.VideoInterview{
		{ID: "1", CandidateName: "Alex Johnson", Position: "Senior Developer", Type: "recorded", Status: "completed", Date: "2024-07-10", Duration: "15:32", AIScore: intPtr(85), Sentiment: strPtr("positive")},
		{ID: "2", CandidateName: "Maria Garcia", Position: "UX Designer", Type: "live", Status: "scheduled", Date: "2024-07-15", Duration: "30:00"},
		{ID: "3", CandidateName: "David Chen", Position: "Product Manager", Type: "recorded", Status: "completed", Date: "2024-07-08", Duration: "18:45", AIScore: intPtr(72), Sentiment: strPtr("neutral")},
	}

	s.insights["1"] = models.VideoInsights{
		InterviewID: "1",
		SentimentTimeline: []models.SentimentPoint{
			{Time: "0:00", Sentiment: "neutral"},
			{Time: "2:30", Sentiment: "positive"},
			{Time: "5:00", Sentiment: "positive"},
			{Time: "8:15", Sentiment: "neutral"},
			{Time: "12:00", Sentiment: "positive"},
			{Time: "15:32", Sentiment: "positive"},
		},
		BehavioralMetrics: models.BehavioralMetrics{Confidence: 78, Clarity: 85, Enthusiasm: 82},
		Keywords:          []string{"React", "Node.js", "Team leadership", "Agile", "Problem solving"},
	}

	s.kpis = []models.KPI{
		{Title: "Time to Hire", Value: "14 days", Change: "-2 days", Trend: "down", Description: "Average time from application to offer"},
		{Title: "Cost per Hire", Value: "$3,250", Change: "-$450", Trend: "down", Description: "Total recruitment cost per successful hire"},
		{Title: "Quality of Hire", Value: "4.2/5", Change: "+0.3", Trend: "up", Description: "Based on 90-day performance reviews"},
		{Title: "Candidate Experience", Value: "4.5/5", Change: "+0.2", Trend: "up", Description: "Average satisfaction score from candidates"},
	}

	s.funnel = []models.FunnelStage{
		{Stage: "Applications", Count: 520},
		{Stage: "Screening", Count: 312},
		{Stage: "Interviews", Count: 156},
		{Stage: "Offers", Count: 78},
		{Stage: "Hires", Count: 52},
	}

	s.sources = []models.SourcePerformance{
		{Source: "LinkedIn", Applications: 145, Hires: 12, Cost: "$2,100"},
		{Source: "Indeed", Applications: 89, Hires: 8, Cost: "$1,200"},
		{Source: "Company Website", Applications: 67, Hires: 15, Cost: "$800"},
		{Source: "Employee Referrals", Applications: 34, Hires: 18, Cost: "$500"},
		{Source: "University Partnerships", Applications: 28, Hires: 6, Cost: "$1,500"},
	}

	s.diversity = []models.DiversityMetric{
		{Metric: "Gender Diversity", Current: "48% Female", Target: "50%", Status: "on-track"},
		{Metric: "Ethnic Diversity", Current: "35% Minorities", Target: "40%", Status: "behind"},
		{Metric: "Age Diversity", Current: "22% 35+ years", Target: "25%", Status: "on-track"},
		{Metric: "Education Diversity", Current: "15% Non-traditional", Target: "20%", Status: "behind"},
	}

	s.features = []models.Feature{
		{Slug: "job-distribution", Title: "Multi-channel Job Distribution", Summary: "Publish openings to every major job board from one place.", Highlights: []string{"LinkedIn", "Indeed", "AngelList", "Stack Overflow"}},
		{Slug: "candidate-screening", Title: "AI Candidate Screening", Summary: "Precomputed quality signals surface the strongest applicants first.", Highlights: []string{"AI score", "Skill matching", "Experience bands"}},
		{Slug: "interview-scheduling", Title: "Interview Scheduling", Summary: "Coordinate interviewers, rooms, and candidates without the back-and-forth.", Highlights: []string{"Slot picker", "Multi-interviewer", "Conflict detection"}},
		{Slug: "offer-management", Title: "Offers & Onboarding", Summary: "Track offer letters from sent to signed, then hand off to onboarding.", Highlights: []string{"Expiry tracking", "Acceptance rates", "Onboarding checklists"}},
	}

	s.helpCategories = []models.HelpCategory{
		{Slug: "getting-started", Name: "Getting Started", Articles: []string{"how-to-submit-a-job-requirement"}},
		{Slug: "executive-search", Name: "Executive Search", Articles: []string{"understanding-our-executive-search-timeline"}},
	}

	s.helpArticles = []models.HelpArticle{
		{Slug: "how-to-submit-a-job-requirement", Title: "How to submit a job requirement", Category: "Getting Started", Content: "To submit a new executive search requirement, log into your client portal, open Create New Search, and provide the job details, company information, and timeline. Our team reviews every requirement and responds within 24 hours."},
		{Slug: "understanding-our-executive-search-timeline", Title: "Understanding our executive search timeline", Category: "Executive Search", Content: "Weeks 1-2 cover strategy and market research. Weeks 3-6 cover candidate identification, screening, and references. The remaining weeks cover client interviews, offer negotiation, and placement."},
	}

	// Funnel percentages derive from the first stage.
	if len(s.funnel) > 0 && s.funnel[0].Count > 0 {
		base := s.funnel[0].Count
		for i := range s.funnel {
			s.funnel[i].Percentage = s.funnel[i].Count * 100 / base
		}
	}
}
