package intake

import "resumecraft/internal/resume"

// SampleDocument returns the canned parse result the intake boundary emits
// for any accepted upload. It exercises every section of the model.
func SampleDocument() resume.Document {
	return resume.Document{
		PersonalInfo: resume.PersonalInfo{
			FullName: "Sarah Johnson",
			Email:    "sarah.johnson@email.com",
			Phone:    "+1 (555) 123-4567",
			Location: "San Francisco, CA",
			LinkedIn: "linkedin.com/in/sarahjohnson",
			Website:  "sarahjohnson.dev",
		},
		Summary: "Experienced software developer with 5+ years of expertise in full-stack development. " +
			"Passionate about creating scalable web applications and leading cross-functional teams.",
		Experience: []resume.Experience{
			{
				ID:        "1",
				Company:   "TechCorp Inc.",
				Position:  "Senior Software Developer",
				StartDate: "2021-03",
				Current:   true,
				Description: "Led development of microservices architecture\n" +
					"Implemented CI/CD pipelines\nMentored junior developers",
				Location: "San Francisco, CA",
			},
			{
				ID:        "2",
				Company:   "StartupXYZ",
				Position:  "Full Stack Developer",
				StartDate: "2019-06",
				EndDate:   "2021-02",
				Description: "Built responsive web applications using React and Node.js\n" +
					"Integrated third-party APIs\nOptimized database performance",
				Location: "Remote",
			},
		},
		Education: []resume.Education{
			{
				ID:          "1",
				Institution: "University of California, Berkeley",
				Degree:      "Bachelor of Science",
				Field:       "Computer Science",
				StartDate:   "2015-08",
				EndDate:     "2019-05",
				GPA:         "3.8",
				Honors:      "Magna Cum Laude",
			},
		},
		Skills: []resume.Skill{
			{ID: "1", Name: "JavaScript", Level: resume.LevelExpert, Category: "Programming"},
			{ID: "2", Name: "React", Level: resume.LevelExpert, Category: "Frontend"},
			{ID: "3", Name: "Node.js", Level: resume.LevelAdvanced, Category: "Backend"},
			{ID: "4", Name: "Python", Level: resume.LevelAdvanced, Category: "Programming"},
			{ID: "5", Name: "AWS", Level: resume.LevelIntermediate, Category: "Cloud"},
		},
		Projects: []resume.Project{
			{
				ID:           "1",
				Name:         "E-commerce Platform",
				Description:  "Full-stack e-commerce solution with React frontend and Node.js backend",
				Technologies: []string{"React", "Node.js", "MongoDB", "Stripe"},
				URL:          "https://example-ecommerce.com",
				GitHub:       "https://github.com/sarahjohnson/ecommerce",
				StartDate:    "2023-01",
				EndDate:      "2023-06",
			},
		},
		Certifications: []resume.Certification{
			{
				ID:     "1",
				Name:   "AWS Certified Developer",
				Issuer: "Amazon Web Services",
				Date:   "2023-03",
				URL:    "https://aws.amazon.com/certification/",
			},
		},
	}
}
