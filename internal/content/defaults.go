package content

// Default returns the compiled-in portfolio content.
func Default() *Content {
	return &Content{
		Profile: Profile{
			Name:     "Anand Suresh",
			Title:    "Computer Science Engineer",
			Headline: "Innovative Computer Science Engineer specializing in AI, IoT, and Full-Stack Development",
			Tagline:  "Passionate about creating technology that makes a difference",
			Location: "Kochi, Kerala, India",
			Bio: `Hi, I'm Anand, a Computer Science student at A P J Abdul Kalam Technological University.
I love building real-world impactful projects in AI, IoT, and full-stack development.
With hands-on experience in embedded systems, cloud APIs, and machine learning,
I aim to create accessible and intelligent technologies.`,
			Photo:      "/images/profile.png",
			Resume:     "/static/resume.pdf",
			ResumeName: "Anand_Suresh_Resume.pdf",
			Available:  "Available for opportunities",
			Socials: []Link{
				{Label: "Email", URL: "mailto:callmeanand5@gmail.com"},
				{Label: "GitHub", URL: "https://github.com/An-andd"},
				{Label: "LinkedIn", URL: "https://linkedin.com/in/anand-suresh-8b8a73325"},
			},
		},
		Highlights: []Highlight{
			{Label: "CGPA 7.4", Sublabel: "Academic Excellence"},
			{Label: "3+ Projects", Sublabel: "Real-world Impact"},
			{Label: "2025 Graduate", Sublabel: "Fresh Talent"},
		},
		Stats: []Stat{
			{Label: "CGPA", Value: "7.4"},
			{Label: "Academic Score", Value: "95%"},
			{Label: "Major Projects", Value: "3+"},
			{Label: "Graduation Year", Value: "2024"},
		},
		Education: []Education{
			{
				Title:       "B.Tech in Computer Science Engineering",
				Institution: "A P J Abdul Kalam Technological University",
				Period:      "2021 - 2025",
				Score:       "CGPA: 7.4",
			},
			{
				Title:       "Senior Secondary (PCMB)",
				Institution: "Higher Secondary Education",
				Period:      "2020 - 2021",
				Score:       "Score: 95.4%",
			},
			{
				Title:       "Higher Secondary (PCMB)",
				Institution: "Secondary Education",
				Period:      "2018 - 2019",
				Score:       "Score: 94.3%",
			},
		},
		Skills: []SkillCategory{
			{
				Title: "Programming Languages",
				Skills: []Skill{
					{Name: "Python", Level: 90},
					{Name: "Java", Level: 75},
					{Name: "C", Level: 85},
					{Name: "HTML/CSS", Level: 80},
					{Name: "SQL", Level: 85},
				},
			},
			{
				Title: "Tools & Platforms",
				Skills: []Skill{
					{Name: "Visual Studio Code", Level: 92},
					{Name: "PyCharm", Level: 85},
					{Name: "Firebase", Level: 80},
					{Name: "Google Cloud APIs", Level: 78},
					{Name: "Git/GitHub", Level: 85},
				},
			},
			{
				Title: "Soft Skills",
				Skills: []Skill{
					{Name: "Time Management", Level: 88},
					{Name: "Teamwork", Level: 92},
					{Name: "Communication", Level: 85},
					{Name: "Problem Solving", Level: 90},
					{Name: "Leadership", Level: 82},
				},
			},
		},
		Projects: []Project{
			{
				Slug:     "tactile-braille",
				Title:    "Tactile Braille",
				Category: "Accessibility Tech",
				Description: `Developed a tactile Braille output device with vibration motors for visually impaired users.
Enhanced response time by 40% using optimized Python-Arduino serial sync.`,
				FullDescription: `A wearable Braille output device that converts text into vibration patterns,
giving visually impaired users a low-cost way to read digital content.`,
				Impact: "40% faster response time",
				Tech:   []string{"Arduino", "Python", "Serial Communication"},
				Features: []string{
					"Six-dot vibration motor matrix",
					"Text to Braille translation on the host",
					"Adjustable reading speed",
				},
				Implementation: []string{
					"Python host translates text into six-dot cells",
					"Framed serial protocol keeps the Arduino in sync",
					"PWM drives each motor independently",
				},
				Metrics: []Metric{
					{Value: "40%", Label: "Faster response"},
					{Value: "6", Label: "Motors"},
				},
				Links: []Link{{Label: "View Source Code", URL: "https://github.com/An-andd"}},
			},
			{
				Slug:     "smart-lock-uno",
				Title:    "Smart Lock Uno",
				Category: "IoT Security",
				Description: `Built a smart lock integrating facial recognition (98% accuracy), RFID, and remote API access.
Achieved 90% reduction in unauthorized access and 99% device uptime.`,
				FullDescription: `A door lock that combines face recognition, RFID cards and a remote web API,
so access can be granted, revoked and audited from anywhere.`,
				Impact: "98% accuracy, 99% uptime",
				Tech:   []string{"Arduino Uno", "OpenCV", "RFID", "Web API"},
				Features: []string{
					"Face recognition unlock",
					"RFID fallback",
					"Remote unlock and audit log",
				},
				Implementation: []string{
					"OpenCV face embeddings matched on a companion host",
					"RFID reader wired to the Uno over SPI",
					"REST endpoint for remote access control",
				},
				Metrics: []Metric{
					{Value: "98%", Label: "Recognition accuracy"},
					{Value: "90%", Label: "Fewer unauthorized entries"},
					{Value: "99%", Label: "Uptime"},
				},
				Links: []Link{{Label: "View Source Code", URL: "https://github.com/An-andd"}},
			},
			{
				Slug:     "speakeasy-ai-assistant",
				Title:    "SpeakEasy AI Assistant",
				Category: "AI & Mobile",
				Description: `Created a mobile AI assistant with emotion recognition and voice translation.
Increased user engagement by 25% via personalized, multilingual conversations.`,
				FullDescription: `A mobile assistant that listens for tone as well as words, replying in the
user's language and adapting its answers to their mood.`,
				Impact: "25% engagement increase",
				Tech:   []string{"React Native", "Node.js", "Firebase", "Hume AI", "Google APIs"},
				Features: []string{
					"Emotion recognition from voice",
					"Real-time translation",
					"Personalised conversation history",
				},
				Implementation: []string{
					"Hume AI scores the emotional tone of each utterance",
					"Google APIs handle speech and translation",
					"Firebase stores per-user conversation context",
				},
				Metrics: []Metric{
					{Value: "25%", Label: "Engagement increase"},
				},
				Links: []Link{{Label: "View Source Code", URL: "https://github.com/An-andd"}},
			},
		},
		Certificates: []Certificate{
			{
				Slug:         "python-programming",
				Title:        "Python Programming",
				Organization: "Face in Technologies Pvt. Ltd.",
				Date:         "December 2024",
				Type:         "Certification",
				Description:  "Gained expertise in OOP, file handling, and data analysis through project-based learning.",
				Image:        "/images/facein.jpeg",
				Skills:       []string{"Object-Oriented Programming", "File Handling", "Data Analysis", "Project Development"},
			},
			{
				Slug:         "keems-sace-2023",
				Title:        "KEEMS SACE 2023",
				Organization: "Innovation Exhibition",
				Date:         "2023",
				Type:         "Achievement",
				Description:  "Exhibited a collaborative ML + IoT project; achieved Top 3 placement for innovation.",
				Skills:       []string{"Machine Learning", "IoT Development", "Collaboration", "Innovation"},
			},
			{
				Slug:         "nasa-space-apps",
				Title:        "NASA Space Apps Challenge",
				Organization: "NASA",
				Date:         "2024",
				Type:         "Recognition",
				Description:  "Recognized for innovative Earth-tech solution addressing global challenges.",
				Image:        "/images/nasa-space-apps.jpg",
				Skills:       []string{"Problem Solving", "Innovation", "Earth Technology", "Global Impact"},
			},
		},
		Contact: Contact{
			Intro: `I'm always open to discussing new opportunities, innovative projects,
or just having a chat about technology. Feel free to reach out!`,
			Email:    "callmeanand5@gmail.com",
			Phone:    "+91-8589936359",
			Location: "Kochi, Kerala",
		},
	}
}
