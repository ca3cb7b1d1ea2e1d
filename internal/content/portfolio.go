// Package content holds the static portfolio copy served by the API.
package content

import "portfolio-backend/internal/domain"

// Portfolio returns a fresh copy of the site content.
func Portfolio() domain.Portfolio {
	return domain.Portfolio{
		Profile:        profile(),
		Experience:     experience(),
		Skills:         skills(),
		Education:      education(),
		Certifications: certifications(),
		Resume: domain.Resume{
			Title:       "Resume | Agustin Cassani",
			Description: "Professional resume of Agustin Cassani, Full Stack JavaScript Developer with 17+ years of experience.",
			DownloadURL: "/resume.pdf",
			FileName:    "AgustinCassaniCV.pdf",
		},
	}
}

func profile() domain.Profile {
	return domain.Profile{
		Name:        "Agustin Cassani",
		Title:       "Full Stack JavaScript Developer & Technical Lead",
		Tagline:     "With 17+ years of experience architecting and delivering modern web and mobile solutions.",
		Description: "Professional portfolio of Agustin Cassani, a Full Stack JavaScript Developer with 17+ years of experience in web and mobile development.",
		Location:    "Mendoza",
		Country:     "AR",
		Email:       "agustinscassani@gmail.com",
		Phone:       "+54 9 (261) 688-6005",
		ImagePath:   "/profile-image.jpeg",
		About: []string{
			"With 17+ years of experience architecting and delivering modern web and mobile solutions. I'm an expert in React, React Native, Next.js, Node.js, and TypeScript with proven success leading remote development teams.",
			"I combine technical excellence with strategic vision to transform complex requirements into scalable, user-centered applications. My passion lies in creating efficient, elegant solutions that solve real-world problems.",
		},
		Highlights: []string{
			"Mendoza, Argentina",
			"Master of Computer Science",
			"Available for Projects",
		},
		Links: []domain.Link{
			{Label: "LinkedIn", URL: "https://www.linkedin.com/in/agustincassani/"},
			{Label: "GitHub", URL: "https://github.com/surfercoder/"},
			{Label: "Website", URL: "https://www.agustincassani.com/"},
		},
	}
}

func experience() []domain.Experience {
	return []domain.Experience{
		{
			ID:       "utn",
			Company:  "Universidad Tecnológica Nacional",
			Position: "Professor (Contract)",
			Period:   "AUGUST 2023 - PRESENT",
			Location: "Mendoza, Argentina",
			Type:     "Contract",
			Achievements: []string{
				"Crafted comprehensive curriculum for Software Engineering program, instructing 100+ students in modern JavaScript frameworks and tools",
				"Pioneered hands-on learning approach resulting in 40% increase in student project completion rates",
				"Mentored 25+ students on capstone projects, with 5 projects being adopted by local businesses",
			},
		},
		{
			ID:       "leverege",
			Company:  "Leverege",
			Position: "Senior React Native Developer",
			Period:   "AUGUST 2023 - FEBRUARY 2025",
			Location: "Mendoza, Argentina",
			Type:     "Remote",
			Achievements: []string{
				"Architected core features for IoT mobile application that achieved 4.8/5 star rating across platforms",
				"Optimized API response time by 65% through restructuring of Node.js backend services and introduction of efficient caching strategies",
				"Engineered cross-platform UI components that decreased development time by 30% while maintaining design consistency",
				"Designed comprehensive test suite that identified and resolved 40+ critical bugs before production release",
				"Spearheaded migration from JavaScript to TypeScript, resulting in 78% reduction in type-related runtime errors",
			},
		},
		{
			ID:       "bitovi",
			Company:  "Bitovi",
			Position: "Full Stack JavaScript Consultant",
			Period:   "AUGUST 2021 - JULY 2023",
			Location: "Mendoza, Argentina",
			Type:     "Remote",
			Achievements: []string{
				"Delivered strategic technical guidance to 12+ client projects, consistently exceeding delivery expectations and KPIs",
				"Accelerated application performance by 70% through integration of GraphQL and Next.js server-side rendering",
				"Constructed scalable database architecture using PostgreSQL that successfully handled 300% traffic growth",
				"Established modular component library with Storybook that shortened UI development time by 40% across multiple projects",
				"Instituted automated testing protocols that increased code coverage from 45% to 92% while minimizing regression issues by 65%",
			},
		},
		{
			ID:       "kimetrica",
			Company:  "Kimetrica",
			Position: "React Technical Lead Developer",
			Period:   "AUGUST 2020 - JULY 2021",
			Location: "Mendoza, Argentina",
			Type:     "Remote",
			Achievements: []string{
				"Led team of 8 developers in delivering complex data visualization applications for international humanitarian organizations",
				"Devised scalable frontend solution that processed and displayed 200+ million data points with sub-second response times",
				"Created comprehensive UI design system that diminished design inconsistencies by 85% across 5 different applications",
				"Formulated code quality standards and review processes that trimmed critical bugs by 75% in production environments",
				"Mentored junior developers, resulting in 3 promotions within the team during 12-month period",
			},
		},
		{
			ID:           "joybird",
			Company:      "Joybird",
			Position:     "Full Stack JavaScript Developer",
			Period:       "AUGUST 2019 - JULY 2020",
			Location:     "Remote",
			Type:         "Remote",
			Achievements: []string{"Engineered e-commerce features that boosted conversion rates by 18% and average order value by 12%"},
		},
		{
			ID:           "mokriya",
			Company:      "Mokriya",
			Position:     "Full Stack JavaScript Developer",
			Period:       "AUGUST 2018 - JULY 2019",
			Location:     "Remote",
			Type:         "Remote",
			Achievements: []string{"Built mobile application features using React Native that grew monthly active users by 45%"},
		},
		{
			ID:           "6connect",
			Company:      "6connect",
			Position:     "Software Engineer",
			Period:       "AUGUST 2016 - JULY 2018",
			Location:     "Remote",
			Type:         "Remote",
			Achievements: []string{"Transformed network management tools that streamlined configuration time by 60% for enterprise clients"},
		},
		{
			ID:           "careerlist",
			Company:      "Careerlist",
			Position:     "Solution Architect",
			Period:       "AUGUST 2015 - JULY 2016",
			Location:     "Remote",
			Type:         "Remote",
			Achievements: []string{"Designed scalable architecture supporting 200K+ daily active users across multiple platforms"},
		},
		{
			ID:           "vmbc",
			Company:      "VMBC",
			Position:     "Technical Leader",
			Period:       "NOVEMBER 2013 - JULY 2015",
			Location:     "On-site",
			Type:         "On-site",
			Achievements: []string{"Orchestrated development team in delivering business-critical applications with 99.9% uptime"},
		},
		{
			ID:           "exxonmobil",
			Company:      "ExxonMobil",
			Position:     "Intranet Application Developer",
			Period:       "MAY 2011 - OCTOBER 2013",
			Location:     "On-site",
			Type:         "On-site",
			Achievements: []string{"Innovated internal applications that expedited operations and saved 25+ hours per week in manual processes"},
		},
	}
}

func skills() []domain.SkillCategory {
	return []domain.SkillCategory{
		{Title: "Frontend Development", Icon: "layout", Skills: []string{"React", "React Native", "Next.js", "Redux", "Apollo Client", "TypeScript", "JavaScript"}},
		{Title: "Backend Development", Icon: "server", Skills: []string{"Node.js", "Express", "Apollo Server", "Microservices Architecture", "RESTful APIs"}},
		{Title: "Databases & Query Languages", Icon: "database", Skills: []string{"MongoDB", "PostgreSQL", "SQL", "Neo4j", "GraphQL"}},
		{Title: "UI Frameworks & Design Systems", Icon: "code", Skills: []string{"Material UI", "Tailwind CSS", "Ant Design", "Shadcn/ui", "Storybook"}},
		{Title: "Testing & Quality Assurance", Icon: "test-tube", Skills: []string{"Jest", "React Testing Library", "Cypress", "Playwright", "TDD Methodologies"}},
		{Title: "DevOps & Infrastructure", Icon: "cloud", Skills: []string{"AWS", "GCP", "Docker", "Kubernetes", "CI/CD Pipelines", "GitLab CI", "GitHub Actions"}},
		{Title: "Blockchain Technology", Icon: "blocks", Skills: []string{"Ethereum", "Smart Contracts Development", "Web3.js", "DeFi Applications", "NFT Implementation"}},
		{Title: "Development Tools", Icon: "terminal", Skills: []string{"Git", "VS Code", "Jira", "Figma", "Postman", "Docker"}},
	}
}

func education() []domain.Education {
	return []domain.Education{
		{ID: "uca-msc", Degree: "Master of Computer Science", Institution: "Universidad Católica Argentina", Location: "Buenos Aires, Argentina", Period: "2014-2015"},
		{ID: "umaza-bsc", Degree: "Bachelor of Computer Science", Institution: "Universidad Juan Agustín Maza", Location: "Mendoza, Argentina", Period: "2005-2009"},
		{ID: "cambridge-cae", Degree: "Cambridge Advanced English (CAE)", Institution: "University of Cambridge", Location: "Buenos Aires, Argentina", Period: "2012"},
		{ID: "cambridge-fce", Degree: "First Certificate in English (FCE)", Institution: "University of Cambridge", Location: "Mendoza, Argentina", Period: "2009"},
	}
}

func certifications() []domain.Certification {
	return []domain.Certification{
		{ID: "eth-bootcamp", Name: "Ethereum Blockchain Developer Bootcamp With Solidity", Issuer: "Udemy", Date: "2025"},
		{ID: "eth-solidity", Name: "Ethereum and Solidity: The Complete Developer's Guide", Issuer: "Udemy", Date: "2024"},
		{ID: "nextjs", Name: "Next JS: The Complete Developer's Guide", Issuer: "Udemy", Date: "2024"},
		{ID: "mit-iot", Name: "Internet of Things: Roadmap to a Connected World", Issuer: "MIT", Date: "2017"},
	}
}
