package domain

var templateSteps = []JourneyStep{
	{
		ID:          1,
		Title:       "Signup",
		Description: "User discovers XO Launchpad and creates an account",
	},
	{
		ID:          2,
		Title:       "Products → Launchpad",
		Description: "Navigate to Launchpad",
		PainPoints:  []string{"No onboarding tour"},
		Solutions:   []string{"Add interactive tour"},
	},
	{
		ID:          3,
		Title:       "Explore Templates",
		Description: `Click "Explore Templates" option`,
	},
	{
		ID:          4,
		Title:       "Select Template",
		Description: "Choose the required template (N8N/Phi-3-mini-4k-instruct/etc.)",
	},
	{
		ID:          5,
		Title:       "Enter Project Name & Instance Size",
		Description: "Configure deployment settings",
	},
	{
		ID:          6,
		Title:       "Click Create Deployment",
		Description: "Start the deployment process",
	},
	{
		ID:          7,
		Title:       "Wait for Deployment",
		Description: "Deployment is being prepared",
		PainPoints: []string{
			"No indication when it will be ready",
			"No progress bar or status",
			"Unclear what's happening",
		},
		Solutions: []string{
			"Add progress indicator",
			"Show deployment stages",
			"Provide time estimate",
		},
	},
	{
		ID:          8,
		Title:       "502 Error (if accessed early)",
		Description: "User tries to access URL too early",
		PainPoints: []string{
			"Confusing 502 error message",
			"Deployment errors require manual troubleshooting through documentation",
		},
		Solutions: []string{
			`Replace 502 with friendly message e.g., "Still deploying, please wait"`,
			"Display clear error messages with actionable solutions directly in the dashboard",
		},
	},
	{
		ID:          9,
		Title:       "Deployment Ready",
		Description: "Public URL finally works",
		PainPoints: []string{
			"No notification when ready",
			"User has to keep checking",
		},
		Solutions: []string{
			"Send email notification",
			"Show browser notification",
			"Add status indicator",
		},
	},
	{
		ID:          10,
		Title:       "Sign up for N8N",
		Description: "Create account in the deployed N8N instance",
		PainPoints: []string{
			"No visibility into N8N subscription costs or additional charges associated with the deployed service",
		},
		Solutions: []string{
			"Display N8N pricing tiers and usage-based cost estimates before deployment",
		},
	},
}

var githubSteps = []JourneyStep{
	{
		ID:          1,
		Title:       "Signup",
		Description: "User discovers XO Launchpad and creates an account",
	},
	{
		ID:          2,
		Title:       "Products → Launchpad",
		Description: "Navigate to Launchpad",
	},
	{
		ID:          3,
		Title:       "Create from Scratch",
		Description: `Click "Create from Scratch" button`,
	},
	{
		ID:          4,
		Title:       "Select GitHub Repository",
		Description: `Select deployment type as "GitHub Repository"`,
		PainPoints: []string{
			"No information on whether Dockerfile is required in the repository",
			"No guidance on how to configure environment variables in Actions tab",
		},
		Solutions: []string{
			"Display clear Dockerfile requirements before deployment",
			"Provide step-by-step guide for configuring environment variables in Actions tab",
		},
	},
	{
		ID:          5,
		Title:       "Enter Repository Details",
		Description: "Fill in repo URL, branch name",
		PainPoints: []string{
			"No validation before submission",
			"Branch name not auto-detected",
		},
		Solutions: []string{
			"Add real-time validation",
			"Auto-detect default branch",
			"Show repository preview",
		},
	},
	{
		ID:          6,
		Title:       "GitHub Access Token",
		Description: "Generate and enter GitHub Personal Access Token (PAT)",
		PainPoints: []string{
			"Context switch to GitHub",
			"Token not validated upfront",
		},
		Solutions: []string{
			"OAuth integration instead of PAT",
			"Validate token before proceeding",
		},
	},
	{
		ID:          7,
		Title:       "Enter Project Details",
		Description: "Enter project name and application port",
		PainPoints:  []string{"Port configuration unclear for non-technical users"},
		Solutions: []string{
			"Auto-detect port from Dockerfile with option to override, include helpful tooltip explaining port purpose",
		},
	},
	{
		ID:          8,
		Title:       "Create Deployment",
		Description: `Click "Create Deployment" button`,
		PainPoints:  []string{"Docker commands shown without context"},
		Solutions: []string{
			"Explain when/why Docker commands are needed",
			"Hide commands in collapsible section with clear label",
		},
	},
	{
		ID:          9,
		Title:       "Wait for Deployment",
		Description: "Wait for deployment to build and start (5+ minutes)",
		PainPoints: []string{
			"No progress indicator",
			"No time estimate",
			"URL returns 502 error if accessed too early",
			"No notification when ready",
		},
		Solutions: []string{
			"Add progress bar with stages",
			"Show estimated time remaining",
			`Display friendly "Still deploying..." message instead of 502`,
			"Send email/notification when ready",
		},
	},
	{
		ID:          10,
		Title:       "Access Deployment",
		Description: "Finally access the deployed application",
		PainPoints: []string{
			"When errors occur, only a blank screen is displayed with no error details",
			"Difficult to diagnose what went wrong",
		},
		Solutions: []string{
			"Display detailed error messages with suggested fixes and troubleshooting steps",
		},
	},
}

var lovableSteps = []JourneyStep{
	{
		ID:          1,
		Title:       "Create on Website Builder",
		Description: "User creates project using website builders like Claude Code, Lovable, etc.",
	},
	{
		ID:          2,
		Title:       "Connect GitHub",
		Description: "Connect GitHub account in the website builder and sync project",
	},
	{
		ID:          3,
		Title:       "Verify Dockerfile",
		Description: "Check if the website builder generated a proper Dockerfile",
	},
	{
		ID:          4,
		Title:       "Copy Repository URL",
		Description: "Copy the GitHub repository URL from the website builder",
	},
	{
		ID:          5,
		Title:       "Switch to XO Launchpad",
		Description: "Navigate to XO Launchpad",
		PainPoints:  []string{"Not seamless - requires manual switching"},
		Solutions:   []string{"One-click deployment from website builders"},
	},
	{
		ID:          6,
		Title:       "Select GitHub Repository & Configure",
		Description: "Follow same GitHub deployment flow: enter repo details, PAT, project name, and port",
		PainPoints: []string{
			"No guidance on how to configure environment variables in Actions tab",
			"No validation before submission",
			"Branch name not auto-detected",
			"Context switch to GitHub",
			"Token not validated upfront",
			"Port configuration unclear for non-technical users",
		},
		Solutions: []string{
			"Provide step-by-step guide for configuring environment variables in Actions tab",
			"Add real-time validation",
			"Auto-detect default branch",
			"OAuth integration instead of PAT",
			"Validate token before proceeding",
			"Auto-detect port from Dockerfile with helpful tooltip",
		},
	},
	{
		ID:          7,
		Title:       "Wait for Deployment",
		Description: "Wait for deployment to build and start",
		PainPoints: []string{
			"No progress indicator",
			"No time estimate",
			"URL returns 502 error if accessed too early",
			"No notification when ready",
		},
		Solutions: []string{
			"Add progress bar with stages",
			"Show estimated time remaining",
			`Display friendly "Still deploying..." message instead of 502`,
			"Send email/notification when ready",
		},
	},
	{
		ID:          8,
		Title:       "Application Live",
		Description: "Access the deployed application",
	},
}

var localSteps = []JourneyStep{
	{
		ID:          1,
		Title:       "Signup",
		Description: "User discovers XO Launchpad and creates an account",
	},
	{
		ID:          2,
		Title:       "Products → Launchpad",
		Description: "Navigate to Launchpad",
	},
	{
		ID:          3,
		Title:       "Create from Scratch",
		Description: `Click "Create from Scratch" button`,
	},
	{
		ID:          4,
		Title:       "Select Local Build",
		Description: `Select deployment type as "Local Build"`,
	},
	{
		ID:          5,
		Title:       "Enter Project Details",
		Description: "Enter project name and application port",
		PainPoints: []string{
			"No mention that Docker Desktop must be installed",
			"Not clearly stated that Dockerfile must be present in root directory",
			"No guidance that environment variables file should be in root directory",
		},
		Solutions: []string{
			"Display Docker Desktop installation requirement before proceeding",
			"Clearly state required file structure: Dockerfile and .env must be in root directory",
		},
	},
	{
		ID:          6,
		Title:       "Create Deployment",
		Description: `Click "Create Deployment" and receive Docker commands`,
		PainPoints:  []string{"Docker commands shown without clear step-by-step guidance"},
		Solutions:   []string{"Provide numbered step-by-step guide for executing Docker commands"},
	},
	{
		ID:          7,
		Title:       "Run Docker Commands",
		Description: "Open terminal and run: docker login, docker build, docker push",
	},
	{
		ID:          8,
		Title:       "Return to Dashboard",
		Description: "Go back to XO Launchpad dashboard",
		PainPoints:  []string{"No indication that pushing image doesn't auto-deploy"},
		Solutions:   []string{`Warn: "After pushing, click Deploy button"`},
	},
	{
		ID:          9,
		Title:       "Click Deploy Button",
		Description: `Open Actions menu (⋮) and click "Deploy"`,
	},
	{
		ID:          10,
		Title:       "Wait for Container Start",
		Description: "Wait 2+ minutes for container to start",
		PainPoints: []string{
			"URL returns 502 if accessed too early",
			"No proper error handling when deployment errors occur",
		},
		Solutions: []string{
			`Replace 502 with friendly message e.g., "Still deploying, please wait"`,
			"Display clear error messages with actionable solutions directly in the dashboard",
		},
	},
	{
		ID:          11,
		Title:       "Access Deployment",
		Description: "Access the deployed application",
	},
}
