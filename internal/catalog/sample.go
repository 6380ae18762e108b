package catalog

import "github.com/google/uuid"

// sampleID derives a stable id from the listing name so the sample catalog
// survives reordering without changing identities.
func sampleID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("agent:"+name)).String()
}

// SampleAgents returns the built-in demo catalog. The set is intentionally
// uneven: some categories are crowded, some have a single listing, and one
// known category has none at all.
func SampleAgents() []Agent {
	return []Agent{
		{
			ID:               sampleID("TaskPilot"),
			Name:             "TaskPilot",
			Description:      "Plans your day, triages your inbox and keeps meeting notes so you don't have to.",
			Tags:             []string{"planning", "email", "notes"},
			Category:         CategoryProductivity,
			Rating:           4.8,
			ReviewCount:      2134,
			Pricing:          Subscription(9.99, "month"),
			IsBestPerforming: true,
			IsRecommended:    true,
			LogoURL:          "https://cdn.agentdeck.dev/logos/taskpilot.png",
		},
		{
			ID:               sampleID("DraftSmith"),
			Name:             "DraftSmith",
			Description:      "Long-form writing partner for essays, scripts and stories with tone control.",
			Tags:             []string{"writing", "editing", "tone"},
			Category:         CategoryCreative,
			Rating:           4.7,
			ReviewCount:      1892,
			Pricing:          Subscription(14.99, "month"),
			IsBestPerforming: true,
			LogoURL:          "https://cdn.agentdeck.dev/logos/draftsmith.png",
		},
		{
			ID:            sampleID("LedgerLens"),
			Name:          "LedgerLens",
			Description:   "Reads receipts and statements, categorises spending and flags anomalies.",
			Tags:          []string{"budgeting", "receipts", "spending"},
			Category:      CategoryFinance,
			Rating:        4.6,
			ReviewCount:   3412,
			Pricing:       Subscription(7.49, "month"),
			IsRecommended: true,
			LogoURL:       "https://cdn.agentdeck.dev/logos/ledgerlens.png",
		},
		{
			ID:               sampleID("PitchCraft"),
			Name:             "PitchCraft",
			Description:      "Builds investor decks and one-pagers from a rough product outline.",
			Tags:             []string{"decks", "startups", "fundraising"},
			Category:         CategoryBusiness,
			Rating:           4.5,
			ReviewCount:      987,
			Pricing:          OneTime(29.00),
			IsBestPerforming: true,
			IsRecommended:    true,
		},
		{
			ID:          sampleID("TutorOwl"),
			Name:        "TutorOwl",
			Description: "Adaptive study sessions with spaced repetition across any school subject.",
			Tags:        []string{"studying", "flashcards", "homework"},
			Category:    CategoryEducation,
			Rating:      4.4,
			ReviewCount: 2756,
			Pricing:     Free(),
			LogoURL:     "https://cdn.agentdeck.dev/logos/tutorowl.png",
		},
		{
			ID:            sampleID("CodeCoach"),
			Name:          "CodeCoach",
			Description:   "Interactive programming lessons that review your real commits and suggest drills.",
			Tags:          []string{"coding", "code review", "practice"},
			Category:      CategoryEducationDev,
			Rating:        4.7,
			ReviewCount:   1544,
			Pricing:       Subscription(19.99, "month"),
			IsRecommended: true,
		},
		{
			ID:          sampleID("MediNote"),
			Name:        "MediNote",
			Description: "Summarises symptoms into clear notes to bring to your next appointment.",
			Tags:        []string{"health", "symptoms", "notes"},
			Category:    CategoryHealthcare,
			Rating:      4.2,
			ReviewCount: 643,
			Pricing:     Free(),
		},
		{
			ID:               sampleID("CampaignKit"),
			Name:             "CampaignKit",
			Description:      "Drafts ad copy, schedules posts and A/B tests subject lines automatically.",
			Tags:             []string{"ads", "social", "copywriting"},
			Category:         CategoryMarketing,
			Rating:           4.3,
			ReviewCount:      1201,
			Pricing:          Subscription(24.99, "month"),
			IsBestPerforming: true,
		},
		{
			ID:          sampleID("HelpdeskHero"),
			Name:        "HelpdeskHero",
			Description: "First-line support replies with your knowledge base and a friendly voice.",
			Tags:        []string{"support", "tickets", "faq"},
			Category:    CategoryCustomerService,
			Rating:      4.1,
			ReviewCount: 2087,
			Pricing:     Subscription(49.00, "month"),
		},
		{
			ID:            sampleID("ChartSense"),
			Name:          "ChartSense",
			Description:   "Turns spreadsheets into narrated dashboards and plain-language insights.",
			Tags:          []string{"data", "dashboards", "reports"},
			Category:      CategoryAnalytics,
			Rating:        4.6,
			ReviewCount:   876,
			Pricing:       OneTime(59.00),
			IsRecommended: true,
		},
		{
			ID:          sampleID("RoamRanger"),
			Name:        "RoamRanger",
			Description: "Plans multi-city trips with budgets, visas and day-by-day itineraries.",
			Tags:        []string{"travel", "itinerary", "flights"},
			Category:    CategoryTravel,
			Rating:      4.5,
			ReviewCount: 1658,
			Pricing:     Free(),
		},
		{
			ID:               sampleID("ShopScout"),
			Name:             "ShopScout",
			Description:      "Watches prices, writes product listings and answers buyer questions.",
			Tags:             []string{"listings", "pricing", "storefront"},
			Category:         CategoryEcommerce,
			Rating:           4.4,
			ReviewCount:      1993,
			Pricing:          Subscription(12.99, "month"),
			IsBestPerforming: true,
		},
		{
			ID:          sampleID("FocusFlow"),
			Name:        "FocusFlow",
			Description: "Pomodoro-style focus coach that blocks distractions and logs deep-work streaks.",
			Tags:        []string{"focus", "habits", "timeboxing"},
			Category:    CategoryProductivity,
			Rating:      4.3,
			ReviewCount: 1340,
			Pricing:     Free(),
		},
		{
			ID:          sampleID("BrandPalette"),
			Name:        "BrandPalette",
			Description: "Generates logo directions, colour palettes and brand voice guides.",
			Tags:        []string{"branding", "design", "palette"},
			Category:    CategoryCreative,
			Rating:      4.0,
			ReviewCount: 412,
			Pricing:     OneTime(19.00),
		},
		{
			ID:          sampleID("InboxZeroed"),
			Name:        "InboxZeroed",
			Description: "Clears newsletter backlog and drafts short replies for routine email.",
			Tags:        []string{"email", "triage", "replies"},
			Category:    CategoryProductivity,
			Rating:      3.9,
			ReviewCount: 789,
			Pricing:     Free(),
		},
	}
}
