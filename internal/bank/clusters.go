package bank

import "slices"

// SkillTier grades how far along a respondent is within an eligible
// cluster's primary domain.
type SkillTier string

const (
	TierExplore  SkillTier = "explore"
	TierDevelop  SkillTier = "develop"
	TierAdvanced SkillTier = "advanced"
)

// CareerCluster is a named grouping of vocational exploration tracks.
// Domains[0] is the primary domain and governs eligibility and tier.
type CareerCluster struct {
	ID            string
	Name          string
	Domains       []Domain
	Description   string
	Opportunities map[SkillTier][]string
}

// OpportunitiesFor returns the cluster's opportunity list for a tier.
func (c CareerCluster) OpportunitiesFor(tier SkillTier) []string {
	return slices.Clone(c.Opportunities[tier])
}

// PrimaryDomain returns the cluster's governing domain.
func (c CareerCluster) PrimaryDomain() Domain {
	return c.Domains[0]
}

// AllClusters returns the catalog in its fixed iteration order.
// Eligibility selection is first-eligible-wins over this order.
func AllClusters() []CareerCluster {
	return slices.Clone(clusters)
}

var clusters = []CareerCluster{
	{
		ID:          "stem-research",
		Name:        "Science & Research",
		Domains:     []Domain{DomainAnalytical},
		Description: "Investigating how things work: labs, data, experiments, and the questions nobody has answered yet.",
		Opportunities: map[SkillTier][]string{
			TierExplore:  {"Join a science or math club", "Try a free intro coding course", "Watch a university open-lab day"},
			TierDevelop:  {"Enter a science fair or math olympiad", "Build a small data project about something you care about", "Shadow a researcher or engineer for a day"},
			TierAdvanced: {"Take a community-college STEM course early", "Contribute to a citizen-science project", "Apply for a summer research programme"},
		},
	},
	{
		ID:          "design-media",
		Name:        "Design & Media Arts",
		Domains:     []Domain{DomainCreative},
		Description: "Making things people see, hear, and feel: visual design, film, music, writing, and games.",
		Opportunities: map[SkillTier][]string{
			TierExplore:  {"Start a sketchbook, demo reel, or writing journal", "Learn one editing tool end to end", "Redesign a poster or album cover you think is bad"},
			TierDevelop:  {"Publish a short film, zine, or track", "Take a commission from a friend or family member", "Join a school production crew"},
			TierAdvanced: {"Assemble a portfolio with three finished pieces", "Enter a regional design or film competition", "Intern with a local studio or agency"},
		},
	},
	{
		ID:          "people-care",
		Name:        "Health & Human Services",
		Domains:     []Domain{DomainSocial},
		Description: "Work built on understanding people: healthcare, teaching, counselling, and community service.",
		Opportunities: map[SkillTier][]string{
			TierExplore:  {"Volunteer at a community centre or shelter", "Become a peer buddy for new students", "Read one book about how people think"},
			TierDevelop:  {"Train as a peer mediator or first-aider", "Tutor a younger student weekly", "Help run a school wellbeing campaign"},
			TierAdvanced: {"Get a recognised first-aid certification", "Lead a volunteer team for a term", "Shadow a nurse, teacher, or counsellor"},
		},
	},
	{
		ID:          "trades-athletics",
		Name:        "Skilled Trades & Athletics",
		Domains:     []Domain{DomainPhysical},
		Description: "Careers where your hands and body are the instrument: trades, sport, emergency response, and making.",
		Opportunities: map[SkillTier][]string{
			TierExplore:  {"Fix or build one real thing this month", "Join a team or martial-arts class", "Visit a trade-school open day"},
			TierDevelop:  {"Take a workshop course (wood, metal, electronics)", "Train for a graded belt or team selection", "Help a tradesperson on a weekend job"},
			TierAdvanced: {"Start a part-time apprenticeship taster", "Compete at regional level", "Earn a safety or equipment certification"},
		},
	},
	{
		ID:          "engineering-tech",
		Name:        "Engineering & Technology",
		Domains:     []Domain{DomainAnalytical, DomainPhysical},
		Description: "Designing and building systems that have to work in the real world, from bridges to robots to software.",
		Opportunities: map[SkillTier][]string{
			TierExplore:  {"Take apart a broken appliance and map its parts", "Try a robotics starter kit", "Follow a bridge or rocket build documentary"},
			TierDevelop:  {"Join a robotics or maker team", "Automate one chore with code or hardware", "Enter a school engineering challenge"},
			TierAdvanced: {"Lead a build for a competition team", "Prototype an invention and document it", "Apply for an engineering summer school"},
		},
	},
	{
		ID:          "stage-performance",
		Name:        "Performing Arts",
		Domains:     []Domain{DomainCreative, DomainSocial},
		Description: "Expression in front of an audience: theatre, music performance, dance, and public speaking.",
		Opportunities: map[SkillTier][]string{
			TierExplore:  {"Audition for anything, even a small part", "Perform for friends or family once", "Join a choir, band, or drama club"},
			TierDevelop:  {"Take a named role in a school production", "Busk or play an open-mic night", "Enter a speech or debate competition"},
			TierAdvanced: {"Lead or direct a student production", "Perform at a community venue", "Prepare an audition piece for a youth company"},
		},
	},
	{
		ID:          "community-leadership",
		Name:        "Community & Leadership",
		Domains:     []Domain{DomainSocial, DomainAnalytical},
		Description: "Organising people toward a goal: student government, activism, event organising, and management.",
		Opportunities: map[SkillTier][]string{
			TierExplore:  {"Attend a student-council meeting", "Help organise one school event", "Interview someone whose leadership you admire"},
			TierDevelop:  {"Run for a class representative position", "Organise a fundraiser end to end", "Start a small club around something you love"},
			TierAdvanced: {"Lead a school-wide campaign", "Represent your school at a youth summit", "Mentor a younger student leader"},
		},
	},
	{
		ID:          "outdoor-environment",
		Name:        "Environment & Outdoors",
		Domains:     []Domain{DomainPhysical, DomainAnalytical},
		Description: "Working with the natural world: conservation, agriculture, marine and field science, outdoor leadership.",
		Opportunities: map[SkillTier][]string{
			TierExplore:  {"Join a local clean-up or planting day", "Start a small garden, even in pots", "Learn to identify ten local species"},
			TierDevelop:  {"Volunteer with a conservation group monthly", "Complete a navigation or camp-craft course", "Run a school recycling audit"},
			TierAdvanced: {"Lead an outdoor expedition section", "Collect field data for a real survey", "Earn an outdoor-leadership award"},
		},
	},
}
