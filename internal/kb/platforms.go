package kb

// Platform describes a partner learning platform with a keyword-search
// URL template. The template contains a single {query} substitution point
// for a URL-escaped query string.
type Platform struct {
	Name        string
	SearchURL   string
	BaseURL     string
	Type        string
	TypicalCost string
}

var platforms = map[string]Platform{
	"edX": {
		Name:        "edX",
		SearchURL:   "https://www.edx.org/search?q={query}&tab=program",
		BaseURL:     "https://www.edx.org",
		Type:        "Plataforma educativa",
		TypicalCost: "Gratis (auditar) / $50-$300 USD (certificado verificado)",
	},
	"LinkedIn Learning": {
		Name:        "LinkedIn Learning",
		SearchURL:   "https://www.linkedin.com/learning/search?keywords={query}",
		BaseURL:     "https://www.linkedin.com/learning",
		Type:        "Plataforma profesional",
		TypicalCost: "$29.99/mes USD (suscripción)",
	},
	"Google Certificates": {
		Name:        "Google Certificates",
		SearchURL:   "https://grow.google/certificates/",
		BaseURL:     "https://grow.google/certificates",
		Type:        "Certificación profesional",
		TypicalCost: "$49/mes USD vía Coursera",
	},
	"FutureLearn": {
		Name:        "FutureLearn",
		SearchURL:   "https://www.futurelearn.com/search?q={query}&filter_type=microcredential",
		BaseURL:     "https://www.futurelearn.com",
		Type:        "Plataforma de microcredenciales",
		TypicalCost: "$500-$1,500 USD por microcredencial",
	},
	"Credly / Acclaim": {
		Name:        "Credly / Acclaim",
		SearchURL:   "https://www.credly.com/organizations/search?q={query}",
		BaseURL:     "https://www.credly.com",
		Type:        "Plataforma de badges digitales",
		TypicalCost: "Varía según emisor",
	},
	"IEEE": {
		Name:        "IEEE",
		SearchURL:   "https://iln.ieee.org/public/searchresults.aspx?q={query}",
		BaseURL:     "https://iln.ieee.org",
		Type:        "Certificación industria (ingeniería/tecnología)",
		TypicalCost: "$100-$500 USD",
	},
	"PMI (Project Management Institute)": {
		Name:        "PMI (Project Management Institute)",
		SearchURL:   "https://www.pmi.org/certifications",
		BaseURL:     "https://www.pmi.org",
		Type:        "Certificación industria (gestión de proyectos)",
		TypicalCost: "$225-$555 USD (examen)",
	},
	"HubSpot Academy": {
		Name:        "HubSpot Academy",
		SearchURL:   "https://academy.hubspot.com/courses?q={query}",
		BaseURL:     "https://academy.hubspot.com",
		Type:        "Certificación marketing/ventas",
		TypicalCost: "Gratis",
	},
	"IBM SkillsBuild": {
		Name:        "IBM SkillsBuild",
		SearchURL:   "https://skillsbuild.org/learn?q={query}",
		BaseURL:     "https://skillsbuild.org",
		Type:        "Plataforma tecnológica",
		TypicalCost: "Gratis",
	},
	"Microsoft Learn": {
		Name:        "Microsoft Learn",
		SearchURL:   "https://learn.microsoft.com/en-us/search/?terms={query}&category=Credentials",
		BaseURL:     "https://learn.microsoft.com",
		Type:        "Certificación tecnológica",
		TypicalCost: "$80-$165 USD (examen)",
	},
	"AWS Training & Certification": {
		Name:        "AWS Training & Certification",
		SearchURL:   "https://aws.amazon.com/training/learn-about/?nc2=sb_tr_la&trk=8287a443-b5f2-4036-bfcd-5885b6cd1faa&sc_channel=search",
		BaseURL:     "https://aws.amazon.com/training",
		Type:        "Certificación cloud/tecnología",
		TypicalCost: "$100-$300 USD (examen)",
	},
	"Salesforce Trailhead": {
		Name:        "Salesforce Trailhead",
		SearchURL:   "https://trailhead.salesforce.com/en/search?keywords={query}",
		BaseURL:     "https://trailhead.salesforce.com/",
		Type:        "Plataforma de habilidades empresariales y CRM",
		TypicalCost: "Gratis (aprendizaje) / $200-$400 USD (examen certificación)",
	},
	"Meta Blueprint": {
		Name:        "Meta Blueprint",
		SearchURL:   "https://www.facebook.com/business/learn/certification?q={query}",
		BaseURL:     "https://www.facebook.com/business/learn/certification",
		Type:        "Certificación en Marketing Digital y Redes Sociales",
		TypicalCost: "$99-$150 USD (examen)",
	},
	"Autodesk Education": {
		Name:        "Autodesk Education",
		SearchURL:   "https://www.autodesk.com/certification/all-certifications?search={query}",
		BaseURL:     "https://www.autodesk.com/certification",
		Type:        "Certificación en Diseño, Ingeniería y Arquitectura",
		TypicalCost: "$150-$250 USD (examen)",
	},
	"Cisco Networking Academy": {
		Name:        "Cisco Networking Academy",
		SearchURL:   "https://www.netacad.com/courses?q={query}",
		BaseURL:     "https://www.netacad.com",
		Type:        "Certificación redes/tecnología",
		TypicalCost: "Gratis (curso) / $165-$330 USD (examen)",
	},
}

// priorityPlatforms lists the platforms that get a synthetic search entry
// on every call, in emission order.
var priorityPlatforms = []string{
	"edX", "FutureLearn", "LinkedIn Learning",
	"Microsoft Learn", "IBM SkillsBuild", "HubSpot Academy",
	"Salesforce Trailhead", "Meta Blueprint", "Autodesk Education",
}

// Platforms returns the full platform table keyed by display name.
func Platforms() map[string]Platform {
	return platforms
}

// PriorityPlatforms returns the ordered list of platforms that receive a
// search entry per analysis.
func PriorityPlatforms() []string {
	return priorityPlatforms
}
