package locale

// Dictionary holds every text field the presentation layer renders for one
// language. All sequence and map fields are optional: a dictionary missing
// one of them still resolves, and consumers receive an empty collection
// rather than nil once Normalize has run.
type Dictionary struct {
	Brand      string `toml:"brand" json:"brand"`
	Tagline    string `toml:"tagline" json:"tagline"`
	SubTagline string `toml:"sub_tagline" json:"subTagline"`

	CtaPrimary   string `toml:"cta_primary" json:"ctaPrimary"`
	CtaSecondary string `toml:"cta_secondary" json:"ctaSecondary"`
	CtaPolicy    string `toml:"cta_policy" json:"ctaPolicy"`

	Nav        map[string]string `toml:"nav" json:"nav"`
	Ribbons    []string          `toml:"ribbons" json:"ribbons"`
	TrustBlurb string            `toml:"trust_blurb" json:"trustBlurb"`

	ServicesTitle string        `toml:"services_title" json:"servicesTitle"`
	Services      []ServiceItem `toml:"services" json:"services"`

	HospitalTitle string   `toml:"hospital_title" json:"hospitalTitle"`
	HospitalNote  string   `toml:"hospital_note" json:"hospitalNote"`
	HospitalDepts []string `toml:"hospital_depts" json:"hospitalDepts"`

	ProcessTitle string        `toml:"process_title" json:"processTitle"`
	Process      []ProcessStep `toml:"process" json:"process"`

	PricingTitle string        `toml:"pricing_title" json:"pricingTitle"`
	PricingNote  string        `toml:"pricing_note" json:"pricingNote"`
	Plans        []PricingPlan `toml:"plans" json:"plans"`

	TravelTitle   string   `toml:"travel_title" json:"travelTitle"`
	TravelBullets []string `toml:"travel_bullets" json:"travelBullets"`

	PolicyLinksTitle    string         `toml:"policy_links_title" json:"policyLinksTitle"`
	PolicyLinksDesc     string         `toml:"policy_links_desc" json:"policyLinksDesc"`
	PolicyLinksGroups   []LinkGroup    `toml:"policy_links_groups" json:"policyLinksGroups"`
	PolicyEligibleTitle string         `toml:"policy_eligible_title" json:"policyEligibleTitle"`
	PolicyEligibleNote  string         `toml:"policy_eligible_note" json:"policyEligibleNote"`
	EligibleGroups      []CountryGroup `toml:"eligible_groups" json:"eligibleGroups"`
	PolicyCTA           string         `toml:"policy_cta" json:"policyCTA"`

	CasesTitle   string `toml:"cases_title" json:"casesTitle"`
	ContactTitle string `toml:"contact_title" json:"contactTitle"`
	ContactBlurb string `toml:"contact_blurb" json:"contactBlurb"`

	Form FormLabels `toml:"form" json:"form"`

	Legal      string `toml:"legal" json:"legal"`
	Switch     string `toml:"switch" json:"switch"`
	SubmitOK   string `toml:"submit_ok" json:"submitOk"`
	SubmitFail string `toml:"submit_fail" json:"submitFail"`
}

// ServiceItem is one entry of the services grid
type ServiceItem struct {
	Title string `toml:"title" json:"title"`
	Desc  string `toml:"desc" json:"desc"`
}

// ProcessStep is one step of the standard process section
type ProcessStep struct {
	Step  string `toml:"step" json:"step"`
	Title string `toml:"title" json:"title"`
	Text  string `toml:"text" json:"text"`
}

// PricingPlan is one pricing card
type PricingPlan struct {
	Name  string   `toml:"name" json:"name"`
	Price string   `toml:"price" json:"price"`
	Items []string `toml:"items" json:"items"`
}

// LinkGroup collects official policy links for one port city
type LinkGroup struct {
	City  string `toml:"city" json:"city"`
	Links []Link `toml:"links" json:"links"`
}

// Link is a single labeled URL
type Link struct {
	Name string `toml:"name" json:"name"`
	Href string `toml:"href" json:"href"`
}

// CountryGroup is one region of TWOV-eligible countries. Countries may be
// absent in a dictionary; consumers must get an empty list, not nil.
type CountryGroup struct {
	Region    string   `toml:"region" json:"region"`
	Countries []string `toml:"countries" json:"countries"`
}

// FormLabels carries the contact form field labels
type FormLabels struct {
	Name    string `toml:"name" json:"name"`
	Email   string `toml:"email" json:"email"`
	Phone   string `toml:"phone" json:"phone"`
	Country string `toml:"country" json:"country"`
	Need    string `toml:"need" json:"need"`
	TWOV    string `toml:"twov" json:"twov"`
	Submit  string `toml:"submit" json:"submit"`
}

// Normalize replaces nil collections with empty ones, recursively, so the
// serialized dictionary never carries null where the presentation layer
// expects an iterable. Called once at load time; dictionaries are immutable
// afterwards.
func (d *Dictionary) Normalize() {
	if d.Nav == nil {
		d.Nav = map[string]string{}
	}
	if d.Ribbons == nil {
		d.Ribbons = []string{}
	}
	if d.Services == nil {
		d.Services = []ServiceItem{}
	}
	if d.HospitalDepts == nil {
		d.HospitalDepts = []string{}
	}
	if d.Process == nil {
		d.Process = []ProcessStep{}
	}
	if d.Plans == nil {
		d.Plans = []PricingPlan{}
	}
	for i := range d.Plans {
		if d.Plans[i].Items == nil {
			d.Plans[i].Items = []string{}
		}
	}
	if d.TravelBullets == nil {
		d.TravelBullets = []string{}
	}
	if d.PolicyLinksGroups == nil {
		d.PolicyLinksGroups = []LinkGroup{}
	}
	for i := range d.PolicyLinksGroups {
		if d.PolicyLinksGroups[i].Links == nil {
			d.PolicyLinksGroups[i].Links = []Link{}
		}
	}
	if d.EligibleGroups == nil {
		d.EligibleGroups = []CountryGroup{}
	}
	for i := range d.EligibleGroups {
		if d.EligibleGroups[i].Countries == nil {
			d.EligibleGroups[i].Countries = []string{}
		}
	}
}

// NavLabel returns the navigation label for key, or empty when absent.
// Safe on a nil dictionary.
func (d *Dictionary) NavLabel(key string) string {
	if d == nil {
		return ""
	}
	return d.Nav[key]
}

// RibbonList returns the hero ribbons, never nil
func (d *Dictionary) RibbonList() []string {
	if d == nil || d.Ribbons == nil {
		return []string{}
	}
	return d.Ribbons
}

// ServiceList returns the services grid entries, never nil
func (d *Dictionary) ServiceList() []ServiceItem {
	if d == nil || d.Services == nil {
		return []ServiceItem{}
	}
	return d.Services
}

// EligibleGroupList returns the TWOV country groups, never nil
func (d *Dictionary) EligibleGroupList() []CountryGroup {
	if d == nil || d.EligibleGroups == nil {
		return []CountryGroup{}
	}
	return d.EligibleGroups
}

// CountryList returns the group's countries, never nil
func (g CountryGroup) CountryList() []string {
	if g.Countries == nil {
		return []string{}
	}
	return g.Countries
}
