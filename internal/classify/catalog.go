package classify

// Catalog holds the keyword lists the classifier matches against. The
// lists are plain data so callers can extend or replace them from
// configuration, and tests can run against synthetic catalogs.
type Catalog struct {
	// InternationalLocations reject a posting outright when they occur in
	// its location. Checked before any Indian keyword.
	InternationalLocations []string
	// IndianLocations accept a posting's location as India-based.
	IndianLocations []string
	// ExperienceExclusions disqualify a posting as non-entry-level.
	// Checked before any inclusion signal.
	ExperienceExclusions []string
	// FresherSignals qualify a posting as entry-level when found in the
	// combined title and description.
	FresherSignals []string
	// JuniorTitleWords qualify a posting when found in the title alone.
	// Deliberately narrower than FresherSignals.
	JuniorTitleWords []string
}

// DefaultCatalog returns the built-in keyword lists tuned for entry-level
// DevOps/SRE hiring in India.
func DefaultCatalog() Catalog {
	return Catalog{
		InternationalLocations: []string{
			"usa", "united states", "u.s.", "united kingdom", "london",
			"canada", "toronto", "vancouver", "australia", "sydney",
			"melbourne", "singapore", "dubai", "uae", "saudi", "qatar",
			"germany", "berlin", "munich", "netherlands", "amsterdam",
			"france", "paris", "poland", "warsaw", "ireland", "dublin",
			"japan", "tokyo", "philippines", "manila", "europe", "emea",
			"latam", "new york", "california", "texas", "florida",
			"arizona", "phoenix", "seattle", "austin", "boston", "chicago",
			"denver", "atlanta", "san francisco", "bay area", "virginia",
			"ohio", "colorado", "oregon", "nevada", "utah", "new jersey",
		},
		IndianLocations: []string{
			"india", "bengaluru", "bangalore", "hyderabad", "pune",
			"mumbai", "chennai", "delhi", "new delhi", "noida", "gurgaon",
			"gurugram", "ncr", "kolkata", "ahmedabad", "jaipur", "indore",
			"kochi", "cochin", "chandigarh", "coimbatore",
			"thiruvananthapuram", "trivandrum", "nagpur", "lucknow",
			"bhubaneswar", "mysore", "mysuru", "vadodara", "surat",
		},
		ExperienceExclusions: []string{
			"senior", "sr.", "lead", "principal", "staff engineer",
			"architect", "manager", "head of", "director", "vp ",
			"3+ year", "4+ year", "5+ year", "6+ year", "7+ year",
			"8+ year", "10+ year", "3-5 year", "4-6 year", "5-7 year",
			"5-8 year", "6-8 year", "8-10 year",
			"minimum 3 year", "minimum 4 year", "minimum 5 year",
			"at least 3 year", "at least 4 year", "at least 5 year",
			"experienced professional",
		},
		FresherSignals: []string{
			"fresher", "entry level", "entry-level", "graduate",
			"new grad", "campus hire", "trainee", "internship",
			"junior", "0-1 year", "0-2 year", "0 to 1 year",
			"0 to 2 year", "1-2 year", "no experience required",
			"no prior experience",
		},
		JuniorTitleWords: []string{
			"junior", "jr.", "associate", "trainee", "graduate",
		},
	}
}
