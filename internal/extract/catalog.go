package extract

// Catalog holds the word lists driving keyword and skill extraction.
// Plain data so configuration can override it and tests can substitute
// synthetic catalogs.
type Catalog struct {
	// StopWords are common English function words and domain filler
	// excluded from keyword counting.
	StopWords []string
	// GenericTerms are technical-sounding but uninformative nouns dropped
	// after frequency ranking.
	GenericTerms []string
	// Acronyms are rendered upper-case instead of Title-case.
	Acronyms []string
	// Skills is the ordered technical-skill catalog, matched as upper-case
	// substrings. Order determines scan priority.
	Skills []string
	// DefaultKeywords pad thin keyword output, in listed order.
	DefaultKeywords []string
	// DefaultSkills pad thin skill output, in listed order.
	DefaultSkills []string
}

// DefaultCatalog returns the built-in extraction lists for DevOps/SRE
// job descriptions.
func DefaultCatalog() Catalog {
	return Catalog{
		StopWords: []string{
			"the", "and", "for", "are", "with", "you", "this", "that",
			"will", "have", "been", "from", "they", "know", "want",
			"good", "much", "some", "time", "very", "when", "come",
			"here", "how", "just", "like", "long", "make", "many",
			"over", "such", "take", "than", "them", "well", "were",
			"work", "year", "years", "job", "role", "position",
			"company", "team", "our", "your", "their", "about", "into",
			"what", "who", "all", "can", "has", "not", "also", "more",
		},
		GenericTerms: []string{
			"system", "systems", "platform", "platforms", "service",
			"services", "tool", "tools", "solution", "solutions",
			"technology", "technologies", "software", "application",
			"applications", "environment", "environments", "process",
			"processes", "skills", "experience", "knowledge", "ability",
			"responsibilities", "requirements",
		},
		Acronyms: []string{
			"aws", "gcp", "sre", "api", "apis", "sql", "nosql", "k8s",
			"cicd", "iac", "vpc", "iam", "dns", "ssl", "tls", "vpn",
			"sla", "slo", "etl",
		},
		Skills: []string{
			"AWS", "GCP", "AZURE", "GOOGLE CLOUD", "AMAZON WEB SERVICES",
			"DOCKER", "KUBERNETES", "K8S", "TERRAFORM", "ANSIBLE",
			"PUPPET", "CHEF", "JENKINS", "GITLAB CI", "GITHUB ACTIONS",
			"CIRCLECI", "TRAVIS CI", "CI/CD", "ARGOCD", "HELM",
			"PROMETHEUS", "GRAFANA", "DATADOG", "NEW RELIC",
			"CLOUDWATCH", "ELK STACK", "SPLUNK",
			"PYTHON", "BASH", "GOLANG", "RUBY", "PERL", "POWERSHELL",
			"LINUX", "UBUNTU", "CENTOS", "RHEL", "WINDOWS SERVER",
			"NGINX", "APACHE", "HAPROXY", "LOAD BALANCER",
			"MYSQL", "POSTGRESQL", "MONGODB", "REDIS", "ELASTICSEARCH",
			"KAFKA", "RABBITMQ", "ISTIO", "LINKERD", "VAULT", "CONSUL",
			"GIT", "SVN", "JIRA", "CONFLUENCE",
		},
		DefaultKeywords: []string{
			"Devops", "Cloud", "Automation", "Infrastructure",
			"Deployment", "Monitoring", "Scripting", "Pipeline",
			"Reliability", "Containers",
		},
		DefaultSkills: []string{
			"AWS", "DOCKER", "KUBERNETES", "TERRAFORM", "JENKINS",
			"ANSIBLE", "PYTHON", "BASH", "GIT", "LINUX",
		},
	}
}
