package source

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobdigest/internal/model"
)

const naukriBaseURL = "https://www.naukri.com"

// cardsPerSearch bounds how many job cards a single search page yields.
const cardsPerSearch = 20

// Ensure NaukriSource implements model.JobSource.
var _ model.JobSource = (*NaukriSource)(nil)

// NaukriSource scrapes search result pages on naukri.com and follows each
// card's link once to pull the job description.
type NaukriSource struct {
	baseURL      string
	client       *http.Client
	fetchDetails bool
}

// NewNaukriSource returns a source hitting the public naukri.com search
// pages. Detail pages (for descriptions) are fetched per card.
func NewNaukriSource(client *http.Client) *NaukriSource {
	return &NaukriSource{baseURL: naukriBaseURL, client: client, fetchDetails: true}
}

func (s *NaukriSource) Name() string { return "Naukri" }

// Fetch searches one page per role. A failing search skips that role;
// the error is returned only when no search produced anything.
func (s *NaukriSource) Fetch(ctx context.Context, roles, _ []string) ([]model.RawJob, error) {
	var jobs []model.RawJob
	var firstErr error

	for _, role := range limitRoles(roles) {
		searchURL := fmt.Sprintf("%s/%s-jobs", s.baseURL, strings.ToLower(strings.ReplaceAll(role, " ", "-")))

		doc, err := fetchDocument(ctx, s.client, searchURL)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("naukri search for %q: %w", role, err)
			}
			continue
		}
		jobs = append(jobs, s.parseSearchPage(ctx, doc)...)
	}

	if len(jobs) == 0 && firstErr != nil {
		return nil, firstErr
	}
	return jobs, nil
}

func (s *NaukriSource) parseSearchPage(ctx context.Context, doc *goquery.Document) []model.RawJob {
	var jobs []model.RawJob

	doc.Find("article.jobTuple, div.jobTuple").EachWithBreak(func(i int, card *goquery.Selection) bool {
		if i >= cardsPerSearch {
			return false
		}

		title := card.Find("a.title").First()
		if title.Length() == 0 {
			title = card.Find("h3 a").First()
		}
		href, ok := title.Attr("href")
		if !ok || cleanText(title.Text()) == "" {
			return true
		}
		link := resolveLink(s.baseURL, href)

		company := cleanText(card.Find("a.subTitle, div.companyInfo").First().Text())
		if company == "" {
			company = "Not specified"
		}

		loc := cleanText(card.Find("span.locationsContainer, li.location").First().Text())
		if loc == "" {
			loc = "India"
		}

		jobs = append(jobs, model.RawJob{
			Title:       cleanText(title.Text()),
			Company:     company,
			Location:    loc,
			Link:        link,
			Description: s.fetchDescription(ctx, link),
			Source:      s.Name(),
		})
		return true
	})

	return jobs
}

// fetchDescription follows the card link and extracts the JD text.
// Best-effort: any failure yields an empty description, which the
// pipeline handles by extracting from the title instead.
func (s *NaukriSource) fetchDescription(ctx context.Context, link string) string {
	if !s.fetchDetails {
		return ""
	}
	doc, err := fetchDocument(ctx, s.client, link)
	if err != nil {
		return ""
	}
	return cleanText(doc.Find("div.jobDescription, section.job-description").First().Text())
}
