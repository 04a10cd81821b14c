package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"jobdigest/internal/model"
)

const linkedinBaseURL = "https://www.linkedin.com"

// Ensure LinkedInSource implements model.JobSource.
var _ model.JobSource = (*LinkedInSource)(nil)

// LinkedInSource scrapes public LinkedIn job search pages, restricted to
// the last 24 hours. LinkedIn aggressively blocks automated requests, so
// this source is best-effort and frequently returns nothing.
type LinkedInSource struct {
	baseURL string
	client  *http.Client
}

func NewLinkedInSource(client *http.Client) *LinkedInSource {
	return &LinkedInSource{baseURL: linkedinBaseURL, client: client}
}

func (s *LinkedInSource) Name() string { return "LinkedIn" }

// Fetch searches each role against "India" and "Remote". Descriptions
// are left empty: the JD sits behind another request that rarely
// succeeds unauthenticated.
func (s *LinkedInSource) Fetch(ctx context.Context, roles, _ []string) ([]model.RawJob, error) {
	searchLocations := []string{"India", "Remote"}

	var jobs []model.RawJob
	var firstErr error

	for _, role := range limitRoles(roles) {
		for _, loc := range searchLocations {
			searchURL := fmt.Sprintf("%s/jobs/search/?keywords=%s&location=%s&f_TPR=r86400",
				s.baseURL, url.QueryEscape(role), url.QueryEscape(loc))

			doc, err := fetchDocument(ctx, s.client, searchURL)
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("linkedin search for %q in %q: %w", role, loc, err)
				}
				continue
			}
			jobs = append(jobs, s.parseSearchPage(doc, loc)...)
		}
	}

	if len(jobs) == 0 && firstErr != nil {
		return nil, firstErr
	}
	return jobs, nil
}

func (s *LinkedInSource) parseSearchPage(doc *goquery.Document, fallbackLocation string) []model.RawJob {
	var jobs []model.RawJob

	doc.Find("div.job-search-card, li.result-card").EachWithBreak(func(i int, card *goquery.Selection) bool {
		if i >= cardsPerSearch {
			return false
		}

		link := card.Find("a.base-card__full-link").First()
		if link.Length() == 0 {
			link = card.Find("h3 a").First()
		}
		href, ok := link.Attr("href")
		if !ok {
			return true
		}

		title := cleanText(link.Text())
		if title == "" {
			title = cleanText(card.Find("h3").First().Text())
		}
		if title == "" {
			return true
		}

		company := cleanText(card.Find("h4.base-search-card__subtitle").First().Text())
		if company == "" {
			company = "Not specified"
		}

		loc := cleanText(card.Find("span.job-search-card__location").First().Text())
		if loc == "" {
			loc = fallbackLocation
		}

		jobs = append(jobs, model.RawJob{
			Title:    title,
			Company:  company,
			Location: loc,
			Link:     href,
			Source:   s.Name(),
		})
		return true
	})

	return jobs
}
