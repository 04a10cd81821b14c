package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"jobdigest/internal/model"
)

const indeedBaseURL = "https://in.indeed.com"

// maxIndeedLocations bounds the role x location search grid.
const maxIndeedLocations = 4

// Ensure IndeedSource implements model.JobSource.
var _ model.JobSource = (*IndeedSource)(nil)

// IndeedSource scrapes in.indeed.com search results, restricted to
// postings from the last day.
type IndeedSource struct {
	baseURL string
	client  *http.Client
}

func NewIndeedSource(client *http.Client) *IndeedSource {
	return &IndeedSource{baseURL: indeedBaseURL, client: client}
}

func (s *IndeedSource) Name() string { return "Indeed" }

// Fetch searches each role in each location. Failing searches are
// skipped; the first error is returned only when nothing was found.
func (s *IndeedSource) Fetch(ctx context.Context, roles, locations []string) ([]model.RawJob, error) {
	if len(locations) > maxIndeedLocations {
		locations = locations[:maxIndeedLocations]
	}

	var jobs []model.RawJob
	var firstErr error

	for _, role := range limitRoles(roles) {
		for _, loc := range locations {
			searchURL := fmt.Sprintf("%s/jobs?q=%s&l=%s&fromage=1",
				s.baseURL, url.QueryEscape(role), url.QueryEscape(loc))

			doc, err := fetchDocument(ctx, s.client, searchURL)
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("indeed search for %q in %q: %w", role, loc, err)
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

func (s *IndeedSource) parseSearchPage(doc *goquery.Document, fallbackLocation string) []model.RawJob {
	var jobs []model.RawJob

	doc.Find("div.job_seen_beacon, div[data-jk]").EachWithBreak(func(i int, card *goquery.Selection) bool {
		if i >= cardsPerSearch {
			return false
		}

		titleLink := card.Find("h2.jobTitle a").First()
		if titleLink.Length() == 0 {
			titleLink = card.Find("a[data-jk]").First()
		}
		href, ok := titleLink.Attr("href")
		if !ok {
			return true
		}

		title := cleanText(titleLink.AttrOr("title", ""))
		if title == "" {
			title = cleanText(titleLink.Text())
		}
		if title == "" {
			return true
		}

		company := cleanText(card.Find("span.companyName, [data-testid='company-name']").First().Text())
		if company == "" {
			company = "Not specified"
		}

		loc := cleanText(card.Find("div.companyLocation, [data-testid='job-location']").First().Text())
		if loc == "" {
			loc = fallbackLocation
		}

		jobs = append(jobs, model.RawJob{
			Title:    title,
			Company:  company,
			Location: loc,
			Link:     resolveLink(s.baseURL, href),
			Source:   s.Name(),
		})
		return true
	})

	return jobs
}
