package source

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobdigest/internal/model"
)

// CareerPage is a single company career page to scan.
type CareerPage struct {
	Company string
	URL     string
}

// roleWords are matched against link text on career pages to spot
// relevant openings; career pages share no common markup, so link text
// is the only reliable signal.
var roleWords = []string{"devops", "sre", "site reliability", "platform engineer", "cloud engineer"}

// Ensure CompanyPagesSource implements model.JobSource.
var _ model.JobSource = (*CompanyPagesSource)(nil)

// CompanyPagesSource scans configured company career pages for links
// whose text looks like a DevOps/SRE opening.
type CompanyPagesSource struct {
	pages  []CareerPage
	client *http.Client
}

func NewCompanyPagesSource(pages []CareerPage, client *http.Client) *CompanyPagesSource {
	return &CompanyPagesSource{pages: pages, client: client}
}

func (s *CompanyPagesSource) Name() string { return "Company Pages" }

// Fetch scans each configured page. Pages that fail to load are skipped;
// the first error is returned only when nothing was found at all.
func (s *CompanyPagesSource) Fetch(ctx context.Context, _, _ []string) ([]model.RawJob, error) {
	var jobs []model.RawJob
	var firstErr error

	for _, page := range s.pages {
		doc, err := fetchDocument(ctx, s.client, page.URL)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("career page %s: %w", page.Company, err)
			}
			continue
		}
		jobs = append(jobs, s.parsePage(doc, page)...)
	}

	if len(jobs) == 0 && firstErr != nil {
		return nil, firstErr
	}
	return jobs, nil
}

func (s *CompanyPagesSource) parsePage(doc *goquery.Document, page CareerPage) []model.RawJob {
	var jobs []model.RawJob
	seen := make(map[string]struct{})

	doc.Find("a").Each(func(_ int, link *goquery.Selection) {
		text := cleanText(link.Text())
		if text == "" || !looksLikeRole(text) {
			return
		}
		href, ok := link.Attr("href")
		if !ok {
			return
		}

		resolved := resolveLink(page.URL, href)
		if _, dup := seen[resolved]; dup {
			return
		}
		seen[resolved] = struct{}{}

		// Career pages rarely expose a location on the listing link;
		// configured pages are hand-picked India employers, so default it.
		jobs = append(jobs, model.RawJob{
			Title:    text,
			Company:  page.Company,
			Location: "India",
			Link:     resolved,
			Source:   s.Name(),
		})
	})

	return jobs
}

func looksLikeRole(text string) bool {
	lower := strings.ToLower(text)
	for _, w := range roleWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
