// Package report renders a batch of jobs into an HTML digest suitable
// for email delivery or writing to disk.
package report

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"jobdigest/internal/model"
)

const digestTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Arial, Helvetica, sans-serif; color: #222; margin: 24px; }
  h2 { color: #1a4d8f; }
  p.meta { color: #666; font-size: 13px; }
  table { border-collapse: collapse; width: 100%; }
  th { background-color: #1a4d8f; color: #fff; text-align: left; padding: 8px; font-size: 14px; }
  td { border: 1px solid #ddd; padding: 8px; font-size: 13px; vertical-align: top; }
  tr:nth-child(even) { background-color: #f5f7fa; }
  a.apply { color: #1a4d8f; font-weight: bold; }
</style>
</head>
<body>
<h2>DevOps Job Digest</h2>
<p class="meta">Generated {{.Generated}} &middot; {{.Count}} new {{if eq .Count 1}}job{{else}}jobs{{end}}</p>
{{if .Jobs}}
<table>
<tr>
  <th>Title</th>
  <th>Company</th>
  <th>Location</th>
  <th>Link</th>
  <th>Keywords</th>
  <th>Skills</th>
</tr>
{{range .Jobs}}
<tr>
  <td>{{.Title}}</td>
  <td>{{.Company}}</td>
  <td>{{.LocationType}}{{if .Location}} &mdash; {{.Location}}{{end}}</td>
  <td><a class="apply" href="{{.Link}}">Apply Now</a></td>
  <td>{{join .Keywords}}</td>
  <td>{{join .Skills}}</td>
</tr>
{{end}}
</table>
{{else}}
<p>No new jobs matched this run. The next run may have better luck.</p>
{{end}}
</body>
</html>
`

var digest = template.Must(template.New("digest").Funcs(template.FuncMap{
	"join": func(items []string) string { return strings.Join(items, ", ") },
}).Parse(digestTemplate))

type digestData struct {
	Generated string
	Count     int
	Jobs      []model.Job
}

// Render produces the HTML digest for the given jobs. An empty slice
// renders a valid "no new jobs" page rather than an error.
func Render(jobs []model.Job, now time.Time) (string, error) {
	var b strings.Builder
	data := digestData{
		Generated: now.Format("2006-01-02 15:04"),
		Count:     len(jobs),
		Jobs:      jobs,
	}
	if err := digest.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering digest: %w", err)
	}
	return b.String(), nil
}

// Subject returns the email subject line for a digest of n jobs.
func Subject(n int, now time.Time) string {
	return fmt.Sprintf("DevOps Job Digest - %s - %d New Jobs", now.Format("2006-01-02"), n)
}
