package notifier

import (
	"fmt"
	"os"
	"time"

	"jobdigest/internal/model"
	"jobdigest/internal/report"
)

// Ensure FileNotifier implements model.Notifier.
var _ model.Notifier = (*FileNotifier)(nil)

// FileNotifier renders the digest and writes it to an HTML file instead
// of sending it anywhere. Used for dry runs and as a fallback when email
// delivery is not configured.
type FileNotifier struct {
	path string
	now  func() time.Time
}

// NewFileNotifier returns a notifier that writes the digest to path.
func NewFileNotifier(path string) *FileNotifier {
	return &FileNotifier{path: path, now: time.Now}
}

// Notify renders the jobs into the digest template and writes the result
// to the configured path, overwriting any previous artifact.
func (n *FileNotifier) Notify(jobs []model.Job) error {
	html, err := report.Render(jobs, n.now())
	if err != nil {
		return err
	}
	if err := os.WriteFile(n.path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("writing digest to %s: %w", n.path, err)
	}
	return nil
}
