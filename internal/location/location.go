// Package location maps free-text job locations to a work-mode category.
package location

import (
	"strings"

	"jobdigest/internal/model"
)

// Term families checked in priority order: a location mentioning both
// remote and hybrid terms classifies as Remote.
var (
	remoteTerms = []string{"remote", "work from home", "wfh"}
	hybridTerms = []string{"hybrid", "flexible"}
)

// Normalize classifies a location string. Empty input is NotSpecified;
// anything matching neither family is Onsite.
func Normalize(loc string) model.LocationType {
	if strings.TrimSpace(loc) == "" {
		return model.LocationNotSpecified
	}

	lower := strings.ToLower(loc)
	for _, term := range remoteTerms {
		if strings.Contains(lower, term) {
			return model.LocationRemote
		}
	}
	for _, term := range hybridTerms {
		if strings.Contains(lower, term) {
			return model.LocationHybrid
		}
	}
	return model.LocationOnsite
}
