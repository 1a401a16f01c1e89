package ocr

import (
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/properties"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/strutil"
)

// MatchProperty scores name against every property name and alias and returns the best
// candidate reaching minScore. Ties keep the earlier property, so callers pass properties
// ordered by name. It returns nil when nothing qualifies.
func MatchProperty(name string, candidates []*properties.Property, minScore float64) *PropertyMatch {
	var best *PropertyMatch
	for _, p := range candidates {
		for _, candidate := range p.Names() {
			score := strutil.NameScore(name, candidate)
			if score < minScore {
				continue
			}
			if best == nil || score > best.Score {
				best = &PropertyMatch{
					PropertyID:   p.ID,
					PropertyName: p.Name,
					MatchedName:  candidate,
					Score:        score,
				}
			}
		}
	}
	return best
}
