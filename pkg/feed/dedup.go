package feed

import (
	"github.com/go-pkgz/lgr"

	"github.com/feedloop/feedloop/pkg/domain"
)

// Index holds lookup sets of a feed's existing articles, used to filter
// incoming candidates before they hit the store
type Index struct {
	links  map[string]struct{}
	guids  map[string]struct{}
	titles map[string]struct{}
}

// NewIndex builds an index from the feed's existing article fields,
// skipping empty values
func NewIndex(links, guids, titles []string) *Index {
	idx := &Index{
		links:  make(map[string]struct{}, len(links)),
		guids:  make(map[string]struct{}, len(guids)),
		titles: make(map[string]struct{}, len(titles)),
	}
	for _, l := range links {
		if l != "" {
			idx.links[l] = struct{}{}
		}
	}
	for _, g := range guids {
		if g != "" {
			idx.guids[g] = struct{}{}
		}
	}
	for _, t := range titles {
		if t != "" {
			idx.titles[t] = struct{}{}
		}
	}
	return idx
}

// add registers an accepted candidate so later candidates in the same batch
// are checked against it too
func (idx *Index) add(c *domain.Candidate) {
	if c.Link != "" {
		idx.links[c.Link] = struct{}{}
	}
	if c.GUID != "" {
		idx.guids[c.GUID] = struct{}{}
	}
	if c.Title != "" {
		idx.titles[c.Title] = struct{}{}
	}
}

// Dedupe filters candidates already present in the index. The layered check
// goes link, then guid, then title: link and guid are reliable identities,
// the title tier is a deliberately loose fallback for feeds that regenerate
// guids and links on every publish. Accepted candidates feed back into the
// index so duplicates within the incoming batch are caught as well.
func Dedupe(candidates []domain.Candidate, idx *Index) []domain.Candidate {
	accepted := make([]domain.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := idx.links[c.Link]; ok && c.Link != "" {
			lgr.Printf("[DEBUG] skipping candidate %q: duplicate link", c.Title)
			continue
		}
		if _, ok := idx.guids[c.GUID]; ok && c.GUID != "" {
			lgr.Printf("[DEBUG] skipping candidate %q: duplicate guid", c.Title)
			continue
		}
		if _, ok := idx.titles[c.Title]; ok && c.Title != "" {
			lgr.Printf("[DEBUG] skipping candidate %q: duplicate title", c.Title)
			continue
		}
		idx.add(&c)
		accepted = append(accepted, c)
	}
	return accepted
}
