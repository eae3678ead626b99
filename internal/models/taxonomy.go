package models

import "strings"

// Placeholder marks a taxonomy level that is not used by a given path.
// The backing table stores it literally, so prefix filtering has to
// treat it as "no value here".
const Placeholder = "-"

// PathLevels is the number of hierarchical levels in a taxonomy path.
const PathLevels = 7

// TaxonomyPath represents one full path through the location hierarchy,
// from campus gate down to sub-alley side. Levels below the last
// meaningful one hold the Placeholder sentinel.
type TaxonomyPath struct {
	Gate          string `json:"gate"`
	Road          string `json:"road"`
	RoadSide      string `json:"road_side"`
	MainAlley     string `json:"main_alley"`
	MainAlleySide string `json:"main_alley_side"`
	SubAlley      string `json:"sub_alley"`
	SubAlleySide  string `json:"sub_alley_side"`
}

// Levels returns the path's values in hierarchy order.
func (p TaxonomyPath) Levels() [PathLevels]string {
	return [PathLevels]string{p.Gate, p.Road, p.RoadSide, p.MainAlley, p.MainAlleySide, p.SubAlley, p.SubAlleySide}
}

// Normalized returns a copy with empty levels replaced by the
// Placeholder sentinel, matching how rows are stored.
func (p TaxonomyPath) Normalized() TaxonomyPath {
	levels := p.Levels()
	for i, v := range levels {
		if strings.TrimSpace(v) == "" {
			levels[i] = Placeholder
		}
	}
	return PathFromLevels(levels)
}

// Equal reports whether two paths are the same after normalization.
func (p TaxonomyPath) Equal(other TaxonomyPath) bool {
	return p.Normalized() == other.Normalized()
}

// IsPrefixOf reports whether every meaningful level of p matches the
// corresponding level of full. Placeholder levels in p match anything,
// so a partial classification matches any full path below it.
func (p TaxonomyPath) IsPrefixOf(full TaxonomyPath) bool {
	pl := p.Normalized().Levels()
	fl := full.Normalized().Levels()
	for i := range pl {
		if pl[i] == Placeholder {
			continue
		}
		if pl[i] != fl[i] {
			return false
		}
	}
	return true
}

// PathFromLevels builds a TaxonomyPath from values in hierarchy order.
func PathFromLevels(levels [PathLevels]string) TaxonomyPath {
	return TaxonomyPath{
		Gate:          levels[0],
		Road:          levels[1],
		RoadSide:      levels[2],
		MainAlley:     levels[3],
		MainAlleySide: levels[4],
		SubAlley:      levels[5],
		SubAlleySide:  levels[6],
	}
}

// SubAlleyEntry is one sub-alley row in a bulk taxonomy request.
type SubAlleyEntry struct {
	SubAlley     string `json:"sub_alley"`
	SubAlleySide string `json:"sub_alley_side"`
}

// MainAlleyEntry is one main-alley row in a bulk taxonomy request,
// owning the sub-alleys entered beneath it.
type MainAlleyEntry struct {
	MainAlley     string          `json:"main_alley"`
	MainAlleySide string          `json:"main_alley_side"`
	SubAlleys     []SubAlleyEntry `json:"sub_alleys"`
}

// BulkTaxonomyRequest is the tree form of a taxonomy entry session: one
// gate/road prefix plus the rows added under it. It is validated and
// flattened into full paths before anything is written.
type BulkTaxonomyRequest struct {
	Gate     string           `json:"gate"`
	Road     string           `json:"road"`
	RoadSide string           `json:"road_side"`
	Entries  []MainAlleyEntry `json:"entries"`
}

// Flatten expands the tree into one full path per leaf. A main alley
// without sub-alleys contributes a single path ending at its own level.
func (r BulkTaxonomyRequest) Flatten() []TaxonomyPath {
	var paths []TaxonomyPath
	for _, entry := range r.Entries {
		base := TaxonomyPath{
			Gate:          r.Gate,
			Road:          r.Road,
			RoadSide:      r.RoadSide,
			MainAlley:     entry.MainAlley,
			MainAlleySide: entry.MainAlleySide,
		}
		if len(entry.SubAlleys) == 0 {
			paths = append(paths, base.Normalized())
			continue
		}
		for _, sub := range entry.SubAlleys {
			p := base
			p.SubAlley = sub.SubAlley
			p.SubAlleySide = sub.SubAlleySide
			paths = append(paths, p.Normalized())
		}
	}
	return paths
}
