package models

import (
	"strconv"
	"time"
)

// ReviewStatus tracks whether an operator has classified a submission.
type ReviewStatus string

const (
	StatusPending  ReviewStatus = "pending"
	StatusReviewed ReviewStatus = "reviewed"
)

// Submission is one delivery-point report. Coordinates are kept as the
// raw stored text (the backing table inherited spreadsheet-style cells,
// so old rows can hold junk); Coordinate parses them on demand.
type Submission struct {
	ID             int64         `json:"id"`
	SubmittedAt    time.Time     `json:"submitted_at"`
	Latitude       string        `json:"latitude"`
	Longitude      string        `json:"longitude"`
	PlaceName      string        `json:"place_name"`
	Note           string        `json:"note"`
	PhotoFlags     [3]bool       `json:"photo_flags"`
	ReviewStatus   ReviewStatus  `json:"review_status"`
	Classification *TaxonomyPath `json:"classification,omitempty"`
}

// Coordinate returns the parsed latitude/longitude, or ok=false when
// either cell does not hold a number. Callers that need a mappable
// point skip such rows instead of failing the whole read.
func (s Submission) Coordinate() (lat, lon float64, ok bool) {
	lat, errLat := strconv.ParseFloat(s.Latitude, 64)
	lon, errLon := strconv.ParseFloat(s.Longitude, 64)
	if errLat != nil || errLon != nil {
		return 0, 0, false
	}
	return lat, lon, true
}

// NewSubmission is the payload a field submitter sends. Coordinates are
// pointers so a missing fix is distinguishable from a zero value.
type NewSubmission struct {
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	PlaceName  string   `json:"place_name"`
	Note       string   `json:"note"`
	PhotoFlags [3]bool  `json:"photo_flags"`
}

// ReviewPatch is an operator's partial update to a pending submission.
// Nil fields are left untouched.
type ReviewPatch struct {
	Classification *TaxonomyPath `json:"classification,omitempty"`
	Note           *string       `json:"note,omitempty"`
	ReviewStatus   *ReviewStatus `json:"review_status,omitempty"`
}

// MapPoint is the projection a map widget consumes.
type MapPoint struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	Label     string  `json:"label"`
}

// SuggestedPath is a classification hint shown to a reviewing operator.
// It is advisory only; nothing is written until the operator commits a
// review patch.
type SuggestedPath struct {
	Gate      string `json:"gate,omitempty"`
	MainAlley string `json:"main_alley,omitempty"`
	Source    string `json:"source,omitempty"`
	AIComment string `json:"ai_comment,omitempty"`
}
