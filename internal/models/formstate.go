package models

// FormStep is one stage of the submission wizard.
type FormStep string

const (
	StepInput   FormStep = "input"
	StepClarify FormStep = "clarify"
	StepSave    FormStep = "save"
)

// FormState is the explicit, serializable state of an in-progress
// submission form. Clients send it back with every step change instead
// of keeping ambient state on either side.
type FormState struct {
	Step       FormStep `json:"step"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	PlaceName  string   `json:"place_name"`
	Note       string   `json:"note"`
	PhotoFlags [3]bool  `json:"photo_flags"`
	Problems   []string `json:"problems,omitempty"`
}

// ToNewSubmission converts the accumulated fields into a create payload.
func (f FormState) ToNewSubmission() NewSubmission {
	return NewSubmission{
		Latitude:   f.Latitude,
		Longitude:  f.Longitude,
		PlaceName:  f.PlaceName,
		Note:       f.Note,
		PhotoFlags: f.PhotoFlags,
	}
}
