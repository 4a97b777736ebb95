package models

// IntelligenceProfile is the backend-computed distribution of accumulated
// points across cognitive categories. Rendered, never mutated.
type IntelligenceProfile struct {
	Scores             map[string]int `json:"scores"`
	Strongest          string         `json:"strongest"`
	StrongestName      string         `json:"strongest_name"`
	ProfileDescription string         `json:"profile_description"`
}
