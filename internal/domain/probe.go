package domain

// Probe is a scripted conversational prompt designed to elicit
// trait-relevant behavior. Read-only reference data from the probe store.
type Probe struct {
	ID             string `json:"id"`
	Text           string `json:"text"`
	TargetBehavior string `json:"target_behavior"`
}
