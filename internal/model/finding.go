package model

// Severity classifies a validation finding. Kritik findings block
// persistence in every adapter; uyari findings are advisory.
type Severity string

const (
	SeverityCritical Severity = "kritik"
	SeverityWarning  Severity = "uyari"
)

// Finding is a single validation result. The JSON tags match the persisted
// document shape.
type Finding struct {
	Severity Severity `json:"tip"`
	Message  string   `json:"mesaj"`
}

// HasCritical reports whether any finding is kritik.
func HasCritical(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityCritical {
			return true
		}
	}
	return false
}
