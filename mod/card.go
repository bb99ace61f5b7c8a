package mod

// ValidateRequest is the body of the validate and check endpoints.
// Types is the optional allow-list: empty means any known issuer, a
// single entry forces that issuer without reclassification.
type ValidateRequest struct {
	Number string   `json:"number"`
	Types  []string `json:"types,omitempty"`
}

// ValidateResult mirrors card.Result on the wire.
type ValidateResult struct {
	Valid  bool   `json:"valid"`
	Number string `json:"number"`
	Type   string `json:"type"`
}

type ClassifyResult struct {
	Type string `json:"type"`
}
