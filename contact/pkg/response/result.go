package response

import "time"

// Result reports what happened to a contact submission. Simulated is true
// when the webhook was unreachable and the submission was accepted locally
// instead of being delivered.
type Result struct {
	Dispatched bool      `json:"dispatched"`
	Simulated  bool      `json:"simulated"`
	Timestamp  time.Time `json:"timestamp"`
	Warning    string    `json:"warning,omitempty"`
}
