package domain

import "fmt"

// Decision is the outcome of a guard. Guards never fail with an error:
// a rejected transition is reported with a human-readable reason and
// leaves the order untouched.
type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(format string, args ...any) Decision {
	return Decision{Allowed: false, Reason: fmt.Sprintf(format, args...)}
}

// And returns the first denied decision, or Allow when every check passes.
func And(decisions ...Decision) Decision {
	for _, d := range decisions {
		if !d.Allowed {
			return d
		}
	}
	return Allow()
}
