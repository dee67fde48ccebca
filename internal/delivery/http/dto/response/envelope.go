package response

// Response is the envelope of every API reply.
type Response struct {
	Meta Meta `json:"meta"`
	Data any  `json:"data,omitempty"`
}

type Meta struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

type ErrorDetail struct {
	Path string `json:"path"`
	Info string `json:"info"`
}
