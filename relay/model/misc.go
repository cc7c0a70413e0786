package model

type Error struct {
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
	Param   string `json:"param,omitempty"`
	Code    any    `json:"code,omitempty"`
}

// ErrorResponse is the upstream error envelope: {"error": {"message": ...}}.
type ErrorResponse struct {
	Error *Error `json:"error"`
}
