package together

const (
	DefaultBaseURL = "https://api.together.xyz/v1"
	DefaultModel   = "black-forest-labs/FLUX.1-schnell-Free"
)
