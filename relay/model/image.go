package model

// ImageRequest is the body sent to POST /images/generations. Width and height are
// left out when zero, which is how the console asks for the model's default size.
type ImageRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	N      int    `json:"n"`
}

type ImageData struct {
	Url           string `json:"url,omitempty"`
	B64Json       string `json:"b64_json,omitempty"`
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}

type ImageResponse struct {
	Id     string      `json:"id,omitempty"`
	Model  string      `json:"model,omitempty"`
	Object string      `json:"object,omitempty"`
	Data   []ImageData `json:"data"`
}
