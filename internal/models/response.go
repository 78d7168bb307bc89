package models

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type ImageResult struct {
	SourceURL          string `json:"source_url"`
	CleanedImageBase64 string `json:"cleaned_image_base64,omitempty"`
	Error              string `json:"error,omitempty"`
}

type RemovalResponse struct {
	Results []ImageResult `json:"results"`
}
