package dto

type GoogleAuthURLResponse struct {
	URL string `json:"url"`
}

type GoogleAuthStatusResponse struct {
	Connected bool `json:"connected"`
}
