package models

// Category groups job postings under a unique name
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
