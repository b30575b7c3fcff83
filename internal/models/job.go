package models

// Job is a posting; the category is always expanded inline in responses,
// never exposed as a bare foreign key.
type Job struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	MinAge         int      `json:"min_age"`
	MaxAge         int      `json:"max_age"`
	MinYOE         int      `json:"min_yoe"`
	Skills         []string `json:"skills"`
	Requirements   []string `json:"requirements"`
	Specifications []string `json:"specifications"`
	Educations     string   `json:"educations"`
	Category       Category `json:"category"`
}
