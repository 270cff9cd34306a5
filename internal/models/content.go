package models

// Feature is a marketing-surface feature page addressed by slug.
type Feature struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	Highlights  []string `json:"highlights"`
}

type HelpCategory struct {
	Slug     string   `json:"slug"`
	Name     string   `json:"name"`
	Articles []string `json:"articles"` // article slugs
}

type HelpArticle struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Content  string `json:"content"`
}
