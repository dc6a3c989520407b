package domain

// Preferences is a recommendation query as submitted by the caller.
// Era must resolve to a known range; the language code does not have to
// exist in the catalog (an empty result is valid, not an error).
type Preferences struct {
	Mood     string   `json:"mood" binding:"required"`
	Era      string   `json:"era" binding:"required"`
	Language string   `json:"language" binding:"required"`
	Notes    string   `json:"notes"`
	Genres   []string `json:"genres" binding:"required,min=1"`
}
