package model

type Film struct {
	ID       string `json:"FilmID"`
	Name     string `json:"Name"`
	Category string `json:"Category"`
	Genre    string `json:"Genre"`
	Duration int    `json:"Duration"`
}

// CreateFilmRequest: FilmID is optional and allocated when empty.
type CreateFilmRequest struct {
	FilmID   string `json:"filmID"`
	Name     string `json:"Name" binding:"required"`
	Category string `json:"Category"`
	Genre    string `json:"Genre"`
	Duration int    `json:"Duration" binding:"gte=0"`
}

type UpdateFilmParams struct {
	Name     *string `json:"Name" binding:"omitempty,min=1"`
	Category *string `json:"Category"`
	Genre    *string `json:"Genre"`
	Duration *int    `json:"Duration" binding:"omitempty,gte=0"`
}

func (p UpdateFilmParams) IsEmpty() bool {
	return p.Name == nil && p.Category == nil && p.Genre == nil && p.Duration == nil
}

// FilmSummary is the list shape of GET /api/films.
type FilmSummary struct {
	ID string `json:"id"`
}
