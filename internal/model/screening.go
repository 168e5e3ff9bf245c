package model

// Screening 場次
type Screening struct {
	ID             string `json:"ScreeningID"`
	FilmID         string `json:"FilmID"`
	TheatreID      string `json:"TheatreID"`
	Date           string `json:"Date"`
	StartTime      string `json:"StartTime"`
	SeatsRemaining int    `json:"SeatsRemaining"`
}

// CreateScreeningRequest 建立場次請求, SeatsRemaining 一律從影廳容量開始
type CreateScreeningRequest struct {
	FilmID    string `json:"FilmID" binding:"required"`
	TheatreID string `json:"TheatreID" binding:"required"`
	Date      string `json:"Date" binding:"required"`
	StartTime string `json:"StartTime" binding:"required"`
}

type UpdateScreeningParams struct {
	FilmID         *string `json:"FilmID" binding:"omitempty,min=1"`
	TheatreID      *string `json:"TheatreID" binding:"omitempty,min=1"`
	Date           *string `json:"Date" binding:"omitempty,min=1"`
	StartTime      *string `json:"StartTime" binding:"omitempty,min=1"`
	SeatsRemaining *int    `json:"SeatsRemaining" binding:"omitempty,gte=0"`
}

func (p UpdateScreeningParams) IsEmpty() bool {
	return p.FilmID == nil && p.TheatreID == nil && p.Date == nil && p.StartTime == nil && p.SeatsRemaining == nil
}
