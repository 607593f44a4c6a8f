package dto

import "github.com/guttosm/frholidays/internal/domain/models"

// YearResponse is returned by GET /api/v1/holidays.
type YearResponse struct {
	Year     int              `json:"year" example:"2021"`
	Count    int              `json:"count" example:"11"`
	Holidays []models.Holiday `json:"holidays"`
}

// RangeResponse is returned by GET /api/v1/holidays/range.
type RangeResponse struct {
	From  int            `json:"from" example:"2020"`
	To    int            `json:"to" example:"2022"`
	Years []YearResponse `json:"years"`
}

// CheckResponse is returned by GET /api/v1/holidays/check.
type CheckResponse struct {
	Date      string          `json:"date" example:"2021-05-08"`
	IsHoliday bool            `json:"is_holiday" example:"true"`
	Holiday   *models.Holiday `json:"holiday,omitempty"`
}

// EasterResponse is returned by GET /api/v1/easter.
type EasterResponse struct {
	Year int    `json:"year" example:"2021"`
	Date string `json:"date" example:"2021-04-04"`
}

// BusinessDaysResponse is returned by the /api/v1/business-days endpoints.
type BusinessDaysResponse struct {
	From string   `json:"from" example:"2021-05-15"`
	Days []string `json:"days"`
}

// NewYearResponse builds a YearResponse from a model.
func NewYearResponse(y models.YearHolidays) YearResponse {
	hs := y.Holidays
	if hs == nil {
		hs = []models.Holiday{}
	}
	return YearResponse{Year: y.Year, Count: len(hs), Holidays: hs}
}

// CatalogEntry describes one holiday rule, as returned by GET /api/v1/catalog.
type CatalogEntry struct {
	Key          string `json:"key" example:"ascension-thursday"`
	Name         string `json:"name" example:"Ascension Thursday"`
	FrenchName   string `json:"french_name" example:"Jeudi de l'Ascension"`
	Movable      bool   `json:"movable" example:"true"`
	EasterOffset int    `json:"easter_offset,omitempty" example:"39"`
}
