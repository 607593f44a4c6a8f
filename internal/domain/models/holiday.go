package models

// Holiday is a bank holiday resolved to a date.
//
// Fields:
//   - Key: stable identifier of the catalog entry (e.g., "whit-monday").
//   - Name: English name.
//   - FrenchName: official French name.
//   - Date: calendar day in YYYY-MM-DD format.
//   - Movable: true when the date is derived from Easter Sunday.
//
// swagger:model Holiday
type Holiday struct {
	Key        string `json:"key" yaml:"key" example:"whit-monday"`
	Name       string `json:"name" yaml:"name" example:"Whit Monday"`
	FrenchName string `json:"french_name" yaml:"french_name" example:"Lundi de Pentecôte"`
	Date       string `json:"date" yaml:"date" example:"2021-05-24"`
	Movable    bool   `json:"movable" yaml:"movable" example:"true"`
}

// YearHolidays groups the holidays observed in one year, in chronological order.
type YearHolidays struct {
	Year     int       `json:"year" yaml:"year" example:"2021"`
	Holidays []Holiday `json:"holidays" yaml:"holidays"`
}

// NamedHoliday is a single catalog entry evaluated for a year. Observed is
// false when the holiday did not exist (or was suspended) that year; Date is
// still the day it would fall on.
type NamedHoliday struct {
	Holiday
	Year     int  `json:"year" yaml:"year" example:"2021"`
	Observed bool `json:"observed" yaml:"observed" example:"true"`
}

// Check is the answer to "is this day a bank holiday?".
type Check struct {
	Date      string   `json:"date" yaml:"date" example:"2021-05-08"`
	IsHoliday bool     `json:"is_holiday" yaml:"is_holiday" example:"true"`
	Holiday   *Holiday `json:"holiday,omitempty" yaml:"holiday,omitempty"`
}

// Closure is a weekday lost to a bank holiday.
type Closure struct {
	Date string `json:"date" yaml:"date" example:"2021-05-13"`
	Name string `json:"name" yaml:"name" example:"Ascension Thursday"`
}

// BusinessShift is the result of moving N business days from a date.
// Skipped lists the weekday holidays passed over on the way.
type BusinessShift struct {
	From    string    `json:"from" yaml:"from" example:"2021-05-12"`
	N       int       `json:"n" yaml:"n" example:"2"`
	Date    string    `json:"date" yaml:"date" example:"2021-05-17"`
	Skipped []Closure `json:"skipped" yaml:"skipped"`
}
