package models

import (
	"net/http"
	"time"

	"preplan.flightworks.org/internal/clock"
)

// ResponseModel is the envelope every JSON endpoint returns.
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data,omitempty"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// ReferencesModel carries the shared objects an entry or list refers to, so
// clients do not have to fetch them separately.
type ReferencesModel struct {
	Airports     []AirportReference     `json:"airports"`
	Requirements []RequirementReference `json:"requirements"`
}

// AirportReference is the compact airport representation used in references.
type AirportReference struct {
	IATA          string  `json:"iata"`
	Name          string  `json:"name"`
	International bool    `json:"international"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
}

// RequirementReference is the compact requirement representation used in
// references.
type RequirementReference struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// NewEmptyReferences creates a references model with empty (non-null) arrays.
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Airports:     []AirportReference{},
		Requirements: []RequirementReference{},
	}
}

// NewAirportReference builds a reference from a stored airport.
func NewAirportReference(ap *Airport) AirportReference {
	return AirportReference{
		IATA:          ap.IATA,
		Name:          ap.Name,
		International: ap.International,
		Lat:           ap.Lat,
		Lon:           ap.Lon,
	}
}

type entryData struct {
	Entry      interface{}     `json:"entry"`
	References ReferencesModel `json:"references"`
}

type listData struct {
	List          interface{}     `json:"list"`
	LimitExceeded bool            `json:"limitExceeded"`
	References    ReferencesModel `json:"references"`
}

// ResponseCurrentTime returns the envelope timestamp in epoch milliseconds.
func ResponseCurrentTime(c clock.Clock) int64 {
	return c.NowUnixMilli()
}

// NewEntryResponse wraps a single entry and its references in the envelope.
func NewEntryResponse(entry interface{}, references ReferencesModel, c clock.Clock) ResponseModel {
	return ResponseModel{
		Code:        http.StatusOK,
		CurrentTime: ResponseCurrentTime(c),
		Data:        entryData{Entry: entry, References: references},
		Text:        "OK",
		Version:     2,
	}
}

// NewListResponse wraps a list and its references in the envelope.
func NewListResponse(list interface{}, references ReferencesModel, c clock.Clock) ResponseModel {
	return ResponseModel{
		Code:        http.StatusOK,
		CurrentTime: ResponseCurrentTime(c),
		Data:        listData{List: list, LimitExceeded: false, References: references},
		Text:        "OK",
		Version:     2,
	}
}

// NewOKResponse wraps already-shaped data in the envelope.
func NewOKResponse(data interface{}, c clock.Clock) ResponseModel {
	return ResponseModel{
		Code:        http.StatusOK,
		CurrentTime: ResponseCurrentTime(c),
		Data:        data,
		Text:        "OK",
		Version:     2,
	}
}

// CurrentTimeData is the entry payload of the current-time endpoint.
type CurrentTimeData struct {
	ReadableTime string `json:"readableTime"`
	Time         int64  `json:"time"`
}

// NewCurrentTimeData builds the current-time entry wrapped in the standard
// entry/references shape.
func NewCurrentTimeData(t time.Time) entryData {
	return entryData{
		Entry: CurrentTimeData{
			ReadableTime: t.Format(time.RFC3339),
			Time:         t.UnixMilli(),
		},
		References: NewEmptyReferences(),
	}
}
