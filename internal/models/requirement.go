package models

import "time"

// RequirementLeg is the week-invariant part of one leg of a flight
// requirement as authored: times are "H:MM" strings, parsed at the engine
// boundary.
type RequirementLeg struct {
	FlightNumber     string `json:"flightNumber"`
	DepartureAirport string `json:"departureAirport"`
	ArrivalAirport   string `json:"arrivalAirport"`
	BlockTime        string `json:"blockTime"`
	ServiceType      string `json:"serviceType"`
}

// RequirementLegDay is the authored per-weekday, per-leg schedule. Either
// Std (exact form) or StdLowerBound/StdUpperBound (window form) is set; a
// missing upper bound collapses the window to its lower bound.
type RequirementLegDay struct {
	Std           string `json:"std,omitempty"`
	StdLowerBound string `json:"stdLowerBound,omitempty"`
	StdUpperBound string `json:"stdUpperBound,omitempty"`

	OriginPermission      bool   `json:"originPermission"`
	OriginNote            string `json:"originNote,omitempty"`
	DestinationPermission bool   `json:"destinationPermission"`
	DestinationNote       string `json:"destinationNote,omitempty"`
}

// RequirementDay binds one operational weekday to its per-leg schedules,
// ordered by leg index.
type RequirementDay struct {
	Day  string              `json:"day"`
	Legs []RequirementLegDay `json:"legs"`
}

// FlightRequirement is a weekly-recurring requirement document: the route
// definition plus the weekday schedules it materializes from.
type FlightRequirement struct {
	ID        string           `json:"id"`
	Label     string           `json:"label"`
	StartDate time.Time        `json:"startDate"`
	EndDate   time.Time        `json:"endDate"`
	Legs      []RequirementLeg `json:"legs"`
	Days      []RequirementDay `json:"days"`
}
