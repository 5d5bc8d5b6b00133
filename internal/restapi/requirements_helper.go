package restapi

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"preplan.flightworks.org/internal/daytime"
	"preplan.flightworks.org/internal/models"
	"preplan.flightworks.org/internal/packs"
	"preplan.flightworks.org/internal/schedule"
)

// requirementRoute converts the authored legs of a requirement into the
// engine's route form, parsing block times at the boundary.
func requirementRoute(req *models.FlightRequirement) ([]schedule.RouteLeg, error) {
	route := make([]schedule.RouteLeg, len(req.Legs))
	for i, leg := range req.Legs {
		block := daytime.Parse(leg.BlockTime)
		if !block.IsValid() {
			return nil, fmt.Errorf("requirement %s leg %d: malformed block time %q", req.ID, i, leg.BlockTime)
		}
		route[i] = schedule.RouteLeg{
			Index:            i,
			FlightNumber:     leg.FlightNumber,
			DepartureAirport: leg.DepartureAirport,
			ArrivalAirport:   leg.ArrivalAirport,
			BlockTime:        block,
			ServiceType:      leg.ServiceType,
		}
	}
	return route, nil
}

// requirementDaySchedules converts one weekday's authored legs into engine
// form. Window-form entries materialize at their lower bound; the full window
// stays available through the resolve endpoint.
func requirementDaySchedules(req *models.FlightRequirement, day models.RequirementDay) ([]schedule.LegDaySchedule, error) {
	if len(day.Legs) != len(req.Legs) {
		return nil, fmt.Errorf("requirement %s day %s: %d leg schedules for %d legs",
			req.ID, day.Day, len(day.Legs), len(req.Legs))
	}

	schedules := make([]schedule.LegDaySchedule, len(day.Legs))
	for i, legDay := range day.Legs {
		raw := legDay.Std
		if raw == "" {
			raw = legDay.StdLowerBound
		}
		std := daytime.Parse(raw)
		if !std.IsValid() {
			return nil, fmt.Errorf("requirement %s day %s leg %d: malformed std %q",
				req.ID, day.Day, i, raw)
		}
		schedules[i] = schedule.LegDaySchedule{
			Std:         std,
			Origin:      schedule.Permission{Allowed: legDay.OriginPermission, Note: legDay.OriginNote},
			Destination: schedule.Permission{Allowed: legDay.DestinationPermission, Note: legDay.DestinationNote},
		}
	}
	return schedules, nil
}

// materializeFlights expands a requirement into its dated flight instances
// over the given range, one per scheduled weekday occurrence.
func materializeFlights(req *models.FlightRequirement, rng packs.DateRange) ([]*schedule.Flight, error) {
	route, err := requirementRoute(req)
	if err != nil {
		return nil, err
	}

	var flights []*schedule.Flight
	for _, day := range req.Days {
		weekday, err := schedule.ParseWeekday(day.Day)
		if err != nil {
			return nil, fmt.Errorf("requirement %s: %w", req.ID, err)
		}
		schedules, err := requirementDaySchedules(req, day)
		if err != nil {
			return nil, err
		}

		for _, date := range packs.WeeklyDates(rng, weekday) {
			id := fmt.Sprintf("%s-%s", req.ID, date.Format("20060102"))
			flight, err := schedule.AssembleFlight(id, date, route, schedules)
			if err != nil {
				return nil, err
			}
			flights = append(flights, flight)
		}
	}

	sort.Slice(flights, func(i, j int) bool {
		if !flights[i].Date.Equal(flights[j].Date) {
			return flights[i].Date.Before(flights[j].Date)
		}
		return flights[i].ID < flights[j].ID
	})
	return flights, nil
}

// requirementRange derives the materialization range from optional startDate
// and endDate query parameters, clipped to the requirement's own validity.
func requirementRange(r *http.Request, req *models.FlightRequirement) (packs.DateRange, error) {
	rng := packs.DateRange{Start: req.StartDate, End: req.EndDate}

	if raw := r.URL.Query().Get("startDate"); raw != "" {
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return rng, fmt.Errorf("startDate must be formatted as YYYY-MM-DD")
		}
		if d.After(rng.Start) {
			rng.Start = d
		}
	}
	if raw := r.URL.Query().Get("endDate"); raw != "" {
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return rng, fmt.Errorf("endDate must be formatted as YYYY-MM-DD")
		}
		if d.Before(rng.End) {
			rng.End = d
		}
	}

	if rng.End.Before(rng.Start) {
		return rng, fmt.Errorf("date range is empty")
	}
	return rng, nil
}
