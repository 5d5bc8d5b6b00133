// Package models holds the plain data contracts shared between the engine,
// the master-data layer, and the HTTP surface.
package models

import "time"

// UTCOffsetRecord is one entry of an airport's UTC-offset validity history.
// DST-flagged records mark daylight-saving periods.
type UTCOffsetRecord struct {
	OffsetMinutes int       `json:"offsetMinutes"`
	DST           bool      `json:"dst"`
	StartUTC      time.Time `json:"startDateTimeUtc"`
	EndUTC        time.Time `json:"endDateTimeUtc"`
}

// Contains reports whether t falls inside the record's validity interval.
func (r UTCOffsetRecord) Contains(t time.Time) bool {
	return !t.Before(r.StartUTC) && !t.After(r.EndUTC)
}

// Airport is master data for one station, including the ordered UTC-offset
// history used for local-time conversion and DST window trimming.
type Airport struct {
	IATA          string            `json:"iata"`
	Name          string            `json:"name"`
	International bool              `json:"international"`
	Lat           float64           `json:"lat"`
	Lon           float64           `json:"lon"`
	OffsetRecords []UTCOffsetRecord `json:"offsetRecords,omitempty"`
}

// OffsetAt returns the offset record covering t, if any.
func (a *Airport) OffsetAt(t time.Time) (UTCOffsetRecord, bool) {
	for _, rec := range a.OffsetRecords {
		if rec.Contains(t) {
			return rec, true
		}
	}
	return UTCOffsetRecord{}, false
}

// ConvertUTCToLocal shifts a UTC instant into the airport's local wall clock.
// Airports with no offset history are treated as UTC.
func (a *Airport) ConvertUTCToLocal(t time.Time) time.Time {
	rec, ok := a.OffsetAt(t)
	if !ok {
		return t
	}
	return t.Add(time.Duration(rec.OffsetMinutes) * time.Minute)
}
