package models

// AirportModel is the full airport entry, offset history included.
type AirportModel struct {
	IATA          string              `json:"iata"`
	Name          string              `json:"name"`
	International bool                `json:"international"`
	Lat           float64             `json:"lat"`
	Lon           float64             `json:"lon"`
	OffsetRecords []OffsetRecordModel `json:"offsetRecords"`
}

// OffsetRecordModel is one row of an airport's UTC-offset history.
type OffsetRecordModel struct {
	OffsetMinutes int    `json:"offsetMinutes"`
	DST           bool   `json:"dst"`
	StartDateTime string `json:"startDateTimeUtc"`
	EndDateTime   string `json:"endDateTimeUtc"`
}

// SectionModel is one leg's normalized position on the flight timeline.
type SectionModel struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// FlightLegModel is one dated leg of a materialized flight.
type FlightLegModel struct {
	DerivedID        string `json:"derivedId"`
	FlightNumber     string `json:"flightNumber"`
	DepartureAirport string `json:"departureAirport"`
	ArrivalAirport   string `json:"arrivalAirport"`
	ServiceType      string `json:"serviceType"`
	Std              string `json:"std"`
	DayOffset        int    `json:"dayOffset"`
	ActualStd        string `json:"actualStd"`
	ActualSta        string `json:"actualSta"`
	StdDateTime      int64  `json:"stdDateTime"`
	StaDateTime      int64  `json:"staDateTime"`
	OriginAllowed    bool   `json:"originAllowed"`
	DestAllowed      bool   `json:"destinationAllowed"`
}

// FlightModel is one dated realization of a weekday schedule.
type FlightModel struct {
	ID        string           `json:"id"`
	Date      string           `json:"date"`
	Day       string           `json:"day"`
	WeekStart int              `json:"weekStart"`
	WeekEnd   int              `json:"weekEnd"`
	Legs      []FlightLegModel `json:"legs"`
	Sections  []SectionModel   `json:"sections"`
}

// LegSignatureModel is one leg of a pack's grouping signature, expressed in
// departure-airport local time.
type LegSignatureModel struct {
	LocalHour    int    `json:"localHour"`
	LocalMinute  int    `json:"localMinute"`
	BlockMinutes int    `json:"blockMinutes"`
	ServiceType  string `json:"serviceType"`
}

// PermissionWindowModel is a compressed run of consecutive weekly dates
// sharing one permission state.
type PermissionWindowModel struct {
	FromDate      string `json:"fromDate"`
	ToDate        string `json:"toDate"`
	UserNote      string `json:"userNote,omitempty"`
	HasPermission bool   `json:"hasPermission"`
}

// PackPermissionModel carries the compressed origin and destination
// permission windows for one leg on one weekday.
type PackPermissionModel struct {
	LegIndex    int                     `json:"legIndex"`
	Day         string                  `json:"day"`
	Origin      []PermissionWindowModel `json:"origin"`
	Destination []PermissionWindowModel `json:"destination"`
}

// PackModel is a group of flights sharing one structural signature.
type PackModel struct {
	ID               int64                 `json:"id"`
	SourceFlightID   string                `json:"sourceFlightId"`
	FlightIDs        []string              `json:"flightIds"`
	FlightDates      []string              `json:"flightDates"`
	Signature        []LegSignatureModel   `json:"signature"`
	CancellationNote string                `json:"cancellationNote,omitempty"`
	Permissions      []PackPermissionModel `json:"permissions"`
	HasTimeChange    bool                  `json:"hasTimeChange"`
	InDstChange      bool                  `json:"inDstChange"`
}

// ShapeModel is the encoded polyline through a requirement's route airports.
type ShapeModel struct {
	Points string `json:"points"`
	Length int    `json:"length"`
	// LengthKm is the great-circle route length.
	LengthKm float64 `json:"lengthKm"`
}

// ResolvedLegModel is one leg of a resolve response.
type ResolvedLegModel struct {
	DayOffset     int    `json:"dayOffset"`
	ActualStd     string `json:"actualStd"`
	ActualSta     string `json:"actualSta"`
	StdLowerBound string `json:"stdLowerBound,omitempty"`
	StdUpperBound string `json:"stdUpperBound,omitempty"`
	StaLowerBound string `json:"staLowerBound,omitempty"`
}
