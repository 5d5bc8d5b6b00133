package restapi

import (
	"sort"
	"time"

	"preplan.flightworks.org/internal/models"
	"preplan.flightworks.org/internal/packs"
	"preplan.flightworks.org/internal/schedule"
)

const dateFormat = "2006-01-02"

func newAirportModel(ap *models.Airport) models.AirportModel {
	records := make([]models.OffsetRecordModel, len(ap.OffsetRecords))
	for i, rec := range ap.OffsetRecords {
		records[i] = models.OffsetRecordModel{
			OffsetMinutes: rec.OffsetMinutes,
			DST:           rec.DST,
			StartDateTime: rec.StartUTC.Format(time.RFC3339),
			EndDateTime:   rec.EndUTC.Format(time.RFC3339),
		}
	}
	return models.AirportModel{
		IATA:          ap.IATA,
		Name:          ap.Name,
		International: ap.International,
		Lat:           ap.Lat,
		Lon:           ap.Lon,
		OffsetRecords: records,
	}
}

func newFlightModel(f *schedule.Flight) models.FlightModel {
	legs := make([]models.FlightLegModel, len(f.Legs))
	for i, leg := range f.Legs {
		legs[i] = models.FlightLegModel{
			DerivedID:        leg.DerivedID,
			FlightNumber:     leg.FlightNumber,
			DepartureAirport: leg.DepartureAirport,
			ArrivalAirport:   leg.ArrivalAirport,
			ServiceType:      leg.ServiceType,
			Std:              leg.Std.String(),
			DayOffset:        leg.DayOffset,
			ActualStd:        leg.ActualStd.String(),
			ActualSta:        leg.ActualSta.String(),
			StdDateTime:      leg.StdDateTime.UnixMilli(),
			StaDateTime:      leg.StaDateTime.UnixMilli(),
			OriginAllowed:    leg.Origin.Allowed,
			DestAllowed:      leg.Destination.Allowed,
		}
	}

	sections := make([]models.SectionModel, len(f.Sections))
	for i, s := range f.Sections {
		sections[i] = models.SectionModel{Start: s.Start, End: s.End}
	}

	return models.FlightModel{
		ID:        f.ID,
		Date:      f.Date.Format(dateFormat),
		Day:       f.Day.String(),
		WeekStart: f.WeekStart,
		WeekEnd:   f.WeekEnd,
		Legs:      legs,
		Sections:  sections,
	}
}

func newPermissionWindowModels(windows []packs.PermissionWindow) []models.PermissionWindowModel {
	out := make([]models.PermissionWindowModel, len(windows))
	for i, w := range windows {
		out[i] = models.PermissionWindowModel{
			FromDate:      w.FromDate.Format(dateFormat),
			ToDate:        w.ToDate.Format(dateFormat),
			UserNote:      w.UserNote,
			HasPermission: w.HasPermission,
		}
	}
	return out
}

func newPackModel(p *packs.Pack) models.PackModel {
	flightIDs := make([]string, len(p.Flights))
	for i, f := range p.Flights {
		flightIDs[i] = f.ID
	}
	flightDates := make([]string, len(p.FlightDates))
	for i, d := range p.FlightDates {
		flightDates[i] = d.Format(dateFormat)
	}

	signature := make([]models.LegSignatureModel, len(p.Signature))
	for i, leg := range p.Signature {
		signature[i] = models.LegSignatureModel{
			LocalHour:    leg.LocalHour,
			LocalMinute:  leg.LocalMinute,
			BlockMinutes: leg.BlockMinutes,
			ServiceType:  leg.ServiceType,
		}
	}

	// Flatten the nested permission maps in deterministic leg/day order.
	var permissions []models.PackPermissionModel
	legIndexes := make([]int, 0, len(p.Permissions))
	for legIndex := range p.Permissions {
		legIndexes = append(legIndexes, legIndex)
	}
	sort.Ints(legIndexes)
	for _, legIndex := range legIndexes {
		byDay := p.Permissions[legIndex]
		days := make([]schedule.Weekday, 0, len(byDay))
		for day := range byDay {
			days = append(days, day)
		}
		sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
		for _, day := range days {
			perms := byDay[day]
			permissions = append(permissions, models.PackPermissionModel{
				LegIndex:    legIndex,
				Day:         day.String(),
				Origin:      newPermissionWindowModels(perms.Origin),
				Destination: newPermissionWindowModels(perms.Destination),
			})
		}
	}

	return models.PackModel{
		ID:               p.ID,
		SourceFlightID:   p.Source.ID,
		FlightIDs:        flightIDs,
		FlightDates:      flightDates,
		Signature:        signature,
		CancellationNote: p.CancellationNote,
		Permissions:      permissions,
		HasTimeChange:    p.HasTimeChange,
		InDstChange:      p.InDstChange,
	}
}

// requirementReferences builds the references block for endpoints scoped to
// one requirement: the requirement itself plus every airport its route
// touches. The caller must hold the master-data read lock.
func (api *RestAPI) requirementReferences(req *models.FlightRequirement) models.ReferencesModel {
	references := models.NewEmptyReferences()
	references.Requirements = append(references.Requirements, models.RequirementReference{
		ID:        req.ID,
		Label:     req.Label,
		StartDate: req.StartDate.Format(dateFormat),
		EndDate:   req.EndDate.Format(dateFormat),
	})

	seen := make(map[string]bool)
	for _, leg := range req.Legs {
		for _, code := range []string{leg.DepartureAirport, leg.ArrivalAirport} {
			if seen[code] {
				continue
			}
			seen[code] = true
			if ap := api.MasterData.Airport(code); ap != nil {
				references.Airports = append(references.Airports, models.NewAirportReference(ap))
			}
		}
	}
	return references
}
