package restapi

import (
	"encoding/json"
	"net/http"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"preplan.flightworks.org/internal/daytime"
	"preplan.flightworks.org/internal/models"
	"preplan.flightworks.org/internal/schedule"
)

var timeOfDayPattern = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

// resolveLegRequest is one leg of a resolve request. Exact form sets std;
// window form sets stdLowerBound and optionally stdUpperBound.
type resolveLegRequest struct {
	Std           string `json:"std"`
	StdLowerBound string `json:"stdLowerBound"`
	StdUpperBound string `json:"stdUpperBound"`
	BlockTime     string `json:"blockTime"`
}

func (leg resolveLegRequest) Validate() error {
	return validation.ValidateStruct(&leg,
		validation.Field(&leg.Std, validation.Match(timeOfDayPattern)),
		validation.Field(&leg.StdLowerBound,
			validation.Required.When(leg.Std == "").Error("either std or stdLowerBound is required"),
			validation.Match(timeOfDayPattern)),
		validation.Field(&leg.StdUpperBound, validation.Match(timeOfDayPattern)),
		validation.Field(&leg.BlockTime, validation.Required, validation.Match(timeOfDayPattern)),
	)
}

type resolveRequest struct {
	Legs []resolveLegRequest `json:"legs"`
}

func (req resolveRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Legs, validation.Required, validation.Length(1, 64)),
	)
}

// resolveHandler runs day-offset resolution on a posted leg sequence without
// touching stored requirements. If any leg uses the window form, the whole
// sequence resolves as windows; exact legs collapse to a zero-width window.
func (api *RestAPI) resolveHandler(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"body": {"malformed JSON body"}})
		return
	}

	if err := req.Validate(); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"legs": {err.Error()}})
		return
	}
	for _, leg := range req.Legs {
		if err := leg.Validate(); err != nil {
			api.validationErrorResponse(w, r, map[string][]string{"legs": {err.Error()}})
			return
		}
	}

	windowed := false
	for _, leg := range req.Legs {
		if leg.Std == "" || leg.StdUpperBound != "" {
			windowed = true
			break
		}
	}

	if windowed {
		api.resolveWindows(w, r, req.Legs)
		return
	}
	api.resolveExact(w, r, req.Legs)
}

func (api *RestAPI) resolveExact(w http.ResponseWriter, r *http.Request, legs []resolveLegRequest) {
	timings := make([]schedule.LegTiming, len(legs))
	for i, leg := range legs {
		timings[i] = schedule.LegTiming{
			Std:       daytime.Parse(leg.Std),
			BlockTime: daytime.Parse(leg.BlockTime),
		}
	}

	resolved, err := schedule.ResolveDayOffsets(timings)
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"legs": {err.Error()}})
		return
	}

	list := make([]models.ResolvedLegModel, len(resolved))
	for i, leg := range resolved {
		list[i] = models.ResolvedLegModel{
			DayOffset: leg.DayOffset,
			ActualStd: leg.ActualStd.String(),
			ActualSta: leg.ActualSta.String(),
		}
	}

	api.sendResponse(w, r, models.NewListResponse(list, models.NewEmptyReferences(), api.Clock))
}

func (api *RestAPI) resolveWindows(w http.ResponseWriter, r *http.Request, legs []resolveLegRequest) {
	timings := make([]schedule.WindowTiming, len(legs))
	for i, leg := range legs {
		lower := leg.StdLowerBound
		if lower == "" {
			lower = leg.Std
		}
		timings[i] = schedule.WindowTiming{
			StdLowerBound: daytime.Parse(lower),
			StdUpperBound: daytime.Parse(leg.StdUpperBound),
			BlockTime:     daytime.Parse(leg.BlockTime),
		}
	}

	resolved, err := schedule.ResolveWindowDayOffsets(timings)
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"legs": {err.Error()}})
		return
	}

	list := make([]models.ResolvedLegModel, len(resolved))
	for i, leg := range resolved {
		list[i] = models.ResolvedLegModel{
			DayOffset:     leg.DayOffset,
			StdLowerBound: leg.StdLowerBound.String(),
			StdUpperBound: leg.StdUpperBound.String(),
			StaLowerBound: leg.StaLowerBound.String(),
		}
	}

	api.sendResponse(w, r, models.NewListResponse(list, models.NewEmptyReferences(), api.Clock))
}
