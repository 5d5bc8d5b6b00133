package restapi

import (
	"net/http"
	"time"

	"preplan.flightworks.org/internal/buildinfo"
	"preplan.flightworks.org/internal/models"
)

func (api *RestAPI) configHandler(w http.ResponseWriter, r *http.Request) {
	shortHash := "unknown"
	if len(buildinfo.CommitHash) >= 7 {
		shortHash = buildinfo.CommitHash[:7]
	}

	gitProps := models.GitProperties{
		GitBranch:             buildinfo.Branch,
		GitBuildTime:          buildinfo.BuildTime,
		GitBuildVersion:       buildinfo.Version,
		GitCommitId:           buildinfo.CommitHash,
		GitCommitTime:         buildinfo.CommitTime,
		GitDirty:              buildinfo.Dirty,
		GitCommitIdAbbrev:     shortHash,
		GitBuildHost:          buildinfo.Host,
		GitBuildUserEmail:     buildinfo.UserEmail,
		GitBuildUserName:      buildinfo.UserName,
		GitCommitUserEmail:    buildinfo.UserEmail,
		GitCommitUserName:     buildinfo.UserName,
		GitRemoteOriginUrl:    buildinfo.RemoteURL,
		GitCommitMessageShort: buildinfo.CommitMessage,
		GitCommitMessageFull:  buildinfo.CommitMessage,
	}

	// The service date range covers the union of all loaded requirements.
	from, to := api.requirementDateSpan()

	configEntry := models.ConfigModel{
		GitProperties:   gitProps,
		Id:              "preplan-engine",
		Name:            "Flightworks Preplan",
		ServiceDateFrom: from,
		ServiceDateTo:   to,
	}

	response := models.NewEntryResponse(
		configEntry,
		models.NewEmptyReferences(),
		api.Clock,
	)

	api.sendResponse(w, r, response)
}

func (api *RestAPI) requirementDateSpan() (string, string) {
	api.MasterData.RLock()
	defer api.MasterData.RUnlock()

	var from, to time.Time
	for _, req := range api.MasterData.Requirements() {
		if from.IsZero() || req.StartDate.Before(from) {
			from = req.StartDate
		}
		if to.IsZero() || req.EndDate.After(to) {
			to = req.EndDate
		}
	}
	if from.IsZero() {
		return "", ""
	}
	return from.Format("2006-01-02"), to.Format("2006-01-02")
}
