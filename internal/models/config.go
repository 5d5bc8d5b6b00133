package models

// GitProperties carries build provenance stamped via ldflags, exposed on the
// config endpoint so deployed instances can be identified.
type GitProperties struct {
	GitBranch             string `json:"git.branch"`
	GitBuildHost          string `json:"git.build.host"`
	GitBuildTime          string `json:"git.build.time"`
	GitBuildUserEmail     string `json:"git.build.user.email"`
	GitBuildUserName      string `json:"git.build.user.name"`
	GitBuildVersion       string `json:"git.build.version"`
	GitCommitId           string `json:"git.commit.id"`
	GitCommitIdAbbrev     string `json:"git.commit.id.abbrev"`
	GitCommitMessageFull  string `json:"git.commit.message.full"`
	GitCommitMessageShort string `json:"git.commit.message.short"`
	GitCommitTime         string `json:"git.commit.time"`
	GitCommitUserEmail    string `json:"git.commit.user.email"`
	GitCommitUserName     string `json:"git.commit.user.name"`
	GitDirty              string `json:"git.dirty"`
	GitRemoteOriginUrl    string `json:"git.remote.origin.url"`
}

// ConfigModel is the config endpoint entry: instance identity plus the
// service date span covered by the loaded requirements.
type ConfigModel struct {
	GitProperties   GitProperties `json:"gitProperties"`
	Id              string        `json:"id"`
	Name            string        `json:"name"`
	ServiceDateFrom string        `json:"serviceDateFrom"`
	ServiceDateTo   string        `json:"serviceDateTo"`
}
