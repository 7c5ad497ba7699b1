package models

// PlayerRef is a directory entry
type PlayerRef struct {
	ID       int    `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	TeamID   int    `json:"team_id,omitempty" yaml:"team_id,omitempty"`
	TeamAbbr string `json:"team_abbr,omitempty" yaml:"team_abbr,omitempty"`
	Active   bool   `json:"active" yaml:"active"`
}

// PlayerInfo is the biographical row returned by the provider
type PlayerInfo struct {
	ID               int    `json:"id" yaml:"id"`
	DisplayName      string `json:"display_name" yaml:"display_name"`
	PositionCode     string `json:"position" yaml:"position"` // "Guard", "F-C", ...
	TeamAbbreviation string `json:"team_abbr" yaml:"team_abbr"`
	TeamCity         string `json:"team_city" yaml:"team_city"`
	TeamName         string `json:"team_name" yaml:"team_name"`
	Height           string `json:"height" yaml:"height"` // "6-9"
	WeightLbs        string `json:"weight_lbs" yaml:"weight_lbs"`
	JerseyNumber     string `json:"jersey" yaml:"jersey"`
	Birthdate        string `json:"birthdate" yaml:"birthdate"`
	School           string `json:"school" yaml:"school"`
	DraftYear        string `json:"draft_year" yaml:"draft_year"`
	DraftNumber      string `json:"draft_number" yaml:"draft_number"`
	YearsExperience  int    `json:"years_experience" yaml:"years_experience"`
}

// Team is a franchise from the static team directory
type Team struct {
	ID           int    `json:"id" yaml:"id"`
	Abbreviation string `json:"abbreviation" yaml:"abbreviation"`
	City         string `json:"city" yaml:"city"`
	Nickname     string `json:"nickname" yaml:"nickname"`
	FullName     string `json:"full_name" yaml:"full_name"`
	DisplayName  string `json:"display_name,omitempty" yaml:"display_name,omitempty"` // localized
}
