package schemas

type StageTotalResponse struct {
	Stage string  `json:"stage"`
	Total float64 `json:"total"`
}

type PipelineResponse struct {
	Stages []StageTotalResponse `json:"stages"`
	Total  float64              `json:"total"`
}

type DashboardResponse struct {
	Title                string           `json:"title"`
	Pipeline             PipelineResponse `json:"pipeline"`
	WeightedPipeline     float64          `json:"weighted_pipeline"`
	Accounts             int64            `json:"accounts"`
	OpenOpportunities    int              `json:"open_opportunities"`
	OpenActivities       int              `json:"open_activities"`
	OverdueOpportunities int              `json:"overdue_opportunities"`
	Message              string           `json:"message,omitempty"`
}

type BoardColumn struct {
	Stage         string                 `json:"stage"`
	Total         float64                `json:"total"`
	Opportunities []*OpportunityResponse `json:"opportunities"`
}

type BoardResponse struct {
	Columns []BoardColumn `json:"columns"`
	Message string        `json:"message,omitempty"`
}

type OverdueResponse struct {
	AsOf          string                 `json:"as_of"`
	Opportunities []*OpportunityResponse `json:"opportunities"`
	Message       string                 `json:"message,omitempty"`
}

type SettingsResponse struct {
	Title       string   `json:"title"`
	Backend     string   `json:"backend"`
	Database    string   `json:"database"`
	ExportFiles []string `json:"export_files"`
	SwitchHint  string   `json:"switch_hint"`
	ExampleURL  string   `json:"example_url"`
}
