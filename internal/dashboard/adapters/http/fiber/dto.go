package fiber

type OptionsResponse struct {
	Locations        []string `json:"locations"`
	DefaultLocations []string `json:"default_locations"`
	MinDate          string   `json:"min_date" example:"2020-01-01"`
	MaxDate          string   `json:"max_date" example:"2024-08-14"`
	LastUpdated      string   `json:"last_updated" example:"August 14, 2024"`
}

type SummaryResponse struct {
	Date              string `json:"date" example:"2024-08-14"`
	TotalCases        string `json:"total_cases" example:"775.87M"`
	NewCases          string `json:"new_cases" example:"2,345"`
	TotalDeaths       string `json:"total_deaths" example:"7.06M"`
	NewDeaths         string `json:"new_deaths" example:"12"`
	TotalVaccinations string `json:"total_vaccinations" example:"13.58B"`
	MortalityRate     string `json:"mortality_rate" example:"0.91%"`
}

type TrendPointResponse struct {
	Date             string   `json:"date"`
	Location         string   `json:"location"`
	NewCasesSmoothed *float64 `json:"new_cases_smoothed"`
}

type MapPointResponse struct {
	ISOCode    string  `json:"iso_code"`
	Location   string  `json:"location"`
	TotalCases float64 `json:"total_cases"`
}

type VaccinationBarResponse struct {
	Location               string   `json:"location"`
	FullyVaccinatedPercent *float64 `json:"people_fully_vaccinated_per_hundred"`
}

type ScatterPointResponse struct {
	Date                string   `json:"date"`
	Location            string   `json:"location"`
	NewTestsPerThousand float64  `json:"new_tests_per_thousand"`
	PositiveRate        float64  `json:"positive_rate"`
	TotalCases          *float64 `json:"total_cases"`
}

type CriteriaResponse struct {
	Locations []string `json:"locations"`
	From      string   `json:"from"`
	To        string   `json:"to"`
}

type DashboardResponse struct {
	LatestDate   string                   `json:"latest_date"`
	LastUpdated  string                   `json:"last_updated"`
	Criteria     CriteriaResponse         `json:"criteria"`
	Summary      *SummaryResponse         `json:"summary"`
	SummaryError string                   `json:"summary_error,omitempty"`
	Trend        []TrendPointResponse     `json:"trend"`
	Map          []MapPointResponse       `json:"map"`
	Vaccinations []VaccinationBarResponse `json:"vaccinations"`
	Testing      []ScatterPointResponse   `json:"testing"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"invalid 'from' parameter"`
}
