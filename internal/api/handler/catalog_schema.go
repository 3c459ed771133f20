package handler

// serviceLinks points clients at the detail page and the submission endpoint.
type serviceLinks struct {
	Self    string `json:"self"`
	Request string `json:"request"`
}

// serviceSummaryResponse is the lightweight item used in the catalog listing.
type serviceSummaryResponse struct {
	Key   string       `json:"key"`
	Title string       `json:"title"`
	Links serviceLinks `json:"_links"`
}

type listServicesResponse struct {
	Data []serviceSummaryResponse `json:"data"`
}

// serviceDetailResponse is the full category view, including everything the
// original detail page rendered.
type serviceDetailResponse struct {
	Key         string       `json:"key"`
	Title       string       `json:"title"`
	Subtitle    string       `json:"subtitle"`
	Description string       `json:"description"`
	SubServices []string     `json:"sub_services"`
	TimeRange   string       `json:"time_range"`
	CostRange   string       `json:"cost_range"`
	AgentPhone  string       `json:"agent_phone"`
	Links       serviceLinks `json:"_links"`
}
