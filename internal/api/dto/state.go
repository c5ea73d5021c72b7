package dto

type WeatherResponse struct {
	City        string `json:"city"`
	Temperature string `json:"temperature"`
	Condition   string `json:"condition"`
	Emoji       string `json:"emoji"`
}

type CardResponse struct {
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	Variant     string `json:"variant"`
	Category    string `json:"category,omitempty"`
	Environment string `json:"environment,omitempty"`
	Score       string `json:"score,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

type ViewportResponse struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Zoom int     `json:"zoom"`
}

type StateResponse struct {
	Loading    bool             `json:"loading"`
	Weather    *WeatherResponse `json:"weather"`
	Cards      []CardResponse   `json:"cards"`
	NoResults  bool             `json:"no_results"`
	Error      string           `json:"error,omitempty"`
	Validation string           `json:"validation,omitempty"`
	Viewport   ViewportResponse `json:"viewport"`
	Markers    int              `json:"markers"`
}
