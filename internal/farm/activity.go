package farm

// Activity is an entry in the overview's recent activity feed.
type Activity struct {
	ID          string       `json:"id"          yaml:"id"`
	Type        ActivityType `json:"type"        yaml:"type"`
	Title       string       `json:"title"       yaml:"title"`
	Description string       `json:"description" yaml:"description"`
	Time        string       `json:"time"        yaml:"time"`
}

// RecordID implements [view.Record].
func (a Activity) RecordID() string { return a.ID }

// Validate implements [view.Record].
func (a Activity) Validate() error {
	return checkEnum("type", a.Type, ActivityTypes)
}

// Weather is the current conditions card on the overview page.
type Weather struct {
	Location     string  `json:"location"      yaml:"location"`
	Condition    string  `json:"condition"     yaml:"condition"`
	TemperatureC float64 `json:"temperature_c" yaml:"temperature_c"` //nolint:tagliatelle // snake_case for data files
	Humidity     float64 `json:"humidity"      yaml:"humidity"`
	WindKph      float64 `json:"wind_kph"      yaml:"wind_kph"`    //nolint:tagliatelle // snake_case for data files
	RainfallMM   float64 `json:"rainfall_mm"   yaml:"rainfall_mm"` //nolint:tagliatelle // snake_case for data files
}
