package model

// DeviceType classifies the device a context was observed on
type DeviceType string

const (
	DeviceDesktop DeviceType = "desktop"
	DeviceTablet  DeviceType = "tablet"
	DeviceMobile  DeviceType = "mobile"
)

// IsValid reports whether d is one of the known device classes
func (d DeviceType) IsValid() bool {
	switch d {
	case DeviceDesktop, DeviceTablet, DeviceMobile:
		return true
	}
	return false
}

// TimeOfDay buckets the local time a context was observed at
type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
	TimeNight     TimeOfDay = "night"
)

// IsValid reports whether t is one of the known buckets
func (t TimeOfDay) IsValid() bool {
	switch t {
	case TimeMorning, TimeAfternoon, TimeEvening, TimeNight:
		return true
	}
	return false
}

// GeoPoint is a user's approximate position
type GeoPoint struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// InRange reports whether the coordinates are on the globe. Non-finite
// values fail the comparisons, so NaN and infinities are out of range too.
func (g GeoPoint) InRange() bool {
	return g.Latitude >= -90 && g.Latitude <= 90 &&
		g.Longitude >= -180 && g.Longitude <= 180
}

// Context is a point-in-time description of a user's device, environment and
// recent activity. Built once per adaptation request and never mutated after.
type Context struct {
	UserID           int64             `json:"user_id"`
	DeviceType       DeviceType        `json:"device_type"`
	ScreenResolution string            `json:"screen_resolution"`
	OperatingSystem  string            `json:"operating_system"`
	Geolocation      GeoPoint          `json:"geolocation"`
	TimeOfDay        TimeOfDay         `json:"time_of_day"`
	ViewHistory      []string          `json:"view_history"`
	ClickData        []string          `json:"click_data"`
	UserPreferences  map[string]string `json:"user_preferences,omitempty"`
	IsNewUser        bool              `json:"is_new_user"`
}
