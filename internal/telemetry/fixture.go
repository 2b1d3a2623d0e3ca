package telemetry

import (
	"context"
	"hash/fnv"
	"math/rand"

	"adaptiveui/internal/model"
)

var (
	fixtureDevices     = []model.DeviceType{model.DeviceDesktop, model.DeviceTablet, model.DeviceMobile}
	fixtureTimes       = []model.TimeOfDay{model.TimeMorning, model.TimeAfternoon, model.TimeEvening, model.TimeNight}
	fixtureResolutions = []string{"1920x1080", "1366x768", "1440x900", "768x1024", "375x667"}
	fixtureSystems     = []string{"Windows 10", "macOS Monterey", "Ubuntu 20.04", "iOS 15", "Android 12"}
	fixtureCities      = []model.GeoPoint{
		{Latitude: 55.7558, Longitude: 37.6173},
		{Latitude: 59.9311, Longitude: 30.3609},
		{Latitude: 54.7034, Longitude: 20.5109},
		{Latitude: 56.8389, Longitude: 60.6057},
	}
	fixturePages   = []string{"home", "products", "catalog", "cart", "checkout", "profile"}
	fixtureButtons = []string{"button_1", "button_2", "link_3", "card_4", "form_5"}
)

// FixtureSource synthesizes contexts deterministically from the user id: the
// same user always yields the same context. Used in development and tests so
// no randomness leaks into the scored pipeline.
type FixtureSource struct{}

// NewFixtureSource creates a deterministic context source.
func NewFixtureSource() *FixtureSource {
	return &FixtureSource{}
}

// Collect builds the user's fixture context.
func (s *FixtureSource) Collect(_ context.Context, userID int64) (*model.Context, error) {
	rng := rand.New(rand.NewSource(seedFor(userID)))

	return &model.Context{
		UserID:           userID,
		DeviceType:       fixtureDevices[rng.Intn(len(fixtureDevices))],
		ScreenResolution: fixtureResolutions[rng.Intn(len(fixtureResolutions))],
		OperatingSystem:  fixtureSystems[rng.Intn(len(fixtureSystems))],
		Geolocation:      fixtureCities[rng.Intn(len(fixtureCities))],
		TimeOfDay:        fixtureTimes[rng.Intn(len(fixtureTimes))],
		ViewHistory:      sample(rng, fixturePages, 2+rng.Intn(3)),
		ClickData:        sample(rng, fixtureButtons, 1+rng.Intn(3)),
		UserPreferences:  map[string]string{"theme": "dark", "language": "en"},
		IsNewUser:        rng.Float64() > 0.7,
	}, nil
}

func seedFor(userID int64) int64 {
	h := fnv.New64a()
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(userID >> (8 * i))
	}
	h.Write(buf[:])
	return int64(h.Sum64())
}

func sample(rng *rand.Rand, pool []string, n int) []string {
	idx := rng.Perm(len(pool))
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = pool[idx[i]]
	}
	return out
}
