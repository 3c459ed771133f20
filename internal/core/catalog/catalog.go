// Package catalog holds the fixed, build-time table of home-service
// categories. Every lookup is total: unknown tokens degrade to a default
// category rather than erroring, matching the behaviour customers see.
package catalog

import "strings"

// Category is the display metadata for one service category.
type Category struct {
	Key         string   `json:"key"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description"`
	SubServices []string `json:"sub_services"`
	TimeRange   string   `json:"time_range"`
	CostRange   string   `json:"cost_range"`
}

// DefaultKey is the category returned for unrecognised tokens.
const DefaultKey = "washing-machine"

// AgentPhone is the support number shown on detail pages and in duplicate
// rejections.
const AgentPhone = "+919515624806"

// aliases maps short route tokens to canonical catalog keys.
var aliases = map[string]string{
	"ac":     "ac-repair",
	"fridge": "refrigerator",
	"tv":     "tv-repair",
}

// genericSubServices is returned by SubServicesFor for unknown categories.
var genericSubServices = []string{"Installation", "Repair", "Maintenance"}

var categories = map[string]Category{
	"washing-machine": {
		Key:         "washing-machine",
		Title:       "Washing Machine Repair & Service",
		Subtitle:    "Professional quality service guaranteed",
		Description: "Complete washing machine services including repair, maintenance, installation, and troubleshooting for all brands.",
		SubServices: []string{"Repair", "Maintenance", "Installation", "Troubleshooting", "Cleaning", "Part Replacement"},
		TimeRange:   "2-3 hours (depending on service)",
		CostRange:   "Starting from ₹350*",
	},
	"electrical": {
		Key:         "electrical",
		Title:       "Electrical Repair & Service",
		Subtitle:    "Safe and professional electrical work",
		Description: "Complete electrical services including wiring, installation, repair, and troubleshooting for home and office.",
		SubServices: []string{"Wiring", "Installation", "Repair", "MCB Replacement", "Socket Installation", "Switch Repair"},
		TimeRange:   "1-4 hours (depending on service)",
		CostRange:   "Starting from ₹200*",
	},
	"plumbing": {
		Key:         "plumbing",
		Title:       "Plumbing Repair & Service",
		Subtitle:    "Expert plumbing solutions",
		Description: "Professional plumbing services including pipe repair, installation, leak fixing, and maintenance.",
		SubServices: []string{"Pipe Repair", "Installation", "Leak Fixing", "Tap Repair", "Bathroom Fitting", "Kitchen Plumbing"},
		TimeRange:   "1-3 hours (depending on service)",
		CostRange:   "Starting from ₹300*",
	},
	"ac-repair": {
		Key:         "ac-repair",
		Title:       "AC Repair & Service",
		Subtitle:    "Keep your AC running efficiently",
		Description: "Complete AC services including repair, gas refilling, cleaning, and installation for all brands.",
		SubServices: []string{"Repair", "Gas Refilling", "Cleaning", "Installation", "Maintenance", "Filter Replacement"},
		TimeRange:   "1-2 hours (depending on service)",
		CostRange:   "Starting from ₹500*",
	},
	"refrigerator": {
		Key:         "refrigerator",
		Title:       "Refrigerator Repair & Service",
		Subtitle:    "Keep your food fresh and safe",
		Description: "Expert refrigerator services including repair, gas charging, thermostat fixing, and maintenance.",
		SubServices: []string{"Repair", "Gas Charging", "Thermostat Repair", "Compressor Service", "Door Seal Replacement", "Cleaning"},
		TimeRange:   "2-4 hours (depending on service)",
		CostRange:   "Starting from ₹400*",
	},
	"microwave": {
		Key:         "microwave",
		Title:       "Microwave Repair & Service",
		Subtitle:    "Quick and reliable microwave solutions",
		Description: "Professional microwave services including repair, magnetron replacement, and maintenance for all brands.",
		SubServices: []string{"Repair", "Magnetron Replacement", "Control Panel Repair", "Door Repair", "Heating Issue", "Cleaning"},
		TimeRange:   "1-2 hours (depending on service)",
		CostRange:   "Starting from ₹300*",
	},
	"geyser": {
		Key:         "geyser",
		Title:       "Geyser Repair & Service",
		Subtitle:    "Hot water solutions you can trust",
		Description: "Complete geyser services including repair, element replacement, thermostat fixing, and installation.",
		SubServices: []string{"Repair", "Element Replacement", "Thermostat Repair", "Installation", "Tank Cleaning", "Pipe Connection"},
		TimeRange:   "1-3 hours (depending on service)",
		CostRange:   "Starting from ₹350*",
	},
	"chimney": {
		Key:         "chimney",
		Title:       "Chimney Repair & Service",
		Subtitle:    "Keep your kitchen smoke-free",
		Description: "Professional chimney services including repair, cleaning, filter replacement, and installation.",
		SubServices: []string{"Repair", "Deep Cleaning", "Filter Replacement", "Installation", "Motor Repair", "Duct Cleaning"},
		TimeRange:   "1-2 hours (depending on service)",
		CostRange:   "Starting from ₹400*",
	},
	"inverter": {
		Key:         "inverter",
		Title:       "Inverter Repair & Service",
		Subtitle:    "Uninterrupted power solutions",
		Description: "Expert inverter services including repair, battery replacement, installation, and maintenance.",
		SubServices: []string{"Repair", "Battery Replacement", "Installation", "Circuit Repair", "Display Repair", "Wiring Check"},
		TimeRange:   "1-3 hours (depending on service)",
		CostRange:   "Starting from ₹300*",
	},
	"water-purifier": {
		Key:         "water-purifier",
		Title:       "Water Purifier Repair & Service",
		Subtitle:    "Pure water for healthy living",
		Description: "Complete water purifier services including repair, filter replacement, installation, and maintenance.",
		SubServices: []string{"Repair", "Filter Replacement", "Installation", "UV Lamp Replacement", "Membrane Change", "Cleaning"},
		TimeRange:   "1-2 hours (depending on service)",
		CostRange:   "Starting from ₹250*",
	},
	"tv-repair": {
		Key:         "tv-repair",
		Title:       "TV Repair & Service",
		Subtitle:    "Expert TV repair solutions",
		Description: "Complete TV repair services including screen repair, audio issues, remote problems, and maintenance for all brands.",
		SubServices: []string{"Screen Repair", "Audio Fix", "Remote Issues", "Power Problems", "HDMI Port Repair", "Software Update"},
		TimeRange:   "1-3 hours (depending on service)",
		CostRange:   "Starting from ₹400*",
	},
	"water-motor": {
		Key:         "water-motor",
		Title:       "Water Motor Repair & Service",
		Subtitle:    "Reliable water motor solutions",
		Description: "Professional water motor services including repair, installation, maintenance, and troubleshooting for all types.",
		SubServices: []string{"Motor Repair", "Installation", "Winding Repair", "Bearing Replacement", "Pipe Connection", "Pressure Check"},
		TimeRange:   "2-4 hours (depending on service)",
		CostRange:   "Starting from ₹500*",
	},
}

// listing fixes the order categories are shown in.
var listing = []string{
	"washing-machine", "electrical", "plumbing", "ac-repair", "refrigerator",
	"microwave", "geyser", "chimney", "inverter", "water-purifier",
	"tv-repair", "water-motor",
}

// Resolve maps a route token to its canonical catalog key. Tokens without an
// alias pass through unchanged; Resolve never rejects.
func Resolve(token string) string {
	if canonical, ok := aliases[token]; ok {
		return canonical
	}
	return token
}

// IsKnown reports whether the resolved token names a real category.
func IsKnown(token string) bool {
	_, ok := categories[Resolve(token)]
	return ok
}

// CategoryFor returns the category for a route token, falling back to the
// default category when the token is unrecognised.
func CategoryFor(token string) Category {
	if c, ok := categories[Resolve(token)]; ok {
		return c
	}
	return categories[DefaultKey]
}

// SubServicesFor returns the ordered sub-service names for a route token.
// Unknown tokens get the generic three-item list, not the default category's.
func SubServicesFor(token string) []string {
	if c, ok := categories[Resolve(token)]; ok {
		return append([]string(nil), c.SubServices...)
	}
	return append([]string(nil), genericSubServices...)
}

// All returns every category in listing order.
func All() []Category {
	out := make([]Category, 0, len(listing))
	for _, key := range listing {
		out = append(out, categories[key])
	}
	return out
}

// HasSubService reports whether value names one of the token's sub-services.
// Comparison is slug-normalised so "Pipe Repair" and "pipe-repair" match.
func HasSubService(token, value string) bool {
	want := Slug(value)
	for _, s := range SubServicesFor(token) {
		if Slug(s) == want {
			return true
		}
	}
	return false
}

// Slug lowercases a sub-service name and joins words with hyphens, the form
// clients send back in submissions.
func Slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
