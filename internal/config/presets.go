package config

import "sort"

// Presets are mean orbital elements of familiar bodies (AU, years).
var Presets = map[string]*Config{
	"mercury":  {Body: "mercury", A: 0.387, E: 0.2056, Period: 0.2408, Steps: 360},
	"venus":    {Body: "venus", A: 0.723, E: 0.0068, Period: 0.6152, Steps: 360},
	"earth":    {Body: "earth", A: 1.0, E: 0.0167, Period: 1.0, Steps: 365},
	"mars":     {Body: "mars", A: 1.524, E: 0.0934, Period: 1.881, Steps: 360},
	"jupiter":  {Body: "jupiter", A: 5.203, E: 0.0489, Period: 11.86, Steps: 360},
	"halley":   {Body: "halley", A: 17.83, E: 0.967, Period: 75.32, Steps: 2000, Timing: "kepler"},
	"circular": {Body: "circular", A: 1.0, E: 0.0, Period: 1.0, Steps: 120},
	"textbook": {Body: "textbook", A: 1.0, E: 0.5, Period: 1.0, Steps: 180},
}

func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset copies the orbital elements and sampling of a preset onto cfg,
// leaving presentation settings alone.
func ApplyPreset(cfg *Config, name string) bool {
	p := GetPreset(name)
	if p == nil {
		return false
	}
	cfg.Body = p.Body
	cfg.A = p.A
	cfg.E = p.E
	cfg.Period = p.Period
	if p.Steps > 0 {
		cfg.Steps = p.Steps
	}
	if p.Timing != "" {
		cfg.Timing = p.Timing
	}
	return true
}
