package experiment

import (
	"math/rand"
	"time"
)

var (
	adjectives = []string{
		"coherent", "polarized", "diffuse", "collimated", "monochrome", "bright",
		"faint", "scattered", "focused", "divergent", "spectral", "ultraviolet",
		"infrared", "crimson", "violet", "amber", "golden", "silver", "glassy",
		"frosted", "clear", "hazy", "dim", "brilliant", "gleaming", "shimmering",
		"twilight", "dawn", "quiet", "patient", "restless", "wandering", "lucky",
		"bold", "little", "old", "young", "crystal", "polished", "nameless",
		"lively", "oddball", "solitary", "distant", "parallel", "oblique",
	}

	nouns = []string{
		"photon", "beam", "prism", "lens", "mirror", "grating", "fringe",
		"spectrum", "rainbow", "halo", "glint", "spark", "flare", "ray",
		"aperture", "iris", "focus", "caustic", "aurora", "lantern", "beacon",
		"lighthouse", "firefly", "star", "moon", "sun", "dawn", "dusk", "glow",
		"shadow", "mirage", "crystal", "quartz", "sapphire", "opal", "diamond",
		"window", "pupil", "pinhole", "laser", "filter", "etalon", "cavity",
	}
)

// GenerateRunName creates a memorable run identifier in the format
// "adjective-noun"
func GenerateRunName() string {
	adj := adjectives[rand.Intn(len(adjectives))]
	noun := nouns[rand.Intn(len(nouns))]
	return adj + "-" + noun
}

// GenerateRunID makes a run identifier unique by appending a UTC timestamp
// to a memorable name
func GenerateRunID(now time.Time) string {
	return GenerateRunName() + "-" + now.UTC().Format("20060102-150405")
}
