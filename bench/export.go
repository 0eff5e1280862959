package bench

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/fogleman/pt/pt"
)

// JSON schema types
type VectorJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type ElementJSON struct {
	ID      string     `json:"id"`
	Name    string     `json:"name,omitempty"`
	Type    string     `json:"type"`
	Center  VectorJSON `json:"center"`
	Forward VectorJSON `json:"forward"`
	Visible bool       `json:"visible"`
}

type BeamJSON struct {
	Start     VectorJSON `json:"start"`
	End       VectorJSON `json:"end"`
	Color     string     `json:"color"`
	Intensity float64    `json:"intensity"`
	// Loss relative to the source, in dB. Absent for dark beams.
	Attenuation *float64 `json:"attenuationDb,omitempty"`
	Width       float64  `json:"width"`
	Traced      bool     `json:"traced"`
	Source      string   `json:"source,omitempty"`
}

type SummaryJSON struct {
	Segments   int            `json:"segments"`
	Escaped    int            `json:"escaped"`
	MaxDepth   int            `json:"maxDepth"`
	PathLength float64        `json:"pathLength"`
	PerSource  map[string]int `json:"perSource,omitempty"`
}

// Conversion functions
func VectorToJSON(v pt.Vector) VectorJSON {
	return VectorJSON{X: v.X, Y: v.Y, Z: v.Z}
}

// ColorToHex formats a color as #RRGGBB, clamping each channel to [0, 1].
func ColorToHex(c pt.Color) string {
	channel := func(x float64) int {
		return int(math.Round(clamp(x, 0, 1) * 255))
	}
	return fmt.Sprintf("#%02X%02X%02X", channel(c.R), channel(c.G), channel(c.B))
}

func ElementToJSON(e *Element) ElementJSON {
	return ElementJSON{
		ID:      e.ID,
		Name:    e.Name,
		Type:    e.Type.String(),
		Center:  VectorToJSON(e.WorldBoundsCenter()),
		Forward: VectorToJSON(e.Forward()),
		Visible: e.Visible,
	}
}

func BeamToJSON(b Beam) BeamJSON {
	var attenuation *float64
	if b.Intensity > 0 {
		db := toDB(b.Intensity)
		attenuation = &db
	}
	return BeamJSON{
		Start:       VectorToJSON(b.Start),
		End:         VectorToJSON(b.End),
		Color:       ColorToHex(b.Color),
		Intensity:   b.Intensity,
		Attenuation: attenuation,
		Width:       b.Width,
		Traced:      b.Traced,
		Source:      b.SourceElementID,
	}
}

func SummaryToJSON(s Summary) SummaryJSON {
	return SummaryJSON{
		Segments:   s.Segments,
		Escaped:    s.Escaped,
		MaxDepth:   s.MaxDepth,
		PathLength: s.PathLength,
		PerSource:  s.PerSource,
	}
}

// SaveBenchToJSON writes the bench's elements and beams, plus a trace summary, to a JSON file.
func SaveBenchToJSON(filename string, b *Bench, summary Summary) error {
	container := struct {
		Elements []ElementJSON `json:"elements"`
		Beams    []BeamJSON    `json:"beams"`
		Summary  SummaryJSON   `json:"summary"`
	}{
		Elements: make([]ElementJSON, 0, len(b.Elements())),
		Beams:    make([]BeamJSON, 0, len(b.Beams)),
		Summary:  SummaryToJSON(summary),
	}

	for _, e := range b.Elements() {
		container.Elements = append(container.Elements, ElementToJSON(e))
	}
	for _, beam := range b.Beams {
		container.Beams = append(container.Beams, BeamToJSON(beam))
	}

	data, err := json.MarshalIndent(container, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling bench: %w", err)
	}

	return os.WriteFile(filename, data, 0644)
}
