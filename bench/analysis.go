package bench

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Summary collects headline numbers about one trace.
type Summary struct {
	Segments int
	Escaped  int
	// Deepest interaction count reached by any segment
	MaxDepth int
	// Summed length of all non-escaped segments, in mm
	PathLength float64
	// Intensity carried by escaped rays, per source id
	EscapedIntensity map[string]float64
	// Intensity of the brightest segment
	PeakIntensity float64
	// Segment count per source id
	PerSource map[string]int
}

// Summarize reduces a list of segments to a Summary.
func Summarize(segments []TraceSegment) Summary {
	s := Summary{
		Segments:         len(segments),
		EscapedIntensity: map[string]float64{},
		PerSource:        map[string]int{},
	}
	if len(segments) == 0 {
		return s
	}
	intensities := make([]float64, len(segments))
	lengths := make([]float64, 0, len(segments))
	for i, seg := range segments {
		intensities[i] = seg.Intensity
		s.PerSource[seg.SourceElementID]++
		if seg.Depth > s.MaxDepth {
			s.MaxDepth = seg.Depth
		}
		if seg.Escaped {
			s.Escaped++
			s.EscapedIntensity[seg.SourceElementID] += seg.Intensity
			continue
		}
		lengths = append(lengths, seg.Length())
	}
	s.PeakIntensity = floats.Max(intensities)
	s.PathLength = floats.Sum(lengths)
	return s
}

// OpticalDensity converts a transmitted fraction to optical density, the
// base-10 attenuation used to rate neutral density filters.
func OpticalDensity(transmission float64) float64 {
	if transmission <= 0 {
		return math.Inf(1)
	}
	return -math.Log10(transmission)
}

func toDB(gain float64) float64 {
	return 10 * math.Log10(gain)
}
