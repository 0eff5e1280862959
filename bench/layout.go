package bench

import (
	"github.com/fogleman/pt/pt"
)

// Element ids used by MichelsonLayout
const (
	MichelsonSourceID   = "laser"
	MichelsonSplitterID = "splitter"
	MichelsonArmXID     = "mirror_x"
	MichelsonArmZID     = "mirror_z"
	MichelsonDetectorID = "detector"
)

// MichelsonLayout places a Michelson interferometer in the XZ plane. The
// splitter sits at Center with its surface at 45 degrees, the source shines
// along +Z into it, one arm runs along +X and the other along +Z, and the
// detector collects the recombined beams on the -X side.
type MichelsonLayout struct {
	Center pt.Vector
	// Distance of the source behind the splitter
	SourceDistance float64
	// Distance from the splitter to the arm mirrors
	ArmX, ArmZ float64
	// Distance from the splitter to the detector
	DetectorDistance float64
	// Edge length of every element
	ElementSize float64
	// Thickness of the splitter, mirrors and detector
	Thickness float64
	// Splitter reflectivity and transmissivity
	SplitRatio float64
}

// DefaultMichelsonLayout matches a small tabletop interferometer, in mm.
func DefaultMichelsonLayout() MichelsonLayout {
	return MichelsonLayout{
		SourceDistance:   10,
		ArmX:             6,
		ArmZ:             6,
		DetectorDistance: 6,
		ElementSize:      4,
		Thickness:        0.2,
		SplitRatio:       0.5,
	}
}

func (l MichelsonLayout) SourcePosition() pt.Vector {
	return l.Center.Add(V(0, 0, -l.SourceDistance))
}

func (l MichelsonLayout) ArmXPosition() pt.Vector {
	return l.Center.Add(V(l.ArmX, 0, 0))
}

func (l MichelsonLayout) ArmZPosition() pt.Vector {
	return l.Center.Add(V(0, 0, l.ArmZ))
}

func (l MichelsonLayout) DetectorPosition() pt.Vector {
	return l.Center.Add(V(-l.DetectorDistance, 0, 0))
}

// Elements returns the source, splitter, both arm mirrors and the detector,
// in that order.
func (l MichelsonLayout) Elements() []*Element {
	plate := V(l.ElementSize, l.ElementSize, l.Thickness)
	laser := NewElementFacing(MichelsonSourceID, Source, l.SourcePosition(), axisZ, V(2, 2, 2))
	// Facing between -X and +Z sends the reflected half of a +Z beam along +X.
	splitter := NewElementFacing(MichelsonSplitterID, Splitter, l.Center, V(-1, 0, 1), plate)
	splitter.Optics.Reflectivity = l.SplitRatio
	splitter.Optics.Transmissivity = 1 - l.SplitRatio
	mirrorX := NewElementFacing(MichelsonArmXID, Mirror, l.ArmXPosition(), axisX, plate)
	mirrorZ := NewElementFacing(MichelsonArmZID, Mirror, l.ArmZPosition(), axisZ, plate)
	detector := NewElementFacing(MichelsonDetectorID, Absorber, l.DetectorPosition(), axisX, plate)
	return []*Element{laser, splitter, mirrorX, mirrorZ, detector}
}

// Bench returns a new bench holding the layout's elements.
func (l MichelsonLayout) Bench() *Bench {
	return NewBench(l.Elements()...)
}

// PathDifference is the optical path difference between the two arms.
func (l MichelsonLayout) PathDifference() float64 {
	return 2 * (l.ArmX - l.ArmZ)
}
