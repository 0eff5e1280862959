package config

// BenchConfig represents the complete configuration for an optical bench trace
type BenchConfig struct {
	Metadata    Metadata        `yaml:"metadata"`
	Input       Input           `yaml:"input"`
	Presets     Presets         `yaml:"presets"`
	Assignments Assignments     `yaml:"assignments"`
	Elements    []ElementConfig `yaml:"elements"`
	Trace       Trace           `yaml:"trace"`
	Output      Output          `yaml:"output"`
}

type Metadata struct {
	Timestamp string `yaml:"timestamp"` // YYYY-MM-DD HH:MM:SS in UTC
	GitCommit string `yaml:"git_commit"`
}

type Input struct {
	Layout Layout `yaml:"layout"`
}

// Layout is an optional 3MF file whose objects become elements
type Layout struct {
	Path string `yaml:"path"`
}

// Presets are named sets of optical properties elements can start from
type Presets struct {
	Inline   map[string]Optics `yaml:"inline,omitempty"`
	FromFile string            `yaml:"from_file,omitempty"`
}

// Optics overrides optical properties. Unset fields keep the value they had.
type Optics struct {
	Reflectivity       *float64    `yaml:"reflectivity,omitempty" json:"reflectivity,omitempty"`
	Transmissivity     *float64    `yaml:"transmissivity,omitempty" json:"transmissivity,omitempty"`
	IOR                *float64    `yaml:"ior,omitempty" json:"ior,omitempty"`
	FocalLength        *float64    `yaml:"focal_length,omitempty" json:"focal_length,omitempty"` // mm
	FilterColor        *[3]float64 `yaml:"filter_color,omitempty" json:"filter_color,omitempty"` // RGB 0-1
	ApertureDiameter   *float64    `yaml:"aperture_diameter,omitempty" json:"aperture_diameter,omitempty"`
	GratingLineDensity *float64    `yaml:"grating_line_density,omitempty" json:"grating_line_density,omitempty"` // lines/mm
	Wavelength         *float64    `yaml:"wavelength_nm,omitempty" json:"wavelength_nm,omitempty"`
	BeamColor          *[3]float64 `yaml:"beam_color,omitempty" json:"beam_color,omitempty"` // RGB 0-1
}

// Assignments type the objects of a 3MF layout by name
type Assignments struct {
	Inline   map[string]Assignment `yaml:"inline,omitempty"` // object name -> role
	FromFile string                `yaml:"from_file,omitempty"`
}

type Assignment struct {
	Type   string `yaml:"type" json:"type"`
	Preset string `yaml:"preset,omitempty" json:"preset,omitempty"`
}

type ElementConfig struct {
	ID       string     `yaml:"id"`
	Name     string     `yaml:"name,omitempty"`
	Type     string     `yaml:"type"`
	Position [3]float64 `yaml:"position"` // mm
	Rotation [3]float64 `yaml:"rotation"` // degrees about X, Y, Z
	Size     [3]float64 `yaml:"size"`     // mm
	Hidden   bool       `yaml:"hidden,omitempty"`
	Preset   string     `yaml:"preset,omitempty"`
	Optics   Optics     `yaml:"optics,omitempty"`
}

// Trace limits. Unset fields take the tracer defaults.
type Trace struct {
	MaxBounces   *int     `yaml:"max_bounces,omitempty"`
	MaxDistance  *float64 `yaml:"max_distance,omitempty"` // mm
	MinIntensity *float64 `yaml:"min_intensity,omitempty"`
	Epsilon      *float64 `yaml:"epsilon,omitempty"` // mm
}

type Output struct {
	Directory   string  `yaml:"directory,omitempty"`
	ImageWidth  int     `yaml:"image_width,omitempty"`
	ImageHeight int     `yaml:"image_height,omitempty"`
	Margin      float64 `yaml:"margin,omitempty"` // pixels
}

const (
	DefaultOutputDirectory = "runs"
	DefaultImageWidth      = 1200
	DefaultImageHeight     = 800
)

// WithDefaults fills unset output fields.
func (o Output) WithDefaults() Output {
	if o.Directory == "" {
		o.Directory = DefaultOutputDirectory
	}
	if o.ImageWidth == 0 {
		o.ImageWidth = DefaultImageWidth
	}
	if o.ImageHeight == 0 {
		o.ImageHeight = DefaultImageHeight
	}
	return o
}
