package config

// PlanFile represents the structure of the camplan.yaml plan file: the
// shop catalog followed by the parts to machine.
type PlanFile struct {
	Version string     `yaml:"version"`
	Cache   CacheDTO   `yaml:"cache"`
	Shops   []ShopDTO  `yaml:"shops"`
	Parts   []PartDTO  `yaml:"parts"`
}

// CacheDTO configures the artifact cache directory.
type CacheDTO struct {
	Dir string `yaml:"dir"`
}

// ShopDTO represents one shop and its machines.
type ShopDTO struct {
	ID       int          `yaml:"id"`
	Name     string       `yaml:"name"`
	Machines []MachineDTO `yaml:"machines"`
}

// MachineDTO represents one machine and its tool carousel.
type MachineDTO struct {
	ID         int       `yaml:"id"`
	Name       string    `yaml:"name"`
	Controller string    `yaml:"controller"`
	Tools      []ToolDTO `yaml:"tools"`
}

// ToolDTO represents one tool bit. Priority maps operation kinds to the
// tool's preference score for that kind; kinds without an entry are not
// offered.
type ToolDTO struct {
	Number       int                `yaml:"number"`
	Type         string             `yaml:"type"`
	Diameter     float64            `yaml:"diameter"`
	UsableLength float64            `yaml:"usable_length"`
	Priority     map[string]float64 `yaml:"priority"`
}

// PartDTO represents one part and its ordered setups.
type PartDTO struct {
	Name   string     `yaml:"name"`
	Setups []SetupDTO `yaml:"setups"`
}

// SetupDTO represents one workholding setup.
type SetupDTO struct {
	ID         string         `yaml:"id"`
	Operations []OperationDTO `yaml:"operations"`
}

// OperationDTO represents one machining operation.
type OperationDTO struct {
	Name      string       `yaml:"name"`
	Kind      string       `yaml:"kind"`
	Fence     int          `yaml:"fence"`
	Depth     float64      `yaml:"depth"`
	Disabled  bool         `yaml:"disabled"`
	Diameter  float64      `yaml:"diameter"`
	Threaded  bool         `yaml:"threaded"`
	Positions [][2]float64 `yaml:"positions"`
	Profile   *ProfileDTO  `yaml:"profile"`
}

// ProfileDTO is the resolved 2D profile summary delivered by the geometry
// front end. It implements ports.Profile.
type ProfileDTO struct {
	MinInternalR float64 `yaml:"min_internal_radius"`
	MinExternalR float64 `yaml:"min_external_radius"`
	ProfileArea  float64 `yaml:"area"`
	Outline      float64 `yaml:"perimeter"`
}

// MinInternalRadius returns the tightest inside corner radius.
func (p *ProfileDTO) MinInternalRadius() float64 { return p.MinInternalR }

// MinExternalRadius returns the tightest outside corner radius.
func (p *ProfileDTO) MinExternalRadius() float64 { return p.MinExternalR }

// Area returns the enclosed area.
func (p *ProfileDTO) Area() float64 { return p.ProfileArea }

// Perimeter returns the outline length.
func (p *ProfileDTO) Perimeter() float64 { return p.Outline }
