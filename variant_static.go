package mosaic

// StaticConfig configures the still mosaic shown behind project pages.
type StaticConfig struct {
	SubdivideConfig
}

// DefaultStaticConfig returns the project-page settings.
func DefaultStaticConfig() StaticConfig {
	return StaticConfig{
		SubdivideConfig: SubdivideConfig{MaxDepth: 5, MinSize: 5, Palette: ProjectPalette},
	}
}

// StaticVariant redraws one fixed mosaic every frame. Only a resize changes it.
type StaticVariant struct {
	cfg   StaticConfig
	sub   *Subdivider
	tiles []Tile
}

// NewStaticVariant creates a StaticVariant. A zero MaxDepth marks a partial
// config whose zero fields take the defaults.
func NewStaticVariant(cfg StaticConfig, rng Rand) *StaticVariant {
	if cfg.MaxDepth == 0 {
		cfg.SubdivideConfig = cfg.SubdivideConfig.withDefaults(DefaultStaticConfig().SubdivideConfig)
	}
	return &StaticVariant{cfg: cfg, sub: cfg.subdivider(rng)}
}

func (v *StaticVariant) Name() string { return VariantStatic }

func (v *StaticVariant) Regenerate(viewport Rect) {
	v.tiles = v.sub.Fill(viewport)
}

func (v *StaticVariant) Update(Frame) {}

func (v *StaticVariant) Draw(s Surface, _ Frame) {
	drawAll(s, v.tiles)
}

func (v *StaticVariant) Tiles() []Tile { return v.tiles }
