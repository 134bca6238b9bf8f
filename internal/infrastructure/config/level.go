package config

// LevelConfig is the root config for level.json
type LevelConfig struct {
	ID          string             `json:"id"`
	PlayerSpawn PositionConfig     `json:"playerSpawn"`
	Boss        PositionConfig     `json:"boss"`
	Coins       []PositionConfig   `json:"coins"`
	Bottles     BottleRowConfig    `json:"bottles"`
	Background  BackgroundConfig   `json:"background"`
	Clouds      CloudsConfig       `json:"clouds"`
	Enemies     []EnemySpawnConfig `json:"enemies"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// BottleRowConfig places ground bottles at a shared height
type BottleRowConfig struct {
	X []float64 `json:"x"`
	Y float64   `json:"y"`
}

// BackgroundConfig repeats the layer stack along the level.
// Alternating layers switch between their "1" and "2" variants per repeat.
type BackgroundConfig struct {
	TileWidth  float64       `json:"tileWidth"`
	TileHeight float64       `json:"tileHeight"`
	Repeats    int           `json:"repeats"`
	Layers     []LayerConfig `json:"layers"`
}

type LayerConfig struct {
	Sprite    string `json:"sprite"`
	Alternate bool   `json:"alternate,omitempty"`
}

// CloudsConfig lays out the drifting cloud band
type CloudsConfig struct {
	Count       int         `json:"count"`
	Spacing     float64     `json:"spacing"`
	Jitter      float64     `json:"jitter"`
	BaseY       float64     `json:"baseY"`
	HeightRange float64     `json:"heightRange"`
	Speed       RangeConfig `json:"speed"`
	WrapX       float64     `json:"wrapX"`
	WrapJitter  float64     `json:"wrapJitter"`
	Variants    []string    `json:"variants"`
}

// EnemySpawnConfig is an enemy present at match start
type EnemySpawnConfig struct {
	Type string  `json:"type"`
	X    float64 `json:"x"`
}

// LayerSprite returns the sprite key of a background layer for repeat i
func (l LayerConfig) LayerSprite(i int) string {
	if !l.Alternate {
		return l.Sprite
	}
	return FrameKey(l.Sprite, i%2+1)
}

// SpriteKeys lists the background and cloud sprite keys of the level
func (c *LevelConfig) SpriteKeys() []string {
	var keys []string
	for _, layer := range c.Background.Layers {
		if layer.Alternate {
			keys = append(keys, layer.LayerSprite(0), layer.LayerSprite(1))
		} else {
			keys = append(keys, layer.Sprite)
		}
	}
	return append(keys, c.Clouds.Variants...)
}
