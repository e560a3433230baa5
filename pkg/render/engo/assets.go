// pkg/render/engo/assets.go
package engo

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/infiniti1985/space-drifter/pkg/entity"
)

// SpriteKind names a generated texture
type SpriteKind int

const (
	SpriteShip SpriteKind = iota
	SpritePirate
	SpriteTarget
	SpriteMissile
	SpritePickup
	SpriteStation
	SpriteGate
)

// fontURL is the name the embedded HUD font is registered under
const fontURL = "goregular.ttf"

// spritePatterns draw every sprite pointing along +x, which is heading zero.
// '#' is the tint color, '+' a highlight and '.' transparent.
var spritePatterns = map[SpriteKind][]string{
	SpriteShip: {
		"##..........",
		"####........",
		".######.....",
		"..#######+..",
		"..#########+",
		"..#######+..",
		".######.....",
		"####........",
		"##..........",
	},
	SpritePirate: {
		"#.......#...",
		"##.....###..",
		"###..######.",
		".#########++",
		"###..######.",
		"##.....###..",
		"#.......#...",
	},
	SpriteTarget: {
		"##.......##.....",
		"###.....####....",
		"####...######...",
		".#############..",
		"..############++",
		".#############..",
		"####...######...",
		"###.....####....",
		"##.......##.....",
	},
	SpriteMissile: {
		"#.....",
		"#####+",
		"#.....",
	},
	SpritePickup: {
		"..##..",
		".####.",
		"##++##",
		"##++##",
		".####.",
		"..##..",
	},
	SpriteStation: {
		"...####...",
		"..#....#..",
		".#..##..#.",
		"#..#++#..#",
		"#.#+..+#.#",
		"#.#+..+#.#",
		"#..#++#..#",
		".#..##..#.",
		"..#....#..",
		"...####...",
	},
	SpriteGate: {
		"..######..",
		".#......#.",
		"#..++++..#",
		"#.+....+.#",
		"#.+....+.#",
		"#.+....+.#",
		"#.+....+.#",
		"#..++++..#",
		".#......#.",
		"..######..",
	},
}

var spriteTints = map[SpriteKind]color.NRGBA{
	SpriteShip:    {220, 230, 255, 255},
	SpritePirate:  {230, 60, 50, 255},
	SpriteTarget:  {255, 40, 160, 255},
	SpriteMissile: {255, 170, 40, 255},
	SpritePickup:  {255, 170, 40, 255},
	SpriteStation: {80, 220, 120, 255},
	SpriteGate:    {170, 90, 255, 255},
}

var highlight = color.NRGBA{255, 255, 255, 255}

// planetColors tints celestial bodies by type
var planetColors = map[entity.PlanetType]color.NRGBA{
	entity.Rocky:    {150, 130, 110, 255},
	entity.GasGiant: {210, 170, 120, 255},
	entity.Ice:      {170, 220, 240, 255},
	entity.Terran:   {70, 140, 220, 255},
	entity.Lava:     {230, 90, 40, 255},
	entity.Moon:     {180, 180, 180, 255},
	entity.Mars:     {200, 90, 60, 255},
	entity.Venus:    {230, 200, 140, 255},
}

var (
	starColor     = color.NRGBA{255, 220, 100, 255}
	rockColor     = color.NRGBA{120, 110, 100, 255}
	debrisColor   = color.NRGBA{90, 90, 90, 255}
	crystalColor  = color.NRGBA{80, 240, 240, 255}
	shotColor     = color.NRGBA{255, 255, 255, 255}
	hostileShot   = color.NRGBA{255, 80, 60, 255}
	explosionRich = color.NRGBA{255, 200, 60, 200}
	explosionDud  = color.NRGBA{255, 110, 40, 200}
)

// PlanetColor returns the tint for a planet type, gray when unknown
func PlanetColor(t entity.PlanetType) color.NRGBA {
	if c, ok := planetColors[t]; ok {
		return c
	}
	return color.NRGBA{128, 128, 128, 255}
}

// AssetManager builds the textures and font the renderer draws with
type AssetManager struct {
	sprites map[SpriteKind]common.Drawable
	font    *common.Font
}

// NewAssetManager creates a new asset manager
func NewAssetManager() *AssetManager {
	return &AssetManager{
		sprites: make(map[SpriteKind]common.Drawable),
	}
}

// LoadAssets uploads the sprite textures and prepares the HUD font. It needs
// a live GL context.
func (am *AssetManager) LoadAssets() error {
	for kind, pattern := range spritePatterns {
		img := patternImage(pattern, spriteTints[kind])
		am.sprites[kind] = common.NewTextureSingle(common.NewImageObject(img))
	}

	if err := engo.Files.LoadReaderData(fontURL, bytes.NewReader(goregular.TTF)); err != nil {
		return fmt.Errorf("failed to load font: %w", err)
	}
	font := &common.Font{URL: fontURL, FG: color.White, Size: 16}
	if err := font.CreatePreloaded(); err != nil {
		return fmt.Errorf("failed to prepare font: %w", err)
	}
	am.font = font
	return nil
}

// Sprite returns the texture for a kind, if it has been loaded
func (am *AssetManager) Sprite(kind SpriteKind) (common.Drawable, bool) {
	d, ok := am.sprites[kind]
	return d, ok
}

// Font returns the HUD font, or nil before LoadAssets succeeds
func (am *AssetManager) Font() *common.Font {
	return am.font
}

// patternImage rasterizes a sprite pattern, one pixel per character
func patternImage(pattern []string, tint color.NRGBA) *image.NRGBA {
	width := 0
	for _, row := range pattern {
		width = max(width, len(row))
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, len(pattern)))
	for y, row := range pattern {
		for x, ch := range row {
			switch ch {
			case '#':
				img.SetNRGBA(x, y, tint)
			case '+':
				img.SetNRGBA(x, y, highlight)
			}
		}
	}
	return img
}
