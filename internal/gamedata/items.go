package gamedata

// ItemDef defines a floor item loaded from JSON.
type ItemDef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Glyph       string `json:"glyph"`
	Color       string `json:"color"`
	SpawnWeight int    `json:"spawnWeight"`
}

// GlyphRune returns the glyph as a rune for rendering.
func (i *ItemDef) GlyphRune() rune {
	return firstRune(i.Glyph)
}

// RGB returns the parsed color, or white if the color is malformed.
func (i *ItemDef) RGB() RGB {
	return colorOrWhite(i.Color)
}

func (i ItemDef) key() string { return i.ID }
func (i ItemDef) weight() int { return i.SpawnWeight }

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// LoadItems loads item definitions from the embedded items.json file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return '?'
}

func colorOrWhite(hex string) RGB {
	c, err := ParseHexColor(hex)
	if err != nil {
		return RGB{R: 255, G: 255, B: 255}
	}
	return c
}
