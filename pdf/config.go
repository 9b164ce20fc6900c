package pdf

// Config holds PDF rendering settings. Zero fields take defaults.
type Config struct {
	PageSize   string
	Margin     float64 // points
	FontFamily string  // core font family (Helvetica, Courier, Times)
	FontSize   float64 // body size in points
	LineHeight float64 // multiplier on FontSize

	TitleScale float64
	H2Scale    float64
	H3Scale    float64

	TextRGB        [3]int
	AccentRGB      [3]int // H3 headings
	LinkRGB        [3]int
	TableHeaderRGB [3]int
	TableLineRGB   [3]int
	FooterRGB      [3]int

	BulletIndent   float64 // points
	CellPadding    float64 // points, horizontal and vertical
	FooterFontSize float64

	// ChartWidth/ChartHeight bound the optional price sparkline drawn in
	// the top-right corner of page 1.
	ChartWidth  float64
	ChartHeight float64

	// NoCompression disables content stream compression. Used by tests
	// that assert on the raw content stream.
	NoCompression bool
}

// DefaultConfig returns a baseline configuration.
func DefaultConfig() Config {
	return Config{
		PageSize:       "A4",
		Margin:         48,
		FontFamily:     "Helvetica",
		FontSize:       11,
		LineHeight:     1.5,
		TitleScale:     1.7,
		H2Scale:        1.35,
		H3Scale:        1.15,
		TextRGB:        [3]int{40, 40, 40},
		AccentRGB:      [3]int{30, 90, 160},
		LinkRGB:        [3]int{6, 69, 173},
		TableHeaderRGB: [3]int{230, 236, 245},
		TableLineRGB:   [3]int{180, 180, 180},
		FooterRGB:      [3]int{130, 130, 130},
		BulletIndent:   14,
		CellPadding:    4,
		FooterFontSize: 8,
		ChartWidth:     140,
		ChartHeight:    48,
	}
}

func applyConfig(dst *Config, src Config) {
	if src.PageSize != "" {
		dst.PageSize = src.PageSize
	}
	if src.Margin > 0 {
		dst.Margin = src.Margin
	}
	if src.FontFamily != "" {
		dst.FontFamily = src.FontFamily
	}
	if src.FontSize > 0 {
		dst.FontSize = src.FontSize
	}
	if src.LineHeight > 0 {
		dst.LineHeight = src.LineHeight
	}
	if src.TitleScale > 0 {
		dst.TitleScale = src.TitleScale
	}
	if src.H2Scale > 0 {
		dst.H2Scale = src.H2Scale
	}
	if src.H3Scale > 0 {
		dst.H3Scale = src.H3Scale
	}
	if src.TextRGB != [3]int{} {
		dst.TextRGB = src.TextRGB
	}
	if src.AccentRGB != [3]int{} {
		dst.AccentRGB = src.AccentRGB
	}
	if src.LinkRGB != [3]int{} {
		dst.LinkRGB = src.LinkRGB
	}
	if src.TableHeaderRGB != [3]int{} {
		dst.TableHeaderRGB = src.TableHeaderRGB
	}
	if src.TableLineRGB != [3]int{} {
		dst.TableLineRGB = src.TableLineRGB
	}
	if src.FooterRGB != [3]int{} {
		dst.FooterRGB = src.FooterRGB
	}
	if src.BulletIndent > 0 {
		dst.BulletIndent = src.BulletIndent
	}
	if src.CellPadding > 0 {
		dst.CellPadding = src.CellPadding
	}
	if src.FooterFontSize > 0 {
		dst.FooterFontSize = src.FooterFontSize
	}
	if src.ChartWidth > 0 {
		dst.ChartWidth = src.ChartWidth
	}
	if src.ChartHeight > 0 {
		dst.ChartHeight = src.ChartHeight
	}
	if src.NoCompression {
		dst.NoCompression = true
	}
}

func isCoreFont(name string) bool {
	switch name {
	case "Courier", "Helvetica", "Times":
		return true
	default:
		return false
	}
}
