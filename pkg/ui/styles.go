package ui

import (
	"github.com/filetug/allocfs/pkg/classify"
	"github.com/gdamore/tcell/v2"
)

var iconGlyphs = map[classify.IconCategory]string{
	classify.IconDirectory: "📁",
	classify.IconConfig:    "⚙️",
	classify.IconCode:      "📝",
	classify.IconDocument:  "📄",
	classify.IconLog:       "📜",
	classify.IconScript:    "🐚",
	classify.IconArchive:   "📦",
	classify.IconImage:     "🖼️",
	classify.IconBinary:    "⚡",
}

var iconColors = map[classify.IconCategory]tcell.Color{
	classify.IconDirectory: tcell.ColorCornflowerBlue,
	classify.IconConfig:    tcell.ColorLightYellow,
	classify.IconCode:      tcell.ColorAqua,
	classify.IconDocument:  tcell.ColorWhite,
	classify.IconLog:       tcell.ColorRosyBrown,
	classify.IconScript:    tcell.ColorGreen,
	classify.IconArchive:   tcell.ColorOrange,
	classify.IconImage:     tcell.ColorMediumPurple,
	classify.IconBinary:    tcell.ColorRed,
}

func iconGlyph(icon classify.IconCategory) string {
	if glyph, ok := iconGlyphs[icon]; ok {
		return glyph
	}
	return "📄"
}

func iconColor(c classify.Classification) tcell.Color {
	if !c.IsPreviewCandidate && c.Icon != classify.IconDirectory {
		return tcell.ColorGray
	}
	if color, ok := iconColors[c.Icon]; ok {
		return color
	}
	return tcell.ColorWhiteSmoke
}

var (
	errorColor  = tcell.ColorRed
	headerColor = tcell.ColorDarkGray
	mutedColor  = tcell.ColorLightGray
)
