package chroma2tcell

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/rivo/tview"
)

// DefaultStyle is the chroma style used for previews.
const DefaultStyle = "dracula"

var getStyle = styles.Get

var getFallbackStyle = func() *chroma.Style {
	return styles.Fallback
}

var getLexer = lexers.Get

const plainText = "plaintext"

// Colorize renders text as tview color tags. Token values are escaped so
// brackets in the source are not read as tags.
func Colorize(text, styleName string, lexer chroma.Lexer) (string, error) {
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", err
	}

	style := getStyle(styleName)
	if style == nil {
		style = getFallbackStyle()
	}

	var sb strings.Builder
	for _, token := range iterator.Tokens() {
		value := tview.Escape(token.Value)
		color := style.Get(token.Type)
		if color.IsZero() {
			sb.WriteString(value)
			continue
		}

		// Map Chroma color to tview [color] tag
		// simple approximation: use hex
		colorText := color.Colour.String()
		sb.WriteString("[" + colorText + "]")
		sb.WriteString(value)
		sb.WriteString("[-]")
	}

	return sb.String(), nil
}

// ColorizeLanguage highlights text using the lexer registered for languageTag.
// It reports false when no lexer is known and the text is returned escaped
// but otherwise unchanged.
func ColorizeLanguage(text, languageTag string) (string, bool, error) {
	if languageTag == "" || languageTag == plainText {
		return tview.Escape(text), false, nil
	}
	lexer := getLexer(languageTag)
	if lexer == nil {
		return tview.Escape(text), false, nil
	}
	colorized, err := Colorize(text, DefaultStyle, chroma.Coalesce(lexer))
	if err != nil {
		return "", false, err
	}
	return colorized, true, nil
}
