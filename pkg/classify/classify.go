// Package classify derives display and preview metadata from file entries.
package classify

import (
	"strings"

	"github.com/filetug/allocfs/pkg/files"
)

// PreviewSizeLimit is the size under which an otherwise unknown file
// is still treated as previewable text.
const PreviewSizeLimit = 5 * 1024 * 1024

// PlainText is the language tag for files without a known syntax.
const PlainText = "plaintext"

type IconCategory int

const (
	IconFile IconCategory = iota
	IconDirectory
	IconConfig
	IconCode
	IconDocument
	IconLog
	IconScript
	IconArchive
	IconImage
	IconBinary
)

var iconCategoryNames = map[IconCategory]string{
	IconFile:      "file",
	IconDirectory: "directory",
	IconConfig:    "config",
	IconCode:      "code",
	IconDocument:  "document",
	IconLog:       "log",
	IconScript:    "script",
	IconArchive:   "archive",
	IconImage:     "image",
	IconBinary:    "binary",
}

func (c IconCategory) String() string {
	if name, ok := iconCategoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// Classification is the display and preview metadata of an entry.
type Classification struct {
	Icon               IconCategory
	IsPreviewCandidate bool
	LanguageTag        string
}

// Classify is deterministic and depends on nothing but the entry.
func Classify(entry files.FileEntry) Classification {
	if entry.IsDir {
		return Classification{Icon: IconDirectory}
	}
	ext := entry.Ext()
	c := Classification{
		Icon:        IconFile,
		LanguageTag: PlainText,
	}
	if icon, ok := extIcons[ext]; ok {
		c.Icon = icon
	}
	if tag, ok := languageTags[ext]; ok {
		c.LanguageTag = tag
	}
	c.IsPreviewCandidate = isPreviewCandidate(entry, ext, c.Icon)
	return c
}

func isPreviewCandidate(entry files.FileEntry, ext string, icon IconCategory) bool {
	switch icon {
	case IconBinary, IconArchive, IconImage:
		return false
	}
	_, isText := textExtensions[ext]
	if isText {
		return true
	}
	if entry.IsExecutable() {
		return false
	}
	// Case-insensitive so CHANGELOG and Config match too.
	name := strings.ToLower(entry.Name)
	if strings.Contains(name, "log") || strings.Contains(name, "config") {
		return true
	}
	if entry.IsHidden() {
		return true
	}
	return entry.Size < PreviewSizeLimit
}
