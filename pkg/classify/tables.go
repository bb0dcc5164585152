package classify

var extIcons = map[string]IconCategory{
	// Config
	".yaml":  IconConfig,
	".yml":   IconConfig,
	".json":  IconConfig,
	".toml":  IconConfig,
	".ini":   IconConfig,
	".conf":  IconConfig,
	".cfg":   IconConfig,
	".env":   IconConfig,
	".hcl":   IconConfig,
	".nomad": IconConfig,
	".tf":    IconConfig,
	".xml":   IconConfig,
	// Code
	".go":    IconCode,
	".py":    IconCode,
	".js":    IconCode,
	".ts":    IconCode,
	".jsx":   IconCode,
	".tsx":   IconCode,
	".java":  IconCode,
	".rb":    IconCode,
	".rs":    IconCode,
	".c":     IconCode,
	".h":     IconCode,
	".cpp":   IconCode,
	".cs":    IconCode,
	".php":   IconCode,
	".lua":   IconCode,
	".kt":    IconCode,
	".swift": IconCode,
	".sql":   IconCode,
	".html":  IconCode,
	".css":   IconCode,
	// Document
	".txt": IconDocument,
	".md":  IconDocument,
	".rst": IconDocument,
	".csv": IconDocument,
	// Log
	".log": IconLog,
	".out": IconLog,
	".err": IconLog,
	// Script
	".sh":   IconScript,
	".bash": IconScript,
	".zsh":  IconScript,
	".ps1":  IconScript,
	".bat":  IconScript,
	// Archive
	".zip": IconArchive,
	".tar": IconArchive,
	".gz":  IconArchive,
	".tgz": IconArchive,
	".bz2": IconArchive,
	".xz":  IconArchive,
	".7z":  IconArchive,
	".rar": IconArchive,
	".jar": IconArchive,
	// Image
	".jpg":  IconImage,
	".jpeg": IconImage,
	".png":  IconImage,
	".gif":  IconImage,
	".bmp":  IconImage,
	".webp": IconImage,
	".ico":  IconImage,
	".svg":  IconImage,
	// Binary
	".exe":    IconBinary,
	".bin":    IconBinary,
	".so":     IconBinary,
	".dll":    IconBinary,
	".dylib":  IconBinary,
	".o":      IconBinary,
	".a":      IconBinary,
	".class":  IconBinary,
	".pyc":    IconBinary,
	".wasm":   IconBinary,
	".db":     IconBinary,
	".sqlite": IconBinary,
	".pdf":    IconBinary,
}

// languageTags maps code-like extensions to syntax highlighter names.
var languageTags = map[string]string{
	".go":    "go",
	".py":    "python",
	".js":    "javascript",
	".jsx":   "javascript",
	".ts":    "typescript",
	".tsx":   "typescript",
	".java":  "java",
	".rb":    "ruby",
	".rs":    "rust",
	".c":     "c",
	".h":     "c",
	".cpp":   "cpp",
	".cs":    "csharp",
	".php":   "php",
	".lua":   "lua",
	".kt":    "kotlin",
	".swift": "swift",
	".sql":   "sql",
	".html":  "html",
	".css":   "css",
	".sh":    "bash",
	".bash":  "bash",
	".zsh":   "bash",
	".ps1":   "powershell",
	".json":  "json",
	".yaml":  "yaml",
	".yml":   "yaml",
	".toml":  "toml",
	".xml":   "xml",
	".ini":   "ini",
	".hcl":   "hcl",
	".nomad": "hcl",
	".tf":    "hcl",
	".md":    "markdown",
}

var textExtensions = map[string]struct{}{}

func init() {
	for ext, icon := range extIcons {
		switch icon {
		case IconConfig, IconCode, IconDocument, IconLog, IconScript:
			textExtensions[ext] = struct{}{}
		}
	}
}
