// Package classify decides whether a filesystem entry is an eligible
// screenshot image.
//
// Eligibility has two independent gates: the file extension must belong to a
// fixed image-format set, and the filename must contain one of the fixed
// multilingual screenshot keywords. Matching is substring-based with Unicode
// case folding; there is deliberately no word-boundary logic, so a keyword
// embedded in a longer name still matches.
package classify

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
)

// keywords are the filename substrings that mark a file as a screenshot.
// The list covers the default naming of English, Japanese, Chinese, Spanish,
// and German screenshot tools and is intentionally not configurable.
var keywords = []string{
	"screenshot",
	"screen_shot",
	"screen-shot",
	"screen shot",
	"スクリーンショット",
	"截屏",
	"屏幕快照",
	"captura",
	"bildschirmfoto",
}

// imageExtensions gates which files are considered at all. Lowercase keys.
var imageExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".bmp":  {},
	".gif":  {},
	".webp": {},
	".heic": {},
	".tiff": {},
}

// IsScreenshot reports whether the filename contains a screenshot keyword.
// Folding rather than ASCII lowercasing keeps full-width and accented
// variants matching their keywords.
func IsScreenshot(filename string) bool {
	folded := cases.Fold().String(filename)
	for _, keyword := range keywords {
		if strings.Contains(folded, keyword) {
			return true
		}
	}
	return false
}

// EligibleExtension reports whether the file's suffix is a supported image
// format. The check is case-insensitive.
func EligibleExtension(filename string) bool {
	_, ok := imageExtensions[strings.ToLower(filepath.Ext(filename))]
	return ok
}
