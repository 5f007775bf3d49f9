// Package langdetect decides whether a document is a recognized
// FreeMarker template. The extension check is authoritative; go-enry
// content detection backs it up for unfamiliar extensions.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// freemarkerLang is the linguist name enry reports for FreeMarker.
const freemarkerLang = "FreeMarker"

// templateExtensions are the extensions treated as FreeMarker templates
// without consulting content.
//
//nolint:gochecknoglobals // Read-only lookup table.
var templateExtensions = map[string]bool{
	".ftl":  true,
	".ftlh": true,
	".ftlx": true,
}

// IsTemplateExtension reports whether path carries a recognized
// FreeMarker extension.
func IsTemplateExtension(path string) bool {
	return templateExtensions[strings.ToLower(filepath.Ext(path))]
}

// IsTemplate reports whether the document at path with the given content
// is a recognized FreeMarker template. Content may be nil when only the
// path is known.
func IsTemplate(path string, content []byte) bool {
	if IsTemplateExtension(path) {
		return true
	}
	if len(content) == 0 {
		return false
	}
	return enry.GetLanguage(filepath.Base(path), content) == freemarkerLang
}

// IsTemplateLanguageID reports whether an editor-supplied language
// identifier names FreeMarker. Editors disagree on the exact spelling.
func IsTemplateLanguageID(id string) bool {
	switch strings.ToLower(id) {
	case "ftl", "freemarker", "html-freemarker":
		return true
	default:
		return false
	}
}
