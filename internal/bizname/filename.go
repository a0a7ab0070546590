package bizname

import (
	"path/filepath"
	"regexp"
)

// Filename-derived names are a last resort, used only when the
// account data in an export is unreadable.
var (
	fileSeparators = regexp.MustCompile(`[-_]+`)
	fileVocabulary = regexp.MustCompile(`(?i)\b(transactions?|data|export|statement|bank|account)\b`)
	fileDates      = regexp.MustCompile(`\b\d{4}(-\d{1,2})?(-\d{1,2})?\b`)
	fileMonths     = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec|january|february|march|april|june|july|august|september|october|november|december)\b`)
)

// FromFilename derives a business name from an export filename by
// stripping the extension, separator characters, export vocabulary,
// date tokens and month names.
func FromFilename(filename string) string {
	name := filepath.Base(filename)
	name = name[:len(name)-len(filepath.Ext(name))]

	name = fileSeparators.ReplaceAllString(name, " ")
	name = fileVocabulary.ReplaceAllString(name, "")
	name = fileDates.ReplaceAllString(name, "")
	name = fileMonths.ReplaceAllString(name, "")

	name = capitalizeWords(name)
	if name == "" {
		return UnknownBusiness
	}
	return name
}
