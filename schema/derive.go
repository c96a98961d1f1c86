package schema

import (
	"strings"
	"time"
	"unicode"
)

// Initials derives the pharmacy initials from its name: first letter of
// each whitespace-delimited word, uppercased, truncated to three letters.
// A single-word name therefore yields a single letter.
func Initials(name string) string {
	var b strings.Builder
	letters := 0
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
		letters++
		if letters == 3 {
			break
		}
	}
	return b.String()
}

// Slugify lowercases a title and replaces every run of non-alphanumeric
// characters with a single hyphen. Accented letters are folded to their
// base letter first so French titles produce stable ASCII slugs.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(title) {
		r = foldAccent(r)
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func foldAccent(r rune) rune {
	switch r {
	case 'à', 'â', 'ä':
		return 'a'
	case 'é', 'è', 'ê', 'ë':
		return 'e'
	case 'î', 'ï':
		return 'i'
	case 'ô', 'ö':
		return 'o'
	case 'ù', 'û', 'ü':
		return 'u'
	case 'ç':
		return 'c'
	}
	return r
}

// DocumentFileName builds the download name for a single rendered document:
// "document-{slug}-{ISO date}-{record id}.pdf".
func DocumentFileName(tpl *DocumentTemplate, rec *FilledRecord) string {
	return "document-" + Slugify(tpl.Title) + "-" +
		rec.CreatedAt.Format("2006-01-02") + "-" + rec.ID + ".pdf"
}

// CompilationFileName builds the download name for a monthly compilation.
func CompilationFileName(templateID string, year int, month time.Month) string {
	return "compilation-" + templateID + "-" +
		time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01") + ".pdf"
}
