// Package naming owns the identifier and path conventions shared by the
// pipeline: step short IDs, PascalCase description tokens, and the
// structured subject/session layout used for derivative files.
package naming

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// GuessShortID derives a step short ID from a step name such as
// "00_intake" or "01_signal_analysis". Leading digit groups form the ID;
// when the name carries fewer than two digits, first letters of the
// remaining words pad it out.
func GuessShortID(name string) string {
	base := name
	if idx := strings.LastIndexByte(base, '.'); idx >= 0 {
		base = base[idx+1:]
	}

	var shortID strings.Builder
	for _, word := range strings.Split(base, "_") {
		if word == "" {
			continue
		}
		if isDigits(word) {
			shortID.WriteString(word)
			continue
		}
		if shortID.Len() < 2 {
			shortID.WriteRune(unicode.ToLower(rune(word[0])))
		}
	}
	return shortID.String()
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

var titleCaser = cases.Title(language.Und)

// PascalCase converts a snake_case or kebab-case output name into a single
// PascalCase token, e.g. "summary_plot" -> "SummaryPlot".
func PascalCase(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	var b strings.Builder
	for _, word := range words {
		b.WriteString(titleCaser.String(word))
	}
	return b.String()
}

// Entities describes one structured derivative file: the subject, session,
// task, and run identity entities plus the datatype directory, the
// description token, an optional suffix token, and the extension.
type Entities struct {
	Subject     string
	Session     string
	Task        string
	Run         string
	Datatype    string
	Description string
	Suffix      string
	Extension   string
}

// Path assembles the full structured path under root:
// sub-XX[/ses-YY][/datatype]/sub-XX[_ses-YY][_task-ZZ][_run-NN]_desc-DD[_suffix]ext.
func (e Entities) Path(root string) string {
	dir := root
	if e.Subject != "" {
		dir = filepath.Join(dir, "sub-"+e.Subject)
	}
	if e.Session != "" {
		dir = filepath.Join(dir, "ses-"+e.Session)
	}
	if e.Datatype != "" {
		dir = filepath.Join(dir, e.Datatype)
	}
	return filepath.Join(dir, e.Filename())
}

// Filename assembles only the file name portion of the structured path.
func (e Entities) Filename() string {
	var parts []string
	if e.Subject != "" {
		parts = append(parts, "sub-"+e.Subject)
	}
	if e.Session != "" {
		parts = append(parts, "ses-"+e.Session)
	}
	if e.Task != "" {
		parts = append(parts, "task-"+e.Task)
	}
	if e.Run != "" {
		parts = append(parts, "run-"+e.Run)
	}
	if e.Description != "" {
		parts = append(parts, "desc-"+e.Description)
	}
	if e.Suffix != "" {
		parts = append(parts, e.Suffix)
	}
	return strings.Join(parts, "_") + e.Extension
}
