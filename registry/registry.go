// Package registry holds the static catalog of document templates.
//
// The catalog is reference data compiled into the binary. Lookups never
// fail with an error: an unknown id yields ok == false and callers must
// guard before composing.
package registry

import (
	"github.com/qualipharm/qualipharm/schema"
)

// classifications maps template ids to their place in the regulatory filing
// scheme. The merge happens once at package load and only fills templates
// that do not already carry a code.
var classifications = map[string]schema.ClassificationCode{
	"dysfunction-report": {ProcessCode: "P04", CategoryCode: "05.01",
		ProcessLabel: "Gestion des risques", CategoryLabel: "Dysfonctionnements"},
	"incident-register": {ProcessCode: "P04", CategoryCode: "05.02",
		ProcessLabel: "Gestion des risques", CategoryLabel: "Registre des incidents"},
	"capa-plan": {ProcessCode: "P05", CategoryCode: "06.01",
		ProcessLabel: "Amélioration continue", CategoryLabel: "Plans CAPA"},
	"process-sheet": {ProcessCode: "P01", CategoryCode: "01.03",
		ProcessLabel: "Pilotage", CategoryLabel: "Fiches de processus"},
	"org-chart": {ProcessCode: "P01", CategoryCode: "01.01",
		ProcessLabel: "Pilotage", CategoryLabel: "Organigrammes"},
	"swot-analysis": {ProcessCode: "P01", CategoryCode: "01.02",
		ProcessLabel: "Pilotage", CategoryLabel: "Analyses SWOT"},
	"cold-chain-register": {ProcessCode: "P03", CategoryCode: "04.02",
		ProcessLabel: "Traçabilité", CategoryLabel: "Chaîne du froid"},
	"waste-log": {ProcessCode: "P03", CategoryCode: "04.05",
		ProcessLabel: "Traçabilité", CategoryLabel: "Suivi des déchets"},
}

func init() {
	for i := range templates {
		t := &templates[i]
		if t.Classification != nil {
			continue
		}
		if code, ok := classifications[t.ID]; ok {
			c := code
			t.Classification = &c
		}
	}
}

// TemplateByID returns the template with the given id.
func TemplateByID(id string) (*schema.DocumentTemplate, bool) {
	for i := range templates {
		if templates[i].ID == id {
			return &templates[i], true
		}
	}
	return nil, false
}

// TemplatesByCategory returns all templates of one category, catalog order.
func TemplatesByCategory(category string) []*schema.DocumentTemplate {
	var out []*schema.DocumentTemplate
	for i := range templates {
		if templates[i].Category == category {
			out = append(out, &templates[i])
		}
	}
	return out
}

// All returns the whole catalog, catalog order.
func All() []*schema.DocumentTemplate {
	out := make([]*schema.DocumentTemplate, len(templates))
	for i := range templates {
		out[i] = &templates[i]
	}
	return out
}

// Categories returns the distinct categories in first-seen order.
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for i := range templates {
		c := templates[i].Category
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
