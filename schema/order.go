package schema

import "sort"

// Repeating substructures keep the user-assigned order; ties keep insertion
// order so re-sorting a submitted payload is stable.

func SortSteps(steps []ProcessStep) {
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].Order < steps[j].Order })
}

func SortActions(actions []CAPAAction) {
	sort.SliceStable(actions, func(i, j int) bool { return actions[i].Order < actions[j].Order })
}

func SortEntries(entries []WasteEntry) {
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Order < entries[j].Order })
}
