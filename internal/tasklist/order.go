package tasklist

import "daily-task-manager/internal/model"

// ApplyOrder lays out base using override: known IDs first in override
// order, then the remaining tasks of base in their original order. IDs in
// override that are no longer in base are skipped.
func ApplyOrder(base []model.Task, override []string) []model.Task {
	if len(override) == 0 {
		return base
	}

	byID := make(map[string]model.Task, len(base))
	for _, t := range base {
		byID[t.ID] = t
	}

	out := make([]model.Task, 0, len(base))
	placed := make(map[string]bool, len(override))
	for _, id := range override {
		t, ok := byID[id]
		if !ok || placed[id] {
			continue
		}
		out = append(out, t)
		placed[id] = true
	}
	for _, t := range base {
		if !placed[t.ID] {
			out = append(out, t)
		}
	}
	return out
}

// Reorder moves activeID to the index overID currently holds. The input is
// not modified. Unknown IDs leave the order unchanged.
func Reorder(ids []string, activeID, overID string) []string {
	from, to := indexOf(ids, activeID), indexOf(ids, overID)
	out := append([]string(nil), ids...)
	if from < 0 || to < 0 || from == to {
		return out
	}

	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]string{moved}, out[to:]...)...)
	return out
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

func taskIDs(tasks []model.Task) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}
