package core

import (
	"github.com/oneconcern/stringsync/pkg/model"
)

// Merge builds the merge plan for one target against the base. The plan
// holds exactly one entry per base key, in base order:
//
//   - key present in the target: the target's entry, translation preserved
//     verbatim;
//   - key absent from the target: the base's entry copied as a placeholder
//     and recorded as added.
//
// Keys present only in the target (orphans) are never copied into the plan
// and never reported as removed.
func Merge(base, target model.ParsedFile) model.MergePlan {
	var plan model.MergePlan
	if len(base.Entries) == 0 {
		return plan
	}
	idx := target.Index()
	plan.Entries = make([]model.Entry, 0, len(base.Entries))
	for _, be := range base.Entries {
		if te, ok := idx[be.Key]; ok {
			plan.Entries = append(plan.Entries, te)
			continue
		}
		plan.Entries = append(plan.Entries, be)
		plan.Added = append(plan.Added, be.Key)
	}
	return plan
}
