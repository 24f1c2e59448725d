package matching

import "github.com/google/uuid"

// Gap partitions a posting's required skills by candidate skill-id
// membership. Importance rides along so callers can rank what to learn
// first.
type Gap struct {
	Matched []RequiredSkill
	Missing []RequiredSkill
}

// AnalyzeGap splits required into matched and missing against the skills
// the candidate owns. Input order is preserved within each partition.
func AnalyzeGap(required []RequiredSkill, owned []OwnedSkill) Gap {
	ownedIDs := make(map[uuid.UUID]struct{}, len(owned))
	for _, s := range owned {
		if s.SkillID == uuid.Nil {
			continue
		}
		ownedIDs[s.SkillID] = struct{}{}
	}

	g := Gap{
		Matched: make([]RequiredSkill, 0, len(required)),
		Missing: make([]RequiredSkill, 0),
	}
	for _, r := range required {
		if _, ok := ownedIDs[r.SkillID]; ok {
			g.Matched = append(g.Matched, r)
		} else {
			g.Missing = append(g.Missing, r)
		}
	}
	return g
}
