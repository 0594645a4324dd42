package triage

import "strings"

// healthTips assembles the self-care tip list for the lower-cased input.
// Emergencies short-circuit to the fixed directives; otherwise tips are
// deduplicated preserving first-seen order and truncated to the limit.
func (engine *Engine) healthTips(lowered string, emergency bool) []string {
	taxonomy := engine.taxonomy
	if len(taxonomy.GenericTips) == 0 && len(taxonomy.EmergencyDirectives) == 0 {
		return nil
	}

	if emergency {
		directives := make([]string, len(taxonomy.EmergencyDirectives))
		copy(directives, taxonomy.EmergencyDirectives)
		return directives
	}

	tips := make([]string, 0, maxHealthTips)
	seen := make(map[string]struct{})
	appendTip := func(tip string) {
		if _, duplicate := seen[tip]; duplicate {
			return
		}
		seen[tip] = struct{}{}
		tips = append(tips, tip)
	}

	for _, tip := range taxonomy.GenericTips {
		appendTip(tip)
	}
	for _, category := range taxonomy.TipCategories {
		if !containsAny(lowered, category.Triggers) {
			continue
		}
		for _, tip := range category.Tips {
			appendTip(tip)
		}
	}
	if taxonomy.ClosingTip != "" {
		appendTip(taxonomy.ClosingTip)
	}

	if len(tips) > maxHealthTips {
		tips = tips[:maxHealthTips]
	}
	return tips
}

func containsAny(lowered string, triggers []string) bool {
	for _, trigger := range triggers {
		if strings.Contains(lowered, trigger) {
			return true
		}
	}
	return false
}
