// Package triage implements the rule-based symptom triage engine: a pure,
// deterministic keyword classifier over an immutable hand-authored taxonomy.
// Analyze never fails for any string input and is safe for concurrent use.
package triage

import (
	"sort"
	"strings"
)

// SpecializationMatch is one recommended specialty with the reason it was
// selected.
type SpecializationMatch struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Result is the full outcome of analyzing one symptom report.
type Result struct {
	Emergency       bool
	SeverityScore   int
	Specializations []SpecializationMatch
	ResponseText    string
	HealthTips      []string
}

// Engine evaluates symptom text against one taxonomy revision. The zero value
// is not usable; construct with NewEngine or use the package-level Analyze.
type Engine struct {
	taxonomy Taxonomy
}

func NewEngine(taxonomy Taxonomy) *Engine {
	return &Engine{taxonomy: taxonomy}
}

var defaultEngine = NewEngine(TaxonomyRevision2())

// Analyze runs the current taxonomy revision against the given symptom text.
func Analyze(symptomsText string) Result {
	return defaultEngine.Analyze(symptomsText)
}

func (engine *Engine) Analyze(symptomsText string) Result {
	lowered := strings.ToLower(symptomsText)

	weightSum := engine.emergencyWeightSum(lowered)
	emergency := engine.isEmergency(lowered, weightSum)
	severity := severityScore(lowered, weightSum)
	specializations := engine.rankSpecializations(lowered)

	return Result{
		Emergency:       emergency,
		SeverityScore:   severity,
		Specializations: specializations,
		ResponseText:    engine.responseText(emergency, severity, specializations),
		HealthTips:      engine.healthTips(lowered, emergency),
	}
}

// emergencyWeightSum adds the weight of every indicator phrase contained in
// the input. Overlapping phrases intentionally count more than once.
func (engine *Engine) emergencyWeightSum(lowered string) int {
	sum := 0
	for _, indicator := range engine.taxonomy.EmergencyIndicators {
		if strings.Contains(lowered, indicator.Phrase) {
			sum += indicator.Weight
		}
	}
	return sum
}

func (engine *Engine) isEmergency(lowered string, weightSum int) bool {
	if weightSum >= emergencyWeightThreshold {
		return true
	}
	if weightSum < modifierWeightThreshold {
		return false
	}
	for _, modifier := range engine.taxonomy.CriticalModifiers {
		if strings.Contains(lowered, modifier) {
			return true
		}
	}
	return false
}

func severityScore(lowered string, weightSum int) int {
	severity := weightSum * severityPerWeight
	if severity > maxSeverityScore {
		severity = maxSeverityScore
	}
	if strings.Count(lowered, " ") > detailedInputSpaceCount {
		severity += detailedInputBonus
		if severity > maxSeverityScore {
			severity = maxSeverityScore
		}
	}
	return severity
}

type rankedSpecialization struct {
	profile        SpecializationProfile
	keywordMatches int
}

func (engine *Engine) rankSpecializations(lowered string) []SpecializationMatch {
	ranked := make([]rankedSpecialization, 0, len(engine.taxonomy.Specializations))
	for _, profile := range engine.taxonomy.Specializations {
		matches := countKeywordMatches(lowered, profile.Keywords)
		if matches == 0 {
			continue
		}
		ranked = append(ranked, rankedSpecialization{profile: profile, keywordMatches: matches})
	}

	if len(ranked) == 0 {
		return []SpecializationMatch{{Name: GeneralPractice, Reason: generalPracticeReason}}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].keywordMatches > ranked[j].keywordMatches
	})
	if len(ranked) > maxSpecializations {
		ranked = ranked[:maxSpecializations]
	}

	selected := make([]SpecializationMatch, 0, len(ranked))
	for _, candidate := range ranked {
		selected = append(selected, SpecializationMatch{
			Name:   candidate.profile.Name,
			Reason: specializationReason(lowered, candidate.profile),
		})
	}
	return selected
}

func countKeywordMatches(lowered string, keywords []string) int {
	matches := 0
	for _, keyword := range keywords {
		if strings.Contains(lowered, keyword) {
			matches++
		}
	}
	return matches
}

func specializationReason(lowered string, profile SpecializationProfile) string {
	matched := make([]string, 0, len(profile.Keywords))
	for _, keyword := range profile.Keywords {
		if strings.Contains(lowered, keyword) {
			matched = append(matched, keyword)
		}
	}
	if len(matched) == 0 {
		return "Recommended for overall assessment"
	}

	mentioned := matched
	if len(mentioned) > 2 {
		mentioned = mentioned[:2]
	}
	reason := "Based on your mention of " + strings.Join(mentioned, ", ")
	if len(matched) > 2 {
		reason += " and other " + strings.ToLower(profile.Name) + " symptoms"
	}
	return reason
}
