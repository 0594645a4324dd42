package triage

import "strings"

const responseDisclaimer = "Please note: this assistant does not replace professional medical advice."

const (
	severityPromptThreshold   = 70
	severityModerateThreshold = 40
)

// responseText builds the deterministic guidance message. The markup
// (<strong>, <br>) is rendered by the web client as-is.
func (engine *Engine) responseText(emergency bool, severity int, specializations []SpecializationMatch) string {
	if emergency {
		return emergencyResponseText(specializations)
	}

	var builder strings.Builder
	switch {
	case severity >= severityPromptThreshold:
		builder.WriteString("<strong>Your symptoms appear significant.</strong> They deserve prompt medical attention, so please book an appointment within the next day or two.")
	case severity >= severityModerateThreshold:
		builder.WriteString("Your symptoms would benefit from a medical evaluation within the next few days.")
	default:
		builder.WriteString("It would be good to get your symptoms evaluated. You can schedule an appointment whenever convenient.")
	}

	if names := matchedSpecializationNames(specializations, 2); len(names) > 0 {
		builder.WriteString("<br><br><strong>Recommended specialists:</strong> ")
		builder.WriteString(strings.Join(names, ", "))
	}

	if len(engine.taxonomy.SelfCareReminders) > 0 {
		builder.WriteString("<br><br><strong>In the meantime:</strong>")
		for _, reminder := range engine.taxonomy.SelfCareReminders {
			builder.WriteString("<br>• ")
			builder.WriteString(reminder)
		}
	}

	builder.WriteString("<br><br>")
	builder.WriteString(responseDisclaimer)
	return builder.String()
}

func emergencyResponseText(specializations []SpecializationMatch) string {
	specialist := "medical"
	if names := matchedSpecializationNames(specializations, 1); len(names) > 0 {
		specialist = strings.ToLower(names[0])
	}
	return "<strong>URGENT:</strong> Your symptoms may indicate a medical emergency. " +
		"Please go to the nearest emergency room or call emergency services now.<br><br>" +
		"A " + specialist + " specialist should evaluate you as soon as possible."
}

// matchedSpecializationNames returns up to limit specialty names, skipping the
// synthetic General Practice fallback.
func matchedSpecializationNames(specializations []SpecializationMatch, limit int) []string {
	names := make([]string, 0, limit)
	for _, specialization := range specializations {
		if specialization.Name == GeneralPractice {
			continue
		}
		names = append(names, specialization.Name)
		if len(names) == limit {
			break
		}
	}
	return names
}
