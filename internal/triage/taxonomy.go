package triage

// EmergencyIndicator maps a critical-condition phrase to its severity weight.
type EmergencyIndicator struct {
	Phrase string
	Weight int
}

// SpecializationProfile names a medical specialty and the keyword phrases
// associated with it.
type SpecializationProfile struct {
	Name     string
	Keywords []string
}

// TipCategory holds self-care tips suggested when any trigger word appears in
// the symptom text.
type TipCategory struct {
	Triggers []string
	Tips     []string
}

// Taxonomy is the full keyword table a triage engine runs against. Tables are
// ordered: ties in specialization ranking keep the declared order.
type Taxonomy struct {
	Revision            int
	EmergencyIndicators []EmergencyIndicator
	CriticalModifiers   []string
	Specializations     []SpecializationProfile
	SelfCareReminders   []string
	GenericTips         []string
	TipCategories       []TipCategory
	ClosingTip          string
	EmergencyDirectives []string
}

const (
	emergencyWeightThreshold = 4
	modifierWeightThreshold  = 2
	severityPerWeight        = 15
	detailedInputSpaceCount  = 10
	detailedInputBonus       = 10
	maxSeverityScore         = 100
	maxSpecializations       = 3
	maxHealthTips            = 6
)

// GeneralPractice is the fallback specialty reported when nothing in the
// taxonomy matched.
const GeneralPractice = "General Practice"

const generalPracticeReason = "Recommended for an overall assessment of your symptoms"

func emergencyIndicators() []EmergencyIndicator {
	return []EmergencyIndicator{
		{Phrase: "heart attack", Weight: 5},
		{Phrase: "stroke", Weight: 5},
		{Phrase: "unconscious", Weight: 5},
		{Phrase: "not breathing", Weight: 5},
		{Phrase: "anaphylaxis", Weight: 5},
		{Phrase: "suicide", Weight: 5},
		{Phrase: "seizure", Weight: 4},
		{Phrase: "severe bleeding", Weight: 4},
		{Phrase: "poisoning", Weight: 4},
		{Phrase: "overdose", Weight: 4},
		{Phrase: "choking", Weight: 4},
		{Phrase: "vomiting blood", Weight: 4},
		{Phrase: "coughing blood", Weight: 4},
		{Phrase: "paralysis", Weight: 4},
		{Phrase: "severe burn", Weight: 4},
		{Phrase: "head injury", Weight: 4},
		{Phrase: "chest pain", Weight: 3},
		{Phrase: "difficulty breathing", Weight: 3},
		{Phrase: "shortness of breath", Weight: 3},
		{Phrase: "severe abdominal pain", Weight: 3},
		{Phrase: "high fever", Weight: 3},
		{Phrase: "slurred speech", Weight: 3},
		{Phrase: "broken bone", Weight: 3},
		{Phrase: "blue lips", Weight: 3},
		{Phrase: "allergic reaction", Weight: 3},
		{Phrase: "fainting", Weight: 2},
		{Phrase: "palpitations", Weight: 2},
		{Phrase: "numbness", Weight: 2},
		{Phrase: "blurred vision", Weight: 2},
		{Phrase: "stiff neck", Weight: 2},
	}
}

func criticalModifiers() []string {
	return []string{"severe", "sudden", "critical", "emergency", "urgent", "immediate"}
}

func specializationProfiles() []SpecializationProfile {
	return []SpecializationProfile{
		{Name: "Cardiology", Keywords: []string{"chest", "heart", "palpitation", "blood pressure", "racing heart"}},
		{Name: "Neurology", Keywords: []string{"headache", "migraine", "dizzy", "faint", "seizure", "numbness", "tingling", "memory"}},
		{Name: "Pulmonology", Keywords: []string{"breath", "cough", "wheez", "asthma", "lung"}},
		{Name: "Gastroenterology", Keywords: []string{"stomach", "nausea", "vomit", "diarrhea", "constipation", "digest", "bloat", "heartburn"}},
		{Name: "Orthopedics", Keywords: []string{"bone", "joint", "back", "knee", "fracture", "sprain", "shoulder", "muscle"}},
		{Name: "Dermatology", Keywords: []string{"skin", "rash", "itch", "bump", "acne", "mole"}},
		{Name: "Otolaryngology", Keywords: []string{"ear", "throat", "sinus", "nose", "hearing", "hoarse"}},
		{Name: "Ophthalmology", Keywords: []string{"eye", "vision", "blurry"}},
		{Name: "Psychiatry", Keywords: []string{"anxiety", "depress", "stress", "panic", "insomnia", "mood"}},
		{Name: "Gynecology", Keywords: []string{"period", "menstrual", "pregnan", "pelvic"}},
		{Name: "Urology", Keywords: []string{"urin", "bladder", "kidney"}},
		{Name: "Pediatrics", Keywords: []string{"child", "baby", "infant", "toddler"}},
	}
}

// TaxonomyRevision1 is the original table: no health tips and no self-care
// reminders in the response text.
func TaxonomyRevision1() Taxonomy {
	return Taxonomy{
		Revision:            1,
		EmergencyIndicators: emergencyIndicators(),
		CriticalModifiers:   criticalModifiers(),
		Specializations:     specializationProfiles(),
	}
}

// TaxonomyRevision2 is the current table, extended with self-care reminders
// and the health-tips catalog.
func TaxonomyRevision2() Taxonomy {
	taxonomy := TaxonomyRevision1()
	taxonomy.Revision = 2
	taxonomy.SelfCareReminders = []string{
		"Stay hydrated",
		"Rest as much as you can",
		"Note any changes in your symptoms",
	}
	taxonomy.GenericTips = []string{
		"Monitor your symptoms and note any changes",
		"Stay hydrated by drinking plenty of water",
	}
	taxonomy.TipCategories = []TipCategory{
		{
			Triggers: []string{"headache", "migraine"},
			Tips: []string{
				"Rest in a quiet, dark room",
				"Limit screen time until the headache eases",
			},
		},
		{
			Triggers: []string{"fever"},
			Tips: []string{
				"Rest and avoid strenuous activity",
				"Monitor your temperature regularly",
			},
		},
		{
			Triggers: []string{"cough", "cold", "congestion"},
			Tips: []string{
				"Use a humidifier or inhale steam",
				"Drink warm fluids like tea with honey",
			},
		},
		{
			Triggers: []string{"stomach", "nausea", "digestive"},
			Tips: []string{
				"Stick to bland foods such as rice, toast, and bananas",
			},
		},
		{
			Triggers: []string{"pain", "ache"},
			Tips: []string{
				"Apply ice or heat to the affected area",
			},
		},
		{
			Triggers: []string{"stress", "anxiety", "sleep"},
			Tips: []string{
				"Practice deep breathing or relaxation exercises",
			},
		},
	}
	taxonomy.ClosingTip = "Consult a healthcare professional if symptoms persist or worsen"
	taxonomy.EmergencyDirectives = []string{
		"Seek immediate medical attention",
		"Call emergency services or go to the nearest emergency room",
		"Do not delay seeking help for these symptoms",
	}
	return taxonomy
}
