// Package assistant implements the rule-based health assistant. It
// classifies a free-text message into a category and picks a canned
// reply for it. No medical advice is generated; replies only point the
// user at the right part of the product or at emergency services.
package assistant

import "strings"

// Category is the topic bucket a message is classified into.
type Category string

const (
	CategoryEmergency   Category = "emergency"
	CategoryAppointment Category = "appointment"
	CategoryMedication  Category = "medication"
	CategorySymptoms    Category = "symptoms"
	CategoryPharmacy    Category = "pharmacy"
	CategoryGreeting    Category = "greeting"
	CategoryFallback    Category = "fallback"
)

// categoryKeywords maps each category to the phrases that trigger it.
// Order of evaluation is fixed in Classify; the map only holds the data.
var categoryKeywords = map[Category][]string{
	CategoryEmergency: {
		"emergency", "chest pain", "can't breathe", "cannot breathe",
		"unconscious", "suicide", "overdose", "severe bleeding", "stroke",
		"heart attack",
	},
	CategoryAppointment: {
		"appointment", "book", "schedule", "reschedule", "cancel my visit",
		"see a doctor", "consultation",
	},
	CategoryMedication: {
		"medication", "medicine", "prescription", "refill", "dosage",
		"side effect", "pill",
	},
	CategorySymptoms: {
		"symptom", "pain", "fever", "headache", "cough", "rash", "nausea",
		"dizzy", "tired", "sore",
	},
	CategoryPharmacy: {
		"pharmacy", "drugstore", "pick up", "pickup", "collect my",
	},
	CategoryGreeting: {
		"hello", "hi", "hey", "good morning", "good afternoon",
		"good evening", "thanks", "thank you",
	},
}

// classifyOrder fixes the precedence of categories. Emergency always wins
// so that "chest pain, should I book an appointment?" escalates.
var classifyOrder = []Category{
	CategoryEmergency,
	CategoryAppointment,
	CategoryMedication,
	CategorySymptoms,
	CategoryPharmacy,
	CategoryGreeting,
}

// Classify buckets a message into a category. Matching is case-insensitive
// substring search; an empty or unmatched message falls through to
// CategoryFallback.
func Classify(text string) Category {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return CategoryFallback
	}

	for _, category := range classifyOrder {
		for _, keyword := range categoryKeywords[category] {
			if strings.Contains(normalized, keyword) {
				return category
			}
		}
	}
	return CategoryFallback
}
