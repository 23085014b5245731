package assistant

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		want Category
	}{
		{"appointment booking", "I'd like to book an appointment with a cardiologist", CategoryAppointment},
		{"medication refill", "Can I get a refill on my prescription?", CategoryMedication},
		{"symptom report", "I've had a fever and a headache since yesterday", CategorySymptoms},
		{"pharmacy pickup", "Which pharmacy has my order?", CategoryPharmacy},
		{"greeting", "Hello there!", CategoryGreeting},
		{"unrelated", "What's the weather like?", CategoryFallback},
		{"empty", "   ", CategoryFallback},
		{"case insensitive", "SCHEDULE me with a doctor", CategoryAppointment},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Classify(tc.text))
		})
	}
}

func TestClassify_EmergencyWinsOverEverything(t *testing.T) {
	t.Parallel()

	// A message matching several categories must escalate.
	texts := []string{
		"I have chest pain, should I book an appointment?",
		"My father is unconscious after taking his medication",
		"severe bleeding, which pharmacy is open?",
	}
	for _, text := range texts {
		assert.Equal(t, CategoryEmergency, Classify(text), "text: %s", text)
	}
}

func TestEngine_ReplyComesFromCategoryTemplates(t *testing.T) {
	t.Parallel()

	engine, err := NewEngine()
	require.NoError(t, err)

	category, reply := engine.Reply("I want to schedule a consultation")
	assert.Equal(t, CategoryAppointment, category)
	assert.Contains(t, engine.templates[CategoryAppointment], reply)
}

func TestNewEngineFromFile(t *testing.T) {
	t.Parallel()

	t.Run("valid override file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "templates.yml")
		custom := []byte(`
emergency: ["call 112"]
appointment: ["custom appointment reply"]
medication: ["custom medication reply"]
symptoms: ["custom symptoms reply"]
pharmacy: ["custom pharmacy reply"]
greeting: ["custom greeting"]
fallback: ["custom fallback"]
`)
		require.NoError(t, os.WriteFile(path, custom, 0o600))

		engine, err := NewEngineFromFile(path)
		require.NoError(t, err)

		category, reply := engine.Reply("hi")
		assert.Equal(t, CategoryGreeting, category)
		assert.Equal(t, "custom greeting", reply)
	})

	t.Run("missing category is rejected", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "templates.yml")
		require.NoError(t, os.WriteFile(path, []byte(`greeting: ["hi"]`), 0o600))

		_, err := NewEngineFromFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing category")
	})

	t.Run("unreadable file", func(t *testing.T) {
		t.Parallel()
		_, err := NewEngineFromFile(filepath.Join(t.TempDir(), "nope.yml"))
		require.Error(t, err)
	})
}
