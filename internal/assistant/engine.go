package assistant

import (
	"fmt"
	"math/rand"
	"os"
	"sync"

	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed templates.yml
var defaultTemplates []byte

// Engine answers messages by classifying them and picking a reply
// template for the resulting category. Safe for concurrent use.
type Engine struct {
	mu        sync.Mutex
	templates map[Category][]string
	rng       *rand.Rand
}

// NewEngine builds an engine from the embedded reply templates.
func NewEngine() (*Engine, error) {
	return newEngineFromBytes(defaultTemplates)
}

// NewEngineFromFile builds an engine from an operator-supplied YAML file,
// replacing the embedded templates entirely.
func NewEngineFromFile(path string) (*Engine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read assistant templates: %w", err)
	}
	return newEngineFromBytes(data)
}

func newEngineFromBytes(data []byte) (*Engine, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse assistant templates: %w", err)
	}

	templates := make(map[Category][]string, len(raw))
	for name, replies := range raw {
		if len(replies) == 0 {
			return nil, fmt.Errorf("assistant category %q has no replies", name)
		}
		templates[Category(name)] = replies
	}
	// Every classifiable category needs a reply, and fallback is the
	// safety net for everything else.
	for _, category := range append(classifyOrder, CategoryFallback) {
		if len(templates[category]) == 0 {
			return nil, fmt.Errorf("assistant templates missing category %q", category)
		}
	}

	return &Engine{
		templates: templates,
		rng:       rand.New(rand.NewSource(rand.Int63())),
	}, nil
}

// Reply classifies the message and returns the category together with a
// reply drawn from that category's templates.
func (e *Engine) Reply(text string) (Category, string) {
	category := Classify(text)

	e.mu.Lock()
	defer e.mu.Unlock()
	replies := e.templates[category]
	return category, replies[e.rng.Intn(len(replies))]
}
