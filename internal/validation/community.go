package validation

import (
	"fmt"
	"strings"
)

var communityCategories = map[string]struct{}{
	"chronic-illness": {},
	"mental-health":   {},
	"nutrition":       {},
	"fitness":         {},
	"parenting":       {},
	"recovery":        {},
	"general":         {},
}

// ValidateCommunityName validates the community display name.
func ValidateCommunityName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < 3 {
		return fmt.Errorf("community name must be at least 3 characters long")
	}
	if len(name) > 120 {
		return fmt.Errorf("community name must not exceed 120 characters")
	}
	return nil
}

// ValidateCommunityCategory validates the category against the known set.
func ValidateCommunityCategory(category string) error {
	if _, ok := communityCategories[strings.ToLower(strings.TrimSpace(category))]; !ok {
		return fmt.Errorf("unknown community category %q", category)
	}
	return nil
}
