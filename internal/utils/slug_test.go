package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"FinTech Dashboard":        "fintech-dashboard",
		"  Brand & Identity  ":     "brand-and-identity",
		"UI/UX Design":             "ui-ux-design",
		"What's New in 2025?":      "whats-new-in-2025",
		"already-a-slug":           "already-a-slug",
		"--multiple---dashes--":    "multiple-dashes",
		"Überraschung für Kunden!": "berraschung-f-r-kunden",
	}
	for input, want := range cases {
		assert.Equal(t, want, Slugify(input), "input %q", input)
	}
}
