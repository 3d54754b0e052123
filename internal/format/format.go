// Package format converts raw catalog fields into human-readable strings.
// These helpers are purely cosmetic and are consumed only by presentation
// layers, never by the recommendation engine.
package format

import (
	"fmt"
	"strings"
)

const tokensPerK = 1000

// Price renders a per-1M-token price, e.g. "$0.15/M". A zero or negative
// price renders as "free".
func Price(perMillion float64) string {
	if perMillion <= 0 {
		return "free"
	}
	if perMillion < 1 {
		return fmt.Sprintf("$%.2f/M", perMillion)
	}
	return fmt.Sprintf("$%s/M", trimZeros(fmt.Sprintf("%.2f", perMillion)))
}

// ContextWindow renders a token count compactly: 128000 becomes "128K",
// 1048576 becomes "1M". Zero renders as "unknown".
func ContextWindow(tokens int) string {
	switch {
	case tokens <= 0:
		return "unknown"
	case tokens >= tokensPerK*tokensPerK:
		return trimZeros(fmt.Sprintf("%.1f", float64(tokens)/float64(tokensPerK*tokensPerK))) + "M"
	case tokens >= tokensPerK:
		return trimZeros(fmt.Sprintf("%.1f", float64(tokens)/tokensPerK)) + "K"
	default:
		return fmt.Sprintf("%d", tokens)
	}
}

// Provider renders a provider slug as a display name: "openai" becomes
// "OpenAI" for known slugs, otherwise the slug is title-cased.
func Provider(slug string) string {
	if display, ok := providerDisplayNames[strings.ToLower(slug)]; ok {
		return display
	}
	if slug == "" {
		return "Unknown"
	}
	return strings.ToUpper(slug[:1]) + slug[1:]
}

var providerDisplayNames = map[string]string{
	"openai":    "OpenAI",
	"anthropic": "Anthropic",
	"google":    "Google",
	"meta":      "Meta",
	"mistral":   "Mistral",
	"deepseek":  "DeepSeek",
	"xai":       "xAI",
}

func trimZeros(s string) string {
	return strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
}
