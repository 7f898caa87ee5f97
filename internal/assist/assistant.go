// Package assist drafts listing descriptions with a text generation service.
// Every call is best-effort: failures collapse into a fixed fallback text.
package assist

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"listing-marketplace/internal/domain"
	"listing-marketplace/internal/logger"
	"listing-marketplace/internal/metrics"
)

const (
	// FallbackText is returned whenever generation fails.
	FallbackText = "Sorry, we could not generate a description right now."

	// DefaultLanguage is the language descriptions are written in.
	DefaultLanguage = "Arabic"

	promptTemplate = "Help me write an attractive, professional advertising description in %s " +
		"for an electronic product titled \"%s\" in the \"%s\" category. " +
		"Focus on the technical specifications, the condition of the product and its strengths, formatted as a list."
)

// Enhancer drafts a description for a title and category. ok is false only
// when there was nothing to enhance.
type Enhancer interface {
	Enhance(ctx context.Context, title, category string) (text string, ok bool)
}

// Assistant implements Enhancer over a Generator.
type Assistant struct {
	generator Generator
	language  string
	timeout   time.Duration
}

// NewAssistant creates an Assistant. A zero timeout disables the deadline.
func NewAssistant(generator Generator, language string, timeout time.Duration) *Assistant {
	if language == "" {
		language = DefaultLanguage
	}
	return &Assistant{generator: generator, language: language, timeout: timeout}
}

// Prompt renders the fixed prompt template.
func (a *Assistant) Prompt(title, category string) string {
	return fmt.Sprintf(promptTemplate, a.language, title, category)
}

// Enhance returns a generated description, or FallbackText on any failure.
// An empty title returns ("", false) without calling the generator.
func (a *Assistant) Enhance(ctx context.Context, title, category string) (string, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		metrics.EnhancementsTotal.WithLabelValues("skipped").Inc()
		return "", false
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	timer := metrics.NewTimer()
	text, err := a.generate(ctx, title, category)
	if err != nil {
		metrics.ObserveEnhancement("fallback", timer.Seconds())
		logger.WarnContext(ctx, "Description enhancement failed",
			slog.String("title", title),
			slog.String("category", category),
			slog.String("error", err.Error()))
		return FallbackText, true
	}

	metrics.ObserveEnhancement("success", timer.Seconds())
	return text, true
}

func (a *Assistant) generate(ctx context.Context, title, category string) (text string, err error) {
	defer func() {
		// a misbehaving client must not take the caller down
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: generator panic: %v", domain.ErrEnhancement, r)
		}
	}()

	text, err = a.generator.Generate(ctx, a.Prompt(title, category))
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrEnhancement, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: empty response", domain.ErrEnhancement)
	}
	return text, nil
}
