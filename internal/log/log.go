// Package log configures slog for the checker. Debug records are noisy during
// type algebra runs, so they are gated on a "section" attribute; warnings and
// errors always pass through.
package log

import (
	"context"
	"log/slog"
	"os"
	"slices"
	"strings"
)

var enabledSections = []string{
	"types",
	"cmd",
}

var level = new(slog.LevelVar)

func init() { level.Set(slog.LevelDebug) }

// SetLevel adjusts the minimum record level at runtime.
func SetLevel(l slog.Level) { level.Set(l) }

var LoggerOpts = &slog.HandlerOptions{
	AddSource: true,
	Level:     level,
	ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == "time" {
			return slog.Attr{}
		}
		return a
	},
}

var DefaultLogger = slog.New(&sectionHandler{underlying: slog.NewTextHandler(os.Stdout, LoggerOpts)})

// For returns a logger tagged with the given section. Records logged through
// it below warning level only surface when the section is enabled.
func For(section string) *slog.Logger {
	return DefaultLogger.With("section", section)
}

var _ slog.Handler = &sectionHandler{}

type sectionHandler struct {
	underlying slog.Handler
	// sections holds enabled sections accumulated through WithAttrs
	sections []string
}

func (h sectionHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.underlying.Enabled(ctx, level)
}

func sectionEnabled(value string) bool {
	return slices.ContainsFunc(enabledSections, func(section string) bool {
		return strings.HasPrefix(value, section)
	})
}

func (h sectionHandler) Handle(ctx context.Context, record slog.Record) error {
	if record.Level >= slog.LevelWarn {
		return h.underlying.Handle(ctx, record)
	}
	want := len(h.sections) > 0
	record.Attrs(func(attr slog.Attr) bool {
		want = want || attr.Key == "section" && sectionEnabled(attr.Value.String())
		// iterate as long as we have not found our section
		return !want
	})
	if !want {
		return nil
	}
	return h.underlying.Handle(ctx, record)
}

func (h sectionHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var rest []slog.Attr
	var sections []string

	// the section attribute stays on the handler rather than the record
	for _, attr := range attrs {
		if attr.Key == "section" && sectionEnabled(attr.Value.String()) {
			sections = append(sections, attr.Value.String())
		} else {
			rest = append(rest, attr)
		}
	}
	return &sectionHandler{
		underlying: h.underlying.WithAttrs(rest),
		sections:   append(sections, h.sections...),
	}
}

func (h sectionHandler) WithGroup(name string) slog.Handler {
	return &sectionHandler{
		underlying: h.underlying.WithGroup(name),
		sections:   h.sections,
	}
}
