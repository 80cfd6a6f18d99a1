package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/xrash/smetrics"
	"gopkg.in/yaml.v3"
)

type outputFormat string

const (
	formatText     outputFormat = "text"
	formatJSON     outputFormat = "json"
	formatYAML     outputFormat = "yaml"
	formatMarkdown outputFormat = "markdown"
)

var outputFormats = []outputFormat{formatText, formatJSON, formatYAML, formatMarkdown}

// suggestionThreshold is the minimum Jaro-Winkler score for a "did you mean".
const suggestionThreshold = 0.7

var (
	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	valueStyle   = lipgloss.NewStyle()
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)

func parseOutputFormat(raw string) (outputFormat, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	switch normalized {
	case "", string(formatText):
		return formatText, nil
	case "yml":
		return formatYAML, nil
	case "md":
		return formatMarkdown, nil
	}
	for _, format := range outputFormats {
		if normalized == string(format) {
			return format, nil
		}
	}

	if suggestion := suggestOutputFormat(normalized); suggestion != "" {
		return "", fmt.Errorf("unknown format %q, did you mean %q?", raw, suggestion)
	}
	return "", fmt.Errorf("unknown format %q", raw)
}

func suggestOutputFormat(raw string) outputFormat {
	var best outputFormat
	bestScore := 0.0
	for _, format := range outputFormats {
		score := smetrics.JaroWinkler(raw, string(format), 0.7, 4)
		if score > bestScore {
			best, bestScore = format, score
		}
	}
	if bestScore < suggestionThreshold {
		return ""
	}
	return best
}

// entry is one line of a report. Value is a string or a bool.
type entry struct {
	Key   string
	Label string
	Value interface{}
}

func renderEntries(w io.Writer, format outputFormat, entries []entry) error {
	switch format {
	case formatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(entriesToMap(entries))
	case formatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(entriesToMap(entries)); err != nil {
			return err
		}
		return encoder.Close()
	case formatMarkdown:
		return renderMarkdown(w, entries)
	default:
		return renderText(w, entries)
	}
}

func entriesToMap(entries []entry) map[string]interface{} {
	values := make(map[string]interface{}, len(entries))
	for _, e := range entries {
		values[e.Key] = e.Value
	}
	return values
}

func renderText(w io.Writer, entries []entry) error {
	width := 0
	for _, e := range entries {
		if len(e.Label) > width {
			width = len(e.Label)
		}
	}

	for _, e := range entries {
		label := labelStyle.Render(fmt.Sprintf("%-*s", width+1, e.Label+":"))
		value := valueStyle.Render(formatValue(e.Value))
		if found, ok := e.Value.(bool); ok && !found {
			value = missingStyle.Render(formatValue(e.Value))
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", label, value); err != nil {
			return err
		}
	}
	return nil
}

func markdownTable(entries []entry) string {
	var builder strings.Builder
	builder.WriteString("| Location | Value |\n")
	builder.WriteString("|----------|-------|\n")
	for _, e := range entries {
		fmt.Fprintf(&builder, "| %s | `%s` |\n", e.Label, formatValue(e.Value))
	}
	return builder.String()
}

func renderMarkdown(w io.Writer, entries []entry) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := renderer.Render(markdownTable(entries))
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

func formatValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "yes"
		}
		return "no"
	default:
		return fmt.Sprintf("%v", v)
	}
}
