package extractor

import (
	"regexp"
	"strings"
)

var (
	fenceRe         = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)\\s*```")
	fenceMarkerRe   = regexp.MustCompile("```\\w*\\n?")
	trailingCommaRe = regexp.MustCompile(`,(\s*[}\]])`)
	bareKeyRe       = regexp.MustCompile(`([{,])\s*([a-zA-Z_][a-zA-Z0-9_]*)\s*:`)
)

// RepairJSON makes a best-effort pass over malformed model output: markdown
// fences and surrounding prose are stripped, trailing commas removed, bare
// keys quoted, and truncated output closed by balancing brackets. The result
// is not guaranteed to parse; callers must still unmarshal and handle errors.
func RepairJSON(text string) string {
	if strings.Contains(text, "```") {
		if m := fenceRe.FindStringSubmatch(text); m != nil {
			text = m[1]
		} else {
			text = fenceMarkerRe.ReplaceAllString(text, "")
		}
	}

	text = strings.TrimSpace(text)

	// Keep only the outermost object.
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end != -1 && end > start {
		text = text[start : end+1]
	}

	text = trailingCommaRe.ReplaceAllString(text, "$1")
	text = bareKeyRe.ReplaceAllString(text, `$1"$2":`)

	openBraces := strings.Count(text, "{") - strings.Count(text, "}")
	openBrackets := strings.Count(text, "[") - strings.Count(text, "]")

	// Truncated output: drop the trailing incomplete entry when a complete
	// string value ends past the halfway point, then recount.
	if openBraces > 0 || openBrackets > 0 {
		last := -1
		for _, marker := range []string{`",`, `"}`, `"]`, `" }`, `" ]`} {
			if idx := strings.LastIndex(text, marker); idx > last {
				last = idx
			}
		}
		if last > len(text)/2 {
			text = text[:last+1]
			openBraces = strings.Count(text, "{") - strings.Count(text, "}")
			openBrackets = strings.Count(text, "[") - strings.Count(text, "]")
		}
	}

	if openBrackets > 0 {
		text += strings.Repeat("]", openBrackets)
	}
	if openBraces > 0 {
		text += strings.Repeat("}", openBraces)
	}

	return text
}
