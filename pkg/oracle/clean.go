package oracle

import "strings"

// CleanResponse strips markdown code fences and any prose around the JSON
// object a model returned.
func CleanResponse(text string) string {
	txt := strings.TrimSpace(text)

	if strings.HasPrefix(txt, "```") {
		lines := strings.Split(txt, "\n")
		start, end := 1, len(lines)
		for i := len(lines) - 1; i > 0; i-- {
			if strings.HasPrefix(strings.TrimSpace(lines[i]), "```") {
				end = i
				break
			}
		}
		if start < end {
			txt = strings.Join(lines[start:end], "\n")
		} else {
			txt = ""
		}
	}

	// Mixed content: keep the outermost object. Arrays are left for the
	// caller to reject.
	if !strings.HasPrefix(txt, "[") {
		if i := strings.Index(txt, "{"); i > 0 {
			txt = txt[i:]
		}
		if i := strings.LastIndex(txt, "}"); i >= 0 && i < len(txt)-1 {
			txt = txt[:i+1]
		}
	}
	return strings.TrimSpace(txt)
}
