package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/jkreuzer/roadforge/pkg/errors"
)

var (
	fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")
	braceRe = regexp.MustCompile(`(?s)\{\s*".*"\s*:.*\}`)
)

// parseReply extracts the JSON payload from a model reply. Models sometimes
// wrap the JSON in markdown fences or surrounding prose despite the prompt,
// so fall back to fence and brace matching before giving up.
func parseReply(reply string) (*Result, error) {
	candidates := []string{strings.TrimSpace(reply)}
	if m := fenceRe.FindStringSubmatch(reply); m != nil {
		candidates = append(candidates, m[1])
	}
	if m := braceRe.FindString(reply); m != "" {
		candidates = append(candidates, m)
	}

	var res Result
	var lastErr error
	for _, candidate := range candidates {
		if err := json.Unmarshal([]byte(candidate), &res); err != nil {
			lastErr = err
			continue
		}
		if res.Kind == "" || res.Raw == nil {
			lastErr = errors.New(errors.ErrCodeExtractFailed, "reply missing network_type or parameters")
			continue
		}
		return &res, nil
	}
	return nil, errors.Wrap(errors.ErrCodeExtractFailed, lastErr, "no JSON parameters found in reply")
}
