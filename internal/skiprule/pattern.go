package skiprule

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// pattern matches names either by regular expression (leading '^') or by
// glob. The empty pattern matches everything.
type pattern struct {
	raw string
	rx  *regexp.Regexp
}

func compilePattern(raw string) (pattern, error) {
	if raw == "" {
		return pattern{}, nil
	}
	if strings.HasPrefix(raw, "^") {
		rx, err := regexp.Compile(raw)
		if err != nil {
			return pattern{}, fmt.Errorf("invalid regular expression %q: %w", raw, err)
		}
		return pattern{raw: raw, rx: rx}, nil
	}
	if !doublestar.ValidatePattern(raw) {
		return pattern{}, fmt.Errorf("invalid glob pattern %q", raw)
	}
	return pattern{raw: raw}, nil
}

func (p pattern) match(name string) bool {
	if p.raw == "" {
		return true
	}
	if p.rx != nil {
		return p.rx.MatchString(name)
	}
	matched, err := doublestar.Match(p.raw, name)
	return err == nil && matched
}
