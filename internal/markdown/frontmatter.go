package markdown

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-udos/pkg/interfaces"
)

// ParseFrontmatter extracts the flat scalar metadata block and the remaining
// body from the provided source. Missing or malformed frontmatter falls back
// to defaults silently: the zero Frontmatter is returned together with the
// untouched source, never an error.
func ParseFrontmatter(source []byte) (interfaces.Frontmatter, []byte) {
	var env frontmatterEnvelope

	body, err := frontmatter.Parse(bytes.NewReader(source), &env)
	if err != nil {
		return interfaces.Frontmatter{}, source
	}

	return envelopeToFrontmatter(env), body
}

type frontmatterEnvelope struct {
	Title         string         `yaml:"title"`
	ID            string         `yaml:"id"`
	Version       string         `yaml:"version"`
	Runtime       string         `yaml:"runtime"`
	Mode          string         `yaml:"mode"`
	StateDefaults string         `yaml:"stateDefaults"`
	Custom        map[string]any `yaml:",inline"`
}

func envelopeToFrontmatter(env frontmatterEnvelope) interfaces.Frontmatter {
	fm := interfaces.Frontmatter{
		Title:         env.Title,
		ID:            env.ID,
		Version:       env.Version,
		Runtime:       env.Runtime,
		Mode:          env.Mode,
		StateDefaults: env.StateDefaults,
	}

	if len(env.Custom) > 0 {
		fm.Custom = make(map[string]string, len(env.Custom))
		for key, value := range env.Custom {
			// Frontmatter is flat scalar metadata; nested structures are
			// dropped rather than flattened.
			switch value.(type) {
			case map[string]any, []any:
				continue
			}
			fm.Custom[key] = fmt.Sprint(value)
		}
		if len(fm.Custom) == 0 {
			fm.Custom = nil
		}
	}

	return fm
}
