package mailer

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// frontmatterDelimiter separates YAML metadata from the markdown body.
const frontmatterDelimiter = "---"

// parseFrontmatter splits optional YAML frontmatter from a markdown template.
// A template without an opening delimiter is all body with empty metadata.
func parseFrontmatter(content []byte) (map[string]any, string, error) {
	s := string(content)
	if !strings.HasPrefix(s, frontmatterDelimiter) {
		return map[string]any{}, s, nil
	}

	rest := strings.TrimLeft(strings.TrimPrefix(s, frontmatterDelimiter), "\r\n")
	end := strings.Index(rest, frontmatterDelimiter)
	if end < 0 {
		return nil, "", fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	metadata := map[string]any{}
	if raw := strings.TrimSpace(rest[:end]); raw != "" {
		if err := yaml.Unmarshal([]byte(raw), &metadata); err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}

	body := rest[end+len(frontmatterDelimiter):]
	body = strings.TrimPrefix(strings.TrimPrefix(body, "\r\n"), "\n")

	return metadata, body, nil
}
