// Package markdown parses the constrained script dialect into documents:
// optional flat frontmatter, ##-delimited sections, and typed fenced blocks
// captured verbatim. Block bodies are never interpreted here; executors parse
// them lazily at execution time.
package markdown
