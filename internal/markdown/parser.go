package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"

	"github.com/goliatone/go-udos/internal/identity"
	"github.com/goliatone/go-udos/internal/logging"
	"github.com/goliatone/go-udos/pkg/interfaces"
)

// Parser extracts frontmatter, sections, and typed blocks from script
// documents. It is stateless so callers can reuse a single instance across
// documents without additional locking.
type Parser struct {
	engine goldmark.Markdown
	logger interfaces.Logger
}

// NewParser constructs a parser backed by the goldmark engine. Only the
// block structure of the AST is consulted; block bodies are sliced verbatim
// from the source.
func NewParser(provider interfaces.LoggerProvider) *Parser {
	return &Parser{
		engine: goldmark.New(),
		logger: logging.MarkdownLogger(provider),
	}
}

// Parse turns source text into a Document. Parsing is total: malformed
// frontmatter falls back to defaults, unterminated fences consume to end of
// input, and blocks outside any section are dropped. Parsing the same text
// twice yields structurally equal documents.
func (p *Parser) Parse(source string) *interfaces.Document {
	fm, body := ParseFrontmatter([]byte(source))

	doc := &interfaces.Document{
		Frontmatter: fm,
		Raw:         source,
	}
	doc.ID = identity.DocumentUUID(fm.ID, source).String()

	root := p.engine.Parser().Parse(gmtext.NewReader(body))

	var current *interfaces.Section
	flush := func() {
		if current == nil {
			return
		}
		current.Content = strings.TrimSpace(current.Content)
		doc.Sections = append(doc.Sections, *current)
		current = nil
	}

	for node := root.FirstChild(); node != nil; node = node.NextSibling() {
		if heading, ok := node.(*ast.Heading); ok && heading.Level == 2 {
			flush()
			title := strings.TrimSpace(nodeText(heading, body))
			current = &interfaces.Section{
				ID:    Slugify(title),
				Title: title,
			}
			continue
		}

		if fence, ok := node.(*ast.FencedCodeBlock); ok {
			blockType := interfaces.BlockType(strings.ToLower(string(fence.Language(body))))
			if interfaces.IsKnownBlockType(blockType) {
				if current == nil {
					p.logger.Debug("dropping block outside any section", "block_type", blockType)
					continue
				}
				current.Blocks = append(current.Blocks, interfaces.Block{
					Type:    blockType,
					Content: nodeText(fence, body),
				})
				continue
			}
		}

		if current != nil {
			if text := nodeText(node, body); text != "" {
				if current.Content != "" {
					current.Content += "\n"
				}
				current.Content += text
			}
		}
	}
	flush()

	p.logger.Debug("document parsed",
		"document", doc.ID,
		"sections", len(doc.Sections),
	)

	return doc
}

// nodeText joins the raw source lines backing a node. Container nodes without
// their own lines (lists, quotes) recurse into children.
func nodeText(node ast.Node, source []byte) string {
	var sb strings.Builder
	if lines := node.Lines(); lines != nil && lines.Len() > 0 {
		for i := 0; i < lines.Len(); i++ {
			segment := lines.At(i)
			sb.Write(segment.Value(source))
		}
		return sb.String()
	}
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		sb.WriteString(nodeText(child, source))
	}
	return sb.String()
}
