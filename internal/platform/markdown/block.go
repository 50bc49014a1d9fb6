package markdown

import "strings"

// Block delimits a generated region inside a hand-edited document. Text
// outside the markers belongs to the author and survives regeneration.
type Block struct {
	Start string
	End   string
}

// Replace swaps the region between the markers for generated, or appends a
// new region when doc has none.
func (b Block) Replace(doc, generated string) string {
	region := b.Start + "\n" + strings.TrimRight(generated, "\n") + "\n" + b.End

	start := strings.Index(doc, b.Start)
	end := strings.Index(doc, b.End)
	if start >= 0 && end > start {
		return doc[:start] + region + doc[end+len(b.End):]
	}
	switch {
	case strings.TrimSpace(doc) == "":
		return region + "\n"
	case strings.HasSuffix(doc, "\n"):
		return doc + "\n" + region + "\n"
	default:
		return doc + "\n\n" + region + "\n"
	}
}

// StripFrontmatter returns doc without a leading YAML frontmatter block.
// Documents without one are returned unchanged.
func StripFrontmatter(doc string) string {
	if !strings.HasPrefix(doc, separator) {
		return doc
	}
	rest := doc[len(separator):]
	idx := strings.Index(rest, "\n"+separator)
	if idx < 0 {
		return doc
	}
	return strings.TrimLeft(rest[idx+1+len(separator):], "\n")
}
