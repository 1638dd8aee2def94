package analyzer

import (
	"regexp"
	"strings"
)

const (
	blockCommentPlaceholder = "/**/"
	lineCommentPlaceholder  = "//\n"
)

// CommentNormalizer reduces comments to fixed placeholders so that braces
// inside them cannot be mistaken for structure.
type CommentNormalizer struct {
	// comment matches a block comment or a line comment through its newline.
	// Leftmost-first: whichever comment opens first wins.
	comment      *regexp.Regexp
	blockComment *regexp.Regexp
}

func NewCommentNormalizer() *CommentNormalizer {
	return &CommentNormalizer{
		comment:      regexp.MustCompile(`(?s)/\*.*?\*/|//[^\n]*\n`),
		blockComment: regexp.MustCompile(`(?s)/\*.*?\*/`),
	}
}

// Normalize replaces every block comment with "/**/" and every line comment
// with "//\n". Non-comment text is left untouched.
func (n *CommentNormalizer) Normalize(text string) string {
	return n.comment.ReplaceAllStringFunc(text, func(m string) string {
		if strings.HasPrefix(m, "/*") {
			return blockCommentPlaceholder
		}
		return lineCommentPlaceholder
	})
}

// StripBlockComments deletes block comments, including placeholders.
func (n *CommentNormalizer) StripBlockComments(text string) string {
	return n.blockComment.ReplaceAllString(text, "")
}

// FirstBlockComment returns the first block comment in text, markers included.
func (n *CommentNormalizer) FirstBlockComment(text string) (string, bool) {
	loc := n.blockComment.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	return text[loc[0]:loc[1]], true
}
