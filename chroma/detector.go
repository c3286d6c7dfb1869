package chroma

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/linediff"
)

// Compile-time interface verification.
var _ linediff.LanguageDetector = (*Detector)(nil)

// Detector detects languages from file names using chroma's lexer registry.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// DetectFromLabel matches the base name of label against chroma's lexers.
// Revision prefixes such as "HEAD:" and diff prefixes "a/" and "b/" are
// ignored.
func (d *Detector) DetectFromLabel(label string) string {
	if i := strings.LastIndexByte(label, ':'); i >= 0 {
		label = label[i+1:]
	}
	label = strings.TrimPrefix(label, "a/")
	label = strings.TrimPrefix(label, "b/")

	lexer := lexers.Match(filepath.Base(label))
	if lexer == nil {
		return ""
	}
	return lexer.Config().Name
}
