package rewriter

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"github.com/epochlab/protopatch/core/logger"
)

// absoluteImport matches a module-scope binding import at the start of a
// line: "import foo_pb2 as foo__pb2". Indented imports are left alone, and
// the rewritten form no longer matches, so a second pass is a no-op.
var absoluteImport = regexp.MustCompile(`(?m)^import (\w+_pb2) as`)

const relativeImport = "from . import $1 as"

// Rewriter converts absolute binding imports into package-relative imports
// so the generated files can ship inside an installable package.
type Rewriter struct {
	checkOnly bool
}

func New() *Rewriter {
	return &Rewriter{}
}

// SetCheckOnly switches the rewriter into dry-run mode: files are inspected
// but never written.
func (rw *Rewriter) SetCheckOnly(checkOnly bool) {
	rw.checkOnly = checkOnly
}

// Rewrite applies the import substitution to a byte slice.
func Rewrite(content []byte) []byte {
	return absoluteImport.ReplaceAll(content, []byte(relativeImport))
}

// RewriteFile applies the import substitution to a single file and reports
// whether its content changed. Everything outside the matched lines is
// preserved byte for byte, and unchanged files are never reopened for
// writing.
func (rw *Rewriter) RewriteFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	rewritten := Rewrite(content)
	if bytes.Equal(rewritten, content) {
		return false, nil
	}

	if rw.checkOnly {
		logger.Debug("Would rewrite %s", path)
		return true, nil
	}

	if err := os.WriteFile(path, rewritten, info.Mode()); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}

	logger.Debug("Rewrote imports in %s", path)
	return true, nil
}
