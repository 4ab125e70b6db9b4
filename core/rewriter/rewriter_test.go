package rewriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epochlab/protopatch/core/rewriter"
)

func TestRewrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "module scope import is rewritten",
			input:    "import bar_pb2 as bar__pb2\n",
			expected: "from . import bar_pb2 as bar__pb2\n",
		},
		{
			name: "every matching line is rewritten",
			input: "import common_pb2 as common__pb2\n" +
				"import chart_def_pb2 as chart__def__pb2\n",
			expected: "from . import common_pb2 as common__pb2\n" +
				"from . import chart_def_pb2 as chart__def__pb2\n",
		},
		{
			name: "match is anchored per line not only at file start",
			input: "# generated by protoc\n" +
				"import table_def_pb2 as table__def__pb2\n" +
				"DESCRIPTOR = None\n",
			expected: "# generated by protoc\n" +
				"from . import table_def_pb2 as table__def__pb2\n" +
				"DESCRIPTOR = None\n",
		},
		{
			name:     "indented import is left alone",
			input:    "    import bar_pb2 as bar__pb2\n",
			expected: "    import bar_pb2 as bar__pb2\n",
		},
		{
			name:     "import without binding suffix is left alone",
			input:    "import sys as system\n",
			expected: "import sys as system\n",
		},
		{
			name:     "import without alias is left alone",
			input:    "import bar_pb2\n",
			expected: "import bar_pb2\n",
		},
		{
			name:     "already relative import is left alone",
			input:    "from . import bar_pb2 as bar__pb2\n",
			expected: "from . import bar_pb2 as bar__pb2\n",
		},
		{
			name:     "rest of the line is preserved",
			input:    "import bar_pb2 as bar__pb2  # keep this comment\n",
			expected: "from . import bar_pb2 as bar__pb2  # keep this comment\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := rewriter.Rewrite([]byte(tt.input))
			assert.Equal(t, tt.expected, string(got))
		})
	}
}

func TestRewrite_Idempotent(t *testing.T) {
	t.Parallel()

	input := []byte("import bar_pb2 as bar__pb2\nimport baz_pb2 as baz__pb2\n")

	once := rewriter.Rewrite(input)
	twice := rewriter.Rewrite(once)

	assert.Equal(t, string(once), string(twice))
}

func TestRewriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "foo_pb2.py")
	content := "\"\"\"Generated code.\"\"\"\nimport bar_pb2 as bar__pb2\nx = 1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	rw := rewriter.New()
	changed, err := rw.RewriteFile(path)
	require.NoError(t, err)
	assert.True(t, changed)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\"\"\"Generated code.\"\"\"\nfrom . import bar_pb2 as bar__pb2\nx = 1\n", string(got))

	changed, err = rw.RewriteFile(path)
	require.NoError(t, err)
	assert.False(t, changed, "second pass must be a no-op")
}

func TestRewriteFile_CheckOnlyDoesNotWrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "foo_pb2.py")
	content := "import bar_pb2 as bar__pb2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	rw := rewriter.New()
	rw.SetCheckOnly(true)

	changed, err := rw.RewriteFile(path)
	require.NoError(t, err)
	assert.True(t, changed)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}

func TestRewriteFile_MissingFile(t *testing.T) {
	t.Parallel()

	rw := rewriter.New()
	_, err := rw.RewriteFile(filepath.Join(t.TempDir(), "missing_pb2.py"))
	assert.Error(t, err)
}
