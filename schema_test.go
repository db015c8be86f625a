package sorer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.sor")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestInferSchemaDominanceAcrossRows(t *testing.T) {
	path := writeTempFile(t, "<1><hello><>\n<12><1.2><>\n")
	schema, err := InferSchema(path, WithBandSize(10))
	require.NoError(t, err)
	require.Equal(t, Schema{Int, String, Bool}, schema)
}

func TestInferSchemaAllNullColumnStaysBool(t *testing.T) {
	path := writeTempFile(t, "<><>\n<><>\n")
	schema, err := InferSchema(path, WithBandSize(10))
	require.NoError(t, err)
	require.Equal(t, Schema{Bool, Bool}, schema)
}

func TestInferSchemaWidestRowWins(t *testing.T) {
	path := writeTempFile(t, "<1><2>\n<1><2><3>\n<1>\n")
	schema, err := InferSchema(path, WithBandSize(10))
	require.NoError(t, err)
	require.Len(t, schema, 3)
}

func TestInferSchemaEmptyFileYieldsEmptySchema(t *testing.T) {
	path := writeTempFile(t, "")
	schema, err := InferSchema(path, WithBandSize(10))
	require.NoError(t, err)
	require.Empty(t, schema)
}

func TestInferSchemaDeterministic(t *testing.T) {
	path := writeTempFile(t, "<1><hello>\n<2><world>\n<3><str>\n")
	s1, err := InferSchema(path, WithBandSize(10))
	require.NoError(t, err)
	s2, err := InferSchema(path, WithBandSize(10))
	require.NoError(t, err)
	require.Equal(t, s1, s2)
}

func TestInferSchemaMissingFileErrors(t *testing.T) {
	_, err := InferSchema(filepath.Join(t.TempDir(), "nope.sor"))
	require.Error(t, err)
}
