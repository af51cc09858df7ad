package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/udcheck/langdata"
)

func TestStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	st := NewStore(dir)

	spec := langdata.Spec{
		Lang:        "de",
		Deprels:     []string{"nsubj", "root"},
		Auxiliaries: []string{"sein", "haben"},
		Features: map[string]langdata.Feature{
			"Case": {Values: []string{"Nom", "Acc", "Dat", "Gen"}, RequiredFor: []string{"NOUN"}},
		},
	}
	require.NoError(t, st.Write(spec))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.txt"), []byte("x"), 0644))

	langs, err := st.Langs()
	require.NoError(t, err)
	assert.Equal(t, []string{"de"}, langs)

	got, err := st.Read("de")
	require.NoError(t, err)
	assert.Equal(t, spec.Deprels, got.Deprels)
	assert.Equal(t, spec.Features, got.Features)
}

func TestStoreUnknownLanguage(t *testing.T) {
	_, err := NewStore(t.TempDir()).Read("fr")
	assert.ErrorIs(t, err, langdata.ErrUnknownLanguage)
}

func TestStoreBrokenJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "it.json"), []byte("{"), 0644))

	_, err := NewStore(dir).Read("it")
	require.Error(t, err)
	assert.False(t, langdata.IsUnknown(err), "a broken file is an environment failure")
}
