package globals

import (
	"testing"

	"github.com/arthur-debert/lppm/pkg/errors"
	"github.com/arthur-debert/lppm/pkg/filesystem"
	"github.com/arthur-debert/lppm/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const globalsPath = "/config/lppm/globals.toml"

type stubConfirmer struct {
	answer  bool
	prompts []string
}

func (s *stubConfirmer) Confirm(prompt string) (bool, error) {
	s.prompts = append(s.prompts, prompt)
	return s.answer, nil
}

func newStore(t *testing.T, content string, answer bool) (*Store, types.FS, *stubConfirmer) {
	t.Helper()
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())
	if content != "" {
		require.NoError(t, fs.MkdirAll("/config/lppm", 0755))
		require.NoError(t, fs.WriteFile(globalsPath, []byte(content), 0644))
	}
	confirmer := &stubConfirmer{answer: answer}
	store, err := Load(fs, globalsPath, confirmer)
	require.NoError(t, err)
	return store, fs, confirmer
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	store, _, _ := newStore(t, "", true)

	assert.Empty(t, store.Keys())
	assert.Empty(t, store.Mapping())
}

func TestLoadParsesVariables(t *testing.T) {
	store, _, _ := newStore(t, "[variables]\nAUTHOR = \"  Ann \"\nLICENSE = \"MIT\"\n", true)

	assert.Equal(t, []string{"AUTHOR", "LICENSE"}, store.Keys())
	value, err := store.Get("AUTHOR")
	require.NoError(t, err)
	assert.Equal(t, "Ann", value)
}

func TestLoadMalformedFile(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fs.WriteFile(globalsPath, []byte("[variables\nnope"), 0644))

	_, err := Load(fs, globalsPath, &stubConfirmer{})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFormat))
}

func TestGet(t *testing.T) {
	store, _, _ := newStore(t, "[variables]\nA = \"1\"\n", true)

	tests := []struct {
		name  string
		key   string
		want  string
		code  errors.ErrorCode
		isErr bool
	}{
		{name: "present", key: "A", want: "1"},
		{name: "trimmed key", key: "  A ", want: "1"},
		{name: "missing", key: "B", isErr: true, code: errors.ErrNotFound},
		{name: "empty", key: "  ", isErr: true, code: errors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.Get(tt.key)
			if tt.isErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, tt.code))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetNewKeyDoesNotConfirm(t *testing.T) {
	store, _, confirmer := newStore(t, "", false)

	require.NoError(t, store.Set("NAME", " Ann "))

	assert.Empty(t, confirmer.prompts)
	assert.Equal(t, types.Mapping{"NAME": "Ann"}, store.Mapping())
}

func TestSetOverrideConfirmed(t *testing.T) {
	store, _, confirmer := newStore(t, "[variables]\nNAME = \"Ann\"\n", true)

	require.NoError(t, store.Set("NAME", "Bob"))

	assert.Len(t, confirmer.prompts, 1)
	value, _ := store.Get("NAME")
	assert.Equal(t, "Bob", value)
}

func TestSetOverrideDeclined(t *testing.T) {
	store, _, _ := newStore(t, "[variables]\nNAME = \"Ann\"\n", false)

	err := store.Set("NAME", "Bob")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfirmationDenied))
	value, _ := store.Get("NAME")
	assert.Equal(t, "Ann", value)
}

func TestSetSameValueDoesNotConfirm(t *testing.T) {
	store, _, confirmer := newStore(t, "[variables]\nNAME = \"Ann\"\n", false)

	require.NoError(t, store.Set("NAME", "Ann"))
	assert.Empty(t, confirmer.prompts)
}

func TestUnset(t *testing.T) {
	store, _, _ := newStore(t, "[variables]\nNAME = \"Ann\"\n", true)

	require.NoError(t, store.Unset("NAME"))
	assert.False(t, store.Contains("NAME"))

	err := store.Unset("NAME")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestMappingIsACopy(t *testing.T) {
	store, _, _ := newStore(t, "[variables]\nNAME = \"Ann\"\n", true)

	m := store.Mapping()
	m["NAME"] = "changed"

	value, _ := store.Get("NAME")
	assert.Equal(t, "Ann", value)
}

func TestSaveRoundTrip(t *testing.T) {
	store, fs, _ := newStore(t, "", true)
	require.NoError(t, store.Set("AUTHOR", "Ann \"the\" Smith"))
	require.NoError(t, store.Set("LICENSE", "MIT"))

	require.NoError(t, store.Save())

	reloaded, err := Load(fs, globalsPath, &stubConfirmer{})
	require.NoError(t, err)
	assert.Equal(t, store.Mapping(), reloaded.Mapping())

	data, err := fs.ReadFile(globalsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[variables]")
}
