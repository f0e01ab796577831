package store_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hatermatic/internal/catalog"
	"hatermatic/internal/domain"
	"hatermatic/internal/phrase"
	"hatermatic/internal/store"
)

const officeYAML = `
name: office
tiers:
  value:
    count: 2
    phrases: ["Nice tie.", "Great slide deck."]
  quality:
    phrases:
      - "You're the reason the coffee pot is full."
  luxury:
    phrases:
      - "Your spreadsheets bring tears to my eyes."
      - "I'd follow you into any reorg."
`

func writeTemp(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadCatalog_OK(t *testing.T) {
	c, err := store.LoadCatalog(writeTemp(t, officeYAML))
	require.NoError(t, err)

	assert.Equal(t, domain.CatalogName("office"), c.Name())
	assert.Equal(t, 2, c.Len(domain.Value))
	assert.Equal(t, 1, c.Len(domain.Quality))
	assert.Equal(t, 2, c.Len(domain.Luxury))
	assert.Equal(t, "You're the reason the coffee pot is full.", c.Table(domain.Quality).At(0))
}

func TestLoadCatalog_CountMismatch(t *testing.T) {
	body := strings.Replace(officeYAML, "count: 2", "count: 3", 1)
	_, err := store.LoadCatalog(writeTemp(t, body))
	require.ErrorIs(t, err, phrase.ErrCountMismatch)
}

func TestDecodeCatalog_DeclaredEightSuppliedSeven(t *testing.T) {
	body := `
name: short
tiers:
  value: {phrases: [a]}
  quality:
    count: 8
    phrases: [q1, q2, q3, q4, q5, q6, q7]
  luxury: {phrases: [l]}
`
	_, err := store.DecodeCatalog(strings.NewReader(body))
	require.ErrorIs(t, err, phrase.ErrCountMismatch)
}

func TestDecodeCatalog_Errors(t *testing.T) {
	cases := map[string]struct {
		body string
		want error
	}{
		"missing tier": {
			body: "name: x\ntiers:\n  value: {phrases: [a]}\n  quality: {phrases: [b]}\n",
			want: phrase.ErrMissingTier,
		},
		"empty tier": {
			body: "name: x\ntiers:\n  value: {phrases: []}\n  quality: {phrases: [b]}\n  luxury: {phrases: [c]}\n",
			want: phrase.ErrEmptyTable,
		},
		"no name": {
			body: "tiers:\n  value: {phrases: [a]}\n",
			want: store.ErrNoName,
		},
		"control code": {
			body: "name: x\ntiers:\n  value: {phrases: [\"a\\tb\"]}\n  quality: {phrases: [b]}\n  luxury: {phrases: [c]}\n",
			want: phrase.ErrUnprintable,
		},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := store.DecodeCatalog(strings.NewReader(c.body))
			require.ErrorIs(t, err, c.want)
		})
	}
}

func TestDecodeCatalog_UnknownTierKey(t *testing.T) {
	body := "name: x\ntiers:\n  premium: {phrases: [a]}\n"
	_, err := store.DecodeCatalog(strings.NewReader(body))
	require.Error(t, err)
}

func TestSaveLoad_RoundTripBuiltin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hate.yaml")
	require.NoError(t, store.SaveCatalog(path, catalog.Hate))

	got, err := store.LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, catalog.Hate.Name(), got.Name())
	for _, tier := range domain.Tiers {
		assert.Equal(t, catalog.Hate.Table(tier).Phrases(), got.Table(tier).Phrases(), tier.String())
	}

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "count: 17")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestLoadCatalog_Missing(t *testing.T) {
	_, err := store.LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadCatalog_TooLarge(t *testing.T) {
	path := writeTemp(t, "name: big\n#"+strings.Repeat("x", 1<<20))
	_, err := store.LoadCatalog(path)
	require.ErrorIs(t, err, store.ErrFileTooLarge)
}

func TestDecodeCatalog_TrailingDocument(t *testing.T) {
	body := officeYAML + "---\nname: y\n"
	_, err := store.DecodeCatalog(strings.NewReader(body))
	require.ErrorIs(t, err, store.ErrExtraDocs)
}

func TestDecodeCatalog_TrailingGarbage(t *testing.T) {
	body := officeYAML + "---\nname: [unterminated\n"
	_, err := store.DecodeCatalog(strings.NewReader(body))
	require.Error(t, err)
}
