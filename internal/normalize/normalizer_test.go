package normalize

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCorrectsTextSpeak(t *testing.T) {
	n := New(nil)
	res := n.Normalize("plz wrte abt tech")

	assert.Equal(t, "please write about tech", res.Corrected)
	require.Len(t, res.Corrections, 3)
	assert.Equal(t, "plz", res.Corrections[0].Original)
	assert.Equal(t, "please", res.Corrections[0].Corrected)
	assert.Equal(t, 0, res.Corrections[0].Position)
}

func TestNormalizePreservesCase(t *testing.T) {
	n := New(nil)
	res := n.Normalize("Plz write. Teh end.")

	assert.Equal(t, "Please write. The end.", res.Corrected)
}

func TestNormalizeWholeWordOnly(t *testing.T) {
	n := New(nil)
	// "u" inside "usual" must not be touched.
	res := n.Normalize("usual update")
	assert.Equal(t, "usual update", res.Corrected)
	assert.Empty(t, res.Corrections)
}

func TestNormalizeLeavesValidWordsAlone(t *testing.T) {
	n := New(nil)
	// No fuzzy matching: near-misses outside the dictionary pass through.
	res := n.Normalize("writ a reporte")
	assert.Equal(t, "writ a reporte", res.Corrected)
	assert.Empty(t, res.Corrections)
}

func TestNormalizeIdempotent(t *testing.T) {
	n := New(nil)
	inputs := []string{
		"plz wrte abt tech future ai robots and stuff make it gud not boring",
		"Im  gonna   send u a msg\n\n\nabt teh   plan",
		"already clean text",
		"",
	}
	for _, in := range inputs {
		once := n.Normalize(in).Corrected
		twice := n.Normalize(once).Corrected
		assert.Equal(t, once, twice, "input %q", in)
	}
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	n := New(nil)
	res := n.Normalize("  hello   world \n\n\n next   line  ")
	assert.Equal(t, "hello world\nnext line", res.Corrected)
}

func TestCollapseCommutesWithCorrection(t *testing.T) {
	n := New(nil)
	raw := "plz   wrte\n\n abt  teh   future"
	// Correcting the pre-collapsed string must give the same output.
	direct := n.Normalize(raw).Corrected
	pre := n.Normalize(collapseWhitespace(raw)).Corrected
	assert.Equal(t, direct, pre)
}

func TestCorrectionPositions(t *testing.T) {
	n := New(nil)
	res := n.Normalize("a gud gud day")
	require.Len(t, res.Corrections, 2)
	assert.Equal(t, 2, res.Corrections[0].Position)
	assert.Equal(t, 6, res.Corrections[1].Position)
}

func TestUserDictionaryMerge(t *testing.T) {
	d := NewDictionary()
	d.Merge(map[string]string{
		"kk":    "okay",
		"plz":   "PLEASE NO", // shadows built-in, skipped
		"good":  "excellent", // rewrites canonical word, skipped
		"hmm":   "teh",       // chains into a correction, skipped
		"same":  "same",      // self-map, skipped
	})

	repl, ok := d.Lookup("kk")
	require.True(t, ok)
	assert.Equal(t, "okay", repl)

	repl, _ = d.Lookup("plz")
	assert.Equal(t, "please", repl)

	_, ok = d.Lookup("good")
	assert.False(t, ok)
	_, ok = d.Lookup("hmm")
	assert.False(t, ok)
	_, ok = d.Lookup("same")
	assert.False(t, ok)
}

func TestUserDictionaryKeepsIdempotence(t *testing.T) {
	d := NewDictionary()
	d.Merge(map[string]string{"kk": "okay"})
	n := New(d)

	once := n.Normalize("kk plz do it").Corrected
	assert.Equal(t, "okay please do it", once)
	assert.Equal(t, once, n.Normalize(once).Corrected)
}

func TestLoadUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrections.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kk: okay\nbrb: \"be right back\"\n"), 0o644))

	d := NewDictionary()
	require.NoError(t, d.LoadUserFile(path))

	repl, ok := d.Lookup("brb")
	require.True(t, ok)
	assert.Equal(t, "be right back", repl)
}
