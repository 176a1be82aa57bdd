package chart

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func TestResolvePalette_Standard(t *testing.T) {
	china := ResolvePalette("black", StandardChina)
	assert.Equal(t, colornames.Crimson, china.Rise)
	assert.Equal(t, colornames.Limegreen, china.Fall)

	intl := ResolvePalette("black", StandardInternational)
	assert.Equal(t, colornames.Limegreen, intl.Rise)
	assert.Equal(t, colornames.Crimson, intl.Fall)
}

func TestResolvePalette_Schemes(t *testing.T) {
	white := ResolvePalette("white", StandardChina)
	assert.Equal(t, "white", white.Scheme)
	assert.Equal(t, colornames.White, white.Background)
	assert.NotEqual(t, white.Background, white.Grid)

	unknown := ResolvePalette("neon", StandardChina)
	assert.Equal(t, DefaultScheme, unknown.Scheme)
	assert.Equal(t, colornames.Black, unknown.Background)
}

func TestPalette_LineWraps(t *testing.T) {
	p := ResolvePalette("blue", StandardChina)
	assert.Equal(t, p.Lines[0], p.Line(len(p.Lines)))
	assert.Equal(t, p.Text, (&Palette{Text: colornames.Red}).Line(3))
}

func TestParseStandard(t *testing.T) {
	s, ok := ParseStandard("international")
	assert.True(t, ok)
	assert.Equal(t, StandardInternational, s)
	_, ok = ParseStandard("mars")
	assert.False(t, ok)
}

func TestApplyColorScheme_WholeTree(t *testing.T) {
	root := New(newFakeData(), nil, WithStandard(StandardInternational))
	a := root.CreateChild("a", KindLine, Config{}, nil)
	b := a.CreateChild("b", KindOrder, Config{}, nil)
	c := b.CreateChild("c", KindButton, Config{}, nil)
	require.NotNil(t, c)
	widgets := []*countWidget{counted(a), counted(b), counted(c)}

	before := testutil.ToFloat64(paintPasses)
	root.ApplyColorScheme("white", nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(paintPasses)-before)
	for _, n := range []*Node{root, a, b, c} {
		assert.Equal(t, "white", n.Palette().Scheme, n.Name())
		assert.Equal(t, colornames.Limegreen, n.Palette().Rise, n.Name())
	}
	for _, w := range widgets {
		assert.Equal(t, 1, w.paints)
	}
}

func TestApplyColorScheme_Subtree(t *testing.T) {
	root := New(newFakeData(), nil)
	a := root.CreateChild("a", KindLine, Config{}, nil)
	b := a.CreateChild("b", KindOrder, Config{}, nil)
	other := root.CreateChild("other", KindLine, Config{}, nil)
	counted(a)
	counted(b)
	counted(other)

	root.ApplyColorScheme("blue", a)

	assert.Equal(t, "blue", root.Palette().Scheme)
	assert.Equal(t, "blue", a.Palette().Scheme)
	assert.Equal(t, "blue", b.Palette().Scheme)
	assert.Equal(t, DefaultScheme, other.Palette().Scheme)
}
