package palette

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/b16apply/internal/scheme"
)

// distinctScheme gives every slot its own colour so aliasing is observable.
func distinctScheme(t *testing.T) scheme.Scheme {
	t.Helper()
	var colors [scheme.SlotCount]string
	for i := range colors {
		colors[i] = fmt.Sprintf("#0000%02x", i)
	}
	s, err := scheme.New(colors)
	require.NoError(t, err)
	return s
}

func TestBuildANSIViewAliasesBrightColours(t *testing.T) {
	p := Build(distinctScheme(t))

	assert.Equal(t, "#000000", p.ANSI[0])
	assert.Equal(t, "#000008", p.ANSI[1])
	assert.Equal(t, p.ANSI[1], p.ANSI[9], "bright red reuses red")
	for normal := 1; normal <= 6; normal++ {
		assert.Equal(t, p.ANSI[normal], p.ANSI[normal+8], "index %d", normal+8)
	}
	assert.Equal(t, "#000005", p.ANSI[7])
	assert.Equal(t, "#000003", p.ANSI[8])
	assert.Equal(t, "#000007", p.ANSI[15])
}

func TestBuildIndexedViewIgnoresAliasing(t *testing.T) {
	p := Build(distinctScheme(t))
	for i := 0; i < scheme.SlotCount; i++ {
		assert.Equal(t, fmt.Sprintf("#0000%02x", i), p.Indexed[i])
	}
	assert.NotEqual(t, p.Indexed[1], p.Indexed[9])
}

func TestBuildUIRoles(t *testing.T) {
	p := Build(distinctScheme(t))
	assert.Equal(t, UI{
		Background: "#000000",
		Foreground: "#000005",
		Accent:     "#00000d",
		Cursor:     "#000005",
	}, p.UI)
}

func TestBuildNamedRolesKeepTableOrder(t *testing.T) {
	p := Build(distinctScheme(t))
	require.Len(t, p.Neovim, len(NeovimRoles))
	assert.Equal(t, Role{Name: "bg", Slot: scheme.Base00, Value: "#000000"}, p.Neovim[0])
	assert.Equal(t, Role{Name: "magenta", Slot: scheme.Base0F, Value: "#00000f"}, p.Neovim[len(p.Neovim)-1])

	ctx := p.GTKContext()
	assert.Len(t, ctx, len(GTKRoles))
	assert.Equal(t, "#00000a", ctx["selection_bg"])
	assert.Equal(t, "#000009", ctx["bright_red"])
}

func TestBuildIsDeterministic(t *testing.T) {
	s := distinctScheme(t)
	assert.Equal(t, Build(s), Build(s))
}
