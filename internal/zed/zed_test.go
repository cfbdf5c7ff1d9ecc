package zed

import (
	"fmt"
	"strings"
	"testing"

	"github.com/MakeNowJust/heredoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/b16apply/internal/palette"
	"github.com/unkn0wn-root/b16apply/internal/rewrite"
	"github.com/unkn0wn-root/b16apply/internal/scheme"
)

func testPalette(t *testing.T) palette.Palette {
	t.Helper()
	var colors [scheme.SlotCount]string
	for i := range colors {
		colors[i] = fmt.Sprintf("#%02x%02x%02x", i, i, i)
	}
	s, err := scheme.New(colors)
	require.NoError(t, err)
	return palette.Build(s)
}

const theme = `{
  "name": "Aether",
  "themes": [
    {
      "name": "Aether",
      "appearance": "dark",
      "style": {
        "text": "#ffffff",
        "border": "#ffffff",
        "scrollbar.thumb.border": "#ffffff",
        "terminal.ansi.bright_red": "#ffffff",
        "players": [
          {"cursor": "#ffffff", "background": "#123456", "selection": "#ffffff"},
          {"background": "#123456"}
        ],
        "syntax": {
          "keyword": {"color": "#ffffff", "font_weight": 700},
          "comment": {"font_style": "italic"},
          "string": "#ffffff"
        },
        "unrelated": [1, 2.50, null, true]
      }
    }
  ]
}`

func TestRewriteUpdatesStyleInPlace(t *testing.T) {
	out, report, err := Rewrite(theme, testPalette(t))
	require.NoError(t, err)

	want := heredoc.Doc(`
		{
		  "name": "Aether",
		  "themes": [
		    {
		      "name": "Aether",
		      "appearance": "dark",
		      "style": {
		        "text": "#050505",
		        "border": "#010101",
		        "scrollbar.thumb.border": "#0303036f",
		        "terminal.ansi.bright_red": "#080808",
		        "players": [
		          {
		            "cursor": "#050505",
		            "background": "#123456",
		            "selection": "#020202"
		          },
		          {
		            "background": "#123456"
		          }
		        ],
		        "syntax": {
		          "keyword": {
		            "color": "#0e0e0e",
		            "font_weight": 700
		          },
		          "comment": {
		            "font_style": "italic"
		          },
		          "string": "#ffffff"
		        },
		        "unrelated": [
		          1,
		          2.50,
		          null,
		          true
		        ]
		      }
		    }
		  ]
		}
	`)
	assert.Equal(t, want, out)

	lines := report.Lines()
	assert.Contains(t, lines, "style.text -> #050505")
	assert.Contains(t, lines, "missing style.text.accent")
	assert.Contains(t, lines, "style.scrollbar.thumb.border -> #0303036f")
	assert.Contains(t, lines, "players[0].cursor -> #050505")
	assert.Contains(t, lines, "players[0].selection -> #020202")
	assert.Contains(t, lines, "missing players[1].cursor")
	assert.Contains(t, lines, "missing players[1].selection")
	assert.Contains(t, lines, "syntax.keyword -> #0e0e0e")
	assert.Contains(t, lines, "missing syntax.comment")
	assert.Contains(t, lines, "missing syntax.string")
}

func TestRewriteReportOrder(t *testing.T) {
	_, report, err := Rewrite(theme, testPalette(t))
	require.NoError(t, err)

	keys := make([]string, 0, len(report))
	for _, o := range report {
		keys = append(keys, o.Key)
	}
	assert.Equal(t, "style.border", keys[0])
	assert.Equal(t, "style.scrollbar.thumb.border", keys[len(styleKeys)])
	assert.Equal(t, "style.terminal.ansi.black", keys[len(styleKeys)+1])
	assert.Equal(t, "players[0].cursor", keys[len(styleKeys)+17])
	assert.Equal(t, "syntax.variable.special", keys[len(keys)-1])
}

func TestRewriteMissingStyle(t *testing.T) {
	out, report, err := Rewrite(`{"themes": []}`, testPalette(t))
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"themes\": []\n}\n", out)
	assert.Empty(t, report.Filter(rewrite.Matched))
	assert.Len(t, report, len(styleKeys)+1+len(ansiKeys)+len(syntaxKeys))
	assert.Contains(t, report.Lines(), "missing style.text.accent")
}

func TestRewriteInvalidJSON(t *testing.T) {
	_, _, err := Rewrite(`{"themes": [`, testPalette(t))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "parse theme json"))
}

func TestRewriteIsIdempotent(t *testing.T) {
	p := testPalette(t)
	once, first, err := Rewrite(theme, p)
	require.NoError(t, err)
	twice, second, err := Rewrite(once, p)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
	assert.Equal(t, first, second)
}

func TestRewriteKeepsNonColourPlayerEntries(t *testing.T) {
	doc := `{"themes":[{"style":{"players":["a\"b", 3]}}]}`
	out, report, err := Rewrite(doc, testPalette(t))
	require.NoError(t, err)

	assert.Contains(t, out, `"a\"b",`)
	assert.Contains(t, report.Lines(), "missing players[0].cursor")
	assert.Contains(t, report.Lines(), "missing players[1].selection")
}
