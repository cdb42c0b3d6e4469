package heart_test

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heart"
	"github.com/katalvlaran/heart/curve"
	"github.com/katalvlaran/heart/markup"
)

// brokenWriter fails every write.
type brokenWriter struct{}

var errBroken = errors.New("broken pipe")

func (brokenWriter) Write([]byte) (int, error) { return 0, errBroken }

func TestDefaultConfig(t *testing.T) {
	cfg := heart.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 300, cfg.Samples)
	assert.Equal(t, 500, cfg.Width)
	assert.Equal(t, 500, cfg.Height)
	assert.Equal(t, 5.0, cfg.Padding)
	assert.False(t, cfg.SymmetricPadding)
	assert.Equal(t, "red", cfg.Fill)
	assert.Empty(t, cfg.Title)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*heart.Config)
		want   error
	}{
		{"zero samples", func(c *heart.Config) { c.Samples = 0 }, curve.ErrInvalidSamples},
		{"negative samples", func(c *heart.Config) { c.Samples = -300 }, curve.ErrInvalidSamples},
		{"too many samples", func(c *heart.Config) { c.Samples = curve.MaxSamples + 1 }, curve.ErrTooManySamples},
		{"max int samples", func(c *heart.Config) { c.Samples = math.MaxInt }, curve.ErrTooManySamples},
		{"zero width", func(c *heart.Config) { c.Width = 0 }, markup.ErrInvalidCanvas},
		{"negative height", func(c *heart.Config) { c.Height = -1 }, markup.ErrInvalidCanvas},
		{"negative padding", func(c *heart.Config) { c.Padding = -5 }, markup.ErrInvalidPadding},
		{"nan padding", func(c *heart.Config) { c.Padding = math.NaN() }, markup.ErrInvalidPadding},
		{"infinite padding", func(c *heart.Config) { c.Padding = math.Inf(1) }, markup.ErrInvalidPadding},
		{"precision too high", func(c *heart.Config) { c.Precision = 99 }, markup.ErrInvalidPrecision},
		{"negative precision", func(c *heart.Config) { c.Precision = -1 }, markup.ErrInvalidPrecision},
		{"empty fill", func(c *heart.Config) { c.Fill = "" }, markup.ErrInvalidFill},
		{"fill with equals", func(c *heart.Config) { c.Fill = "a=b" }, markup.ErrInvalidFill},
		{"fill breaking out of style", func(c *heart.Config) { c.Fill = `red" onload="alert(1)` }, markup.ErrInvalidFill},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := heart.DefaultConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			require.ErrorIs(t, err, heart.ErrInvalidConfig)
			require.ErrorIs(t, err, tc.want)

			var buf bytes.Buffer
			err = heart.Render(&buf, cfg)
			require.ErrorIs(t, err, heart.ErrInvalidConfig)
			require.ErrorIs(t, err, tc.want)
			assert.Zero(t, buf.Len(), "nothing is written for an invalid config")
		})
	}
}

func TestConfig_ZeroValueInvalid(t *testing.T) {
	require.ErrorIs(t, heart.Config{}.Validate(), curve.ErrInvalidSamples)
}

func TestRender_Default(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, heart.Render(&buf, heart.DefaultConfig()))

	page := buf.String()
	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>\n<html>\n<body>\n\n"))
	assert.Contains(t, page, `<svg height="500" width="500" viewBox="-21.0000 -16.9220 37.0000 33.9220">`)
	assert.Contains(t, page, `<polyline points="0.0000,-5.0000 `)
	assert.Contains(t, page, `style="fill:red;stroke:none;" />`)
	assert.Equal(t, 1, strings.Count(page, "<polyline"))
	assert.True(t, strings.HasSuffix(page, "</svg>\n\n</body>\n</html>\n"))

	start := strings.Index(page, `points="`) + len(`points="`)
	end := strings.Index(page[start:], `"`)
	pairs := strings.Fields(page[start : start+end])
	assert.Len(t, pairs, heart.DefaultSamples+1)
	assert.Equal(t, pairs[0], pairs[len(pairs)-1])
	assert.NotContains(t, page, "-0.0000")
}

func TestRender_CustomFill(t *testing.T) {
	cfg := heart.DefaultConfig()
	cfg.Fill = "rgb(200, 0, 40)"

	var buf bytes.Buffer
	require.NoError(t, heart.Render(&buf, cfg))
	assert.Contains(t, buf.String(), `style="fill:rgb(200, 0, 40);stroke:none;" />`)
}

func TestRender_Scales(t *testing.T) {
	for _, n := range []int{1, 3, 50, 1000} {
		cfg := heart.DefaultConfig()
		cfg.Samples = n
		cfg.Width, cfg.Height = 120, 80
		cfg.SymmetricPadding = true
		cfg.Title = "Heart"

		var buf bytes.Buffer
		require.NoError(t, heart.Render(&buf, cfg), "n=%d", n)
		page := buf.String()
		assert.Contains(t, page, `<svg height="80" width="120" `)
		assert.Contains(t, page, "<title>Heart</title>")

		start := strings.Index(page, `points="`) + len(`points="`)
		end := strings.Index(page[start:], `"`)
		assert.Len(t, strings.Fields(page[start:start+end]), n+1, "n=%d", n)
	}
}

func TestRender_Deterministic(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, heart.Render(&a, heart.DefaultConfig()))
	require.NoError(t, heart.Render(&b, heart.DefaultConfig()))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestRender_WriteError(t *testing.T) {
	err := heart.Render(brokenWriter{}, heart.DefaultConfig())
	require.ErrorIs(t, err, markup.ErrWrite)
	require.ErrorIs(t, err, errBroken)
	assert.True(t, strings.HasPrefix(err.Error(), "Render: WriteHTML: "))
}

func TestRender_NilWriter(t *testing.T) {
	require.ErrorIs(t, heart.Render(nil, heart.DefaultConfig()), markup.ErrNilWriter)
}

func TestRender_DebugLogging(t *testing.T) {
	var logs bytes.Buffer
	heart.SetLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { heart.SetLogger(nil) })

	require.NoError(t, heart.Render(&bytes.Buffer{}, heart.DefaultConfig()))

	out := logs.String()
	assert.Contains(t, out, "heart sampled")
	assert.Contains(t, out, "samples=300")
	assert.Contains(t, out, "points=301")
	assert.Contains(t, out, "bounds.max_y=")
	assert.Contains(t, out, "viewbox.width=")
	assert.Contains(t, out, "heart written")
}
