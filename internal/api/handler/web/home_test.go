package web

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"1234.5", "$1234.50"},
		{"0.005", "$0.01"},
		{"-3", "-$3.00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, formatUSD(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestNewHomeData(t *testing.T) {
	data := NewHomeData(Site{Name: "HyperGlueX"})

	assert.Equal(t, "Dashboard", data.Heading)
	assert.Equal(t, "Welcome to HyperGlueX - Your HyperLiquid trading companion", data.Welcome)

	if assert.Len(t, data.Panels, 3) {
		keys := make([]string, 0, len(data.Panels))
		for _, p := range data.Panels {
			keys = append(keys, p.Key)
			assert.True(t, p.Card.Hover(), "panel %s should hover", p.Key)
			assert.Equal(t, "text-2xl font-semibold text-white mb-2", p.TitleClass())
			assert.NotContains(t, p.TitleClass(), "text-xl")
		}
		assert.Equal(t, []string{"portfolio", "markets", "trading"}, keys)
		assert.Equal(t, "$0.00", data.Panels[0].Value)
		assert.Equal(t, "mt-4 text-3xl font-bold text-primary-500", data.Panels[0].Content.Class())
	}
}
