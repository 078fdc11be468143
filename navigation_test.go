package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigator(t *testing.T) {
	nav := NewNavigator()
	assert.Equal(t, ScreenHome, nav.Current())

	require.NoError(t, nav.Select(ScreenHealthForm))
	assert.Equal(t, ScreenHealthForm, nav.Current())

	assert.ErrorIs(t, nav.Select(ScreenPortfolioForm), ErrInvalidTransition, "forms only lead back home")
	assert.Equal(t, ScreenHealthForm, nav.Current())

	require.NoError(t, nav.Back())
	assert.Equal(t, ScreenHome, nav.Current())

	assert.ErrorIs(t, nav.Back(), ErrInvalidTransition)
	assert.ErrorIs(t, nav.Select(ScreenHome), ErrInvalidTransition)

	require.NoError(t, nav.Select(ScreenPortfolioForm))
	assert.Equal(t, ScreenPortfolioForm, nav.Current())
}

func TestParseScreen(t *testing.T) {
	tests := []struct {
		input   string
		want    Screen
		wantErr bool
	}{
		{"home", ScreenHome, false},
		{"1", ScreenHealthForm, false},
		{"financial", ScreenHealthForm, false},
		{"health", ScreenHealthForm, false},
		{"2", ScreenPortfolioForm, false},
		{"investment", ScreenPortfolioForm, false},
		{"settings", ScreenHome, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseScreen(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NotEqual(t, "unknown", got.String())
		})
	}
}
