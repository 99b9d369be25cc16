package layers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCenteredLayer(t *testing.T) {
	content := strings.Repeat("x", 10) + "\n" + strings.Repeat("x", 10)

	assert.NotNil(t, CreateCenteredLayer(content, 30, 10))

	x, y := centerOffset(10, 2, 30, 10)
	assert.Equal(t, 10, x)
	assert.Equal(t, 4, y)
}

func TestCreateCenteredLayer_Empty(t *testing.T) {
	assert.Nil(t, CreateCenteredLayer("", 30, 10))
}

func TestCreateCenteredLayer_LargerThanScreen(t *testing.T) {
	require.NotNil(t, CreateCenteredLayer(strings.Repeat("x", 50), 30, 10))

	x, y := centerOffset(50, 12, 30, 10)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

func TestHelpDimensions(t *testing.T) {
	tests := []struct {
		name             string
		screenW, screenH int
		wantW, wantH     int
	}{
		{"wide screen caps width", 200, 50, HelpMaxWidth, 40},
		{"medium screen uses half", 120, 30, 60, 24},
		{"narrow screen keeps minimum", 60, 20, HelpMinWidth, 16},
		{"tiny screen never exceeds it", 30, 1, 30, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := HelpDimensions(tt.screenW, tt.screenH)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}
