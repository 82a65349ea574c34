package screenshot

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/isseikz/mcp-adb/internal/adbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFit(t *testing.T) {
	var testCases = []struct {
		description  string
		width        int
		height       int
		maxDimension int
		expectWidth  int
		expectHeight int
		resized      bool
	}{
		{description: "portrait phone", width: 1080, height: 2400, maxDimension: 640, expectWidth: 288, expectHeight: 640, resized: true},
		{description: "landscape tv", width: 1920, height: 1080, maxDimension: 640, expectWidth: 640, expectHeight: 360, resized: true},
		{description: "already small", width: 320, height: 200, maxDimension: 640, expectWidth: 320, expectHeight: 200},
		{description: "disabled", width: 800, height: 700, maxDimension: 0, expectWidth: 800, expectHeight: 700},
		{description: "thin strip keeps one pixel", width: 2000, height: 1, maxDimension: 100, expectWidth: 100, expectHeight: 1, resized: true},
	}
	for _, testCase := range testCases {
		data := adbtest.PNG(t, testCase.width, testCase.height)
		result, resized, err := Fit(data, testCase.maxDimension)
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.resized, resized, testCase.description)
		config, err := png.DecodeConfig(bytes.NewReader(result))
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expectWidth, config.Width, testCase.description)
		assert.Equal(t, testCase.expectHeight, config.Height, testCase.description)
		if !testCase.resized {
			assert.Equal(t, data, result, testCase.description)
		}
	}
}

func TestFit_Invalid(t *testing.T) {
	_, _, err := Fit([]byte("not an image"), 640)
	assert.Error(t, err)
}
