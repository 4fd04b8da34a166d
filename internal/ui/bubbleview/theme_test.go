package bubbleview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateColor(t *testing.T) {
	for _, c := range []string{"#FFF", "#4962FF", "#4962ff80"} {
		assert.NoError(t, ValidateColor(c), c)
	}
	for _, c := range []string{"", "red", "#GGG", "4962FF", "#4962F", "#4962FF;"} {
		assert.Error(t, ValidateColor(c), c)
	}
}

func TestThemeValidate(t *testing.T) {
	assert.NoError(t, DefaultTheme.Validate())

	bad := DefaultTheme
	bad.Other.Text = "black"
	assert.Error(t, bad.Validate())
}

func TestThemeCSS(t *testing.T) {
	css := DefaultTheme.CSS()

	assert.True(t, strings.Contains(css, "background-color: #4962FF"))
	assert.True(t, strings.Contains(css, "background-color: #EBEDF0"))
	assert.True(t, strings.Contains(css, "border-radius: 20px"))
}

func TestThemeOrDefault(t *testing.T) {
	custom := DefaultTheme
	custom.Own.Fill = "#FF0000"

	got, err := custom.OrDefault()
	assert.NoError(t, err)
	assert.Equal(t, custom, got)

	bad := custom
	bad.Own.Text = "}; * { color: red"

	got, err = bad.OrDefault()
	assert.Error(t, err)
	assert.Equal(t, DefaultTheme, got)
	assert.NotContains(t, got.CSS(), "color: red")
}

func TestThemeEntryRejectsInvalid(t *testing.T) {
	field := "#123456"
	entry := themeEntry(&field)

	assert.Error(t, entry.UnmarshalJSON([]byte(`"red"`)))
	assert.Equal(t, "#123456", field)

	assert.NoError(t, entry.UnmarshalJSON([]byte(`"#654321"`)))
	assert.Equal(t, "#654321", field)
}
