package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{in: "day", want: Day},
		{in: "night", want: Night},
		{in: " Night ", want: Night},
		{in: "dusk", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownTheme)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSettings(t *testing.T) {
	day := Day.Settings()
	night := Night.Settings()

	assert.Equal(t, "10, 10, 20", day.Dark)
	assert.Equal(t, "255, 255, 255", day.Light)
	assert.Equal(t, day.Dark, night.Light)
	assert.Equal(t, day.Light, night.Dark)

	props := night.Properties()
	assert.Len(t, props, 2)
	assert.Equal(t, "255, 255, 255", props[PropertyDark])
	assert.Equal(t, "10, 10, 20", props[PropertyLight])
}

func TestFromColorScheme(t *testing.T) {
	assert.Equal(t, Night, FromColorScheme(true))
	assert.Equal(t, Day, FromColorScheme(false))
}
