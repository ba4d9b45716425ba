package components

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/huepick/pkg/color"
)

func TestReadoutValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data ReadoutData
		want string
	}{
		{
			name: "rgb notation",
			data: ReadoutData{Color: color.RGB(255, 0, 0), Hue: color.Red},
			want: "rgb(255, 0, 0)",
		},
		{
			name: "rgba notation",
			data: ReadoutData{Color: color.RGBA(10, 20, 30, 0.5), Hue: color.Red},
			want: "rgba(10, 20, 30, 0.5)",
		},
		{
			name: "hex notation",
			data: ReadoutData{Color: color.RGB(255, 0, 0), Hue: color.Red, Hex: true},
			want: "#ff0000",
		},
		{
			name: "hex with alpha",
			data: ReadoutData{Color: color.RGBA(0, 0, 0, 0.25), Hue: color.Red, Hex: true},
			want: "#000000 25%",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, NewReadout(tt.data).Value())
		})
	}
}

func TestReadoutView(t *testing.T) {
	t.Parallel()

	view := NewReadout(ReadoutData{Color: color.RGB(0, 128, 255), Hue: color.RGB(0, 0, 255)}).View()
	require.Contains(t, view, "rgb(0, 128, 255)")
	require.Contains(t, view, "#0000ff")
}
