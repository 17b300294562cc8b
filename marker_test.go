package jpegparse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarkerString(t *testing.T) {
	for _, tc := range []struct {
		marker Marker
		name   string
	}{
		{SOI, "SOI"},
		{EOI, "EOI"},
		{SOS, "SOS"},
		{SOF0, "SOF0"},
		{SOF0 + 2, "SOF2"},
		{SOF0 + 15, "SOF15"},
		{DHT, "DHT"},
		{DQT, "DQT"},
		{DRI, "DRI"},
		{COM, "COM"},
		{APP0, "APP0"},
		{APP0 + 1, "APP1"},
		{RST0 + 7, "RST7"},
		{JPG0, "JPG0"},
		{TEM, "TEM"},
		{Marker(0x02), "RES02"},
		{Marker(0x00), "DATA"},
		{Marker(0xFF), "FILL"},
	} {
		require.Equal(t, tc.name, tc.marker.String())
	}
}

func TestMarkerIsSOF(t *testing.T) {
	for _, tc := range []struct {
		marker Marker
		want   bool
	}{
		{SOF0, true},
		{SOF0 + 1, true},
		{SOF0 + 2, true},
		{SOF0 + 3, true},
		{DHT, false}, // SOF0+4
		{SOF0 + 5, true},
		{JPG, false}, // SOF0+8
		{SOF0 + 11, true},
		{DAC, false}, // SOF0+12
		{SOF0 + 15, true},
		{SOS, false},
		{APP0, false},
	} {
		require.Equal(t, tc.want, tc.marker.IsSOF(), "marker %s", tc.marker)
	}
}

func TestMarkerStandsAlone(t *testing.T) {
	for _, tc := range []struct {
		marker Marker
		want   bool
	}{
		{SOI, true},
		{EOI, true},
		{TEM, true},
		{RST0, true},
		{RST0 + 7, true},
		{SOS, false},
		{SOF0, false},
		{DQT, false},
		{APP0 + 1, false},
		{COM, false},
	} {
		require.Equal(t, tc.want, tc.marker.StandsAlone(), "marker %s", tc.marker)
	}
}
