package jpegparse

import "fmt"

// Marker represents the second byte of a 0xFF-prefixed JPEG marker,
// which usually indicates the start of a segment.
type Marker uint8

// Marker values from ITU-T T.81, table B.1.
const (
	TEM  Marker = 0x01
	SOF0 Marker = 0xC0 // SOFn = SOF0+n, n = 0-15 excluding 4, 8 and 12
	DHT  Marker = 0xC4
	JPG  Marker = 0xC8
	DAC  Marker = 0xCC
	RST0 Marker = 0xD0 // RSTn = RST0+n, n = 0-7
	SOI  Marker = 0xD8
	EOI  Marker = 0xD9
	SOS  Marker = 0xDA
	DQT  Marker = 0xDB
	DNL  Marker = 0xDC
	DRI  Marker = 0xDD
	DHP  Marker = 0xDE
	EXP  Marker = 0xDF
	APP0 Marker = 0xE0 // APPn = APP0+n, n = 0-15
	JPG0 Marker = 0xF0 // JPGn = JPG0+n, n = 0-13
	COM  Marker = 0xFE
)

var markerNames [256]string

// Initialize markerNames.
func init() {
	markerNames[0] = "DATA" // pseudo-marker for entropy-coded runs
	markerNames[TEM] = "TEM"
	markerNames[DHT] = "DHT"
	markerNames[JPG] = "JPG"
	markerNames[DAC] = "DAC"
	markerNames[SOI] = "SOI"
	markerNames[EOI] = "EOI"
	markerNames[SOS] = "SOS"
	markerNames[DQT] = "DQT"
	markerNames[DNL] = "DNL"
	markerNames[DRI] = "DRI"
	markerNames[DHP] = "DHP"
	markerNames[EXP] = "EXP"
	markerNames[COM] = "COM"
	markerNames[0xFF] = "FILL"

	var i Marker
	for i = 0x02; i <= 0xBF; i++ {
		markerNames[i] = fmt.Sprintf("RES%.2X", i) // Reserved
	}
	for i = SOF0; i <= SOF0+0xF; i++ {
		if i == DHT || i == JPG || i == DAC {
			continue
		}
		markerNames[i] = fmt.Sprintf("SOF%d", i-SOF0)
	}
	for i = RST0; i <= RST0+7; i++ {
		markerNames[i] = fmt.Sprintf("RST%d", i-RST0)
	}
	for i = APP0; i <= APP0+0xF; i++ {
		markerNames[i] = fmt.Sprintf("APP%d", i-APP0)
	}
	for i = JPG0; i <= JPG0+0xD; i++ {
		markerNames[i] = fmt.Sprintf("JPG%d", i-JPG0)
	}
}

// String returns the conventional name of the marker, e.g. "SOF0".
func (m Marker) String() string {
	return markerNames[m]
}

// IsSOF reports whether m is a start-of-frame marker. DHT, JPG and DAC
// share the SOFn numbering range but are not frame headers.
func (m Marker) IsSOF() bool {
	return m >= SOF0 && m <= SOF0+0xF && m != DHT && m != JPG && m != DAC
}

// IsRST reports whether m is a restart marker.
func (m Marker) IsRST() bool {
	return m >= RST0 && m <= RST0+7
}

// IsAPP reports whether m is an application-specific marker.
func (m Marker) IsAPP() bool {
	return m >= APP0 && m <= APP0+0xF
}

// StandsAlone reports whether m is a bare marker with no length field
// and no payload.
func (m Marker) StandsAlone() bool {
	return m == SOI || m == EOI || m == TEM || m.IsRST()
}
