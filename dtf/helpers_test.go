package dtf_test

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/veldane/dted/dtf"
)

// buildUHL assembles a synthetic 80-byte User Header Label.
// lonOrigin/latOrigin are DDDMMSSH strings, intervals are in tenths of an
// arc-second, accuracy "NA" yields the NA$$ sentinel.
func buildUHL(lonOrigin, latOrigin string, lonInterval, latInterval uint16, accuracy string, lonCount, latCount uint16) []byte {
	var b bytes.Buffer
	b.Write(dtf.SentinelUHL)
	b.WriteString(lonOrigin)
	b.WriteString(latOrigin)
	fmt.Fprintf(&b, "%04d%04d", lonInterval, latInterval)
	if accuracy == "NA" {
		b.WriteString("NA$$")
	} else {
		b.WriteString(accuracy)
	}
	b.Write(bytes.Repeat([]byte{' '}, 15))
	fmt.Fprintf(&b, "%04d%04d", lonCount, latCount)
	b.Write(bytes.Repeat([]byte{' '}, 25))

	return b.Bytes()
}

// buildRecord assembles one data record with a correct trailing checksum.
func buildRecord(block uint32, lonCount, latCount uint16, elevations []int16) []byte {
	var b bytes.Buffer
	b.Write(dtf.SentinelRecord)
	b.WriteByte(byte(block >> 16))
	_ = binary.Write(&b, binary.BigEndian, uint16(block&0xFFFF))
	_ = binary.Write(&b, binary.BigEndian, lonCount)
	_ = binary.Write(&b, binary.BigEndian, latCount)
	for _, e := range elevations {
		word := uint16(e)
		if e < 0 {
			word = uint16(-e) | 0x8000
		}
		_ = binary.Write(&b, binary.BigEndian, word)
	}

	var sum uint32
	for _, c := range b.Bytes() {
		sum += uint32(c)
	}
	_ = binary.Write(&b, binary.BigEndian, sum)

	return b.Bytes()
}

// buildFile assembles a whole synthetic file: UHL, blank DSI and ACC
// blocks, and one record per longitude line. elevations[i] is the
// south→north line at longitude index i.
func buildFile(lonCount, latCount uint16, elevations [][]int16) []byte {
	var b bytes.Buffer
	b.Write(buildUHL("0150000E", "0420000N", 10, 10, "NA", lonCount, latCount))
	b.Write(bytes.Repeat([]byte{0}, dtf.DSILength))
	b.Write(bytes.Repeat([]byte{0}, dtf.ACCLength))
	for i, line := range elevations {
		b.Write(buildRecord(uint32(i), lonCount, latCount, line))
	}

	return b.Bytes()
}
