// internal/protocol/crc.go
package protocol

import "github.com/sigurn/crc16"

var arcTable = crc16.MakeTable(crc16.CRC16_ARC)

// crc16ARC computes CRC-16/ARC (poly 0x8005 reflected, init 0).
func crc16ARC(data []byte) uint16 {
	return crc16.Checksum(data, arcTable)
}

// wrap frames one packet: length byte, packet, big-endian CRC of both.
//
// Layout:
// 0     Length (len(packet) + 3)
// 1..n  Packet
// n+1   CRC hi
// n+2   CRC lo
func wrap(packet []byte) []byte {
	out := make([]byte, 0, len(packet)+3)
	out = append(out, byte(len(packet)+3))
	out = append(out, packet...)

	crc := crc16ARC(out)
	return append(out, byte(crc>>8), byte(crc))
}
