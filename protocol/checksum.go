package protocol

// Frame checksum parameters (CRC-16/CCITT-FALSE).
const (
	// CRC16Polynomial is the CRC-16 generator polynomial
	CRC16Polynomial = 0x1021

	// CRC16Init is the CRC-16 initial register value
	CRC16Init = 0xFFFF
)

// File checksum parameters. The whole-file CRC carried in transfer
// metadata uses a 32-bit CRC with a different polynomial and a zero
// initial value, unreflected, no final XOR.
const (
	// CRC32Polynomial is the CRC-32 generator polynomial
	CRC32Polynomial = 0x04C11DB7

	// CRC32Init is the CRC-32 initial register value
	CRC32Init = 0x00000000
)

// CRC16 computes the 16-bit frame checksum appended to every extended
// frame. Input and output are unreflected and there is no final XOR,
// so CRC16([]byte("123456789")) == 0x29B1.
func CRC16(data []byte) uint16 {
	crc := uint16(CRC16Init)
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ CRC16Polynomial
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// CRC32 computes the 32-bit whole-file checksum embedded in transfer
// metadata before an upload begins. It is computed once over the entire
// file contents, never per chunk.
func CRC32(data []byte) uint32 {
	crc := uint32(CRC32Init)
	for _, b := range data {
		crc ^= uint32(b) << 24
		for i := 0; i < 8; i++ {
			if crc&0x80000000 != 0 {
				crc = (crc << 1) ^ CRC32Polynomial
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
