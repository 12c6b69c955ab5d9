package journal

// Magic is the 64-bit sentinel written as the last field of every entry
// trailer. Its little-endian byte representation spells the ASCII text
// "journey1".
const Magic uint64 = 0x3179656e72756f6a

// magicSwapped is Magic with its bytes reversed, which is what a trailer
// written in big-endian byte order presents when decoded as little-endian.
// Encode always writes little-endian, so it never produces this value;
// DecodeTrailing accepts it as a sentinel, but still decodes the other four
// trailer fields as little-endian.
const magicSwapped uint64 = 0x6a6f75726e657931

// validMagic reports whether m is either the native or byte-swapped form of
// Magic.
func validMagic(m uint64) bool {
	return m == Magic || m == magicSwapped
}
