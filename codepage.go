package qfxconvert

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiTransform decomposes accented characters (NFKD), strips the combining
// marks left behind and drops anything still outside ASCII.
var asciiTransform = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.In(unicode.Mn)),
	runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
)

// DecodeToASCII recovers text from statement files with unknown encodings.
// Banks export OFX in UTF-8, ISO-8859-1 or Windows-1252 more or less at
// random, so decoding is attempted in that order, the last with lossy
// substitution. Accented characters are transliterated to their ASCII base
// and any remaining non-ASCII runes are dropped, leaving bytes the XML
// decoder can always handle.
func DecodeToASCII(data []byte) ([]byte, error) {
	text := data
	if !utf8.Valid(data) {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			if decoded, err = charmap.Windows1252.NewDecoder().Bytes(data); err != nil {
				return nil, err
			}
		}
		text = decoded
	}
	result, _, err := transform.Bytes(asciiTransform, text)
	if err != nil {
		return nil, err
	}
	return result, nil
}
