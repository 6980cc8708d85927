package afp

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// decodeEBCDIC converts an EBCDIC-CP-BE byte range to text and trims
// trailing whitespace, per the CHAR parameter data type.
func decodeEBCDIC(b []byte) (string, error) {
	decoded, err := charmap.CodePage037.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(decoded), " \t\r\n\x00"), nil
}
