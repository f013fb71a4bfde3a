package extop

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/hashicorp/go-hclog"

	"github.com/oba-ldap/extop/ber"
)

// maxDumpValueBytes bounds the value preview in TLV dumps.
const maxDumpValueBytes = 32

// DumpTLV renders a BER byte stream as an indented TLV tree, recursing into
// constructed values. It is a diagnostic aid; malformed trailing data is
// rendered as a raw byte run rather than an error.
func DumpTLV(data []byte) string {
	var b strings.Builder
	dumpTLV(&b, data, 0)
	return b.String()
}

func dumpTLV(b *strings.Builder, data []byte, indent int) {
	decoder := ber.NewBERDecoder(data)

	for decoder.Remaining() > 0 {
		start := decoder.Offset()
		tag, length, err := decoder.ReadSequenceHeader()
		if err != nil {
			fmt.Fprintf(b, "%s!! %d trailing bytes: %s\n",
				strings.Repeat("  ", indent), len(data)-start, previewBytes(data[start:]))
			return
		}

		value := data[decoder.Offset() : decoder.Offset()+length]

		if tag&ber.TypeConstructed != 0 {
			fmt.Fprintf(b, "%stag=0x%02X len=%d\n", strings.Repeat("  ", indent), tag, length)
			dumpTLV(b, value, indent+1)
		} else {
			fmt.Fprintf(b, "%stag=0x%02X len=%d value=%s\n",
				strings.Repeat("  ", indent), tag, length, previewBytes(value))
		}

		if err := skipValue(decoder, length); err != nil {
			return
		}
	}
}

// skipValue advances the decoder past length value bytes.
func skipValue(decoder *ber.BERDecoder, length int) error {
	for i := 0; i < length; i++ {
		if _, err := decoder.ReadByte(); err != nil {
			return err
		}
	}
	return nil
}

// previewBytes renders a value as printable text when it is, hex otherwise,
// truncated to maxDumpValueBytes.
func previewBytes(value []byte) string {
	truncated := ""
	if len(value) > maxDumpValueBytes {
		truncated = fmt.Sprintf("... (%d bytes)", len(value))
		value = value[:maxDumpValueBytes]
	}

	printable := len(value) > 0
	for _, c := range string(value) {
		if !unicode.IsPrint(c) {
			printable = false
			break
		}
	}
	if printable {
		return fmt.Sprintf("%q%s", value, truncated)
	}
	return fmt.Sprintf("%x%s", value, truncated)
}

// LogTLV logs the TLV tree of data at Debug level, one line per node. It is
// a no-op when the logger is nil or Debug is not enabled, so callers can
// leave it on hot paths.
func LogTLV(logger hclog.Logger, name string, data []byte) {
	if logger == nil || !logger.IsDebug() {
		return
	}
	for _, line := range strings.Split(strings.TrimRight(DumpTLV(data), "\n"), "\n") {
		logger.Debug(name, "tlv", line)
	}
}
