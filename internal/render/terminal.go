package render

import (
	"io"

	"github.com/mdp/qrterminal/v3"
)

// Terminal prints a scannable QR code for payload to w using block
// characters. Medium error correction keeps the code compact enough for
// small terminal windows while staying reliable for phone cameras.
func Terminal(payload string, w io.Writer) {
	qrterminal.Generate(payload, qrterminal.M, w)
}
