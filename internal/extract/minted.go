package extract

import (
	"strings"
)

// MintedParams controls the LaTeX wrapper emitted around a projection.
type MintedParams struct {
	// Language is the minted lexer name, e.g. "python".
	Language string
	// ExtraOptions are caller-supplied minted options, emitted before
	// the derived ones.
	ExtraOptions []string
	// Header, when non-empty, emits a \filenameheader{...} line above
	// the block.
	Header string
}

// Minted renders the projection as a minted environment for the
// typesetting layer. The option serialization is stable: extra options
// first, then the derived options in their fixed order.
func (p *Projection) Minted(mp MintedParams) string {
	opts := make([]string, 0, len(mp.ExtraOptions)+len(p.Options))
	opts = append(opts, mp.ExtraOptions...)
	opts = append(opts, p.Options...)

	var b strings.Builder
	if mp.Header != "" {
		b.WriteString(`\filenameheader{` + mp.Header + "}\n")
	}
	b.WriteString(`\begin{minted}[` + strings.Join(opts, ",") + `]{` + mp.Language + "}\n")
	b.WriteString(strings.Join(p.Lines, "\n"))
	b.WriteString("\n")
	b.WriteString(`\end{minted}` + "\n")
	return b.String()
}

// ErrMessage renders an extraction failure as a LaTeX \errmessage so a
// broken annotation is visible inside the typeset document instead of
// silently producing an empty block.
func ErrMessage(err error) string {
	return `\errmessage{` + err.Error() + "}\n"
}
