// Package opencc provides a textnorm.ScriptConverter backed by OpenCC
// conversion tables, folding traditional Chinese text into simplified form.
package opencc

import (
	"log/slog"

	"github.com/longbridgeapp/opencc"
	"github.com/poiesic/resolvit/textnorm"
)

// Converter folds traditional-script characters into the simplified form
// used by the corpus. Safe for concurrent use.
type Converter struct {
	cc     *opencc.OpenCC
	logger *slog.Logger
}

var _ textnorm.ScriptConverter = (*Converter)(nil)

// NewT2S creates a converter using the traditional-to-simplified table.
func NewT2S() (*Converter, error) {
	cc, err := opencc.New("t2s")
	if err != nil {
		return nil, err
	}
	return &Converter{
		cc:     cc,
		logger: slog.Default().With("component", "opencc"),
	}, nil
}

// ToCanonical converts text to the canonical script. Conversion failures
// fall back to the input unchanged so that normalization stays total.
func (c *Converter) ToCanonical(text string) string {
	out, err := c.cc.Convert(text)
	if err != nil {
		c.logger.Warn("script conversion failed, using text as-is", "err", err)
		return text
	}
	return out
}
