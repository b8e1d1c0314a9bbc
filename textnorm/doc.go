// Package textnorm canonicalizes alias and query text before comparison.
//
// Alias corpora in this domain mix full-width and half-width characters,
// simplified and traditional Chinese, Japanese kanji spellings, and ad-hoc
// decoration symbols. Normalization folds all of these so that variants of
// the same name compare equal, both for lexical scoring and before embedding.
//
// Script folding is delegated to the ScriptConverter interface; the
// textnorm/opencc sub-package provides a production implementation backed by
// OpenCC conversion tables.
package textnorm
