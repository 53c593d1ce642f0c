package flow

import "errors"

// ErrDraftNotFound is returned by draft stores for a key with no draft.
var ErrDraftNotFound = errors.New("draft not found")

// ErrArticleNotFound is returned by article stores for an unknown article id.
var ErrArticleNotFound = errors.New("article not found")
