package tui

import "github.com/kemilad/campusdash/internal/nav"

// NavigatedMsg is emitted after every sidebar selection so the update loop
// (and anything wrapping this model) sees the change.
type NavigatedMsg nav.Change
