package snaek

// maskState recolors source pixels of sprite, nine-slice and text blits as
// (px & and) | or. The defaults leave pixels unchanged.
type maskState struct {
	and Color
	or  Color
}

var defaultMasks = maskState{and: White, or: Transparent}

// ResetMasks returns the commands that restore the default masks.
func ResetMasks() []DrawCommand {
	return []DrawCommand{MaskAnd(White), MaskOr(Transparent)}
}
