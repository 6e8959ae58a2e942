package tree

import "errors"

var (
	// ErrBrokenParentChain signals a present node whose parent is absent.
	ErrBrokenParentChain = errors.New("tree: broken parent chain")
	// ErrSlotMismatch signals slot values and presence flags of different length.
	ErrSlotMismatch = errors.New("tree: slot values and presence flags differ in length")
)
