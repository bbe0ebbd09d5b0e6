package node

import "errors"

var (
	// ErrCommitDeniedNotRoot is returned when Commit is called on a node
	// that is not a direct child of its root (programmer error; §7
	// CommitDeniedNotRoot).
	ErrCommitDeniedNotRoot = errors.New("node: commit denied, not a child of root")

	// ErrNeedTwoLayers is returned when a via is requested with an
	// identical top and bottom layer.
	ErrNeedTwoLayers = errors.New("node: via requires two distinct layers")

	// ErrUnknownItem is returned by Remove for an item not present
	// (directly or through an ancestor) in this node.
	ErrUnknownItem = errors.New("node: item not present in this node")

	// ErrNotAssemblable is returned by AssembleLine when the seed item is
	// not a Segment or Arc.
	ErrNotAssemblable = errors.New("node: seed item is not a segment or arc")
)
