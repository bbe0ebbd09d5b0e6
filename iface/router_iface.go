package iface

import (
	"github.com/solderpath/pns/item"
	"github.com/solderpath/pns/rule"
)

// CommitFlag is a bit in the flags SetCommitFlags passes to the host,
// e.g. whether a multi-segment operation should collapse into one undo
// step.
type CommitFlag int

const (
	FlagAppendToUndo CommitFlag = 1 << iota
)

// Board is the router-core-to-host-board adapter (ROUTER_IFACE). The core
// holds one for the lifetime of a routing session and calls it only from
// the router's own thread (§5).
type Board interface {
	// SyncWorld populates an empty node with every current board item.
	SyncWorld(into NodeSyncTarget) error

	AddItem(it item.Linked) error
	RemoveItem(it item.Linked) error
	UpdateItem(old, new item.Linked) error
	Commit() error

	GetRuleResolver() rule.Resolver

	GetNetName(h item.NetHandle) string
	GetNetFromHandle(h item.NetHandle) (name string, ok bool)

	GetPNSLayerFromBoardLayer(boardLayer int) int
	GetBoardLayerFromPNSLayer(pnsLayer int) int

	IsFlashedOnLayer(it item.Item, layers item.LayerRange) bool

	DisplayItem(it item.Item)
	HideItem(it item.Item)

	UpdateNet(h item.NetHandle)

	SetCommitFlags(flags CommitFlag)
}

// NodeSyncTarget is the minimal surface SyncWorld needs to populate a
// fresh node; node.Node implements it.
type NodeSyncTarget interface {
	Add(it item.Linked, allowRedundant bool) (bool, error)
}
