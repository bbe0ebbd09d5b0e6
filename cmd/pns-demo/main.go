// Command pns-demo drives a Session through a scripted start-route,
// move, fix-route sequence against an in-memory board and prints what
// happened: a runnable, throwaway driver proving the wiring works, as one
// binary instead of one file per scenario.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/rs/zerolog"
	"github.com/solderpath/pns/geom"
	"github.com/solderpath/pns/iface"
	"github.com/solderpath/pns/item"
	"github.com/solderpath/pns/logger"
	"github.com/solderpath/pns/router"
	"github.com/solderpath/pns/rule"
)

// memBoard is the minimal host adapter a demo needs: an unconstrained
// resolver and an append-only item store, with no persistence beyond the
// process lifetime.
type memBoard struct {
	resolver rule.Resolver
	items    map[item.UID]item.Linked
}

func newMemBoard(clearance int64) *memBoard {
	return &memBoard{
		resolver: demoResolver{clearance: clearance},
		items:    make(map[item.UID]item.Linked),
	}
}

func (b *memBoard) SyncWorld(into iface.NodeSyncTarget) error {
	for _, it := range b.items {
		if _, err := into.Add(it, true); err != nil {
			return err
		}
	}
	return nil
}

func (b *memBoard) AddItem(it item.Linked) error {
	b.items[it.UID()] = it
	return nil
}

func (b *memBoard) RemoveItem(it item.Linked) error {
	delete(b.items, it.UID())
	return nil
}

func (b *memBoard) UpdateItem(old, new item.Linked) error {
	delete(b.items, old.UID())
	b.items[new.UID()] = new
	return nil
}

func (b *memBoard) Commit() error { return nil }

func (b *memBoard) GetRuleResolver() rule.Resolver { return b.resolver }

func (b *memBoard) GetNetName(item.NetHandle) string { return "demo" }

func (b *memBoard) GetNetFromHandle(h item.NetHandle) (string, bool) {
	if h == item.NoNet {
		return "", false
	}
	return "demo", true
}

func (b *memBoard) GetPNSLayerFromBoardLayer(l int) int { return l }
func (b *memBoard) GetBoardLayerFromPNSLayer(l int) int { return l }

func (b *memBoard) IsFlashedOnLayer(item.Item, item.LayerRange) bool { return false }
func (b *memBoard) DisplayItem(item.Item)                            {}
func (b *memBoard) HideItem(item.Item)                               {}
func (b *memBoard) UpdateNet(item.NetHandle)                         {}
func (b *memBoard) SetCommitFlags(iface.CommitFlag)                  {}

var _ iface.Board = (*memBoard)(nil)

// demoResolver is a flat clearance authority with no diff-pair, keepout,
// or net-tie rules -- enough for a single-track walkthrough.
type demoResolver struct{ clearance int64 }

func (r demoResolver) Clearance(a, b item.Item, useEpsilon bool) int64 { return r.clearance }
func (r demoResolver) QueryConstraint(kind rule.ConstraintKind, a, b item.Item, layer int) (rule.Constraint, bool) {
	return rule.Constraint{}, false
}
func (r demoResolver) DpCoupledNet(net item.NetHandle) item.NetHandle { return item.NoNet }
func (r demoResolver) DpNetPolarity(net item.NetHandle) rule.Polarity { return rule.PolarityNone }
func (r demoResolver) DpNetPair(it item.Item) (item.NetHandle, item.NetHandle, bool) {
	return item.NoNet, item.NoNet, false
}
func (r demoResolver) IsInNetTie(item.Item) bool                        { return false }
func (r demoResolver) IsNetTieExclusion(item.Item, item.Item, item.Point) bool { return false }
func (r demoResolver) IsDrilledHole(item.Item) bool                     { return false }
func (r demoResolver) IsNonPlatedSlot(item.Item) bool                   { return false }
func (r demoResolver) IsKeepout(item.Item, int) bool                    { return false }
func (r demoResolver) ClearanceEpsilon() int64                          { return 0 }

func main() {
	board := newMemBoard(100000)

	diag := logger.NewDiag(os.Stderr, zerolog.InfoLevel)
	replay := logger.NewReplayLogger(os.Stdout)

	settings := router.Settings{
		Mode: 0, // mark-obstacles (placer.ModeMarkObstacles)
		Sizes: rule.Sizes{
			Clearance:          100000,
			TrackWidth:         200000,
			BoardMinTrackWidth: 200000,
		},
		Layer: 0,
		Net:   item.NetHandle(1),
	}

	s, err := router.New(board, settings, router.WithDiag(diag), router.WithReplayLogger(replay))
	if err != nil {
		log.Fatalf("new session: %v", err)
	}

	run := func(step string, err error) {
		if err != nil {
			log.Fatalf("%s: %v", step, err)
		}
	}

	run("start route", s.StartRoute(geom.Pt(0, 0)))
	run("move", s.Move(geom.Pt(2000000, 0)))
	run("move", s.Move(geom.Pt(2000000, 2000000)))

	ok, err := s.FixRoute(true)
	run("fix route", err)
	if !ok {
		log.Fatal("fix route: rejected")
	}

	fmt.Printf("committed %d item(s) onto net %d\n", len(board.items), settings.Net)
	for uid, it := range board.items {
		fmt.Printf("  %s: %T on layer(s) %v\n", uid, it, it.Layers())
	}
}
