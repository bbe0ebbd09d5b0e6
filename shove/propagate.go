package shove

import (
	"sort"

	"github.com/solderpath/pns/item"
	"github.com/solderpath/pns/node"
)

// worklistEntry pairs a just-moved (or seed) item with the rank it sorts
// by -- lower rank is pushed first, mirroring prim_kruskal's
// lowest-weight-first selection.
type worklistEntry struct {
	it   item.Linked
	rank int
}

// Propagate pushes every item that collides with mover out of the way on
// branch, recursively displacing whatever those pushed items then collide
// with, until the worklist drains (StateStable), the iteration budget is
// exceeded (StateIterLimit), or a non-routable obstacle would have to move
// (StateFail). branch must be a branch node (never call Propagate on a
// root) so a failed attempt can be discarded with Node.Kill. Clearance is
// resolved internally by branch's own rule resolver (every node carries
// the resolver it was built against, per node.Node.Resolver).
func Propagate(branch *node.Node, mover item.Linked, opts ...Option) (Result, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	visited := map[item.UID]struct{}{mover.UID(): {}}
	var shifted []item.Linked
	queue := []worklistEntry{{it: mover, rank: mover.Rank()}}

	round := 0
	for len(queue) > 0 {
		round++
		if round > o.MaxIterations {
			o.Diag.ShoveOutcome(StateIterLimit.String(), round)
			return Result{State: StateIterLimit, Rounds: round, Shifted: shifted}, ErrIterationLimit
		}

		sort.SliceStable(queue, func(i, j int) bool { return queue[i].rank < queue[j].rank })
		cur := queue[0]
		queue = queue[1:]

		hits := branch.QueryColliding(cur.it, node.CollisionOptions{DifferentNetsOnly: true})
		for _, hit := range hits {
			if _, seen := visited[hit.Item.UID()]; seen {
				continue
			}
			if !hit.Item.Routable() {
				o.Diag.ShoveOutcome(StateFail.String(), round)
				return Result{State: StateFail, Rounds: round, Shifted: shifted}, ErrObstacleLocked
			}

			v := pushVector(cur.it, hit.Item, hit.Clearance, hit.Distance)
			moved := translate(hit.Item, v)

			if err := branch.Remove(hit.Item); err != nil {
				return Result{State: StateFail, Rounds: round, Shifted: shifted}, err
			}
			if _, err := branch.Add(moved, true); err != nil {
				return Result{State: StateFail, Rounds: round, Shifted: shifted}, err
			}

			visited[hit.Item.UID()] = struct{}{}
			shifted = append(shifted, moved)
			queue = append(queue, worklistEntry{it: moved, rank: moved.Rank()})
			o.Diag.ShoveIteration(round, len(queue), moved.Rank())
		}
	}

	o.Diag.ShoveOutcome(StateStable.String(), round)
	return Result{State: StateStable, Rounds: round, Shifted: shifted}, nil
}
