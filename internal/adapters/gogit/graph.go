package gogit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// commitNode is the part of a commit the divergence walk reads
type commitNode struct {
	parents []plumbing.Hash
	when    time.Time
}

// commitLookup loads one commit of the graph
type commitLookup func(id plumbing.Hash) (commitNode, error)

// storedCommits reads commits from the object store.
// Missing commits (shallow clones) are treated as roots.
func storedCommits(s storer.EncodedObjectStorer) commitLookup {
	return func(id plumbing.Hash) (commitNode, error) {
		commit, err := object.GetCommit(s, id)
		if errors.Is(err, plumbing.ErrObjectNotFound) {
			return commitNode{}, nil
		}
		if err != nil {
			return commitNode{}, fmt.Errorf("failed to read commit %s: %w", id, err)
		}
		return commitNode{parents: commit.ParentHashes, when: commit.Committer.When}, nil
	}
}

// Sides a commit is reachable from
const (
	fromLocal uint8 = 1 << iota
	fromUpstream

	fromBoth = fromLocal | fromUpstream
)

type queuedCommit struct {
	id   plumbing.Hash
	when time.Time
}

// graphWalk paints commits with the sides they are reachable from, newest
// commit first, and stops once nothing left to visit can change a count
type graphWalk struct {
	lookup commitLookup
	nodes  map[plumbing.Hash]commitNode
	flags  map[plumbing.Hash]uint8
	done   map[plumbing.Hash]uint8 // flags already passed on to parents
	queue  *binaryheap.Heap

	queued   map[plumbing.Hash]int      // queue entries per commit
	pending  map[plumbing.Hash]struct{} // queued commits not yet common
	oneSided map[plumbing.Hash]struct{} // painted commits reachable from one side only

	oldest      time.Time // oldest commit in oneSided, when oldestValid
	oldestValid bool
}

func newGraphWalk(lookup commitLookup) *graphWalk {
	return &graphWalk{
		lookup:   lookup,
		nodes:    make(map[plumbing.Hash]commitNode),
		flags:    make(map[plumbing.Hash]uint8),
		done:     make(map[plumbing.Hash]uint8),
		queued:   make(map[plumbing.Hash]int),
		pending:  make(map[plumbing.Hash]struct{}),
		oneSided: make(map[plumbing.Hash]struct{}),
		queue: binaryheap.NewWith(func(a, b interface{}) int {
			qa, qb := a.(queuedCommit), b.(queuedCommit)
			switch {
			case qa.when.After(qb.when):
				return -1
			case qa.when.Before(qb.when):
				return 1
			default:
				return bytes.Compare(qa.id[:], qb.id[:])
			}
		}),
	}
}

// countAheadBehind returns the number of commits reachable from local but not
// upstream, and from upstream but not local. The walk stops at the merge base
// instead of reading both histories to the root.
func countAheadBehind(ctx context.Context, lookup commitLookup, local, upstream plumbing.Hash) (int, int, error) {
	if local == upstream {
		return 0, 0, nil
	}

	w := newGraphWalk(lookup)
	if err := w.paint(local, fromLocal); err != nil {
		return 0, 0, err
	}
	if err := w.paint(upstream, fromUpstream); err != nil {
		return 0, 0, err
	}

	for !w.queue.Empty() {
		if err := ctx.Err(); err != nil {
			return 0, 0, err
		}
		if w.settled() {
			break
		}

		id := w.pop()
		flags := w.flags[id]
		if w.done[id] == flags {
			continue
		}
		w.done[id] = flags

		for _, parent := range w.nodes[id].parents {
			if err := w.paint(parent, flags); err != nil {
				return 0, 0, err
			}
		}
	}

	ahead, behind := 0, 0
	for id := range w.oneSided {
		if w.flags[id] == fromLocal {
			ahead++
		} else {
			behind++
		}
	}
	return ahead, behind, nil
}

// paint adds flags to a commit and queues it when they are new
func (w *graphWalk) paint(id plumbing.Hash, flags uint8) error {
	old, seen := w.flags[id]
	if seen && old|flags == old {
		return nil
	}
	if !seen {
		node, err := w.lookup(id)
		if err != nil {
			return err
		}
		w.nodes[id] = node
	}

	painted := old | flags
	w.flags[id] = painted
	when := w.nodes[id].when

	if painted == fromBoth {
		delete(w.pending, id)
		if _, ok := w.oneSided[id]; ok {
			delete(w.oneSided, id)
			if w.oldestValid && !when.After(w.oldest) {
				w.oldestValid = false
			}
		}
	} else {
		w.pending[id] = struct{}{}
		w.oneSided[id] = struct{}{}
		if w.oldestValid && when.Before(w.oldest) {
			w.oldest = when
		}
	}

	w.queued[id]++
	w.queue.Push(queuedCommit{id: id, when: when})
	return nil
}

func (w *graphWalk) pop() plumbing.Hash {
	v, _ := w.queue.Pop()
	id := v.(queuedCommit).id

	w.queued[id]--
	if w.queued[id] == 0 {
		delete(w.queued, id)
		delete(w.pending, id)
	}
	return id
}

// settled reports whether no queued commit can still change a count: every
// queued commit is common history, and every one-sided commit is newer than
// all of them. Parents are assumed to be older than their children, so a
// one-sided commit newer than everything queued is not an ancestor of it.
func (w *graphWalk) settled() bool {
	if len(w.pending) > 0 {
		return false
	}
	if len(w.oneSided) == 0 {
		return true
	}

	top, ok := w.queue.Peek()
	if !ok {
		return true
	}
	return w.oldestOneSided().After(top.(queuedCommit).when)
}

func (w *graphWalk) oldestOneSided() time.Time {
	if !w.oldestValid {
		first := true
		for id := range w.oneSided {
			if when := w.nodes[id].when; first || when.Before(w.oldest) {
				w.oldest = when
				first = false
			}
		}
		w.oldestValid = true
	}
	return w.oldest
}
