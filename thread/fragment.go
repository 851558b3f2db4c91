package thread

import "parishterm/domain"

// Fragment is one display unit of a rendered thread: a comment
// annotated with its nesting depth and the actions the viewer may take
// on it. Reply and Like are always available; Edit and Delete only for
// the author. The terminal layer turns fragments into styled output;
// nothing here knows about styling.
type Fragment struct {
	Comment   domain.Comment
	Depth     int
	CanEdit   bool
	CanDelete bool
}

// Flatten walks the forest in display order (each comment before its
// replies, siblings in insertion order) and produces one Fragment per
// node. Traversal is iterative with an explicit stack so reply chains
// of any depth cannot exhaust the call stack.
func Flatten(forest []*domain.CommentNode, viewerID string) []Fragment {
	type entry struct {
		node  *domain.CommentNode
		depth int
	}

	out := make([]Fragment, 0, len(forest))
	stack := make([]entry, 0, len(forest))
	for i := len(forest) - 1; i >= 0; i-- {
		stack = append(stack, entry{forest[i], 0})
	}

	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		own := IsAuthor(e.node.Comment, viewerID)
		out = append(out, Fragment{
			Comment:   e.node.Comment,
			Depth:     e.depth,
			CanEdit:   own,
			CanDelete: own,
		})

		for i := len(e.node.Replies) - 1; i >= 0; i-- {
			stack = append(stack, entry{e.node.Replies[i], e.depth + 1})
		}
	}
	return out
}
