// Package thread turns flat comment lists into reply forests and
// prepares them for display. Everything here is pure: no I/O, no
// terminal dependencies, so the tree logic is testable on its own.
package thread

import "parishterm/domain"

// BuildTree converts a flat comment list into a forest of reply trees.
// Reply order within a node follows input order. A comment whose
// parent id is not present in the batch becomes a root rather than
// being dropped. O(n) in the number of comments; every input comment
// appears in exactly one place in the result.
func BuildTree(comments []domain.Comment) []*domain.CommentNode {
	index := make(map[string]*domain.CommentNode, len(comments))
	nodes := make([]*domain.CommentNode, len(comments))
	for i, c := range comments {
		n := &domain.CommentNode{Comment: c}
		nodes[i] = n
		index[c.ID] = n
	}

	var roots []*domain.CommentNode
	for _, n := range nodes {
		if n.ParentID != "" {
			if parent, ok := index[n.ParentID]; ok && parent != n {
				parent.Replies = append(parent.Replies, n)
				continue
			}
		}
		roots = append(roots, n)
	}
	return roots
}

// Count returns the total number of nodes in the forest, replies included.
func Count(forest []*domain.CommentNode) int {
	total := 0
	stack := append([]*domain.CommentNode(nil), forest...)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		total++
		stack = append(stack, n.Replies...)
	}
	return total
}

// Find returns the node with the given id, or nil.
func Find(forest []*domain.CommentNode, id string) *domain.CommentNode {
	stack := append([]*domain.CommentNode(nil), forest...)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.ID == id {
			return n
		}
		stack = append(stack, n.Replies...)
	}
	return nil
}

// InsertReply appends a comment under its parent node. When the parent
// id is empty or not present in the forest the comment is appended to
// the root list, mirroring how BuildTree treats missing parents.
func InsertReply(forest []*domain.CommentNode, c domain.Comment) []*domain.CommentNode {
	n := &domain.CommentNode{Comment: c}
	if c.ParentID != "" {
		if parent := Find(forest, c.ParentID); parent != nil {
			parent.Replies = append(parent.Replies, n)
			return forest
		}
	}
	return append(forest, n)
}

// Remove deletes the node with the given id. Its replies are
// reparented into the deleted node's position so no other author's
// comment silently disappears. Removing an unknown id is a no-op,
// which keeps duplicate in-flight deletes harmless.
func Remove(forest []*domain.CommentNode, id string) ([]*domain.CommentNode, bool) {
	if out, ok := spliceOut(forest, id); ok {
		return out, true
	}
	stack := append([]*domain.CommentNode(nil), forest...)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if replies, ok := spliceOut(n.Replies, id); ok {
			n.Replies = replies
			return forest, true
		}
		stack = append(stack, n.Replies...)
	}
	return forest, false
}

// spliceOut removes id from one sibling list, splicing the removed
// node's replies into its position.
func spliceOut(siblings []*domain.CommentNode, id string) ([]*domain.CommentNode, bool) {
	for i, n := range siblings {
		if n.ID != id {
			continue
		}
		out := make([]*domain.CommentNode, 0, len(siblings)-1+len(n.Replies))
		out = append(out, siblings[:i]...)
		out = append(out, n.Replies...)
		out = append(out, siblings[i+1:]...)
		return out, true
	}
	return siblings, false
}

// SetContent replaces the content of the node with the given id.
// Unknown ids are a no-op.
func SetContent(forest []*domain.CommentNode, id, content string) bool {
	if n := Find(forest, id); n != nil {
		n.Content = content
		return true
	}
	return false
}

// SetLike applies the server's authoritative like state to the node
// with the given id. Unknown ids are a no-op.
func SetLike(forest []*domain.CommentNode, id string, count int, liked bool) bool {
	if n := Find(forest, id); n != nil {
		n.LikesCount = count
		n.Liked = liked
		return true
	}
	return false
}

// Replace swaps the node with localID for the server's canonical
// comment, keeping any replies already attached. Used to reconcile an
// optimistic insert once the create request is acknowledged.
func Replace(forest []*domain.CommentNode, localID string, c domain.Comment) bool {
	if n := Find(forest, localID); n != nil {
		n.Comment = c
		return true
	}
	return false
}
