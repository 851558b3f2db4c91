package thread

import (
	"fmt"
	"testing"

	"parishterm/domain"
)

func TestFlatten_RoundTripsIDSet(t *testing.T) {
	comments := []domain.Comment{
		flat("1", ""),
		flat("2", "1"),
		flat("3", "1"),
		flat("4", "3"),
		flat("5", "absent"),
	}
	frags := Flatten(BuildTree(comments), "")

	if len(frags) != len(comments) {
		t.Fatalf("%d comments in, %d fragments out", len(comments), len(frags))
	}
	seen := make(map[string]int, len(frags))
	for _, f := range frags {
		seen[f.Comment.ID]++
	}
	for _, c := range comments {
		if seen[c.ID] != 1 {
			t.Fatalf("comment %s appears %d times in fragments", c.ID, seen[c.ID])
		}
	}
}

func TestFlatten_DisplayOrderAndDepth(t *testing.T) {
	frags := Flatten(BuildTree([]domain.Comment{
		flat("1", ""),
		flat("2", "1"),
		flat("3", "2"),
		flat("4", "1"),
		flat("5", ""),
	}), "")

	wantOrder := []string{"1", "2", "3", "4", "5"}
	wantDepth := []int{0, 1, 2, 1, 0}
	for i, f := range frags {
		if f.Comment.ID != wantOrder[i] {
			t.Fatalf("position %d: got %s want %s", i, f.Comment.ID, wantOrder[i])
		}
		if f.Depth != wantDepth[i] {
			t.Fatalf("comment %s: depth %d want %d", f.Comment.ID, f.Depth, wantDepth[i])
		}
	}
}

func TestFlatten_GatesEditDeleteByAuthorship(t *testing.T) {
	forest := BuildTree([]domain.Comment{
		{ID: "1", AuthorID: "7"},
		{ID: "2", ParentID: "1", AuthorID: "9"},
	})

	frags := Flatten(forest, "7")
	if !frags[0].CanEdit || !frags[0].CanDelete {
		t.Fatalf("viewer 7 should be able to edit/delete their own comment")
	}
	if frags[1].CanEdit || frags[1].CanDelete {
		t.Fatalf("viewer 7 must not edit/delete comment by author 9")
	}

	for _, f := range Flatten(forest, "") {
		if f.CanEdit || f.CanDelete {
			t.Fatalf("anonymous viewer must never see edit/delete on %s", f.Comment.ID)
		}
	}
}

func TestFlatten_SurvivesPathologicalDepth(t *testing.T) {
	const depth = 200_000
	comments := make([]domain.Comment, 0, depth)
	parent := ""
	for i := 0; i < depth; i++ {
		id := fmt.Sprintf("c%d", i)
		comments = append(comments, flat(id, parent))
		parent = id
	}

	frags := Flatten(BuildTree(comments), "")
	if len(frags) != depth {
		t.Fatalf("expected %d fragments, got %d", depth, len(frags))
	}
	if frags[depth-1].Depth != depth-1 {
		t.Fatalf("deepest fragment depth %d, want %d", frags[depth-1].Depth, depth-1)
	}
}
