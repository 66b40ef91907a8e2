package database

import (
	"testing"
	"time"

	"github.com/charlesdev96/charlie-chat-app/types"

	"github.com/google/uuid"
)

func newPost(id uuid.UUID, desc string) types.Post {
	p := types.Post{Desc: desc}
	p.ID = id
	return p
}

func feedIDs(posts []types.Post) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestMergeFeedPartitionsPreservesOrder(t *testing.T) {
	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	merged := MergeFeedPartitions(
		[]types.Post{newPost(a, "mine")},
		[]types.Post{newPost(b, "followee"), newPost(c, "followee older")},
		[]types.Post{newPost(d, "follower")},
	)

	want := []uuid.UUID{a, b, c, d}
	got := feedIDs(merged)

	if len(got) != len(want) {
		t.Fatalf("merged %d posts, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestMergeFeedPartitionsFirstOccurrenceWins(t *testing.T) {
	p1, p2 := uuid.New(), uuid.New()

	// p2 leads the first partition, so a later duplicate of p1 must not
	// displace either entry.
	merged := MergeFeedPartitions(
		[]types.Post{newPost(p2, "newer"), newPost(p1, "older")},
		[]types.Post{newPost(p1, "older duplicate")},
	)

	got := feedIDs(merged)
	want := []uuid.UUID{p2, p1}

	if len(got) != 2 {
		t.Fatalf("merged %d posts, want 2", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d = %s, want %s", i, got[i], want[i])
		}
	}

	if merged[1].Desc != "older" {
		t.Errorf("duplicate replaced the first occurrence: got %q", merged[1].Desc)
	}
}

func TestMergeFeedPartitionsEmpty(t *testing.T) {
	merged := MergeFeedPartitions(nil, []types.Post{}, nil)

	if merged == nil {
		t.Fatal("expected a non-nil slice")
	}
	if len(merged) != 0 {
		t.Fatalf("merged %d posts, want 0", len(merged))
	}
}

func TestNewCommentViewFlattensAuthor(t *testing.T) {
	author := &types.User{
		Username:   "charlie",
		ProfilePic: "https://example.com/charlie.png",
	}
	author.ID = uuid.New()

	now := time.Now()
	comment := types.Comment{
		Comment:     "nice one",
		CommentedBy: author,
		CommentDate: now,
		DateUpdated: now,
	}
	comment.ID = uuid.New()

	view := NewCommentView(comment)

	if view.ID != comment.ID {
		t.Errorf("ID = %s, want %s", view.ID, comment.ID)
	}
	if view.Comment != "nice one" {
		t.Errorf("Comment = %q", view.Comment)
	}
	if view.CommentedByID != author.ID {
		t.Errorf("CommentedByID = %s, want %s", view.CommentedByID, author.ID)
	}
	if view.CommentedByUsername != "charlie" {
		t.Errorf("CommentedByUsername = %q", view.CommentedByUsername)
	}
	if view.CommentedByProfilePic != author.ProfilePic {
		t.Errorf("CommentedByProfilePic = %q", view.CommentedByProfilePic)
	}
}

func TestNewCommentViewMissingAuthor(t *testing.T) {
	comment := types.Comment{Comment: "orphaned"}
	comment.ID = uuid.New()

	view := NewCommentView(comment)

	if view.CommentedByUsername != "" || view.CommentedByID != uuid.Nil {
		t.Error("expected zero author fields when the author is not preloaded")
	}
}

func TestNewPostViewDenormalizes(t *testing.T) {
	owner := &types.User{
		Username:   "charlie",
		ProfilePic: "https://example.com/charlie.png",
	}
	owner.ID = uuid.New()

	post := types.Post{
		PostedBy:      owner,
		Image:         []string{"https://example.com/pic.jpg"},
		Desc:          "hello world",
		NumOfLikes:    3,
		NumOfDisLikes: 1,
		Comments: []types.Comment{
			{Comment: "first"},
			{Comment: "second"},
		},
	}
	post.ID = uuid.New()

	view := NewPostView(post)

	if view.ID != post.ID {
		t.Errorf("ID = %s, want %s", view.ID, post.ID)
	}
	if view.PostedBy.ID != owner.ID || view.PostedBy.Username != "charlie" {
		t.Errorf("PostedBy = %+v", view.PostedBy)
	}
	if view.NumOfLikes != 3 || view.NumOfDisLikes != 1 {
		t.Errorf("counters = %d/%d, want 3/1", view.NumOfLikes, view.NumOfDisLikes)
	}
	if len(view.Comments) != 2 {
		t.Fatalf("flattened %d comments, want 2", len(view.Comments))
	}
	if view.Comments[0].Comment != "first" || view.Comments[1].Comment != "second" {
		t.Error("comments out of order after flattening")
	}
}

func TestNewPostViewsEmpty(t *testing.T) {
	views := NewPostViews(nil)

	if views == nil {
		t.Fatal("expected a non-nil slice")
	}
	if len(views) != 0 {
		t.Fatalf("got %d views, want 0", len(views))
	}
}
