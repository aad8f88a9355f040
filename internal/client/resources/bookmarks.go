package resources

import (
	"context"
	"fmt"

	"github.com/TRu-S3/hackmatch-go/internal/client/api"
)

const bookmarksPath = "/api/v1/bookmarks"

type BookmarksClient struct {
	api *api.Client
}

func NewBookmarksClient(c *api.Client) *BookmarksClient {
	return &BookmarksClient{api: c}
}

type BookmarkListParams struct {
	Page   *int
	Limit  *int
	UserID *int64
}

type bookmarkList struct {
	Bookmarks  []Bookmark `json:"bookmarks"`
	Pagination Pagination `json:"pagination"`
}

func (c *BookmarksClient) List(ctx context.Context, p BookmarkListParams) ([]Bookmark, Pagination, error) {
	q := newQuery()
	q.setInt("page", p.Page)
	q.setInt("limit", p.Limit)
	q.setInt64("user_id", p.UserID)

	var out bookmarkList
	if err := c.api.Get(ctx, q.path(bookmarksPath), &out, api.WithoutAuth()); err != nil {
		return nil, Pagination{}, err
	}
	return out.Bookmarks, out.Pagination, nil
}

type bookmarkInput struct {
	UserID           int64 `json:"user_id"`
	BookmarkedUserID int64 `json:"bookmarked_user_id"`
}

func (c *BookmarksClient) Create(ctx context.Context, ownerID, targetID int64) (*Bookmark, error) {
	var out Bookmark
	in := bookmarkInput{UserID: ownerID, BookmarkedUserID: targetID}
	if err := c.api.Post(ctx, bookmarksPath, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *BookmarksClient) Delete(ctx context.Context, id int64) error {
	return c.api.Delete(ctx, fmt.Sprintf("%s/%d", bookmarksPath, id))
}

// Toggle flips the owner's bookmark on target and reports the resulting
// state (true = now bookmarked). The backend offers no atomic toggle, so
// this is a read-then-act sequence; two concurrent toggles from the same
// owner can race. Callers needing strictness must serialize.
func (c *BookmarksClient) Toggle(ctx context.Context, ownerID, targetID int64) (bool, error) {
	existing, _, err := c.List(ctx, BookmarkListParams{UserID: Int64(ownerID)})
	if err != nil {
		return false, err
	}

	for _, b := range existing {
		if b.BookmarkedUserID == targetID {
			if err := c.Delete(ctx, b.ID); err != nil {
				return false, err
			}
			return false, nil
		}
	}

	if _, err := c.Create(ctx, ownerID, targetID); err != nil {
		return false, err
	}
	return true, nil
}

// BookmarkedUsers returns the full user records the owner has bookmarked.
// Entries whose embedded user payload is missing are skipped.
func (c *BookmarksClient) BookmarkedUsers(ctx context.Context, ownerID int64) ([]User, error) {
	bookmarks, _, err := c.List(ctx, BookmarkListParams{UserID: Int64(ownerID)})
	if err != nil {
		return nil, err
	}

	users := make([]User, 0, len(bookmarks))
	for _, b := range bookmarks {
		if b.BookmarkedUser == nil {
			continue
		}
		users = append(users, *b.BookmarkedUser)
	}
	return users, nil
}
