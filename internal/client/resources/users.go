package resources

import (
	"context"
	"fmt"

	"github.com/TRu-S3/hackmatch-go/internal/client/api"
)

const usersPath = "/api/v1/users"

type UsersClient struct {
	api *api.Client
}

func NewUsersClient(c *api.Client) *UsersClient {
	return &UsersClient{api: c}
}

type UserListParams struct {
	Page  *int
	Limit *int
	Name  *string
	Gmail *string
}

type userList struct {
	Users      []User     `json:"users"`
	Pagination Pagination `json:"pagination"`
}

func (c *UsersClient) List(ctx context.Context, p UserListParams) ([]User, Pagination, error) {
	q := newQuery()
	q.setInt("page", p.Page)
	q.setInt("limit", p.Limit)
	q.setStr("name", p.Name)
	q.setStr("gmail", p.Gmail)

	var out userList
	if err := c.api.Get(ctx, q.path(usersPath), &out, api.WithoutAuth()); err != nil {
		return nil, Pagination{}, err
	}
	return out.Users, out.Pagination, nil
}

func (c *UsersClient) Get(ctx context.Context, id int64) (*User, error) {
	var out User
	if err := c.api.Get(ctx, fmt.Sprintf("%s/%d", usersPath, id), &out, api.WithoutAuth()); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserInput carries the writable user fields.
type UserInput struct {
	Name    string `json:"name"`
	Gmail   string `json:"gmail"`
	IconURL string `json:"icon_url,omitempty"`
}

func (c *UsersClient) Create(ctx context.Context, in UserInput) (*User, error) {
	var out User
	if err := c.api.Post(ctx, usersPath, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *UsersClient) Update(ctx context.Context, id int64, in UserInput) (*User, error) {
	var out User
	if err := c.api.Put(ctx, fmt.Sprintf("%s/%d", usersPath, id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *UsersClient) Delete(ctx context.Context, id int64) error {
	return c.api.Delete(ctx, fmt.Sprintf("%s/%d", usersPath, id))
}

// FindOrCreate looks the user up by gmail, its unique secondary key. An
// existing record is updated only when a mutable field (name, icon) actually
// differs, otherwise it is returned unchanged. A missing record is created.
func (c *UsersClient) FindOrCreate(ctx context.Context, in UserInput) (*User, error) {
	users, _, err := c.List(ctx, UserListParams{Gmail: Str(in.Gmail), Limit: Int(1)})
	if err != nil {
		return nil, err
	}

	if len(users) > 0 {
		existing := users[0]
		if existing.Name == in.Name && existing.IconURL == in.IconURL {
			return &existing, nil
		}
		return c.Update(ctx, existing.ID, in)
	}

	return c.Create(ctx, in)
}
