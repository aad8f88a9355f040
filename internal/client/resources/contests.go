package resources

import (
	"context"
	"fmt"

	"github.com/TRu-S3/hackmatch-go/internal/client/api"
)

const contestsPath = "/api/v1/contests"

type ContestsClient struct {
	api *api.Client
}

func NewContestsClient(c *api.Client) *ContestsClient {
	return &ContestsClient{api: c}
}

type ContestListParams struct {
	Page     *int
	Limit    *int
	AuthorID *int64
	Active   *bool
}

type contestList struct {
	Contests   []Contest  `json:"contests"`
	Pagination Pagination `json:"pagination"`
}

func (c *ContestsClient) List(ctx context.Context, p ContestListParams) ([]Contest, Pagination, error) {
	q := newQuery()
	q.setInt("page", p.Page)
	q.setInt("limit", p.Limit)
	q.setInt64("author_id", p.AuthorID)
	q.setBool("active", p.Active)

	var out contestList
	if err := c.api.Get(ctx, q.path(contestsPath), &out, api.WithoutAuth()); err != nil {
		return nil, Pagination{}, err
	}
	return out.Contests, out.Pagination, nil
}

func (c *ContestsClient) Get(ctx context.Context, id int64) (*Contest, error) {
	var out Contest
	if err := c.api.Get(ctx, fmt.Sprintf("%s/%d", contestsPath, id), &out, api.WithoutAuth()); err != nil {
		return nil, err
	}
	return &out, nil
}

type ContestInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	AuthorID    int64  `json:"author_id"`
	Active      *bool  `json:"active,omitempty"`
}

func (c *ContestsClient) Create(ctx context.Context, in ContestInput) (*Contest, error) {
	var out Contest
	if err := c.api.Post(ctx, contestsPath, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *ContestsClient) Update(ctx context.Context, id int64, in ContestInput) (*Contest, error) {
	var out Contest
	if err := c.api.Put(ctx, fmt.Sprintf("%s/%d", contestsPath, id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *ContestsClient) Delete(ctx context.Context, id int64) error {
	return c.api.Delete(ctx, fmt.Sprintf("%s/%d", contestsPath, id))
}
