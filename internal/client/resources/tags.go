package resources

import (
	"context"
	"fmt"

	"github.com/TRu-S3/hackmatch-go/internal/client/api"
)

const tagsPath = "/api/v1/tags"

type TagsClient struct {
	api *api.Client
}

func NewTagsClient(c *api.Client) *TagsClient {
	return &TagsClient{api: c}
}

type TagListParams struct {
	Page  *int
	Limit *int
	Name  *string
}

type tagList struct {
	Tags       []Tag      `json:"tags"`
	Pagination Pagination `json:"pagination"`
}

func (c *TagsClient) List(ctx context.Context, p TagListParams) ([]Tag, Pagination, error) {
	q := newQuery()
	q.setInt("page", p.Page)
	q.setInt("limit", p.Limit)
	q.setStr("name", p.Name)

	var out tagList
	if err := c.api.Get(ctx, q.path(tagsPath), &out, api.WithoutAuth()); err != nil {
		return nil, Pagination{}, err
	}
	return out.Tags, out.Pagination, nil
}

func (c *TagsClient) Get(ctx context.Context, id int64) (*Tag, error) {
	var out Tag
	if err := c.api.Get(ctx, fmt.Sprintf("%s/%d", tagsPath, id), &out, api.WithoutAuth()); err != nil {
		return nil, err
	}
	return &out, nil
}

type TagInput struct {
	Name string `json:"name"`
}

func (c *TagsClient) Create(ctx context.Context, in TagInput) (*Tag, error) {
	var out Tag
	if err := c.api.Post(ctx, tagsPath, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *TagsClient) Update(ctx context.Context, id int64, in TagInput) (*Tag, error) {
	var out Tag
	if err := c.api.Put(ctx, fmt.Sprintf("%s/%d", tagsPath, id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *TagsClient) Delete(ctx context.Context, id int64) error {
	return c.api.Delete(ctx, fmt.Sprintf("%s/%d", tagsPath, id))
}
