package resources

import (
	"context"
	"fmt"
	"time"

	"github.com/TRu-S3/hackmatch-go/internal/client/api"
)

const hackathonsPath = "/api/v1/hackathons"

type HackathonsClient struct {
	api *api.Client
}

func NewHackathonsClient(c *api.Client) *HackathonsClient {
	return &HackathonsClient{api: c}
}

type HackathonListParams struct {
	Page   *int
	Limit  *int
	Status *string
}

type hackathonList struct {
	Hackathons []Hackathon `json:"hackathons"`
	Pagination Pagination  `json:"pagination"`
}

func (c *HackathonsClient) List(ctx context.Context, p HackathonListParams) ([]Hackathon, Pagination, error) {
	q := newQuery()
	q.setInt("page", p.Page)
	q.setInt("limit", p.Limit)
	q.setStr("status", p.Status)

	var out hackathonList
	if err := c.api.Get(ctx, q.path(hackathonsPath), &out, api.WithoutAuth()); err != nil {
		return nil, Pagination{}, err
	}
	return out.Hackathons, out.Pagination, nil
}

func (c *HackathonsClient) Get(ctx context.Context, id int64) (*Hackathon, error) {
	var out Hackathon
	if err := c.api.Get(ctx, fmt.Sprintf("%s/%d", hackathonsPath, id), &out, api.WithoutAuth()); err != nil {
		return nil, err
	}
	return &out, nil
}

type HackathonInput struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Status      string    `json:"status,omitempty"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

func (c *HackathonsClient) Create(ctx context.Context, in HackathonInput) (*Hackathon, error) {
	var out Hackathon
	if err := c.api.Post(ctx, hackathonsPath, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HackathonsClient) Update(ctx context.Context, id int64, in HackathonInput) (*Hackathon, error) {
	var out Hackathon
	if err := c.api.Put(ctx, fmt.Sprintf("%s/%d", hackathonsPath, id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HackathonsClient) Delete(ctx context.Context, id int64) error {
	return c.api.Delete(ctx, fmt.Sprintf("%s/%d", hackathonsPath, id))
}
