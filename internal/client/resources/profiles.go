package resources

import (
	"context"
	"fmt"

	"github.com/TRu-S3/hackmatch-go/internal/client/api"
)

const profilesPath = "/api/v1/profiles"

type ProfilesClient struct {
	api *api.Client
}

func NewProfilesClient(c *api.Client) *ProfilesClient {
	return &ProfilesClient{api: c}
}

type ProfileListParams struct {
	Page   *int
	Limit  *int
	UserID *int64
	TagID  *int64
}

type profileList struct {
	Profiles   []Profile  `json:"profiles"`
	Pagination Pagination `json:"pagination"`
}

func (c *ProfilesClient) List(ctx context.Context, p ProfileListParams) ([]Profile, Pagination, error) {
	q := newQuery()
	q.setInt("page", p.Page)
	q.setInt("limit", p.Limit)
	q.setInt64("user_id", p.UserID)
	q.setInt64("tag_id", p.TagID)

	var out profileList
	if err := c.api.Get(ctx, q.path(profilesPath), &out, api.WithoutAuth()); err != nil {
		return nil, Pagination{}, err
	}
	return out.Profiles, out.Pagination, nil
}

func (c *ProfilesClient) Get(ctx context.Context, id int64) (*Profile, error) {
	var out Profile
	if err := c.api.Get(ctx, fmt.Sprintf("%s/%d", profilesPath, id), &out, api.WithoutAuth()); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByUserID resolves the profile attached to a user. A user without a
// profile is a normal state, so a 404 yields (nil, nil); every other
// failure propagates.
func (c *ProfilesClient) GetByUserID(ctx context.Context, userID int64) (*Profile, error) {
	var out Profile
	err := c.api.Get(ctx, fmt.Sprintf("%s/user/%d", profilesPath, userID), &out,
		api.WithoutAuth(), api.Allow404())
	if err != nil {
		if api.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

// ProfileInput carries the writable profile fields.
type ProfileInput struct {
	UserID   int64  `json:"user_id"`
	TagID    int64  `json:"tag_id,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Age      int    `json:"age,omitempty"`
	Location string `json:"location,omitempty"`
}

func (c *ProfilesClient) Create(ctx context.Context, in ProfileInput) (*Profile, error) {
	var out Profile
	if err := c.api.Post(ctx, profilesPath, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *ProfilesClient) Update(ctx context.Context, id int64, in ProfileInput) (*Profile, error) {
	var out Profile
	if err := c.api.Put(ctx, fmt.Sprintf("%s/%d", profilesPath, id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *ProfilesClient) Delete(ctx context.Context, id int64) error {
	return c.api.Delete(ctx, fmt.Sprintf("%s/%d", profilesPath, id))
}
