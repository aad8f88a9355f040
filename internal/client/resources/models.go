// Package resources provides typed clients for the backend resources:
// users, profiles, tags, contests, bookmarks, and hackathons. The clients
// hold no state of their own; entity records are transient copies of
// backend JSON and ids are carried verbatim.
package resources

import "time"

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Gmail     string    `json:"gmail"`
	IconURL   string    `json:"icon_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Profile struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	TagID    int64  `json:"tag_id,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Age      int    `json:"age,omitempty"`
	Location string `json:"location,omitempty"`
}

type Contest struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	AuthorID    int64     `json:"author_id"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

type Bookmark struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	BookmarkedUserID int64     `json:"bookmarked_user_id"`
	BookmarkedUser   *User     `json:"bookmarked_user,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type Hackathon struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Status      string    `json:"status,omitempty"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}
