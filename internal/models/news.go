package models

import (
	"slices"
	"strings"
	"time"
)

// MaxLikesPerUser caps how many times one user may like the same item.
const MaxLikesPerUser = 5

// ReviewInfo is attached to an item once it has been submitted.
type ReviewInfo struct {
	SubmittedAt time.Time  `json:"submittedAt"`
	ReviewedAt  *time.Time `json:"reviewedAt,omitempty"`
	ReviewerID  string     `json:"reviewerId,omitempty"`
	Comment     string     `json:"comment,omitempty"`
	AIVerdict   Verdict    `json:"aiVerdict,omitempty"`
	AIRationale string     `json:"aiRationale,omitempty"`
}

type News struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Author    string   `json:"author"`
	Tags      []string `json:"tags"`
	Images    []string `json:"images,omitempty"`
	Likes     int      `json:"likes"`
	LikedBy   []string `json:"likedBy,omitempty"`
	// Comments is filled on read and never persisted with the record.
	Comments  []Comment   `json:"comments,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	IsDraft   bool        `json:"isDraft"`
	Status    Status      `json:"status"`
	Review    *ReviewInfo `json:"review,omitempty"`
}

func (n News) IsPubliclyVisible() bool {
	return !n.IsDraft && n.Status == StatusApproved
}

// LikesBy counts the likes userID has given this item.
func (n News) LikesBy(userID string) int {
	c := 0
	for _, id := range n.LikedBy {
		if id == userID {
			c++
		}
	}
	return c
}

func (n News) CanLike(userID string) bool {
	return n.LikesBy(userID) < MaxLikesPerUser
}

// WithLike returns a copy with one more like from userID, or n unchanged and
// false when the user has reached the cap.
func (n News) WithLike(userID string) (News, bool) {
	if !n.CanLike(userID) {
		return n, false
	}
	out := n.Clone()
	out.LikedBy = append(out.LikedBy, userID)
	out.Likes++
	return out, true
}

func (n News) HasTag(tag string) bool {
	return slices.ContainsFunc(n.Tags, func(t string) bool { return strings.EqualFold(t, tag) })
}

// Clone returns a deep copy so the result can be mutated freely.
func (n News) Clone() News {
	out := n
	out.Tags = slices.Clone(n.Tags)
	out.Images = slices.Clone(n.Images)
	out.LikedBy = slices.Clone(n.LikedBy)
	out.Comments = slices.Clone(n.Comments)
	if n.Review != nil {
		r := *n.Review
		if r.ReviewedAt != nil {
			t := *r.ReviewedAt
			r.ReviewedAt = &t
		}
		out.Review = &r
	}
	return out
}

// VisibleTo reports whether viewer may read the item. Unpublished items are
// visible to their author and to administrators only; a nil viewer is
// anonymous.
func (n News) VisibleTo(viewer *Session) bool {
	if n.IsPubliclyVisible() {
		return true
	}
	return viewer != nil && (viewer.Username == n.Author || viewer.IsAdmin())
}
