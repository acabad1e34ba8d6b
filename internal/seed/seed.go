// Package seed loads the bundled sample users, news and comments into an
// empty store.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/newsboard/internal/logging"
	"github.com/dmitrijs2005/newsboard/internal/models"
	"github.com/dmitrijs2005/newsboard/internal/services"
	"github.com/dmitrijs2005/newsboard/internal/store"
)

//go:embed seed.yaml
var sampleYAML []byte

var now = func() time.Time {
	return time.UnixMilli(time.Now().UnixMilli())
}

type Data struct {
	Users []User `yaml:"users"`
	News  []News `yaml:"news"`
}

type User struct {
	ID       string `yaml:"id"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Email    string `yaml:"email"`
	Role     string `yaml:"role"`
}

type News struct {
	Title    string    `yaml:"title"`
	Author   string    `yaml:"author"`
	Content  string    `yaml:"content"`
	Age      string    `yaml:"age"`
	Tags     []string  `yaml:"tags"`
	Likes    int       `yaml:"likes"`
	LikedBy  []string  `yaml:"likedBy"`
	Comments []Comment `yaml:"comments"`
}

type Comment struct {
	Author  string `yaml:"author"`
	Content string `yaml:"content"`
}

// Parse decodes seed data in the bundled YAML layout.
func Parse(b []byte) (Data, error) {
	var d Data
	if err := yaml.Unmarshal(b, &d); err != nil {
		return Data{}, fmt.Errorf("parse seed data: %w", err)
	}
	for i, n := range d.News {
		if n.Age == "" {
			continue
		}
		if _, err := time.ParseDuration(n.Age); err != nil {
			return Data{}, fmt.Errorf("news %d: bad age %q: %w", i, n.Age, err)
		}
	}
	return d, nil
}

// Sample returns the bundled data set.
func Sample() Data {
	d, err := Parse(sampleYAML)
	if err != nil {
		panic(err)
	}
	return d
}

// Apply seeds users when no administrator exists and news with comments when
// the news table is empty. adminPassword is used for users without one.
func Apply(ctx context.Context, st *store.Store, d Data, adminPassword string, logger logging.Logger) error {
	logger = logger.With("component", "seed")

	all, err := st.Users.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	if !hasAdmin(all) {
		n, err := seedUsers(ctx, st, d.Users, all, adminPassword)
		if err != nil {
			return err
		}
		logger.Info(ctx, "sample users created", "count", n)
	}

	existing, err := st.News.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("list news: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	n, err := seedNews(ctx, st, d.News)
	if err != nil {
		return err
	}
	logger.Info(ctx, "sample news created", "count", n)
	return nil
}

func hasAdmin(all []models.User) bool {
	for _, u := range all {
		if u.IsAdmin() {
			return true
		}
	}
	return false
}

func seedUsers(ctx context.Context, st *store.Store, in []User, existing []models.User, adminPassword string) (int, error) {
	taken := map[string]bool{}
	for _, u := range existing {
		taken[u.Username] = true
		taken["id:"+u.ID] = true
	}

	created := 0
	for _, su := range in {
		if taken[su.Username] || taken["id:"+su.ID] {
			continue
		}
		pw := su.Password
		if pw == "" {
			pw = adminPassword
		}
		hash, err := services.HashPassword(pw)
		if err != nil {
			return created, err
		}
		role := models.RoleUser
		if su.Role == string(models.RoleAdmin) {
			role = models.RoleAdmin
		}
		u := models.User{
			ID:           su.ID,
			Username:     su.Username,
			Password:     hash,
			Email:        su.Email,
			RegisteredAt: now(),
			Role:         role,
		}
		if u.ID == "" {
			u.ID = uuid.NewString()
		}
		if err := st.Users.Save(ctx, u); err != nil {
			return created, fmt.Errorf("save user %s: %w", u.Username, err)
		}
		created++
	}
	return created, nil
}

func seedNews(ctx context.Context, st *store.Store, in []News) (int, error) {
	t := now()
	for _, sn := range in {
		age, _ := time.ParseDuration(sn.Age)
		created := t.Add(-age)
		reviewed := created

		n := models.News{
			ID:        uuid.NewString(),
			Title:     sn.Title,
			Content:   sn.Content,
			Author:    sn.Author,
			Tags:      sn.Tags,
			Likes:     sn.Likes,
			LikedBy:   sn.LikedBy,
			CreatedAt: created,
			Status:    models.StatusApproved,
			Review:    &models.ReviewInfo{SubmittedAt: created, ReviewedAt: &reviewed, ReviewerID: "admin"},
		}
		if err := st.News.Save(ctx, n); err != nil {
			return 0, fmt.Errorf("save news %q: %w", n.Title, err)
		}

		for i, sc := range sn.Comments {
			c := models.Comment{
				ID:        uuid.NewString(),
				NewsID:    n.ID,
				Author:    sc.Author,
				Content:   sc.Content,
				CreatedAt: created.Add(time.Duration(i+1) * time.Minute),
			}
			if err := st.Comments.Add(ctx, c); err != nil {
				return 0, fmt.Errorf("save comment: %w", err)
			}
		}
	}
	return len(in), nil
}
