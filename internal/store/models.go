// ABOUTME: Entity records held by the bulletin stores
// ABOUTME: News, Post and User (with nested Address/Geo and Company) plus their deep-copy helpers

package store

import (
	"fmt"
	"strings"
)

// NewsStatus is the publication state of a news item.
type NewsStatus int32

// NewsStatus values. Unknown values are stored as-is.
const (
	NewsStatusUnspecified NewsStatus = 0
	NewsStatusDraft       NewsStatus = 1
	NewsStatusPublished   NewsStatus = 2
	NewsStatusArchived    NewsStatus = 3
)

// String returns the lowercase name of the status.
func (s NewsStatus) String() string {
	switch s {
	case NewsStatusDraft:
		return "draft"
	case NewsStatusPublished:
		return "published"
	case NewsStatusArchived:
		return "archived"
	default:
		return "unspecified"
	}
}

// ParseNewsStatus accepts a status name or its numeric value.
func ParseNewsStatus(s string) (NewsStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unspecified", "0":
		return NewsStatusUnspecified, nil
	case "draft", "1":
		return NewsStatusDraft, nil
	case "published", "2":
		return NewsStatusPublished, nil
	case "archived", "3":
		return NewsStatusArchived, nil
	}
	return 0, fmt.Errorf("unknown news status %q", s)
}

// News is a single news item.
type News struct {
	ID        int64      `yaml:"id" toml:"id"`
	Title     string     `yaml:"title" toml:"title"`
	Body      string     `yaml:"body" toml:"body"`
	PostImage string     `yaml:"post_image" toml:"post_image"`
	Status    NewsStatus `yaml:"status" toml:"status"`
}

// Key returns the news id.
func (n News) Key() int64 { return n.ID }

// WithKey returns a copy of n with its id set to id.
func (n News) WithKey(id int64) News { n.ID = id; return n }

// Clone returns n; News holds no pointers, so a value copy is independent.
func (n News) Clone() News { return n }

// Post is a user-authored post. UserID is not checked against the user store.
type Post struct {
	ID     int64  `yaml:"id" toml:"id"`
	UserID int64  `yaml:"user_id" toml:"user_id"`
	Title  string `yaml:"title" toml:"title"`
	Body   string `yaml:"body" toml:"body"`
}

// Key returns the post id.
func (p Post) Key() int64 { return p.ID }

// WithKey returns a copy of p with its id set to id.
func (p Post) WithKey(id int64) Post { p.ID = id; return p }

// Clone returns p; Post holds no pointers, so a value copy is independent.
func (p Post) Clone() Post { return p }

// Geo holds text-encoded coordinates.
type Geo struct {
	Lat string `yaml:"lat" toml:"lat"`
	Lng string `yaml:"lng" toml:"lng"`
}

// Address is a postal address with an optional location.
type Address struct {
	Street  string `yaml:"street" toml:"street"`
	Suite   string `yaml:"suite" toml:"suite"`
	City    string `yaml:"city" toml:"city"`
	Zipcode string `yaml:"zipcode" toml:"zipcode"`
	Geo     *Geo   `yaml:"geo,omitempty" toml:"geo,omitempty"`
}

// Company describes a user's employer.
type Company struct {
	Name        string `yaml:"name" toml:"name"`
	CatchPhrase string `yaml:"catch_phrase" toml:"catch_phrase"`
	BS          string `yaml:"bs" toml:"bs"`
}

// User is an account. Address and Company are nil unless explicitly set.
type User struct {
	ID       int64    `yaml:"id" toml:"id"`
	Name     string   `yaml:"name" toml:"name"`
	Username string   `yaml:"username" toml:"username"`
	Email    string   `yaml:"email" toml:"email"`
	Phone    string   `yaml:"phone" toml:"phone"`
	Website  string   `yaml:"website" toml:"website"`
	Address  *Address `yaml:"address,omitempty" toml:"address,omitempty"`
	Company  *Company `yaml:"company,omitempty" toml:"company,omitempty"`
}

// Key returns the user id.
func (u User) Key() int64 { return u.ID }

// WithKey returns a copy of u with its id set to id. Nested records stay shared;
// use Clone for an independent copy.
func (u User) WithKey(id int64) User { u.ID = id; return u }

// Clone returns a deep copy of u; the nested records are never shared.
func (u User) Clone() User {
	u.Address = u.Address.clone()
	if u.Company != nil {
		c := *u.Company
		u.Company = &c
	}
	return u
}

func (a *Address) clone() *Address {
	if a == nil {
		return nil
	}
	c := *a
	c.Geo = a.Geo.clone()
	return &c
}

func (g *Geo) clone() *Geo {
	if g == nil {
		return nil
	}
	c := *g
	return &c
}
