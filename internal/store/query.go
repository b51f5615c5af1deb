// ABOUTME: Read-only queries composed on top of collection snapshots
// ABOUTME: Posts by author, users and news by id-set; an absent filter returns everything

package store

import "context"

// PostsByUser returns the posts written by userID. A zero userID returns all posts.
func PostsByUser(ctx context.Context, posts *Collection[Post], userID int64) ([]Post, error) {
	if userID == 0 {
		return posts.List(ctx)
	}
	return posts.Filter(ctx, func(p Post) bool {
		return p.UserID == userID
	})
}

// UsersByIDs returns the users whose id is in ids, in store order.
// An empty ids returns all users.
func UsersByIDs(ctx context.Context, users *UserStore, ids []int64) ([]User, error) {
	return byIDs(ctx, users.Collection, ids)
}

// NewsByIDs returns the news items whose id is in ids, in store order.
// An empty ids returns all news.
func NewsByIDs(ctx context.Context, news *Collection[News], ids []int64) ([]News, error) {
	return byIDs(ctx, news, ids)
}

func byIDs[T Record[T]](ctx context.Context, c *Collection[T], ids []int64) ([]T, error) {
	if len(ids) == 0 {
		return c.List(ctx)
	}
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return c.Filter(ctx, func(item T) bool {
		_, ok := set[item.Key()]
		return ok
	})
}
