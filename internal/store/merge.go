// ABOUTME: Partial-merge engine for User patches
// ABOUTME: Overwrites only non-empty patch fields, recursing into Address/Geo and Company

package store

import "context"

// MergeUser applies patch onto dst and returns the result. dst is not modified.
//
// Text fields in patch that are empty leave the corresponding field of dst
// unchanged, so a patch cannot clear a field to "". A nil Address or Company
// in patch leaves the existing one alone. When dst has no Address (or
// Company) the patch's one is adopted whole; otherwise its fields are merged
// one by one with the same rule, and Geo is handled the same way one level
// further down. The id of dst is never changed.
func MergeUser(dst, patch User) User {
	out := dst.Clone()

	mergeText(&out.Name, patch.Name)
	mergeText(&out.Username, patch.Username)
	mergeText(&out.Email, patch.Email)
	mergeText(&out.Phone, patch.Phone)
	mergeText(&out.Website, patch.Website)

	out.Address = mergeAddress(out.Address, patch.Address)
	out.Company = mergeCompany(out.Company, patch.Company)
	return out
}

func mergeAddress(dst, patch *Address) *Address {
	switch {
	case patch == nil:
		return dst
	case dst == nil:
		return patch.clone()
	}
	mergeText(&dst.Street, patch.Street)
	mergeText(&dst.Suite, patch.Suite)
	mergeText(&dst.City, patch.City)
	mergeText(&dst.Zipcode, patch.Zipcode)
	dst.Geo = mergeGeo(dst.Geo, patch.Geo)
	return dst
}

func mergeGeo(dst, patch *Geo) *Geo {
	switch {
	case patch == nil:
		return dst
	case dst == nil:
		return patch.clone()
	}
	mergeText(&dst.Lat, patch.Lat)
	mergeText(&dst.Lng, patch.Lng)
	return dst
}

func mergeCompany(dst, patch *Company) *Company {
	switch {
	case patch == nil:
		return dst
	case dst == nil:
		c := *patch
		return &c
	}
	mergeText(&dst.Name, patch.Name)
	mergeText(&dst.CatchPhrase, patch.CatchPhrase)
	mergeText(&dst.BS, patch.BS)
	return dst
}

func mergeText(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// UserStore is the user collection plus the patch operation.
type UserStore struct {
	*Collection[User]
}

// NewUserStore creates an empty user store.
func NewUserStore(alloc Allocator) *UserStore {
	return &UserStore{Collection: NewCollection[User]("user", alloc)}
}

// Patch merges patch into the stored user with the given id and returns the
// merged user. The fetch, merge and write-back happen under one write lock;
// a missing id returns ErrNotFound and changes nothing.
func (s *UserStore) Patch(ctx context.Context, id int64, patch User) (User, error) {
	return s.Update(ctx, id, func(current User) (User, error) {
		return MergeUser(current, patch), nil
	})
}
