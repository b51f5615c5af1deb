// ABOUTME: Conversions between protobuf messages and store records
// ABOUTME: Nested user records are copied so wire and store values never alias

package service

import (
	"github.com/2389/bulletin-gateway/internal/store"
	pb "github.com/2389/bulletin-gateway/proto/bulletin"
)

func toProtoNews(n store.News) *pb.News {
	return &pb.News{
		Id:        n.ID,
		Title:     n.Title,
		Body:      n.Body,
		PostImage: n.PostImage,
		Status:    pb.NewsStatus(n.Status),
	}
}

func fromProtoNews(n *pb.News) store.News {
	return store.News{
		ID:        n.GetId(),
		Title:     n.GetTitle(),
		Body:      n.GetBody(),
		PostImage: n.GetPostImage(),
		Status:    store.NewsStatus(n.GetStatus()),
	}
}

func toProtoNewsList(items []store.News) *pb.NewsList {
	out := make([]*pb.News, len(items))
	for i := range items {
		out[i] = toProtoNews(items[i])
	}
	return &pb.NewsList{News: out}
}

func toProtoPost(p store.Post) *pb.Post {
	return &pb.Post{
		Id:     p.ID,
		UserId: p.UserID,
		Title:  p.Title,
		Body:   p.Body,
	}
}

func fromProtoPost(p *pb.Post) store.Post {
	return store.Post{
		ID:     p.GetId(),
		UserID: p.GetUserId(),
		Title:  p.GetTitle(),
		Body:   p.GetBody(),
	}
}

func toProtoUser(u store.User) *pb.User {
	out := &pb.User{
		Id:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
		Website:  u.Website,
	}
	if a := u.Address; a != nil {
		out.Address = &pb.Address{
			Street:  a.Street,
			Suite:   a.Suite,
			City:    a.City,
			Zipcode: a.Zipcode,
		}
		if g := a.Geo; g != nil {
			out.Address.Geo = &pb.Geo{Lat: g.Lat, Lng: g.Lng}
		}
	}
	if c := u.Company; c != nil {
		out.Company = &pb.Company{Name: c.Name, CatchPhrase: c.CatchPhrase, Bs: c.BS}
	}
	return out
}

func fromProtoUser(u *pb.User) store.User {
	out := store.User{
		ID:       u.GetId(),
		Name:     u.GetName(),
		Username: u.GetUsername(),
		Email:    u.GetEmail(),
		Phone:    u.GetPhone(),
		Website:  u.GetWebsite(),
	}
	if a := u.GetAddress(); a != nil {
		out.Address = &store.Address{
			Street:  a.GetStreet(),
			Suite:   a.GetSuite(),
			City:    a.GetCity(),
			Zipcode: a.GetZipcode(),
		}
		if g := a.GetGeo(); g != nil {
			out.Address.Geo = &store.Geo{Lat: g.GetLat(), Lng: g.GetLng()}
		}
	}
	if c := u.GetCompany(); c != nil {
		out.Company = &store.Company{Name: c.GetName(), CatchPhrase: c.GetCatchPhrase(), BS: c.GetBs()}
	}
	return out
}
