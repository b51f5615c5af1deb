// ABOUTME: Text and JSON rendering of news, posts and users for bulletin-admin
// ABOUTME: Text output uses tabwriter tables with colored headers, JSON output uses protojson

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/2389/bulletin-gateway/internal/store"
	pb "github.com/2389/bulletin-gateway/proto/bulletin"
)

// printer writes command results in the selected format.
type printer struct {
	w      io.Writer
	format string
}

func newPrinter(w io.Writer, opts *RootOptions) *printer {
	return &printer{w: w, format: opts.Format}
}

func (p *printer) writeJSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var messageJSON = protojson.MarshalOptions{UseProtoNames: true}

// writeMessages writes msgs as a JSON array using the .proto field names.
func writeMessages[M proto.Message](p *printer, msgs []M) error {
	items := make([]json.RawMessage, len(msgs))
	for i, m := range msgs {
		b, err := messageJSON.Marshal(m)
		if err != nil {
			return err
		}
		items[i] = b
	}
	return p.writeJSON(items)
}

// table writes a header row and rows through a tabwriter.
func (p *printer) table(header []string, rows [][]string) error {
	cyan := color.New(color.FgCyan)
	if len(rows) == 0 {
		color.New(color.FgHiBlack).Fprintln(p.w, "(none)")
		return nil
	}

	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	cyan.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}

func (p *printer) news(items ...*pb.News) error {
	if p.format == "json" {
		return writeMessages(p, items)
	}
	rows := make([][]string, 0, len(items))
	for _, n := range items {
		rows = append(rows, []string{
			id(n.GetId()), n.GetTitle(), store.NewsStatus(n.GetStatus()).String(), truncate(n.GetBody(), 40), n.GetPostImage(),
		})
	}
	return p.table([]string{"ID", "TITLE", "STATUS", "BODY", "IMAGE"}, rows)
}

func (p *printer) posts(items ...*pb.Post) error {
	if p.format == "json" {
		return writeMessages(p, items)
	}
	rows := make([][]string, 0, len(items))
	for _, post := range items {
		rows = append(rows, []string{id(post.GetId()), id(post.GetUserId()), post.GetTitle(), truncate(post.GetBody(), 40)})
	}
	return p.table([]string{"ID", "USER", "TITLE", "BODY"}, rows)
}

func (p *printer) users(items ...*pb.User) error {
	if p.format == "json" {
		return writeMessages(p, items)
	}
	rows := make([][]string, 0, len(items))
	for _, u := range items {
		rows = append(rows, []string{id(u.GetId()), u.GetName(), u.GetUsername(), u.GetEmail(), city(u.GetAddress()), companyName(u.GetCompany())})
	}
	return p.table([]string{"ID", "NAME", "USERNAME", "EMAIL", "CITY", "COMPANY"}, rows)
}

// deleted confirms a removal.
func (p *printer) deleted(kind string, entityID int64) error {
	if p.format == "json" {
		return p.writeJSON(map[string]any{"deleted": kind, "id": entityID})
	}
	color.New(color.FgGreen).Fprintf(p.w, "✓ Deleted %s %d\n", kind, entityID)
	return nil
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func city(a *pb.Address) string {
	if a == nil {
		return "-"
	}
	return a.GetCity()
}

func companyName(c *pb.Company) string {
	if c == nil {
		return "-"
	}
	return c.GetName()
}

// parseID parses a positional entity id.
func parseID(arg string) (int64, error) {
	v, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", arg, err)
	}
	return v, nil
}

// parseIDs parses every positional argument as an id.
func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		v, err := parseID(arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, v)
	}
	return ids, nil
}
