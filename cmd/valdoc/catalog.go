package main

import (
	"time"

	"github.com/bjaus/valdoc"
)

// Role is a user role. Its values are stored as lower-case strings.
type Role string

// Roles.
const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// EnumValues implements valdoc.Enumeration.
func (Role) EnumValues() []any {
	return []any{string(RoleAdmin), string(RoleMember)}
}

// Pagination is a list request documented from struct tags.
type Pagination struct {
	Page    int    `json:"page" doc:"Page number" minimum:"1"`
	PerPage int    `json:"per_page" doc:"Items per page" minimum:"1" maximum:"100"`
	Cursor  string `json:"cursor,omitempty"`
}

// Event is a timestamped audit event.
type Event struct {
	ID        string    `json:"id" required:"true"`
	Actor     *string   `json:"actor" doc:"User that caused the event"`
	Kind      string    `json:"kind" enum:"created,updated,deleted" required:"true"`
	CreatedAt time.Time `json:"created_at" required:"true"`
}

var userSchema = valdoc.Map{
	{Key: valdoc.Required("name", valdoc.WithDescription("Display name")), Value: valdoc.All(valdoc.Str, valdoc.Length(valdoc.Min(5)))},
	{Key: valdoc.Required("age"), Value: valdoc.All(valdoc.Coerce(valdoc.Int), valdoc.Range(valdoc.Min(18)))},
	{Key: valdoc.Optional("hobby", valdoc.WithDefault("not specified")), Value: valdoc.Str},
	{Key: valdoc.Required("email"), Value: valdoc.All(valdoc.Email, valdoc.Lower, valdoc.Str)},
	{Key: valdoc.Optional("role", valdoc.WithDefault(string(RoleMember))), Value: valdoc.Coerce(valdoc.TypeOf[Role]())},
	{Key: valdoc.Optional("nickname"), Value: valdoc.Maybe(valdoc.Str)},
	{Key: valdoc.Optional("tags", valdoc.WithDefault(func() any { return []any{} })), Value: []any{valdoc.Str}},
	{Key: valdoc.Str, Value: valdoc.Str},
}

var localeSchema = valdoc.InMap(valdoc.Map{
	{Key: "en_US", Value: "American English"},
	{Key: "zh_CN", Value: "Chinese (Simplified)"},
})

var brightnessSchema = valdoc.All(valdoc.Coerce(valdoc.Int), valdoc.Clamp(valdoc.Min(0), valdoc.Max(255)))

var targetSchema = valdoc.Map{
	{Key: valdoc.Any("entity_id", valdoc.Optional("area_id", valdoc.WithDescription("The ID of the area"))), Value: valdoc.Str},
	{Key: valdoc.Optional("transition"), Value: valdoc.Func{Name: "positive_float", Input: valdoc.OrNone(valdoc.Float)}},
}

func newCatalog(opts ...valdoc.CatalogOption) *valdoc.Catalog {
	catalog := valdoc.NewCatalog(append([]valdoc.CatalogOption{
		valdoc.WithTitle("valdoc sample"),
		valdoc.WithVersion("1.0.0"),
	}, opts...)...)

	samples := []struct {
		name string
		node any
	}{
		{"User", userSchema},
		{"Locale", localeSchema},
		{"Brightness", brightnessSchema},
		{"Target", targetSchema},
		{"Pagination", valdoc.TypeOf[Pagination]()},
		{"Event", valdoc.TypeOf[Event]()},
	}
	for _, s := range samples {
		if err := catalog.Add(s.name, s.node); err != nil {
			panic(err)
		}
	}
	return catalog
}
