package catalog

// ProductFilter narrows a product listing. Zero values mean "no constraint".
type ProductFilter struct {
	Status   string
	Category string
	Tag      string
	Search   string
	MinPrice *float64
	MaxPrice *float64
	Limit    int
}

// ProviderFilter narrows a provider listing.
type ProviderFilter struct {
	Status   string
	Industry string
	Tag      string
	Search   string
	Limit    int
}

// UserFilter narrows a user listing.
type UserFilter struct {
	Role   string
	Status string
	Search string
	Limit  int
}

// LogoFilter narrows a logo listing. ClientID uses the client index when one is configured.
type LogoFilter struct {
	ClientID    string
	Variant     string
	Status      string
	PrimaryOnly bool
	Limit       int
}
