package repository

// CreateUnitOptions holds parameters for inserting a new OrgUnit.
type CreateUnitOptions struct {
	ID       string
	Name     string
	Echelon  string
	ParentID string
	Active   bool
}

// GetOneUnitOptions holds filter parameters for fetching a single OrgUnit.
// Set fields are combined with AND.
type GetOneUnitOptions struct {
	ID   string
	Name string
}

// ListUnitsOptions holds filter and pagination parameters for listing OrgUnits.
type ListUnitsOptions struct {
	Echelon    string
	ParentID   string
	ActiveOnly bool
	Limit      int
	Offset     int
	OrderBy    string
}

// UpdateUnitOptions holds the full replacement row for an existing OrgUnit.
// The use case merges partial input with the current row before calling this.
type UpdateUnitOptions struct {
	ID       string
	Name     string
	Echelon  string
	ParentID string
	Active   bool
}

// CreateAuthorityOptions holds parameters for inserting a new Authority.
// An empty ID lets the store generate one.
type CreateAuthorityOptions struct {
	ID        string
	Title     string
	OrgUnitID string
	Grade     string
	Scope     []string
}

// ListAuthoritiesOptions holds filter parameters for listing Authorities.
type ListAuthoritiesOptions struct {
	OrgUnitID string
}
