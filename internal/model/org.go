package model

// OrgUnit is a node in the organizational hierarchy. An empty ParentID marks
// a root; the stored graph is expected to be a forest but consumers must not
// rely on that (see engine traversal guards).
type OrgUnit struct {
	ID       string
	Name     string
	Echelon  string // tier label, e.g. "HQDA", "Division", "Brigade"
	ParentID string
	Active   bool
}

// Authority is a role/position with approval power over tasks within scope.
// Multiple authorities may exist per org unit.
type Authority struct {
	ID        string
	Title     string
	OrgUnitID string
	Grade     string   // e.g. "O6", "GS-15"
	Scope     []string // policy-area keywords
}
