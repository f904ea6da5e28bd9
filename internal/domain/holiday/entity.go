package holiday

import "time"

// Holiday types. Branch holidays apply only to their own branch; public and
// company holidays apply everywhere.
const (
	TypePublic  = "public"
	TypeCompany = "company"
	TypeBranch  = "branch"
)

var Types = []string{TypePublic, TypeCompany, TypeBranch}

type Holiday struct {
	ID        string
	Date      time.Time
	Name      string
	Type      string
	BranchID  *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
