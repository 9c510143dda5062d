package domain

// DistributionCompany is a supplier/partner. Products and RMA cases reference
// it by name; legacy rows predate enforced foreign keys, so the reference
// stays a plain string.
type DistributionCompany struct {
	ID          int64
	Name        string
	Email       string
	Address     string
	Hours       string
	ContactName string
	Phone       string
}
