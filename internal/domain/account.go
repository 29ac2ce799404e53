package domain

// Account represents a checking account that movements are recorded against.
// Accounts are reference data for this service: there is no create, update or
// delete operation, only lookups.
type Account struct {
	ID         string
	Number     int64
	HolderName string
	Active     bool
}
