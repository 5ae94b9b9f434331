package model

type Network string

var (
	Cyber Network = "cyber"
)

// CredentialID identifies a single credential in the registry.
type CredentialID uint64

// RewardCredentials is the closed set of credentials counted towards reward tiers.
var RewardCredentials = []CredentialID{2, 3, 4, 5, 6, 7, 8, 9}

// Valid reports whether id belongs to RewardCredentials.
func (id CredentialID) Valid() bool {
	return id >= 2 && id <= 9
}

// CheckResult is the outcome of a single credential query.
// Minted is false both when a credential is absent and when the query failed;
// Message carries the diagnostic in the latter case.
type CheckResult struct {
	Minted  bool
	Message string
}
