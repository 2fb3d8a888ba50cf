package domain

import "github.com/shopspring/decimal"

// GuestTier is the loyalty tier of a guest. Tiers are derived from stay
// count and lifetime spend and are monotonic: a guest is never downgraded.
type GuestTier string

const (
	TierBronze   GuestTier = "BRONZE"
	TierSilver   GuestTier = "SILVER"
	TierGold     GuestTier = "GOLD"
	TierPlatinum GuestTier = "PLATINUM"
)

// tierRank orders tiers for the monotonicity check.
var tierRank = map[GuestTier]int{
	TierBronze:   0,
	TierSilver:   1,
	TierGold:     2,
	TierPlatinum: 3,
}

// AtLeast reports whether t ranks at or above other.
func (t GuestTier) AtLeast(other GuestTier) bool {
	return tierRank[t] >= tierRank[other]
}

// Guest is a guest profile. Stay count and lifetime spend are updated only
// at checkout finalization.
type Guest struct {
	GuestID      string          `json:"guestID"`
	FirstName    string          `json:"firstName"`
	LastName     string          `json:"lastName"`
	DocumentID   string          `json:"documentID"` // cedula / passport
	BirthDate    string          `json:"birthDate,omitempty"`
	Nationality  string          `json:"nationality,omitempty"`
	Address      string          `json:"address,omitempty"`
	Phone        string          `json:"phone,omitempty"`
	Occupation   string          `json:"occupation,omitempty"`
	Stays        int             `json:"stays"`
	TotalSpent   decimal.Decimal `json:"totalSpent"`
	Tier         GuestTier       `json:"tier"`
	LastCheckout string          `json:"lastCheckout,omitempty"`
	AuditFields
}

// FullName returns the guest's display name.
func (g Guest) FullName() string {
	if g.LastName == "" {
		return g.FirstName
	}
	return g.FirstName + " " + g.LastName
}
