package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Membership records that a user bought into a program. (UserID, Program) is unique.
type Membership struct {
	ID           uint64
	UserID       uint64
	Program      ProgramID
	ReferralCode string
	ReferrerID   *uint64
	AmountPaid   decimal.Decimal
	PurchaseDate time.Time
}

// MembershipView is the API read model of a membership
type MembershipView struct {
	Program      string    `json:"program"`
	ReferralCode string    `json:"referralCode"`
	ReferrerID   *uint64   `json:"referrerId,omitempty"`
	AmountPaid   string    `json:"amountPaid"`
	PurchaseDate time.Time `json:"purchaseDate"`
}

// ToView converts the membership to its read model
func (m *Membership) ToView(scale int32) MembershipView {
	return MembershipView{
		Program:      string(m.Program),
		ReferralCode: m.ReferralCode,
		ReferrerID:   m.ReferrerID,
		AmountPaid:   FormatAmount(m.AmountPaid, scale),
		PurchaseDate: m.PurchaseDate,
	}
}

// Hierarchy is the ordered list of ancestors for one purchase. A nil slot means "no referrer".
type Hierarchy []*uint64

// NewHierarchy returns a hierarchy of the given depth with every slot empty
func NewHierarchy(levels int) Hierarchy {
	return make(Hierarchy, levels)
}

// At returns the ancestor at level i (0-based) and whether the slot is filled
func (h Hierarchy) At(i int) (uint64, bool) {
	if i < 0 || i >= len(h) || h[i] == nil {
		return 0, false
	}
	return *h[i], true
}

// Filled counts the non-empty slots
func (h Hierarchy) Filled() int {
	n := 0
	for _, slot := range h {
		if slot != nil {
			n++
		}
	}
	return n
}

// HierarchySnapshot freezes the hierarchy resolved at join time. It is never updated.
type HierarchySnapshot struct {
	UserID    uint64
	Program   ProgramID
	Levels    Hierarchy
	CreatedAt time.Time
}
