package domain

// PromoType is the kind of discount a promo code grants
type PromoType string

// PromoFixed is the only supported promo type: a fixed monetary discount
const PromoFixed PromoType = "fixed"

// PromoCode represents immutable promo reference data
type PromoCode struct {
	Code   string
	Amount int64 // non-negative, minor-unit-free
	Type   PromoType
}
