package models

// BillTotals carries the SQL-level aggregation over the bill table, split by
// the bill type discriminator. Sums are COALESCE'd to zero in the query, so
// an empty result set yields zeros rather than an error.
type BillTotals struct {
	PrescriptionSum float64 `json:"prescription_sum"`
	TreatmentSum    float64 `json:"treatment_sum"`
}

// PaymentTotal is the summed paid amount over the payment table.
type PaymentTotal struct {
	PaidSum float64 `json:"paid_sum"`
}

// DiscountTotal is the summed discount amount over the discount table.
type DiscountTotal struct {
	DiscountSum float64 `json:"discount_sum"`
}
