package models

// Category names an expense category and keys budgets.
type Category string

const (
	CategoryFood           Category = "Food"
	CategoryTransportation Category = "Transportation"
	CategoryShopping       Category = "Shopping"
	CategoryBills          Category = "Bills"
	CategoryEntertainment  Category = "Entertainment"
	CategoryOther          Category = "Other"
)

// Categories is the closed set offered to users, in display order.
var Categories = []Category{
	CategoryFood,
	CategoryTransportation,
	CategoryShopping,
	CategoryBills,
	CategoryEntertainment,
	CategoryOther,
}

// CurrencyCode is an ISO 4217 code such as "USD".
type CurrencyCode string

// Currency pairs a code with its display symbol.
type Currency struct {
	Code   CurrencyCode `json:"code"`
	Symbol string       `json:"symbol"`
}

// Currencies is the closed set offered to users. The first entry is the default.
var Currencies = []Currency{
	{Code: "USD", Symbol: "$"},
	{Code: "EUR", Symbol: "€"},
	{Code: "GBP", Symbol: "£"},
	{Code: "JPY", Symbol: "¥"},
	{Code: "INR", Symbol: "₹"},
}

// DefaultCurrency is selected when nothing was saved yet.
var DefaultCurrency = Currencies[0].Code

// CurrencySymbol returns the symbol for code, or the code itself if unknown.
func CurrencySymbol(code CurrencyCode) string {
	for _, c := range Currencies {
		if c.Code == code {
			return c.Symbol
		}
	}
	return string(code)
}

// IsCurrency reports whether code is in the offered set.
func IsCurrency(code CurrencyCode) bool {
	for _, c := range Currencies {
		if c.Code == code {
			return true
		}
	}
	return false
}

// AvailableCategories returns the categories that have no budget yet.
func AvailableCategories(budgets []Budget) []Category {
	taken := make(map[Category]bool, len(budgets))
	for _, b := range budgets {
		taken[b.Category] = true
	}
	var out []Category
	for _, c := range Categories {
		if !taken[c] {
			out = append(out, c)
		}
	}
	return out
}
