package core

// Currency describes one selectable currency option.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// SpendingCategories is the canonical list of entry categories offered by the
// entry form. Entries may still carry free-text categories.
var SpendingCategories = []string{
	"Transportation",
	"Accommodation",
	"Food",
	"Activities",
	"Insurance",
	"Materials",
	"Labor",
	"Equipment",
	"Marketing",
	"Software",
	"Utilities",
	"Health",
	"Entertainment",
	"Permits",
	"Other",
}

// Currencies lists the currency codes a project can be denominated in.
var Currencies = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
}

// IsSupportedCurrency reports whether code is one of the offered currencies.
func IsSupportedCurrency(code string) bool {
	for _, c := range Currencies {
		if c.Code == code {
			return true
		}
	}
	return false
}
