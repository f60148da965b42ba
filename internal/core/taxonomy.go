package core

// TaxonomyEntry is a static classification record used purely for
// grouping and display; it is never mutated at runtime.
type TaxonomyEntry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Institution is a static reference to a bank or brokerage, used only
// by an account's optional institution link.
type Institution struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon"`
}

// FallbackID identifies the catch-all entry of every taxonomy. Records
// whose group reference matches no entry are attributed to it rather
// than dropped.
const FallbackID = "other"

// Categories are the fixed expense categories.
var Categories = []TaxonomyEntry{
	{ID: "food", Name: "Food & Dining", Icon: "🍔", Color: "#FF6B6B"},
	{ID: "transport", Name: "Transportation", Icon: "🚗", Color: "#4ECDC4"},
	{ID: "shopping", Name: "Shopping", Icon: "🛍️", Color: "#45B7D1"},
	{ID: "entertainment", Name: "Entertainment", Icon: "🎬", Color: "#96CEB4"},
	{ID: "bills", Name: "Bills & Utilities", Icon: "💡", Color: "#FFEAA7"},
	{ID: "healthcare", Name: "Healthcare", Icon: "🏥", Color: "#DDA0DD"},
	{ID: "travel", Name: "Travel", Icon: "✈️", Color: "#98D8C8"},
	{ID: FallbackID, Name: "Other", Icon: "📦", Color: "#B8B8B8"},
}

// Sources are the fixed income sources.
var Sources = []TaxonomyEntry{
	{ID: "salary", Name: "Salary", Icon: "💼", Color: "#4CAF50"},
	{ID: "freelance", Name: "Freelance", Icon: "💻", Color: "#2196F3"},
	{ID: "investments", Name: "Investments", Icon: "📈", Color: "#9C27B0"},
	{ID: "rental", Name: "Rental", Icon: "🏠", Color: "#FF9800"},
	{ID: "business", Name: "Business", Icon: "🏢", Color: "#00BCD4"},
	{ID: "gifts", Name: "Gifts", Icon: "🎁", Color: "#E91E63"},
	{ID: "refunds", Name: "Refunds", Icon: "💰", Color: "#8BC34A"},
	{ID: FallbackID, Name: "Other", Icon: "📦", Color: "#607D8B"},
}

// AccountTypes are the fixed account classifications. IDs double as the
// grouping key for the net-worth super-categories.
var AccountTypes = []TaxonomyEntry{
	{ID: "savings", Name: "Savings Account", Icon: "🏦", Color: "#4CAF50"},
	{ID: "checking", Name: "Checking Account", Icon: "💳", Color: "#2196F3"},
	{ID: "emergency", Name: "Emergency Fund", Icon: "🛡️", Color: "#FF9800"},
	{ID: "stocks", Name: "Stocks", Icon: "📈", Color: "#9C27B0"},
	{ID: "bonds", Name: "Bonds", Icon: "📊", Color: "#00BCD4"},
	{ID: "etf", Name: "ETFs", Icon: "📉", Color: "#E91E63"},
	{ID: "crypto", Name: "Crypto", Icon: "₿", Color: "#FF5722"},
	{ID: "401k", Name: "401(k)", Icon: "🏛️", Color: "#3F51B5"},
	{ID: "ira", Name: "IRA", Icon: "📋", Color: "#009688"},
	{ID: FallbackID, Name: "Other", Icon: "💰", Color: "#607D8B"},
}

// Institutions are the known banks and brokerages an account can link to.
var Institutions = []Institution{
	{ID: "chase", Name: "Chase", URL: "https://www.chase.com", Icon: "🏦"},
	{ID: "bofa", Name: "Bank of America", URL: "https://www.bankofamerica.com", Icon: "🏦"},
	{ID: "wells", Name: "Wells Fargo", URL: "https://www.wellsfargo.com", Icon: "🏦"},
	{ID: "citi", Name: "Citibank", URL: "https://www.citi.com", Icon: "🏦"},
	{ID: "usbank", Name: "US Bank", URL: "https://www.usbank.com", Icon: "🏦"},
	{ID: "capital", Name: "Capital One", URL: "https://www.capitalone.com", Icon: "🏦"},
	{ID: "pnc", Name: "PNC Bank", URL: "https://www.pnc.com", Icon: "🏦"},
	{ID: "td", Name: "TD Bank", URL: "https://www.td.com", Icon: "🏦"},
	{ID: "ally", Name: "Ally Bank", URL: "https://www.ally.com", Icon: "🏦"},
	{ID: "discover", Name: "Discover Bank", URL: "https://www.discover.com/online-banking", Icon: "🏦"},
	{ID: "marcus", Name: "Marcus by Goldman Sachs", URL: "https://www.marcus.com", Icon: "🏦"},
	{ID: "amex", Name: "American Express", URL: "https://www.americanexpress.com", Icon: "💳"},
	{ID: "fidelity", Name: "Fidelity", URL: "https://www.fidelity.com", Icon: "📈"},
	{ID: "vanguard", Name: "Vanguard", URL: "https://www.vanguard.com", Icon: "📈"},
	{ID: "schwab", Name: "Charles Schwab", URL: "https://www.schwab.com", Icon: "📈"},
	{ID: "etrade", Name: "E*TRADE", URL: "https://www.etrade.com", Icon: "📈"},
	{ID: "robinhood", Name: "Robinhood", URL: "https://www.robinhood.com", Icon: "📈"},
	{ID: "webull", Name: "Webull", URL: "https://www.webull.com", Icon: "📈"},
	{ID: "merrill", Name: "Merrill Edge", URL: "https://www.merrilledge.com", Icon: "📈"},
	{ID: "coinbase", Name: "Coinbase", URL: "https://www.coinbase.com", Icon: "₿"},
	{ID: "kraken", Name: "Kraken", URL: "https://www.kraken.com", Icon: "₿"},
	{ID: "gemini", Name: "Gemini", URL: "https://www.gemini.com", Icon: "₿"},
	{ID: "sofi", Name: "SoFi", URL: "https://www.sofi.com", Icon: "🏦"},
	{ID: "betterment", Name: "Betterment", URL: "https://www.betterment.com", Icon: "📈"},
	{ID: "wealthfront", Name: "Wealthfront", URL: "https://www.wealthfront.com", Icon: "📈"},
	{ID: FallbackID, Name: "Other (custom URL)", URL: "", Icon: "🔗"},
}

// Lookup finds a taxonomy entry by id. It returns the catch-all entry
// for unknown ids so dangling references degrade gracefully, and false
// when no catch-all exists either.
func Lookup(taxonomy []TaxonomyEntry, id string) (TaxonomyEntry, bool) {
	for _, e := range taxonomy {
		if e.ID == id {
			return e, true
		}
	}
	return Fallback(taxonomy)
}

// Fallback returns the taxonomy's catch-all entry, located by its
// sentinel id rather than by position.
func Fallback(taxonomy []TaxonomyEntry) (TaxonomyEntry, bool) {
	for _, e := range taxonomy {
		if e.ID == FallbackID {
			return e, true
		}
	}
	return TaxonomyEntry{}, false
}

// LookupInstitution finds an institution by id.
func LookupInstitution(id string) (Institution, bool) {
	for _, inst := range Institutions {
		if inst.ID == id {
			return inst, true
		}
	}
	return Institution{}, false
}
