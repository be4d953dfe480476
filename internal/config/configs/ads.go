package configs

import "strings"

// Ads holds the live ad-platform credentials and campaign defaults.
type Ads struct {
	ClientID        string `env:"CLIENT_ID,notEmpty"`
	ClientSecret    string `env:"CLIENT_SECRET,notEmpty"`
	DeveloperToken  string `env:"DEVELOPER_TOKEN,notEmpty"`
	RedirectURI     string `env:"REDIRECT_URI,notEmpty"`
	FrontendURL     string `env:"FRONTEND_URL,notEmpty"`
	LoginCustomerID string `env:"LOGIN_CUSTOMER_ID"`
	APIVersion      string `env:"API_VERSION" envDefault:"v17"`
	// DailyBudgetMinor is the daily budget of generated campaigns in minor
	// units of the account currency.
	DailyBudgetMinor int64 `env:"DAILY_BUDGET_MINOR" envDefault:"2500"`
}

// LandingURL is the final URL every generated ad points to.
func (a Ads) LandingURL() string {
	return strings.TrimRight(a.FrontendURL, "/") + "/landing"
}
