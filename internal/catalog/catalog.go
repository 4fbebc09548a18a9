// Package catalog holds the ordered list of issues to file.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/clintrovert/issueseed/pkg/types"
)

// ErrEmpty is returned when a catalog contains no records
var ErrEmpty = errors.New("catalog has no issues")

var defaultIssues = []types.IssueRecord{
	// Search & stock info
	{Title: "Stock Search: Symbol Input Field", Body: "Implement an input field for users to enter ticker symbols (e.g., AAPL).", Labels: []string{"frontend", "feature"}},
	{Title: "Autocomplete for Ticker Search", Body: "Suggest matching tickers as user types using public stock APIs.", Labels: []string{"frontend", "enhancement"}},
	{Title: "Display Real-Time Stock Info", Body: "Show company name, current stock price, and % change.", Labels: []string{"frontend", "api"}},
	{Title: "Show Basic Stock Metrics", Body: "Display market cap, P/E, and 52-week high/low.", Labels: []string{"frontend", "api"}},
	{Title: "Render Historical Stock Chart", Body: "Line chart with range options: 1D, 1W, 1M, 1Y.", Labels: []string{"charting", "frontend"}},

	// Trading simulation
	{Title: "Simulate Buy Stock Action", Body: "Allow users to simulate buying shares with a local/persistent state.", Labels: []string{"backend", "simulation"}},
	{Title: "Simulate Sell Stock Action", Body: "Allow users to sell owned shares from their portfolio.", Labels: []string{"backend", "simulation"}},
	{Title: "Track Simulated Cash Balance", Body: "Start each user with a simulated balance of $100,000.", Labels: []string{"backend", "simulation"}},
	{Title: "Transaction Fee Simulation", Body: "Deduct $5 from cash balance for every buy/sell.", Labels: []string{"backend", "simulation"}},
	{Title: "Prevent Invalid Trades", Body: "Disallow trades exceeding available cash or shares owned.", Labels: []string{"validation", "backend"}},

	// Portfolio management
	{Title: "Display Portfolio Holdings", Body: "List all currently held stocks with share counts.", Labels: []string{"frontend", "portfolio"}},
	{Title: "Calculate Total Portfolio Value", Body: "Add cash + market value of all holdings (live).", Labels: []string{"backend", "calculation"}},
	{Title: "Track Gain/Loss (Realized & Unrealized)", Body: "Show both paper and actual profit/loss.", Labels: []string{"backend", "calculation"}},
	{Title: "Pie Chart of Portfolio Allocation", Body: "Visualize current portfolio by percentage using a donut chart.", Labels: []string{"frontend", "charting"}},
	{Title: "Track Average Cost Per Stock", Body: "Calculate and store average cost per share.", Labels: []string{"backend", "calculation"}},

	// Transaction history
	{Title: "Log Each Trade with Timestamp", Body: "Record every trade with datetime and details.", Labels: []string{"backend", "logging"}},
	{Title: "Separate Realized vs Unrealized Profit/Loss", Body: "Differentiate profit types clearly.", Labels: []string{"reporting", "calculation"}},
	{Title: "Export Transaction History to CSV", Body: "Let users download trade history.", Labels: []string{"frontend", "export"}},

	// Market context
	{Title: "Live News Feed for Each Stock", Body: "Display headlines from news API per ticker.", Labels: []string{"frontend", "api"}},
	{Title: "Upcoming Earnings & Dividend Dates", Body: "Pull data from financial calendar APIs.", Labels: []string{"api", "feature"}},
	{Title: "Volatility/Risk Score", Body: "Show simple risk score based on past price swings.", Labels: []string{"data", "backend"}},

	// Watchlist
	{Title: "Add Stock to Watchlist", Body: "Add tickers without buying.", Labels: []string{"frontend", "user"}},
	{Title: "Quick View for Watchlist Stocks", Body: "Price and % change in compact format.", Labels: []string{"frontend", "user"}},

	// User accounts & persistence
	{Title: "User Authentication (Login/Signup)", Body: "Use Firebase/Auth0 for secure auth.", Labels: []string{"auth", "backend"}},
	{Title: "Save Portfolio to Firestore", Body: "Persist user data for cloud sync.", Labels: []string{"backend", "persistence"}},
	{Title: "Multi-Device Sync", Body: "Ensure state consistency across devices.", Labels: []string{"backend", "persistence"}},

	// UX enhancements
	{Title: "Dark Mode Toggle", Body: "Add a theme switcher between light/dark.", Labels: []string{"frontend", "ui"}},
	{Title: "Responsive Mobile Layout", Body: "Ensure layout adapts to small screens.", Labels: []string{"frontend", "ui"}},
	{Title: "Accessibility (ARIA/Keyboard Nav)", Body: "Improve keyboard navigation and screen reader support.", Labels: []string{"frontend", "a11y"}},
}

// Default returns a copy of the built-in catalog in declaration order
func Default() []types.IssueRecord {
	return cloneAll(defaultIssues)
}

// Load reads a YAML list of issue records from path
func Load(path string) ([]types.IssueRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var records []types.IssueRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	if err := Validate(records); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}

	return records, nil
}

// Resolve returns the records from path, or the default catalog when path is empty
func Resolve(path string) ([]types.IssueRecord, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks that records is non-empty and every title is set
func Validate(records []types.IssueRecord) error {
	if len(records) == 0 {
		return ErrEmpty
	}
	for i, r := range records {
		if strings.TrimSpace(r.Title) == "" {
			return fmt.Errorf("issue %d has an empty title", i)
		}
	}
	return nil
}

func cloneAll(records []types.IssueRecord) []types.IssueRecord {
	out := make([]types.IssueRecord, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}
