package catalog

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/luckyakhi/selfservicereporting/report"
)

// Sample data vocabulary for the accounts fixture.
var (
	sampleRegions  = []string{"NA", "EU", "APAC", "LATAM"}
	sampleProducts = []string{"Checking", "Savings", "Brokerage", "Credit"}
	sampleStatuses = []string{"active", "dormant", "closed"}
)

// SampleAccounts builds a deterministic in-memory accounts dataset with n
// rows. All randomness is seeded here so the pipeline itself never depends
// on random or time-based values; the same seed always yields the same
// rows. The dataset ID is a fresh UUID since fixtures have no stable
// identity.
func SampleAccounts(n int, seed int64) *report.Dataset {
	rng := rand.New(rand.NewSource(seed))
	base := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

	rows := make([]report.Row, 0, n)
	for i := 0; i < n; i++ {
		opened := base.AddDate(0, 0, rng.Intn(730))
		rows = append(rows, report.Row{
			"account":  fmt.Sprintf("ACC-%05d", i+1),
			"region":   sampleRegions[rng.Intn(len(sampleRegions))],
			"product":  sampleProducts[rng.Intn(len(sampleProducts))],
			"status":   sampleStatuses[rng.Intn(len(sampleStatuses))],
			"balance":  float64(rng.Intn(1_000_000)) / 100,
			"txCount":  rng.Intn(500),
			"openedOn": opened.Format("2006-01-02"),
		})
	}

	return &report.Dataset{
		ID:          uuid.NewString(),
		Name:        "accounts",
		Description: "Sample account balances by region and product",
		Attributes: []report.Attribute{
			{Name: "account", Label: "Account", Type: report.TypeString},
			{Name: "region", Label: "Region", Type: report.TypeString},
			{Name: "product", Label: "Product", Type: report.TypeString},
			{Name: "status", Label: "Status", Type: report.TypeString},
			{Name: "balance", Label: "Balance", Type: report.TypeCurrency},
			{Name: "txCount", Label: "Transactions", Type: report.TypeNumber},
			{Name: "openedOn", Label: "Opened On", Type: report.TypeDate},
		},
		Rows: rows,
	}
}
