package report

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"saldogo-server/src/models"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func ref(id, name string) *models.CategoryRef {
	return &models.CategoryRef{ID: id, Name: name, Icon: "🍕", Color: "#EF4444"}
}

func TestDashboard(t *testing.T) {
	txns := []TransactionRow{
		{Type: "income", Amount: "100"},
		{Type: "expense", Amount: "40"},
		{Type: "expense", Amount: "10"},
	}
	accounts := []AccountRow{
		{Balance: "500", IsActive: true},
		{Balance: "1000", IsActive: false},
	}

	got, err := Dashboard(txns, accounts)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if !got.TotalIncome.Equal(dec(t, "100")) {
		t.Errorf("total_income = %s, want 100", got.TotalIncome)
	}
	if !got.TotalExpense.Equal(dec(t, "50")) {
		t.Errorf("total_expense = %s, want 50", got.TotalExpense)
	}
	if !got.NetIncome.Equal(dec(t, "50")) {
		t.Errorf("net_income = %s, want 50", got.NetIncome)
	}
	if !got.TotalBalance.Equal(dec(t, "500")) {
		t.Errorf("total_balance = %s, want 500 (inactive account must be excluded)", got.TotalBalance)
	}
	if got.TransactionCount != 3 {
		t.Errorf("transaction_count = %d, want 3", got.TransactionCount)
	}
}

func TestDashboardNetIsExactlyIncomeMinusExpense(t *testing.T) {
	txns := []TransactionRow{
		{Type: "income", Amount: "0.10"},
		{Type: "income", Amount: "0.20"},
		{Type: "expense", Amount: "0.30"},
		{Type: "expense", Amount: "0.01"},
		{Type: "transfer", Amount: "99.99"},
	}
	got, err := Dashboard(txns, nil)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	// 0.1+0.2 == 0.3 exactly: the classic float trap must not appear.
	if !got.NetIncome.Equal(got.TotalIncome.Sub(got.TotalExpense)) {
		t.Errorf("net %s != income %s - expense %s", got.NetIncome, got.TotalIncome, got.TotalExpense)
	}
	if !got.NetIncome.Equal(dec(t, "-0.01")) {
		t.Errorf("net_income = %s, want -0.01", got.NetIncome)
	}
	if got.TransactionCount != 5 {
		t.Errorf("transaction_count = %d, want 5 (transfers counted)", got.TransactionCount)
	}
}

func TestDashboardMalformedAmount(t *testing.T) {
	_, err := Dashboard([]TransactionRow{{Type: "income", Amount: "12,34abc"}}, nil)
	if err == nil {
		t.Fatal("expected error for malformed amount, got none")
	}
	if !strings.Contains(err.Error(), "12,34abc") {
		t.Errorf("error should name the bad value, got: %v", err)
	}

	_, err = Dashboard(nil, []AccountRow{{Balance: "NaN-ish", IsActive: true}})
	if err == nil {
		t.Fatal("expected error for malformed balance, got none")
	}
}

func TestByCategory(t *testing.T) {
	rows := []CategoryRow{
		{Amount: "10", Category: ref("c1", "Food")},
		{Amount: "25", Category: ref("c2", "Transport")},
		{Amount: "5", Category: ref("c1", "Food")},
		{Amount: "30", Category: nil},
	}
	got, err := ByCategory(rows)
	if err != nil {
		t.Fatalf("ByCategory: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d groups, want 3", len(got))
	}
	// 30 (uncategorized) > 25 (Transport) > 15 (Food)
	if got[0].CategoryID != UncategorizedID || got[1].CategoryID != "c2" || got[2].CategoryID != "c1" {
		t.Errorf("wrong order: %s, %s, %s", got[0].CategoryID, got[1].CategoryID, got[2].CategoryID)
	}
	if got[0].CategoryName != UncategorizedName || got[0].Icon != DefaultIcon || got[0].Color != DefaultColor {
		t.Errorf("uncategorized sentinel wrong: %+v", got[0])
	}
	if !got[2].Total.Equal(dec(t, "15")) || got[2].Count != 2 {
		t.Errorf("Food group = total %s count %d, want 15 and 2", got[2].Total, got[2].Count)
	}
}

func TestByCategoryTiesKeepEncounterOrder(t *testing.T) {
	rows := []CategoryRow{
		{Amount: "20", Category: ref("b", "Second")},
		{Amount: "20", Category: ref("a", "First")},
	}
	got, err := ByCategory(rows)
	if err != nil {
		t.Fatalf("ByCategory: %v", err)
	}
	if got[0].CategoryID != "b" || got[1].CategoryID != "a" {
		t.Errorf("equal totals must keep encounter order, got %s then %s", got[0].CategoryID, got[1].CategoryID)
	}
}

func TestByCategoryOrderIndependentTotals(t *testing.T) {
	rows := []CategoryRow{
		{Amount: "1.11", Category: ref("a", "A")},
		{Amount: "2.22", Category: ref("a", "A")},
		{Amount: "3.33", Category: ref("a", "A")},
	}
	reversed := []CategoryRow{rows[2], rows[1], rows[0]}

	g1, err := ByCategory(rows)
	if err != nil {
		t.Fatal(err)
	}
	g2, err := ByCategory(reversed)
	if err != nil {
		t.Fatal(err)
	}
	if !g1[0].Total.Equal(g2[0].Total) {
		t.Errorf("totals differ by input order: %s vs %s", g1[0].Total, g2[0].Total)
	}
}

func TestByMonthTruncatesToLatestMonths(t *testing.T) {
	var rows []TransactionRow
	// 14 distinct months: 2024-01 .. 2025-02.
	for i := 0; i < 14; i++ {
		year := 2024 + i/12
		month := 1 + i%12
		rows = append(rows, TransactionRow{
			Type:   "expense",
			Amount: "10",
			Date:   models.NewDate(year, month, 15),
		})
	}
	got, err := ByMonth(rows, 12)
	if err != nil {
		t.Fatalf("ByMonth: %v", err)
	}
	if len(got) != 12 {
		t.Fatalf("got %d months, want 12", len(got))
	}
	if got[0].Month != "2024-03" {
		t.Errorf("first month = %s, want 2024-03 (two oldest dropped)", got[0].Month)
	}
	if got[11].Month != "2025-02" {
		t.Errorf("last month = %s, want 2025-02", got[11].Month)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Month >= got[i].Month {
			t.Errorf("months not ascending: %s then %s", got[i-1].Month, got[i].Month)
		}
	}
}

func TestByMonthNetPerBucket(t *testing.T) {
	rows := []TransactionRow{
		{Type: "income", Amount: "100", Date: models.NewDate(2025, 6, 1)},
		{Type: "expense", Amount: "30", Date: models.NewDate(2025, 6, 20)},
		{Type: "expense", Amount: "5", Date: models.NewDate(2025, 7, 2)},
		{Type: "transfer", Amount: "500", Date: models.NewDate(2025, 7, 3)},
	}
	got, err := ByMonth(rows, 0) // 0 falls back to the default window
	if err != nil {
		t.Fatalf("ByMonth: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d months, want 2", len(got))
	}
	june, july := got[0], got[1]
	if june.Month != "2025-06" || !june.Net.Equal(dec(t, "70")) {
		t.Errorf("june = %+v, want net 70", june)
	}
	if july.Month != "2025-07" || !july.Net.Equal(dec(t, "-5")) {
		t.Errorf("july = %+v, want net -5 (transfer ignored in sums)", july)
	}
}

func TestBudgetSpend(t *testing.T) {
	tests := []struct {
		name       string
		amount     string
		rows       []ExpenseRow
		spent      string
		remaining  string
		percentage string
	}{
		{
			name:       "quarter spent",
			amount:     "200",
			rows:       []ExpenseRow{{Amount: "20"}, {Amount: "30"}},
			spent:      "50",
			remaining:  "150",
			percentage: "25",
		},
		{
			name:       "overspend goes negative",
			amount:     "100",
			rows:       []ExpenseRow{{Amount: "150"}},
			spent:      "150",
			remaining:  "-50",
			percentage: "150",
		},
		{
			name:       "zero amount defines percentage as 0",
			amount:     "0",
			rows:       []ExpenseRow{{Amount: "10"}},
			spent:      "10",
			remaining:  "-10",
			percentage: "0",
		},
		{
			name:       "rounded to two decimals",
			amount:     "300",
			rows:       []ExpenseRow{{Amount: "100"}},
			spent:      "100",
			remaining:  "200",
			percentage: "33.33",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := BudgetSpend(tc.amount, tc.rows)
			if err != nil {
				t.Fatalf("BudgetSpend: %v", err)
			}
			if !got.Spent.Equal(dec(t, tc.spent)) {
				t.Errorf("spent = %s, want %s", got.Spent, tc.spent)
			}
			if !got.Remaining.Equal(dec(t, tc.remaining)) {
				t.Errorf("remaining = %s, want %s", got.Remaining, tc.remaining)
			}
			if !got.Percentage.Equal(dec(t, tc.percentage)) {
				t.Errorf("percentage = %s, want %s", got.Percentage, tc.percentage)
			}
		})
	}
}

func TestBudgetSpendMalformedRow(t *testing.T) {
	if _, err := BudgetSpend("100", []ExpenseRow{{Amount: "ten"}}); err == nil {
		t.Fatal("expected error for malformed expense amount")
	}
	if _, err := BudgetSpend("", nil); err == nil {
		t.Fatal("expected error for malformed budget amount")
	}
}

func TestAccountSummary(t *testing.T) {
	rows := []TransactionRow{
		{Type: "income", Amount: "250.50"},
		{Type: "expense", Amount: "0.50"},
		{Type: "transfer", Amount: "40"},
	}
	got, err := AccountSummary(rows)
	if err != nil {
		t.Fatalf("AccountSummary: %v", err)
	}
	if !got.TotalIncome.Equal(dec(t, "250.50")) || !got.TotalExpense.Equal(dec(t, "0.50")) {
		t.Errorf("summary = %+v", got)
	}
	if got.TransactionCount != 3 {
		t.Errorf("transaction_count = %d, want 3", got.TransactionCount)
	}
}

func TestInputsNotMutated(t *testing.T) {
	rows := []CategoryRow{
		{Amount: "5", Category: ref("a", "A")},
		{Amount: "9", Category: ref("b", "B")},
	}
	if _, err := ByCategory(rows); err != nil {
		t.Fatal(err)
	}
	if rows[0].Category.ID != "a" || rows[1].Category.ID != "b" {
		t.Error("input slice was mutated")
	}
}
