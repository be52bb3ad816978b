package models

import (
	"github.com/google/uuid"

	"finmetrics/pkg/core/collect"
	"finmetrics/pkg/core/units"
)

// BalanceSheet holds the collected statement-of-financial-position figures.
type BalanceSheet struct {
	// Non-current assets
	PPEGross                float64 `json:"ppe_gross"`
	AccumulatedDepreciation float64 `json:"accumulated_depreciation"`
	Goodwill                float64 `json:"goodwill"`
	OtherIntangibleAssets   float64 `json:"other_intangible_assets"`
	NonCurrentInvestments   float64 `json:"non_current_investments"`

	// Current assets
	Inventories        float64 `json:"inventories"`
	CurrentInvestments float64 `json:"current_investments"`
	TradeReceivables   float64 `json:"trade_receivables"`
	CashAndEquivalents float64 `json:"cash_and_equivalents"`
	BankBalances       float64 `json:"bank_balances"`
	OtherCurrentAssets float64 `json:"other_current_assets"`

	// Equity
	EquityShareCapital     float64 `json:"equity_share_capital"`
	OtherEquity            float64 `json:"other_equity"`
	NonControllingInterest float64 `json:"non_controlling_interest"`

	// Liabilities
	LongTermBorrowings      float64 `json:"long_term_borrowings"`
	ShortTermBorrowings     float64 `json:"short_term_borrowings"`
	TradePayables           float64 `json:"trade_payables"`
	OtherCurrentLiabilities float64 `json:"other_current_liabilities"`
	CurrentProvisions       float64 `json:"current_provisions"`

	// Notes to accounts (absolute numbers)
	SharesOutstandingCount float64 `json:"shares_outstanding"`
	FaceValuePerShare      float64 `json:"face_value_per_share"`
}

// ProfitAndLoss holds the collected income statement figures.
type ProfitAndLoss struct {
	RevenueFromOperations    float64 `json:"revenue_from_operations"`
	OtherIncome              float64 `json:"other_income"`
	CostMaterialsConsumed    float64 `json:"cost_materials_consumed"`
	PurchasesStockInTrade    float64 `json:"purchases_stock_in_trade"`
	ChangesInInventories     float64 `json:"changes_in_inventories"`
	EmployeeBenefitsExpense  float64 `json:"employee_benefits_expense"`
	FinanceCosts             float64 `json:"finance_costs"`
	DepreciationAmortisation float64 `json:"depreciation_amortisation"`
	OtherExpenses            float64 `json:"other_expenses"`
	ProfitBeforeTax          float64 `json:"profit_before_tax"`
	TaxExpense               float64 `json:"tax_expense"`
	ProfitForPeriod          float64 `json:"profit_for_period"`

	// Absolute numbers
	WeightedAvgShares       float64 `json:"weighted_avg_shares"`
	DilutivePotentialShares float64 `json:"dilutive_potential_shares"`
}

// CashFlowStatement holds the collected statement-of-cash-flows figures.
type CashFlowStatement struct {
	// Operating
	ProfitBeforeTax          float64 `json:"cfo_profit_before_tax"`
	DepreciationAmortisation float64 `json:"cfo_depreciation_amortisation"`
	FinanceCosts             float64 `json:"cfo_finance_costs"`
	InterestIncome           float64 `json:"cfo_interest_income"`
	ChangeInventories        float64 `json:"cfo_change_inventories"`
	ChangeReceivables        float64 `json:"cfo_change_receivables"`
	ChangePayables           float64 `json:"cfo_change_payables"`
	CashGeneratedFromOps     float64 `json:"cash_generated_from_ops"`
	IncomeTaxesPaid          float64 `json:"income_taxes_paid"`

	// Investing
	PurchasePPE       float64 `json:"purchase_ppe"`
	SalePPE           float64 `json:"sale_ppe"`
	InterestReceived  float64 `json:"cfi_interest_received"`
	DividendsReceived float64 `json:"cfi_dividends_received"`

	// Financing
	ProceedsIssueShares         float64 `json:"proceeds_issue_shares"`
	ProceedsLongTermBorrowings  float64 `json:"proceeds_long_term_borrowings"`
	RepaymentLongTermBorrowings float64 `json:"repayment_long_term_borrowings"`
	InterestPaid                float64 `json:"cff_interest_paid"`
	DividendsPaid               float64 `json:"dividends_paid"`
}

// Statements is a full collected statement set tagged with the dataset it
// came from and the unit its monetary figures are expressed in.
type Statements struct {
	DatasetID uuid.UUID  `json:"dataset_id"`
	Unit      units.Unit `json:"unit"`

	BalanceSheet BalanceSheet      `json:"balance_sheet"`
	ProfitLoss   ProfitAndLoss     `json:"profit_and_loss"`
	CashFlow     CashFlowStatement `json:"cash_flow"`
}

// StatementsFromDataset maps a collected dataset's flat key/value figures
// into typed statements.
func StatementsFromDataset(ds *collect.Dataset) *Statements {
	v := ds.Values
	return &Statements{
		DatasetID: ds.ID,
		Unit:      ds.Unit,
		BalanceSheet: BalanceSheet{
			PPEGross:                v["ppe_gross"],
			AccumulatedDepreciation: v["accumulated_depreciation"],
			Goodwill:                v["goodwill"],
			OtherIntangibleAssets:   v["other_intangible_assets"],
			NonCurrentInvestments:   v["non_current_investments"],
			Inventories:             v["inventories"],
			CurrentInvestments:      v["current_investments"],
			TradeReceivables:        v["trade_receivables"],
			CashAndEquivalents:      v["cash_and_equivalents"],
			BankBalances:            v["bank_balances"],
			OtherCurrentAssets:      v["other_current_assets"],
			EquityShareCapital:      v["equity_share_capital"],
			OtherEquity:             v["other_equity"],
			NonControllingInterest:  v["non_controlling_interest"],
			LongTermBorrowings:      v["long_term_borrowings"],
			ShortTermBorrowings:     v["short_term_borrowings"],
			TradePayables:           v["trade_payables"],
			OtherCurrentLiabilities: v["other_current_liabilities"],
			CurrentProvisions:       v["current_provisions"],
			SharesOutstandingCount:  v["shares_outstanding"],
			FaceValuePerShare:       v["face_value_per_share"],
		},
		ProfitLoss: ProfitAndLoss{
			RevenueFromOperations:    v["revenue_from_operations"],
			OtherIncome:              v["other_income"],
			CostMaterialsConsumed:    v["cost_materials_consumed"],
			PurchasesStockInTrade:    v["purchases_stock_in_trade"],
			ChangesInInventories:     v["changes_in_inventories"],
			EmployeeBenefitsExpense:  v["employee_benefits_expense"],
			FinanceCosts:             v["finance_costs"],
			DepreciationAmortisation: v["depreciation_amortisation"],
			OtherExpenses:            v["other_expenses"],
			ProfitBeforeTax:          v["profit_before_tax"],
			TaxExpense:               v["tax_expense"],
			ProfitForPeriod:          v["profit_for_period"],
			WeightedAvgShares:        v["weighted_avg_shares"],
			DilutivePotentialShares:  v["dilutive_potential_shares"],
		},
		CashFlow: CashFlowStatement{
			ProfitBeforeTax:             v["cfo_profit_before_tax"],
			DepreciationAmortisation:    v["cfo_depreciation_amortisation"],
			FinanceCosts:                v["cfo_finance_costs"],
			InterestIncome:              v["cfo_interest_income"],
			ChangeInventories:           v["cfo_change_inventories"],
			ChangeReceivables:           v["cfo_change_receivables"],
			ChangePayables:              v["cfo_change_payables"],
			CashGeneratedFromOps:        v["cash_generated_from_ops"],
			IncomeTaxesPaid:             v["income_taxes_paid"],
			PurchasePPE:                 v["purchase_ppe"],
			SalePPE:                     v["sale_ppe"],
			InterestReceived:            v["cfi_interest_received"],
			DividendsReceived:           v["cfi_dividends_received"],
			ProceedsIssueShares:         v["proceeds_issue_shares"],
			ProceedsLongTermBorrowings:  v["proceeds_long_term_borrowings"],
			RepaymentLongTermBorrowings: v["repayment_long_term_borrowings"],
			InterestPaid:                v["cff_interest_paid"],
			DividendsPaid:               v["dividends_paid"],
		},
	}
}

// TotalCurrentAssets sums the current asset lines.
func (b BalanceSheet) TotalCurrentAssets() float64 {
	return b.Inventories + b.CurrentInvestments + b.TradeReceivables +
		b.CashAndEquivalents + b.BankBalances + b.OtherCurrentAssets
}

// TotalCurrentLiabilities sums the current liability lines.
func (b BalanceSheet) TotalCurrentLiabilities() float64 {
	return b.ShortTermBorrowings + b.TradePayables +
		b.OtherCurrentLiabilities + b.CurrentProvisions
}

// NetPPE is gross block less accumulated depreciation.
func (b BalanceSheet) NetPPE() float64 {
	return b.PPEGross - b.AccumulatedDepreciation
}

// TotalAssets sums non-current and current assets.
func (b BalanceSheet) TotalAssets() float64 {
	return b.NetPPE() + b.Goodwill + b.OtherIntangibleAssets +
		b.NonCurrentInvestments + b.TotalCurrentAssets()
}

// TotalEquity sums share capital, other equity and minority interests.
func (b BalanceSheet) TotalEquity() float64 {
	return b.EquityShareCapital + b.OtherEquity + b.NonControllingInterest
}

// TotalDebt sums long-term and short-term borrowings.
func (b BalanceSheet) TotalDebt() float64 {
	return b.LongTermBorrowings + b.ShortTermBorrowings
}

// TotalLiabilities sums long-term borrowings and all current liabilities
// (short-term borrowings included).
func (b BalanceSheet) TotalLiabilities() float64 {
	return b.LongTermBorrowings + b.TotalCurrentLiabilities()
}

// WorkingCapital is current assets less current liabilities.
func (b BalanceSheet) WorkingCapital() float64 {
	return b.TotalCurrentAssets() - b.TotalCurrentLiabilities()
}

// TotalRevenue sums operating revenue and other income.
func (p ProfitAndLoss) TotalRevenue() float64 {
	return p.RevenueFromOperations + p.OtherIncome
}

// TotalExpenses sums the expense lines.
func (p ProfitAndLoss) TotalExpenses() float64 {
	return p.CostMaterialsConsumed + p.PurchasesStockInTrade +
		p.ChangesInInventories + p.EmployeeBenefitsExpense +
		p.FinanceCosts + p.DepreciationAmortisation + p.OtherExpenses
}

// EBITDA is profit before tax with finance costs and depreciation added
// back.
func (p ProfitAndLoss) EBITDA() float64 {
	return p.ProfitBeforeTax + p.FinanceCosts + p.DepreciationAmortisation
}

// EBIT is profit before tax with finance costs added back.
func (p ProfitAndLoss) EBIT() float64 {
	return p.ProfitBeforeTax + p.FinanceCosts
}

// NetOperatingCashFlow is cash generated from operations less taxes paid.
func (c CashFlowStatement) NetOperatingCashFlow() float64 {
	return c.CashGeneratedFromOps - c.IncomeTaxesPaid
}

// NetInvestingCashFlow sums the investing lines, treating purchases as
// outflows.
func (c CashFlowStatement) NetInvestingCashFlow() float64 {
	return -c.PurchasePPE + c.SalePPE + c.InterestReceived + c.DividendsReceived
}

// NetFinancingCashFlow sums the financing lines, treating repayments,
// interest and dividends as outflows.
func (c CashFlowStatement) NetFinancingCashFlow() float64 {
	return c.ProceedsIssueShares + c.ProceedsLongTermBorrowings -
		c.RepaymentLongTermBorrowings - c.InterestPaid - c.DividendsPaid
}
