package finance

import "prorab-finance/internal/models"

// ProjectFinance — расчётное финансовое состояние одного объекта.
// Не хранится в БД: пересчитывается из сырых строк при каждом запросе,
// поэтому зависит только от данных самого объекта.
type ProjectFinance struct {
	ContractPrice        float64       `json:"contractPrice"`
	TotalAdditionalWorks float64       `json:"totalAdditionalWorks"`
	ActualPrice          float64       `json:"actualPrice"`
	TotalPayments        float64       `json:"totalPayments"`
	Balance              float64       `json:"balance"`
	Status               BalanceStatus `json:"status"`
}

// Reconcile считает остаток по объекту из всех его доп. работ и оплат.
// Даты здесь не фильтруются: долг — это то, что должны сейчас,
// а не за отчётный период.
func Reconcile(contractPrice float64, works []models.AdditionalWork, payments []models.ClientPayment) ProjectFinance {
	var totalWorks, totalPayments float64
	for _, w := range works {
		totalWorks += w.Amount
	}
	for _, p := range payments {
		totalPayments += p.Amount
	}

	balance := contractPrice + totalWorks - totalPayments

	return ProjectFinance{
		ContractPrice:        contractPrice,
		TotalAdditionalWorks: totalWorks,
		ActualPrice:          contractPrice + totalWorks,
		TotalPayments:        totalPayments,
		Balance:              balance,
		Status:               Classify(balance),
	}
}

// ProjectProfit — прибыль по объекту: (договор + доп. работы) минус
// расходы по объекту. Оплаты здесь не участвуют.
func ProjectProfit(contractPrice float64, works []models.AdditionalWork, expenses []models.Expense) float64 {
	profit := contractPrice
	for _, w := range works {
		profit += w.Amount
	}
	for _, e := range expenses {
		profit -= e.Amount
	}
	return profit
}
