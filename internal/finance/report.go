package finance

import (
	"sort"
	"time"

	"prorab-finance/internal/models"
)

// UnknownKey — зарезервированный ключ для строк без категории или способа
// оплаты. Фронт завязан на этот литерал, менять нельзя.
const UnknownKey = "unknown"

// ReportInput — полный набор сырых строк пользователя, из которых строится
// отчёт. Доп. работы и оплаты передаются без фильтра по датам: по ним
// считаются долги.
type ReportInput struct {
	Projects        []models.Project
	AdditionalWorks map[uint][]models.AdditionalWork // по id объекта
	Payments        map[uint][]models.ClientPayment  // по id объекта
	ObjectExpenses  []models.Expense
	GlobalExpenses  []models.Expense
}

// Debtor — объект, по которому заказчик ещё должен.
type Debtor struct {
	ProjectID   uint    `json:"projectId"`
	ProjectName string  `json:"projectName"`
	Balance     float64 `json:"balance"`
}

// PortfolioReport — сводка по всем объектам за период [From, To]
// (обе границы включительно, To — до конца дня).
type PortfolioReport struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`

	// суммы по договорам — по всем объектам, без фильтра по периоду
	TotalContractPrices  float64 `json:"totalContractPrices"`
	TotalAdditionalWorks float64 `json:"totalAdditionalWorks"`
	TotalActualPrices    float64 `json:"totalActualPrices"`

	// доход и расходы — только за период
	TotalIncome         float64 `json:"totalIncome"`
	TotalObjectExpenses float64 `json:"totalObjectExpenses"`
	TotalGlobalExpenses float64 `json:"totalGlobalExpenses"`
	TotalExpenses       float64 `json:"totalExpenses"`
	NetProfit           float64 `json:"netProfit"`

	// долги — всегда из полных сумм оплат и доп. работ
	TotalDebt float64  `json:"totalDebt"`
	Debtors   []Debtor `json:"debtors"`

	// TotalBalance намеренно смешивает полную стоимость договоров с доходом
	// за период. Это не бухгалтерское тождество, а продуктовая цифра
	// "сколько ещё должны собрать" — менять формулу нельзя без продукта.
	TotalBalance float64 `json:"totalBalance"`

	IncomeByMethod           map[string]float64 `json:"incomeByMethod"`
	ExpensesByMethod         map[string]float64 `json:"expensesByMethod"`
	ObjectExpensesByCategory map[string]float64 `json:"objectExpensesByCategory"`
	GlobalExpensesByCategory map[string]float64 `json:"globalExpensesByCategory"`

	TotalObjects   int `json:"totalObjects"`
	OpenObjects    int `json:"openObjects"`
	ClosedObjects  int `json:"closedObjects"`
	ClosedInPeriod int `json:"closedInPeriod"`
}

// BuildReport сворачивает сырые строки в сводку. Чистая функция: никакого
// состояния между вызовами, при неизменных строках результат идентичен.
// Пустой набор объектов — это нулевые суммы, а не ошибка; from > to даёт
// пустой период.
func BuildReport(in ReportInput, from, to time.Time) PortfolioReport {
	r := PortfolioReport{
		From:                     from,
		To:                       to,
		Debtors:                  []Debtor{},
		IncomeByMethod:           map[string]float64{},
		ExpensesByMethod:         map[string]float64{},
		ObjectExpensesByCategory: map[string]float64{},
		GlobalExpensesByCategory: map[string]float64{},
	}

	for _, p := range in.Projects {
		r.TotalObjects++
		if p.Status == models.StatusClosed {
			r.ClosedObjects++
			if p.ClosedAt != nil && inRange(*p.ClosedAt, from, to) {
				r.ClosedInPeriod++
			}
		} else {
			r.OpenObjects++
		}

		works := in.AdditionalWorks[p.ID]
		payments := in.Payments[p.ID]

		r.TotalContractPrices += p.ContractPrice
		for _, w := range works {
			r.TotalAdditionalWorks += w.Amount
		}

		fin := Reconcile(p.ContractPrice, works, payments)
		if fin.Status == StatusDebt {
			r.TotalDebt += fin.Balance
			r.Debtors = append(r.Debtors, Debtor{
				ProjectID:   p.ID,
				ProjectName: p.Name,
				Balance:     fin.Balance,
			})
		}

		for _, pay := range payments {
			if !inRange(pay.Date, from, to) {
				continue
			}
			r.TotalIncome += pay.Amount
			r.IncomeByMethod[keyOrUnknown(pay.PaymentMethodID)] += pay.Amount
		}
	}

	// стабильный порядок должников независимо от порядка входных строк
	sort.Slice(r.Debtors, func(i, j int) bool {
		return r.Debtors[i].ProjectID < r.Debtors[j].ProjectID
	})

	for _, e := range in.ObjectExpenses {
		if !inRange(e.Date, from, to) {
			continue
		}
		r.TotalObjectExpenses += e.Amount
		r.ObjectExpensesByCategory[keyOrUnknown(e.CategoryID)] += e.Amount
		r.ExpensesByMethod[keyOrUnknown(e.PaymentMethodID)] += e.Amount
	}
	for _, e := range in.GlobalExpenses {
		if !inRange(e.Date, from, to) {
			continue
		}
		r.TotalGlobalExpenses += e.Amount
		r.GlobalExpensesByCategory[keyOrUnknown(e.CategoryID)] += e.Amount
		// расходы по объектам и общие делят одну разбивку по способам оплаты
		r.ExpensesByMethod[keyOrUnknown(e.PaymentMethodID)] += e.Amount
	}

	r.TotalActualPrices = r.TotalContractPrices + r.TotalAdditionalWorks
	r.TotalExpenses = r.TotalObjectExpenses + r.TotalGlobalExpenses
	r.NetProfit = r.TotalIncome - r.TotalExpenses
	r.TotalBalance = r.TotalActualPrices - r.TotalIncome

	return r
}

func keyOrUnknown(id string) string {
	if id == "" {
		return UnknownKey
	}
	return id
}

// inRange сравнивает по календарному дню, обе границы включительно.
func inRange(d, from, to time.Time) bool {
	day := toDay(d)
	return !day.Before(toDay(from)) && !day.After(toDay(to))
}

func toDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
