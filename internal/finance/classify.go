package finance

// BalanceStatus — трёхзначная классификация остатка по объекту.
type BalanceStatus string

const (
	StatusDebt     BalanceStatus = "debt"
	StatusOverpaid BalanceStatus = "overpaid"
	StatusSettled  BalanceStatus = "closed"
)

// Epsilon — допуск, в пределах которого остаток считается погашенным.
const Epsilon = 0.01

// Classify относит остаток к долгу, переплате или закрытому расчёту.
// Граница не входит: ровно ±Epsilon — это ещё "closed".
func Classify(balance float64) BalanceStatus {
	switch {
	case balance > Epsilon:
		return StatusDebt
	case balance < -Epsilon:
		return StatusOverpaid
	default:
		return StatusSettled
	}
}
