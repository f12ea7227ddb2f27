package sales

import "github.com/shopspring/decimal"

// tally acumulador por clave que conserva el orden de primera aparición.
type tally struct {
	keys  []string
	qty   map[string]int
	sales map[string]decimal.Decimal
}

func newTally() *tally {
	return &tally{qty: map[string]int{}, sales: map[string]decimal.Decimal{}}
}

func (t *tally) add(key string, qty int, amount decimal.Decimal) {
	if _, ok := t.qty[key]; !ok {
		t.keys = append(t.keys, key)
		t.sales[key] = decimal.Zero
	}
	t.qty[key] += qty
	t.sales[key] = t.sales[key].Add(amount)
}

func (t *tally) len() int { return len(t.keys) }

// best clave con cantidad estrictamente mayor; en empate gana la primera vista.
// Cantidades en cero nunca ganan (ok=false si no hay ninguna positiva).
func (t *tally) best() (key string, qty int, amount decimal.Decimal, ok bool) {
	amount = decimal.Zero
	for _, k := range t.keys {
		if t.qty[k] > qty {
			key, qty, amount, ok = k, t.qty[k], t.sales[k], true
		}
	}
	return key, qty, amount, ok
}
