package settings

const (
	Binancef = "binancef"
)

// Markets lists the exchanges the client can consume and the symbols known
// to them. Symbols missing here are still streamed with default tick sizes.
var Markets = map[string]Market{
	Binancef: {
		Name: Binancef,
		Symbols: map[string]Symbol{
			"btcusd_perp": {
				Name:     "btcusd_perp",
				TickSize: 0.10,
			},
			"ethusd_perp": {
				Name:     "ethusd_perp",
				TickSize: 0.01,
			},
			"solusd_perp": {
				Name:     "solusd_perp",
				TickSize: 0.001,
			},
		},
	},
}

type Symbol struct {
	Name     string
	TickSize float64
}

// Decimal is the number of fraction digits of the tick size.
func (s Symbol) Decimal() int {
	d := 0
	for t := s.TickSize; d < 8 && t > 0 && t < 0.999999; t *= 10 {
		d++
	}
	return d
}

type Market struct {
	Name    string
	Symbols map[string]Symbol
}

// Lookup finds symbol on exchange.
func Lookup(exchange, symbol string) (Symbol, bool) {
	m, ok := Markets[exchange]
	if !ok {
		return Symbol{}, false
	}
	s, ok := m.Symbols[symbol]
	return s, ok
}
