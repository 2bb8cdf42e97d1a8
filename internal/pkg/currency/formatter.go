package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// supportedLocales are the display locales the formatter can render. Match
// returns the first entry for tags outside the set, so an unparsable or
// unsupported configured locale degrades to Indonesian grouping instead of
// root-locale output.
var supportedLocales = language.NewMatcher([]language.Tag{
	language.Indonesian,
	language.English,
})

// Formatter renders integer amounts in minor currency units with the grouping
// rules of the configured locale, e.g. 39999 -> "Rp 39.999" under "id".
type Formatter struct {
	printer *message.Printer
	symbol  string
}

func NewFormatter(locale, symbol string) *Formatter {
	tag := language.Indonesian
	if parsed, err := language.Parse(locale); err == nil {
		tag, _, _ = supportedLocales.Match(parsed)
	}

	return &Formatter{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}
}

func (f *Formatter) Format(amount int64) string {
	return f.printer.Sprintf("%s %v", f.symbol, number.Decimal(amount))
}
