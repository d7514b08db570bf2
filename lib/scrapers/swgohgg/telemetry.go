package swgohgg

import (
	"modfinder/lib/restyutil"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("modfinder.lib.scrapers.swgohgg")
var restyInstrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput makes clients created afterwards dump their
// HTTP exchanges to out.
func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyInstrumentOutput = out
}
