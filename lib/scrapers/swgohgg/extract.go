package swgohgg

import (
	"context"
	"modfinder/lib/htmlutil"
	"modfinder/lib/modmeta"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
)

// a row holds the character, the set icons and the four primary columns
const minCells = 6

// cell index of each observed primary stat
var slotCells = []struct {
	slot modmeta.Slot
	cell int
}{
	{slot: modmeta.SlotReceiver, cell: 2},
	{slot: modmeta.SlotHoloArray, cell: 3},
	{slot: modmeta.SlotDataBus, cell: 4},
	{slot: modmeta.SlotMultiplexer, cell: 5},
}

const setIconSelector = "div.stat-mod-set-def-icon"

// Extraction is the result of reading the report table.
type Extraction struct {
	Records []modmeta.Record
	// rows that were not character rows, like headers or spacers
	Skipped int
}

// ExtractRecords reads one record for every table row under root that has
// a character link and at least six cells, in document order. Other rows
// are skipped and only counted.
func ExtractRecords(ctx context.Context, root *goquery.Selection) Extraction {
	_, span := tracer.Start(ctx, "ExtractRecords")
	defer span.End()

	var out Extraction
	root.Find("tr").Each(func(_ int, row *goquery.Selection) {
		record, ok := extractRow(row)
		if !ok {
			out.Skipped++
			return
		}
		out.Records = append(out.Records, record)
	})

	span.SetAttributes(
		attribute.Int("records", len(out.Records)),
		attribute.Int("skipped", out.Skipped),
	)
	return out
}

func extractRow(row *goquery.Selection) (modmeta.Record, bool) {
	anchor, ok := htmlutil.FirstAnchor(row)
	if !ok || anchor.Name == "" {
		return modmeta.Record{}, false
	}

	var sets []string
	row.Find(setIconSelector).Each(func(_ int, icon *goquery.Selection) {
		name := modmeta.SetNameFromTitle(icon.AttrOr("title", ""))
		if name == "" {
			return
		}
		sets = append(sets, name)
	})

	cells := row.Find("td").Nodes
	if len(cells) < minCells {
		return modmeta.Record{}, false
	}

	record := modmeta.Record{
		Character: anchor.Name,
		Sets:      sets,
	}
	for _, sc := range slotCells {
		stat := htmlutil.LowerText(cells[sc.cell])
		switch sc.slot {
		case modmeta.SlotReceiver:
			record.Receiver = stat
		case modmeta.SlotHoloArray:
			record.HoloArray = stat
		case modmeta.SlotDataBus:
			record.DataBus = stat
		case modmeta.SlotMultiplexer:
			record.Multiplexer = stat
		}
	}
	return record, true
}
