package scenario

import "github.com/csheth/templeops/internal/keywords"

var inventoryTriggers = []string{
	"do we have", "is there any", "is there enough", "are there any", "are there enough",
	"in stock", "stock of", "how much stock",
}

type stockEntry struct {
	terms  []string
	answer string
}

// FlowerStockAnswer is the stock report for flowers.
const FlowerStockAnswer = "Flower stock: 40 kg marigold and 15 kg jasmine in cold storage. Next delivery is due tomorrow at 6:00 AM."

var stockTable = []stockEntry{
	{terms: []string{"flower", "flowers", "marigold", "jasmine"}, answer: FlowerStockAnswer},
	{terms: []string{"ghee"}, answer: "Ghee stock: 180 litres in the main store, enough for six days of deepa and naivedya."},
	{terms: []string{"rice"}, answer: "Rice stock: 2,400 kg in the granary. Annadanam uses about 350 kg a day."},
	{terms: []string{"coconut", "coconuts"}, answer: "Coconut stock: 1,100 in the stores, with 500 more arriving on Friday."},
	{terms: []string{"camphor", "karpura"}, answer: "Camphor stock: 35 kg, enough for about three weeks of arati."},
	{terms: []string{"oil", "lamp oil", "sesame oil"}, answer: "Lamp oil stock: 220 litres of sesame oil for the deepa stands."},
	{terms: []string{"sandalwood", "chandan", "gandha"}, answer: "Sandalwood paste stock: 12 kg, of which 5 kg is reserved for Friday's abhisheka."},
	{terms: []string{"vastra", "cloth", "silk", "saree", "sarees", "dhoti", "dhotis"}, answer: "Vastra stock: 60 silk sarees and 85 dhotis in the alankara room."},
}

const unknownStockAnswer = "I couldn't find an inventory record for that. I track flowers, ghee, rice, coconuts, camphor, oil, sandalwood and vastra."

// Inventory answers stock questions in chat without touching the canvas.
func Inventory(req Request) *Reply {
	words := keywords.New(req.Query)
	if !words.Has(inventoryTriggers...) {
		return nil
	}
	for _, entry := range stockTable {
		if words.Has(entry.terms...) {
			return &Reply{Text: entry.answer}
		}
	}
	return &Reply{Text: unknownStockAnswer}
}
