package analysis

import (
	"bytes"
	"testing"

	"github.com/choulifeisgood/valuation-agent/internal/models"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G'}

func TestRenderFootballField(t *testing.T) {
	field := models.FootballField{
		CurrentPrice: 150,
		Bars: []models.ValuationBar{
			{Method: "DCF", Low: 153, Mid: 180, High: 207},
			{Method: "P/E Multiple", Low: 148.5, Mid: 165, High: 181.5},
		},
	}

	png, err := renderFootballField("AAPL", field)
	if err != nil {
		t.Fatalf("renderFootballField failed: %v", err)
	}
	if !bytes.HasPrefix(png, pngHeader) {
		t.Error("output is not a PNG")
	}
}

func TestRenderFootballField_NoBars(t *testing.T) {
	_, err := renderFootballField("AAPL", models.FootballField{CurrentPrice: 150})
	if err == nil {
		t.Error("renderFootballField succeeded with no bars, want error")
	}
}
