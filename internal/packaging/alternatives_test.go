package packaging

import (
	"testing"

	"github.com/MKhiriev/go-waste-tracker/models"
	"github.com/stretchr/testify/assert"
)

func TestEngine_HighWasteItems(t *testing.T) {
	e := NewEngine(DefaultTaxonomy())

	logs := Collection{
		logAt("1", "Spinach", "2024-06-01T10:00:00Z", "PLASTIC_FILM", false),
		logAt("2", "spinach ", "2024-06-03T10:00:00Z", "FOAM", false),
		logAt("3", "Apples", "2024-06-02T10:00:00Z", "NO_PACKAGING", true),
		logAt("4", "Yogurt", "2024-06-02T11:00:00Z", "tub", false),
	}

	got := e.HighWasteItems(logs, 10)

	assert.Equal(t, []models.HighWasteItem{
		{FoodItemName: "spinach ", PackagingType: "FOAM", PackagingLabel: e.Taxonomy().Label("FOAM")},
		{FoodItemName: "Yogurt", PackagingType: "tub", PackagingLabel: "tub"},
	}, got)
}

func TestEngine_HighWasteItems_Limit(t *testing.T) {
	e := NewEngine(DefaultTaxonomy())

	logs := Collection{
		logAt("1", "A", "2024-06-01", "FOAM", false),
		logAt("2", "B", "2024-06-02", "FOAM", false),
		logAt("3", "C", "2024-06-03", "FOAM", false),
	}

	got := e.HighWasteItems(logs, 2)
	if assert.Len(t, got, 2) {
		assert.Equal(t, "C", got[0].FoodItemName)
		assert.Equal(t, "B", got[1].FoodItemName)
	}

	assert.Empty(t, e.HighWasteItems(nil, 10))
	assert.NotNil(t, e.HighWasteItems(nil, 10))
}
