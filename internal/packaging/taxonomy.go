package packaging

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-waste-tracker/models"
)

// Taxonomy is an immutable lookup table of packaging types.
// The zero value is an empty taxonomy in which every lookup misses.
type Taxonomy struct {
	types []models.PackagingType
	index map[string]int
}

// defaultPackagingTypes lists the packaging types offered to users,
// low-waste entries first.
var defaultPackagingTypes = []models.PackagingType{
	{ID: "NO_PACKAGING", Label: "No Packaging (e.g., loose produce)", IsLowWaste: true},
	{ID: "BULK_OWN_CONTAINER", Label: "Bulk (dispensed into own container)", IsLowWaste: true},
	{ID: "REUSABLE_CONTAINER", Label: "Reusable Container (e.g., returnable bottle, own lunchbox)", IsLowWaste: true},
	{ID: "PAPER_CARDBOARD", Label: "Paper/Cardboard (uncoated, recyclable)", IsLowWaste: true},
	{ID: "GLASS", Label: "Glass (recyclable jar/bottle)", IsLowWaste: true},
	{ID: "METAL", Label: "Metal (aluminum/steel can)", IsLowWaste: true},
	{ID: "COMPOSTABLE_CERTIFIED", Label: "Compostable (certified home/industrial)", IsLowWaste: true},
	{ID: "PLASTIC_RIGID_PET_HDPE", Label: "Plastic - Rigid, Recyclable (e.g., PET bottles #1, HDPE jugs #2)", IsLowWaste: false},
	{ID: "PLASTIC_FILM", Label: "Plastic - Film (e.g., wrappers, bags)", IsLowWaste: false},
	{ID: "PLASTIC_RIGID_OTHER", Label: "Plastic - Rigid, Other (Types #3, #4, #5, #6, #7)", IsLowWaste: false},
	{ID: "PLASTIC_COATED_PAPER", Label: "Plastic-Coated Paper (e.g., some coffee cups, Tetra Paks)", IsLowWaste: false},
	{ID: "FOAM", Label: "Foam (e.g., Styrofoam, EPS trays)", IsLowWaste: false},
	{ID: "WAXED_PAPER_CARDBOARD", Label: "Waxed Paper/Cardboard (e.g., some food wraps, butcher paper)", IsLowWaste: false},
	{ID: "FLEXIBLE_LAMINATE_POUCH", Label: "Flexible Laminate Pouch (e.g., tuna, baby food, juice pouches)", IsLowWaste: false},
	{ID: "MIXED_MATERIALS", Label: "Mixed Materials (e.g., crisp bags with foil lining)", IsLowWaste: false},
	{ID: "OTHER_UNKNOWN", Label: "Other/Unknown", IsLowWaste: false},
}

// DefaultTaxonomy returns the built-in packaging taxonomy.
func DefaultTaxonomy() Taxonomy {
	t, err := NewTaxonomy(defaultPackagingTypes...)
	if err != nil {
		// the built-in table is a constant; a failure here is a programming error
		panic(err)
	}
	return t
}

// NewTaxonomy builds a Taxonomy from the given types, preserving their order.
// Empty and duplicate ids are rejected.
func NewTaxonomy(types ...models.PackagingType) (Taxonomy, error) {
	t := Taxonomy{
		types: make([]models.PackagingType, 0, len(types)),
		index: make(map[string]int, len(types)),
	}

	for _, pt := range types {
		if strings.TrimSpace(pt.ID) == "" {
			return Taxonomy{}, ErrEmptyPackagingTypeID
		}
		if _, ok := t.index[pt.ID]; ok {
			return Taxonomy{}, fmt.Errorf("%w: %s", ErrDuplicatePackagingTypeID, pt.ID)
		}
		t.index[pt.ID] = len(t.types)
		t.types = append(t.types, pt)
	}

	return t, nil
}

// Lookup returns the packaging type with the given id.
// Free-text packaging values are reported as not found.
func (t Taxonomy) Lookup(id string) (models.PackagingType, bool) {
	i, ok := t.index[id]
	if !ok {
		return models.PackagingType{}, false
	}
	return t.types[i], true
}

// Label returns the human-readable label of id, or id itself when it is not
// part of the taxonomy.
func (t Taxonomy) Label(id string) string {
	if pt, ok := t.Lookup(id); ok {
		return pt.Label
	}
	return id
}

// Types returns a copy of all packaging types in declaration order.
func (t Taxonomy) Types() []models.PackagingType {
	out := make([]models.PackagingType, len(t.types))
	copy(out, t.types)
	return out
}

// IsLowWaste resolves the waste tier of id. The second result is false when
// id is not part of the taxonomy.
func (t Taxonomy) IsLowWaste(id string) (lowWaste bool, known bool) {
	pt, ok := t.Lookup(id)
	return pt.IsLowWaste, ok
}
