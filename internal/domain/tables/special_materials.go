package tables

import "github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"

// AsbestosMaterialID is the special material for which the simplified method does not apply
const AsbestosMaterialID = "amianto"

// SpecialMaterial is a material whose danger class is fixed by the method rather than derived from phrases
type SpecialMaterial struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	DangerClass entities.DangerClass `json:"danger_class"`
	Notes       string               `json:"notes,omitempty"`
}

var specialMaterials = []SpecialMaterial{
	{ID: "iron", Name: "Hierro (humos/polvo)", DangerClass: 2},
	{ID: "cereal", Name: "Cereal (polvo)", DangerClass: 2},
	{ID: "graphite", Name: "Grafito", DangerClass: 2},
	{ID: "construction", Name: "Material de construcción", DangerClass: 2},
	{ID: "talc", Name: "Talco (sin amianto)", DangerClass: 3},
	{ID: "cement", Name: "Cemento Portland", DangerClass: 3},
	{ID: "welding_mild", Name: "Soldadura (acero suave)", DangerClass: 3},
	{ID: "welding_stainless", Name: "Soldadura (acero inoxidable)", DangerClass: 4, Notes: "Contiene cromo VI"},
	{ID: "welding_galvanized", Name: "Soldadura (galvanizado)", DangerClass: 4},
	{ID: "ceramic_fibers", Name: "Fibras cerámicas", DangerClass: 4},
	{ID: "vegetable_fibers", Name: "Fibras vegetales", DangerClass: 3},
	{ID: "lead_paint", Name: "Pinturas de plomo", DangerClass: 5},
	{ID: "grinding_wheels", Name: "Muelas abrasivas", DangerClass: 2},
	{ID: "sand", Name: "Arenas (sílice)", DangerClass: 4, Notes: "Sílice cristalina"},
	{ID: "cutting_oils", Name: "Aceites de corte (nebulización)", DangerClass: 3},
	{ID: "softwood", Name: "Maderas blandas", DangerClass: 3},
	{ID: "hardwood", Name: "Maderas duras", DangerClass: 4, Notes: "Cancerígeno categoría 1"},
	{ID: AsbestosMaterialID, Name: "Amianto (asbesto)", DangerClass: 5, Notes: "Requiere evaluación cuantitativa obligatoria (RD 396/2006)"},
	{ID: "bitumen", Name: "Betunes / asfalto", DangerClass: 3},
	{ID: "gasoline", Name: "Gasolina", DangerClass: 4},
	{ID: "diesel", Name: "Gasóleo / Diésel", DangerClass: 3},
	{ID: "mineral_wool", Name: "Lana mineral", DangerClass: 2},
	{ID: "plaster", Name: "Yeso", DangerClass: 2},
	{ID: "flour", Name: "Harina", DangerClass: 3},
	{ID: "sugar", Name: "Azúcar (polvo)", DangerClass: 2},
}

var specialMaterialsByID = func() map[string]SpecialMaterial {
	m := make(map[string]SpecialMaterial, len(specialMaterials))
	for _, sm := range specialMaterials {
		m[sm.ID] = sm
	}
	return m
}()

// SpecialMaterials returns a copy of the catalog in its published order
func SpecialMaterials() []SpecialMaterial {
	out := make([]SpecialMaterial, len(specialMaterials))
	copy(out, specialMaterials)
	return out
}

// FindSpecialMaterial looks up a catalog entry by id
func FindSpecialMaterial(id string) (SpecialMaterial, bool) {
	sm, ok := specialMaterialsByID[id]
	return sm, ok
}
