package entity

// Conjuntos del catálogo maestro. Cada uno es una lista ordenada de valores únicos
// (comparación exacta, sensible a mayúsculas); el orden de inserción es el orden de despliegue.
const (
	CatalogSuppliers = "suppliers"
	CatalogProducts  = "products"
	CatalogLocations = "locations"
	CatalogAccounts  = "accounts"
)

// CatalogSets lista los conjuntos válidos del catálogo maestro.
var CatalogSets = []string{CatalogSuppliers, CatalogProducts, CatalogLocations, CatalogAccounts}

// IsCatalogSet indica si setName es uno de los conjuntos del catálogo maestro.
func IsCatalogSet(setName string) bool {
	for _, s := range CatalogSets {
		if s == setName {
			return true
		}
	}
	return false
}
