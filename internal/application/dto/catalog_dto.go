package dto

// AddCatalogValueRequest body para POST /api/catalog/:set.
type AddCatalogValueRequest struct {
	Value string `json:"value"`
}

// CatalogSnapshotResponse snapshot completo de un conjunto tras una consulta o mutación.
// Toda mutación recarga el conjunto para que los selectores dependientes vean un estado consistente.
type CatalogSnapshotResponse struct {
	Set    string   `json:"set"`
	Values []string `json:"values"`
}
