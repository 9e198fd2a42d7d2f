package inquiry_controller

import "github.com/krystian2077/smartpc-builder/services"

var catalogService *services.CatalogService

// Init wires the catalog service. Must be called once before the routes are
// registered.
func Init(s *services.CatalogService) {
	catalogService = s
}
