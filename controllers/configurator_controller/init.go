package configurator_controller

import "github.com/krystian2077/smartpc-builder/services"

var (
	catalogService *services.CatalogService
	sessionStore   *services.SessionStore
)

// Init wires the catalog service and the session store. Must be called once
// before the routes are registered.
func Init(catalog *services.CatalogService, sessions *services.SessionStore) {
	catalogService = catalog
	sessionStore = sessions
}
