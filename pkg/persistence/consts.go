package persistence

// Default locations for the persisted documents and the config file.
const (
	DefaultHotelsPath       = "./hotels.json"
	DefaultCustomersPath    = "./customers.json"
	DefaultReservationsPath = "./reservations.json"
	DefaultSQLitePath       = "./reservations.db"
	DefaultConfigPath       = "./config.yaml"
)
