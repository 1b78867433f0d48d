package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	// RateStore holds the exchange rate cache, the previous rate and the rate history.
	RateStore KeyValueStore
	// SettingsStore holds the date and money format preferences.
	SettingsStore KeyValueStore
}
