package api

const (
	// BaseURL is the base URL for the iRail API
	BaseURL = "https://api.irail.be"

	// EndpointStations lists all stations
	// Params: lang, format
	// Response key: station
	EndpointStations = "stations"

	// EndpointConnections returns connections between two stations
	// Params: from, to, timesel, typeOfTransport, date (DDMMYY), time (HHMM), lang, format
	// Response key: connection
	EndpointConnections = "connections"
)

const (
	// KeyStations is the top-level key of the stations response
	KeyStations = "station"

	// KeyConnections is the top-level key of the connections response
	KeyConnections = "connection"
)

// DefaultParams are merged into every request; caller values win.
var DefaultParams = map[string]string{
	"format": "json",
}
