package testutil

// Sample JSON responses for API testing

// SampleStationsResponse is a minimal valid stations response
const SampleStationsResponse = `{
	"version": "1.3",
	"timestamp": "1760868000",
	"station": [
		{
			"@id": "http://irail.be/stations/NMBS/008814001",
			"id": "BE.NMBS.008814001",
			"name": "Brussels-South/Brussels-Midi",
			"locationX": "4.336531",
			"locationY": "50.835707",
			"standardname": "Brussel-Zuid/Bruxelles-Midi"
		},
		{
			"@id": "http://irail.be/stations/NMBS/008892007",
			"id": "BE.NMBS.008892007",
			"name": "Ghent-Sint-Pieters",
			"locationX": "3.710675",
			"locationY": "51.035896",
			"standardname": "Gent-Sint-Pieters"
		},
		{
			"@id": "http://irail.be/stations/NMBS/008821006",
			"id": "BE.NMBS.008821006",
			"name": "Antwerp-Central",
			"locationX": "4.421101",
			"locationY": "51.2172",
			"standardname": "Antwerpen-Centraal"
		}
	]
}`

// SampleConnectionsResponse is a minimal valid connections response
const SampleConnectionsResponse = `{
	"version": "1.3",
	"timestamp": "1650000000",
	"connection": [
		{
			"id": "1",
			"departure": {"time": "1650000000", "delay": "120", "platform": "4", "canceled": "0", "station": "Brussels-South/Brussels-Midi", "vehicle": "BE.NMBS.IC1515"},
			"arrival": {"time": "1650003600", "delay": "0", "platform": "1", "canceled": "0", "station": "Ghent-Sint-Pieters"},
			"duration": "3600",
			"alerts": []
		},
		{
			"id": "2",
			"departure": {"time": "1650001800", "delay": "0", "platform": "5", "canceled": "1", "station": "Brussels-South/Brussels-Midi"},
			"arrival": {"time": "1650006000", "delay": "300", "platform": "3", "canceled": "0", "station": "Ghent-Sint-Pieters"},
			"duration": "4200",
			"vias": {"number": "1", "via": [{"id": "0", "station": "Denderleeuw", "timebetween": "360"}]},
			"alerts": {"number": "2", "alert": [{"id": "0", "header": "Works between Denderleeuw and Aalst"}]}
		}
	]
}`

// SampleEmptyResponse is an empty JSON object
const SampleEmptyResponse = `{}`

// SampleErrorResponse is an iRail error body
const SampleErrorResponse = `{
	"error": 404,
	"message": "Could not find station Nowhere"
}`
