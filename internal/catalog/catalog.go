// Package catalog holds the built-in list of named surf spots used for
// offline search before falling back to geocoding. The list is constructed
// once and never mutated at runtime.
package catalog

import (
	"strings"

	"github.com/mxmdgames/surfcast/internal/models"
)

var spots = []models.SurfSpot{
	// Costa Rica
	{Name: "Tamarindo", Coord: models.Coordinate{Lat: 10.3000, Lng: -85.8333}, BreakType: "Beach Break", Swell: "SW"},
	{Name: "Witch's Rock", Coord: models.Coordinate{Lat: 10.7825, Lng: -85.6708}, BreakType: "Reef Break", Swell: "NW"},
	{Name: "Ollie's Point", Coord: models.Coordinate{Lat: 10.7758, Lng: -85.6783}, BreakType: "Point Break", Swell: "NW"},
	{Name: "Pavones", Coord: models.Coordinate{Lat: 8.4069, Lng: -83.1358}, BreakType: "Point Break", Swell: "SW"},
	{Name: "Playa Hermosa (Jaco)", Coord: models.Coordinate{Lat: 9.5925, Lng: -84.6347}, BreakType: "Beach Break", Swell: "SW"},
	{Name: "Playa Grande", Coord: models.Coordinate{Lat: 10.3333, Lng: -85.8500}, BreakType: "Beach Break", Swell: "SW"},
	{Name: "Salsa Brava", Coord: models.Coordinate{Lat: 9.6500, Lng: -82.7500}, BreakType: "Reef Break", Swell: "E"},
	{Name: "Nosara", Coord: models.Coordinate{Lat: 9.9833, Lng: -85.6500}, BreakType: "Beach Break", Swell: "SW"},
	{Name: "Santa Teresa", Coord: models.Coordinate{Lat: 9.6500, Lng: -85.1667}, BreakType: "Beach Break", Swell: "SW"},
	{Name: "Dominical", Coord: models.Coordinate{Lat: 9.2500, Lng: -83.8667}, BreakType: "Beach Break", Swell: "SW"},
	{Name: "Playa Guiones", Coord: models.Coordinate{Lat: 9.9333, Lng: -85.6667}, BreakType: "Beach Break", Swell: "SW"},
	{Name: "Boca Barranca", Coord: models.Coordinate{Lat: 9.9500, Lng: -84.7167}, BreakType: "River Mouth", Swell: "SW"},
	{Name: "Avellanas", Coord: models.Coordinate{Lat: 10.1833, Lng: -85.8500}, BreakType: "Beach Break", Swell: "SW"},
	{Name: "Playa Negra", Coord: models.Coordinate{Lat: 10.1667, Lng: -85.8500}, BreakType: "Reef Break", Swell: "SW"},
	{Name: "Playa Cocles", Coord: models.Coordinate{Lat: 9.6333, Lng: -82.7000}, BreakType: "Beach Break", Swell: "E"},
	// Puerto Rico
	{Name: "Maria's (Rincón)", Coord: models.Coordinate{Lat: 18.3550, Lng: -67.2642}, BreakType: "Reef Break", Swell: "NW"},
	{Name: "Domes (Rincón)", Coord: models.Coordinate{Lat: 18.3683, Lng: -67.2694}, BreakType: "Reef Break", Swell: "NW"},
	{Name: "Tres Palmas", Coord: models.Coordinate{Lat: 18.3500, Lng: -67.2750}, BreakType: "Reef Break", Swell: "NW"},
	{Name: "Wilderness (Aguadilla)", Coord: models.Coordinate{Lat: 18.4536, Lng: -67.1369}, BreakType: "Reef Break", Swell: "NE"},
	{Name: "Surfer's Beach (Aguadilla)", Coord: models.Coordinate{Lat: 18.4583, Lng: -67.1417}, BreakType: "Reef Break", Swell: "NE"},
	{Name: "Jobos (Isabela)", Coord: models.Coordinate{Lat: 18.4833, Lng: -66.9333}, BreakType: "Reef Break", Swell: "NE"},
	{Name: "Pine Grove (Isabela)", Coord: models.Coordinate{Lat: 18.4667, Lng: -66.9333}, BreakType: "Beach Break", Swell: "NE"},
	{Name: "Middles (Vega Baja)", Coord: models.Coordinate{Lat: 18.4667, Lng: -66.4167}, BreakType: "Reef Break", Swell: "N"},
	{Name: "La Ocho (San Juan)", Coord: models.Coordinate{Lat: 18.4667, Lng: -66.1167}, BreakType: "Reef Break", Swell: "N"},
	{Name: "Buyé (Cabo Rojo)", Coord: models.Coordinate{Lat: 18.0667, Lng: -67.1833}, BreakType: "Beach Break", Swell: "SW"},
	// Americas
	{Name: "Tofino, Canada", Coord: models.Coordinate{Lat: 49.1520, Lng: -125.9060}, BreakType: "Beach Break", Swell: "W"},
	{Name: "La Libertad, El Salvador", Coord: models.Coordinate{Lat: 13.4886, Lng: -89.3222}, BreakType: "Point Break", Swell: "SW"},
	{Name: "Popoyo, Nicaragua", Coord: models.Coordinate{Lat: 11.4681, Lng: -86.3219}, BreakType: "Beach Break", Swell: "SW"},
	{Name: "Punta Roca, El Salvador", Coord: models.Coordinate{Lat: 13.4922, Lng: -89.3819}, BreakType: "Point Break", Swell: "SW"},
	{Name: "Puerto Escondido, Mexico", Coord: models.Coordinate{Lat: 15.8578, Lng: -97.0694}, BreakType: "Beach Break", Swell: "S"},
	{Name: "Sayulita, Mexico", Coord: models.Coordinate{Lat: 20.8700, Lng: -105.4383}, BreakType: "Point Break", Swell: "SW"},
	{Name: "Pascuales, Mexico", Coord: models.Coordinate{Lat: 19.1500, Lng: -104.7000}, BreakType: "Beach Break", Swell: "SW"},
	{Name: "Long Beach, NY", Coord: models.Coordinate{Lat: 40.5883, Lng: -73.6575}, BreakType: "Beach Break", Swell: "E"},
	{Name: "Sebastian Inlet, FL", Coord: models.Coordinate{Lat: 28.0583, Lng: -80.5458}, BreakType: "Inlet Break", Swell: "NE"},
	{Name: "Chicama, Peru", Coord: models.Coordinate{Lat: -7.6922, Lng: -79.4367}, BreakType: "Point Break", Swell: "SW"},
	{Name: "Mancora, Peru", Coord: models.Coordinate{Lat: -4.1000, Lng: -81.0500}, BreakType: "Beach Break", Swell: "SW"},
	{Name: "Punta de Lobos, Chile", Coord: models.Coordinate{Lat: -34.6333, Lng: -72.0000}, BreakType: "Point Break", Swell: "SW"},
	{Name: "Florianopolis, Brazil", Coord: models.Coordinate{Lat: -27.5833, Lng: -48.5667}, BreakType: "Beach Break", Swell: "S"},
	{Name: "Itacaré, Brazil", Coord: models.Coordinate{Lat: -14.2833, Lng: -39.0000}, BreakType: "Reef Break", Swell: "E"},
	{Name: "Montanita, Ecuador", Coord: models.Coordinate{Lat: -1.8167, Lng: -80.7500}, BreakType: "Point Break", Swell: "SW"},
	{Name: "Punta Colorada, Mexico", Coord: models.Coordinate{Lat: 23.4167, Lng: -109.4167}, BreakType: "Point Break", Swell: "SW"},
	// Europe
	{Name: "Mundaka, Spain", Coord: models.Coordinate{Lat: 43.4067, Lng: -2.6983}, BreakType: "River Mouth", Swell: "NW"},
	{Name: "Supertubos, Portugal", Coord: models.Coordinate{Lat: 39.3500, Lng: -9.3833}, BreakType: "Beach Break", Swell: "W"},
	{Name: "Thurso, Scotland", Coord: models.Coordinate{Lat: 58.5967, Lng: -3.5217}, BreakType: "Reef Break", Swell: "NW"},
	{Name: "Fistral, England", Coord: models.Coordinate{Lat: 50.4158, Lng: -5.0900}, BreakType: "Beach Break", Swell: "W"},
	{Name: "Hoddevik, Norway", Coord: models.Coordinate{Lat: 62.0667, Lng: 5.1500}, BreakType: "Point Break", Swell: "NW"},
	{Name: "Unstad, Norway", Coord: models.Coordinate{Lat: 68.2667, Lng: 13.6000}, BreakType: "Beach Break", Swell: "NW"},
	// Africa
	{Name: "Dungeons, South Africa", Coord: models.Coordinate{Lat: -34.0278, Lng: 18.3167}, BreakType: "Reef Break", Swell: "SW"},
	{Name: "Anchor Point, Morocco", Coord: models.Coordinate{Lat: 30.5333, Lng: -9.7000}, BreakType: "Point Break", Swell: "NW"},
	{Name: "Dakhla, Morocco", Coord: models.Coordinate{Lat: 23.7167, Lng: -15.9500}, BreakType: "Point Break", Swell: "NW"},
	{Name: "Ponta do Ouro, Mozambique", Coord: models.Coordinate{Lat: -26.8500, Lng: 32.8833}, BreakType: "Point Break", Swell: "S"},
	{Name: "Tofo, Mozambique", Coord: models.Coordinate{Lat: -23.8500, Lng: 35.5500}, BreakType: "Beach Break", Swell: "S"},
	{Name: "Skeleton Coast, Namibia", Coord: models.Coordinate{Lat: -20.5000, Lng: 13.2500}, BreakType: "Beach Break", Swell: "SW"},
	// Asia
	{Name: "Cloud 9, Philippines", Coord: models.Coordinate{Lat: 9.8478, Lng: 126.0539}, BreakType: "Reef Break", Swell: "NE"},
	{Name: "G-Land, Indonesia", Coord: models.Coordinate{Lat: -8.5000, Lng: 114.1000}, BreakType: "Reef Break", Swell: "SE"},
	{Name: "Nias, Indonesia", Coord: models.Coordinate{Lat: 1.0667, Lng: 97.5833}, BreakType: "Reef Break", Swell: "SW"},
	{Name: "Arugam Bay, Sri Lanka", Coord: models.Coordinate{Lat: 6.8500, Lng: 81.8333}, BreakType: "Point Break", Swell: "SW"},
	{Name: "Kovalam, India", Coord: models.Coordinate{Lat: 8.4000, Lng: 76.9833}, BreakType: "Beach Break", Swell: "SW"},
	{Name: "Shida Point, Japan", Coord: models.Coordinate{Lat: 35.2333, Lng: 140.4000}, BreakType: "Point Break", Swell: "NE"},
	{Name: "Kuta Beach, Bali", Coord: models.Coordinate{Lat: -8.7222, Lng: 115.1722}, BreakType: "Beach Break", Swell: "SW"},
	{Name: "Canggu, Bali", Coord: models.Coordinate{Lat: -8.6500, Lng: 115.1333}, BreakType: "Beach Break", Swell: "SW"},
	{Name: "Padang Padang, Bali", Coord: models.Coordinate{Lat: -8.8333, Lng: 115.0833}, BreakType: "Reef Break", Swell: "SW"},
	// Oceania
	{Name: "Superbank, Australia", Coord: models.Coordinate{Lat: -28.1667, Lng: 153.5500}, BreakType: "Sand Bottom", Swell: "SE"},
	{Name: "Kirra, Australia", Coord: models.Coordinate{Lat: -28.1667, Lng: 153.5333}, BreakType: "Point Break", Swell: "SE"},
	{Name: "Teahupo'o, Tahiti", Coord: models.Coordinate{Lat: -17.8333, Lng: -149.2667}, BreakType: "Reef Break", Swell: "SW"},
	{Name: "Cloudbreak, Fiji", Coord: models.Coordinate{Lat: -18.0000, Lng: 177.0000}, BreakType: "Reef Break", Swell: "SW"},
	{Name: "Piha, New Zealand", Coord: models.Coordinate{Lat: -36.9528, Lng: 174.4683}, BreakType: "Beach Break", Swell: "W"},
	{Name: "Raglan, New Zealand", Coord: models.Coordinate{Lat: -37.8014, Lng: 174.8714}, BreakType: "Point Break", Swell: "W"},
	{Name: "Uluwatu, Bali", Coord: models.Coordinate{Lat: -8.8290, Lng: 115.0868}, BreakType: "Reef Break", Swell: "SW"},
	{Name: "Shipstern Bluff, Tasmania", Coord: models.Coordinate{Lat: -43.2000, Lng: 147.3500}, BreakType: "Reef Break", Swell: "SW"},
	// Big wave and remote
	{Name: "Skeleton Bay, Namibia", Coord: models.Coordinate{Lat: -22.9833, Lng: 14.4667}, BreakType: "Point Break", Swell: "SW"},
	{Name: "The Right, Australia", Coord: models.Coordinate{Lat: -33.9333, Lng: 114.1333}, BreakType: "Reef Break", Swell: "SW"},
	{Name: "Cortes Bank, CA", Coord: models.Coordinate{Lat: 32.4767, Lng: -119.3217}, BreakType: "Seamount", Swell: "NW"},
	{Name: "Belharra, France", Coord: models.Coordinate{Lat: 43.4000, Lng: -1.6000}, BreakType: "Reef Break", Swell: "W"},
	{Name: "Mavericks, CA", Coord: models.Coordinate{Lat: 37.4953, Lng: -122.4993}, BreakType: "Reef Break", Swell: "NW"},
	{Name: "Nazaré, Portugal", Coord: models.Coordinate{Lat: 39.6029, Lng: -9.0704}, BreakType: "Beach Break", Swell: "W"},
	{Name: "Jaws, Maui", Coord: models.Coordinate{Lat: 20.9314, Lng: -156.3806}, BreakType: "Reef Break", Swell: "NW"},
	{Name: "Ours, Australia", Coord: models.Coordinate{Lat: -34.1667, Lng: 151.3167}, BreakType: "Reef Break", Swell: "S"},
}

// Spots returns the full catalog in its canonical order. Callers must not
// modify the returned slice.
func Spots() []models.SurfSpot {
	return spots
}

// Search returns every spot whose name contains the query, case-insensitively,
// in catalog order.
func Search(query string) []models.SurfSpot {
	q := strings.ToLower(query)

	var matches []models.SurfSpot
	for _, spot := range spots {
		if strings.Contains(strings.ToLower(spot.Name), q) {
			matches = append(matches, spot)
		}
	}
	return matches
}

// DefaultFavorites returns the catalog's first four spots, used when no
// favorites have been saved yet.
func DefaultFavorites() []models.SurfSpot {
	return spots[:4]
}
