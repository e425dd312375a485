package links

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/yatrika/travel-assistant/backend/internal/model/travel"
)

// Airport, station and operator lookup tables for the major Indian cities the
// assistant is most often asked about. Unknown cities pass through verbatim.
var iataCodes = map[string]string{
	"pune": "PNQ", "mumbai": "BOM", "delhi": "DEL", "bengaluru": "BLR",
	"chennai": "MAA", "kolkata": "CCU", "hyderabad": "HYD", "goa": "GOI",
}

var stationCodes = map[string]string{
	"pune": "PUNE", "mumbai": "CSTM", "delhi": "NDLS", "bengaluru": "SBC",
	"chennai": "MAS", "kolkata": "HWH", "hyderabad": "SC",
}

type busOperator struct {
	name string
	url  string
}

var localBusSites = map[string]busOperator{
	"pune":      {"PMPML", "https://www.pmpml.org/"},
	"mumbai":    {"BEST", "https://www.bestundertaking.com/"},
	"delhi":     {"DTC", "http://www.dtc.nic.in/"},
	"bengaluru": {"BMTC", "https://mybmtc.karnataka.gov.in/"},
}

// ForFlights builds flight search links for the major aggregators.
func ForFlights(depCity, destCity string, date time.Time) map[string]string {
	depCode := iataCode(depCity)
	destCode := iataCode(destCity)
	dateStr := date.Format("060102")
	return map[string]string{
		"MakeMyTrip": fmt.Sprintf("https://www.makemytrip.com/flight/search?itinerary=%s-%s-%s", depCode, destCode, dateStr),
		"Goibibo":    fmt.Sprintf("https://www.goibibo.com/flights/air-%s-%s-1-0-0-E-D/", depCode, destCode),
	}
}

// ForHotels builds hotel search links with check-in/check-out preset.
func ForHotels(city string, checkin, checkout time.Time) map[string]string {
	cityQ := url.QueryEscape(city)
	in := checkin.Format("2006-01-02")
	out := checkout.Format("2006-01-02")
	return map[string]string{
		"Booking.com": fmt.Sprintf("https://www.booking.com/searchresults.html?ss=%s&checkin=%s&checkout=%s", cityQ, in, out),
		"Agoda":       fmt.Sprintf("https://www.agoda.com/search?city=%s&checkIn=%s&checkOut=%s", cityQ, in, out),
	}
}

// ForTrains builds a rail search link keyed by station codes.
func ForTrains(depCity, destCity string, date time.Time) map[string]string {
	return map[string]string{
		"RailYatri": fmt.Sprintf("https://www.railyatri.in/train-ticket/from-%s/to-%s?date=%s",
			stationCode(depCity), stationCode(destCity), date.Format("02-01-2006")),
	}
}

// ForBuses builds an intercity bus search link.
func ForBuses(depCity, destCity string, date time.Time) map[string]string {
	caser := cases.Title(language.English)
	return map[string]string{
		"redBus": fmt.Sprintf("https://www.redbus.in/search?fromCityName=%s&toCityName=%s&src=%s&dst=%s&onward=%s",
			caser.String(depCity), caser.String(destCity),
			url.QueryEscape(depCity), url.QueryEscape(destCity), date.Format("2006-01-02")),
	}
}

// ForIntercityCabs builds ride-hailing deep links from resolved coordinates.
func ForIntercityCabs(dep, dest travel.Geocode) map[string]string {
	return map[string]string{
		"Uber": fmt.Sprintf(
			"https://m.uber.com/ul/?action=setPickup&pickup[latitude]=%v&pickup[longitude]=%v&dropoff[latitude]=%v&dropoff[longitude]=%v",
			dep.Lat, dep.Lon, dest.Lat, dest.Lon),
		"Ola (Mobile)": fmt.Sprintf(
			"ola://app/launch?pickup_lat=%v&pickup_lng=%v&drop_lat=%v&drop_lng=%v&category=outstation",
			dep.Lat, dep.Lon, dest.Lat, dest.Lon),
	}
}

// ForLocalCabs builds in-city ride-hailing deep links from resolved
// coordinates.
func ForLocalCabs(dep, dest travel.Geocode) map[string]string {
	return map[string]string{
		"Uber": fmt.Sprintf(
			"https://m.uber.com/ul/?action=setPickup&pickup[latitude]=%v&pickup[longitude]=%v&dropoff[latitude]=%v&dropoff[longitude]=%v",
			dep.Lat, dep.Lon, dest.Lat, dest.Lon),
		"Ola (Mobile)": fmt.Sprintf(
			"ola://app/launch?pickup_lat=%v&pickup_lng=%v&drop_lat=%v&drop_lng=%v",
			dep.Lat, dep.Lon, dest.Lat, dest.Lon),
	}
}

// ForLocalBuses returns the municipal bus operator's site when the city has
// a known operator, otherwise an empty map.
func ForLocalBuses(city string) map[string]string {
	key := normalizeCity(city)
	op, ok := localBusSites[key]
	if !ok {
		return map[string]string{}
	}
	return map[string]string{op.name: op.url}
}

func iataCode(city string) string {
	if code, ok := iataCodes[normalizeCity(city)]; ok {
		return code
	}
	return city
}

func stationCode(city string) string {
	if code, ok := stationCodes[normalizeCity(city)]; ok {
		return code
	}
	return city
}

func normalizeCity(city string) string {
	head := strings.SplitN(city, ",", 2)[0]
	return strings.ToLower(strings.TrimSpace(head))
}
