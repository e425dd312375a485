package travel

// Message is a single conversation turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// DateRange holds the departure and return dates as supplied by the client,
// expected in YYYY-MM-DD form.
type DateRange struct {
	Departure string `json:"departure"`
	Return    string `json:"return"`
}

// TravelState is the mutable working memory for one session's trip-planning
// conversation. It exists if and only if a Session with the same key exists.
type TravelState struct {
	SessionKey          string          `json:"session_key"`
	UserQuery           string          `json:"user_query"`
	UserProfile         map[string]any  `json:"user_profile"`
	ConversationHistory []Message       `json:"conversation_history"`
	CurrentAgent        string          `json:"current_agent"`
	DepartureLocation   string          `json:"departure_location"`
	DestinationLocation string          `json:"destination_location"`
	TravelMode          string          `json:"travel_mode"`
	TravelDates         *DateRange      `json:"travel_dates"`
	SpecificArea        string          `json:"specific_area"`
	FlightData          *CategoryResult `json:"flight_data"`
	HotelData           *CategoryResult `json:"hotel_data"`
	CabData             *CategoryResult `json:"cab_data"`
	TrainData           *CategoryResult `json:"train_data"`
	BusData             *CategoryResult `json:"bus_data"`
	SelectedOptions     map[string]any  `json:"selected_options"`
	FinalItinerary      *Itinerary      `json:"final_itinerary"`
	BookingStatus       map[string]any  `json:"booking_status"`
	IsIntracity         bool            `json:"is_intracity"`
	GuideData           *Guide          `json:"guide_data"`
}

// StatePatch is a shallow-merge update for a TravelState. Only non-nil fields
// overwrite the stored value; nested structures are replaced wholesale, so
// callers appending to ConversationHistory must re-supply the full slice.
type StatePatch struct {
	UserQuery           *string
	UserProfile         map[string]any
	ConversationHistory []Message
	CurrentAgent        *string
	DepartureLocation   *string
	DestinationLocation *string
	TravelMode          *string
	TravelDates         *DateRange
	SpecificArea        *string
	FlightData          *CategoryResult
	HotelData           *CategoryResult
	CabData             *CategoryResult
	TrainData           *CategoryResult
	BusData             *CategoryResult
	SelectedOptions     map[string]any
	FinalItinerary      *Itinerary
	BookingStatus       map[string]any
	IsIntracity         *bool
	GuideData           *Guide
}

// Apply merges the patch into the state, top-level field by field.
func (s *TravelState) Apply(p StatePatch) {
	if p.UserQuery != nil {
		s.UserQuery = *p.UserQuery
	}
	if p.UserProfile != nil {
		s.UserProfile = p.UserProfile
	}
	if p.ConversationHistory != nil {
		s.ConversationHistory = p.ConversationHistory
	}
	if p.CurrentAgent != nil {
		s.CurrentAgent = *p.CurrentAgent
	}
	if p.DepartureLocation != nil {
		s.DepartureLocation = *p.DepartureLocation
	}
	if p.DestinationLocation != nil {
		s.DestinationLocation = *p.DestinationLocation
	}
	if p.TravelMode != nil {
		s.TravelMode = *p.TravelMode
	}
	if p.TravelDates != nil {
		s.TravelDates = p.TravelDates
	}
	if p.SpecificArea != nil {
		s.SpecificArea = *p.SpecificArea
	}
	if p.FlightData != nil {
		s.FlightData = p.FlightData
	}
	if p.HotelData != nil {
		s.HotelData = p.HotelData
	}
	if p.CabData != nil {
		s.CabData = p.CabData
	}
	if p.TrainData != nil {
		s.TrainData = p.TrainData
	}
	if p.BusData != nil {
		s.BusData = p.BusData
	}
	if p.SelectedOptions != nil {
		s.SelectedOptions = p.SelectedOptions
	}
	if p.FinalItinerary != nil {
		s.FinalItinerary = p.FinalItinerary
	}
	if p.BookingStatus != nil {
		s.BookingStatus = p.BookingStatus
	}
	if p.IsIntracity != nil {
		s.IsIntracity = *p.IsIntracity
	}
	if p.GuideData != nil {
		s.GuideData = p.GuideData
	}
}
