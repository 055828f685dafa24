package models

// Feedback is the service-feedback form payload. The serviceType
// discriminator decides which branch of fields is mandatory: arrival feedback
// needs a meeting location and rating, departure feedback needs the three
// departure questions answered.
type Feedback struct {
	ServiceType string `json:"serviceType" binding:"required,oneof=arrival departure"`

	// Arrival section.
	MeetingLocation string `json:"meetingLocation,omitempty" binding:"required_if=ServiceType arrival"`
	LuggageNo       string `json:"luggageNo,omitempty"`
	ArrivalComment  string `json:"arrivalComment,omitempty"`
	ArrivalRating   string `json:"arrivalRating,omitempty" binding:"required_if=ServiceType arrival"`

	// Departure section.
	ProtocolOfficerMeet   string `json:"protocolOfficerMeet,omitempty" binding:"required_if=ServiceType departure"`
	ImmigrationAssistance string `json:"immigrationAssistance,omitempty" binding:"required_if=ServiceType departure"`
	MeetInOrOutside       string `json:"meetInOrOutside,omitempty" binding:"required_if=ServiceType departure"`
	DepartureComment      string `json:"departureComment,omitempty"`
	DepartureRating       string `json:"departureRating,omitempty"`
}
