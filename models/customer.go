package models

// CustomerDetails is the customer check-in report payload. CheckInComment is
// mandatory only when check-in issues are reported.
type CustomerDetails struct {
	PassengerName string `json:"passengerName" binding:"required"`
	Contact       string `json:"contact" binding:"required"`
	Email         string `json:"email" binding:"required,email"`

	BTMProtocolOfficerName       string `json:"btmProtocolOfficerName" binding:"required"`
	PartnerProtocolOfficerName   string `json:"partnerProtocolOfficerName" binding:"required"`
	PartnerProtocolOfficerMobile string `json:"partnerProtocolOfficerMobile" binding:"required"`

	BadgeVerification string `json:"badgeVerification" binding:"required,oneof=yes no"`
	CheckInIssues     string `json:"checkInIssues" binding:"required,oneof=yes no"`
	CheckInComment    string `json:"checkInComment,omitempty" binding:"required_if=CheckInIssues yes"`
}
