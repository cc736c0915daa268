package handlers

// HandlerBundle groups the assembled handlers for route registration.
type HandlerBundle struct {
	Availability *AvailabilityHandler
	Appointment  *AppointmentHandler
	Blog         *BlogHandler
	Admin        *AdminHandler
}
