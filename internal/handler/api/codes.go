package api

// Stable machine-readable error codes carried in the httperr envelope.
// These are API contract: clients branch on them.
const (
	CodeMeetupNotFound       = "MEETUP_NOT_FOUND"
	CodeSubscriptionNotFound = "SUBSCRIPTION_NOT_FOUND"
	CodeOwnMeetup            = "OWN_MEETUP"
	CodePastMeetup           = "PAST_MEETUP"
	CodeAlreadySubscribed    = "ALREADY_SUBSCRIBED"
	CodeTimeConflict         = "TIME_CONFLICT"
	CodeMeetupHappened       = "MEETUP_ALREADY_HAPPENED"
	CodeNotOwner             = "NOT_OWNER"
	CodeEmailTaken           = "EMAIL_TAKEN"
	CodeValidationFailed     = "VALIDATION_FAILED"
)
