package events

// Event is a change notification for one row of the appointments table.
// Listeners do not discriminate on the payload; any event means "refetch".
type Event struct {
	Action   string `json:"action"` // insert | delete
	Entity   string `json:"entity"` // appointments
	EntityID uint   `json:"entity_id"`
	UserID   uint   `json:"user_id"`
}

const EntityAppointments = "appointments"

const (
	ActionInsert = "insert"
	ActionDelete = "delete"
)
