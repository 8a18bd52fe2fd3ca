package event

const (
	//PutEntry an entry was written
	PutEntry = "PutEntry"
	//RemoveEntry an entry was deleted
	RemoveEntry = "RemoveEntry"
)

//Event a storage change, Key is the physical (prefixed) key
type Event struct {
	Type  string
	Key   string
	Value string
}

type Trigger chan *Event

func (t Trigger) Emit(event *Event) {
	t <- event
}

func (t Trigger) C() chan *Event {
	return t
}
