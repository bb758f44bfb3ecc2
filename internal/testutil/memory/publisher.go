package memory

import (
	"sync"

	"github.com/google/uuid"
)

// Published — одно событие, отправленное через Publisher.
type Published struct {
	UserID uuid.UUID
	Event  string
	Data   any
}

// Publisher запоминает отправленные realtime-события.
type Publisher struct {
	mu     sync.Mutex
	events []Published
}

func (p *Publisher) Publish(userID uuid.UUID, event string, data any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, Published{UserID: userID, Event: event, Data: data})
}

func (p *Publisher) Events() []Published {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Published(nil), p.events...)
}

// Of возвращает события с заданным именем.
func (p *Publisher) Of(event string) []Published {
	var out []Published
	for _, e := range p.Events() {
		if e.Event == event {
			out = append(out, e)
		}
	}
	return out
}
