package capability

// Feature — опциональная часть схемы, которая может быть ещё не развёрнута.
type Feature string

const (
	Follows       Feature = "follows"
	Notifications Feature = "notifications"
	Messaging     Feature = "messaging"
	Comments      Feature = "comments"
	Events        Feature = "events"
	MoodBoards    Feature = "moodboards"
	Services      Feature = "services"
)

// Known перечисляет все опциональные функции.
var Known = []Feature{Follows, Notifications, Messaging, Comments, Events, MoodBoards, Services}

// Set — флаги доступности, вычисленные один раз при старте.
type Set map[Feature]bool

// Enabled сообщает, развёрнута ли функция. Nil-набор считается полностью включённым.
func (s Set) Enabled(f Feature) bool {
	if s == nil {
		return true
	}
	return s[f]
}

// All возвращает набор, в котором включено всё.
func All() Set {
	s := make(Set, len(Known))
	for _, f := range Known {
		s[f] = true
	}
	return s
}

// Without возвращает копию набора с выключенными функциями.
func (s Set) Without(features ...Feature) Set {
	out := make(Set, len(Known))
	for _, f := range Known {
		out[f] = s.Enabled(f)
	}
	for _, f := range features {
		out[f] = false
	}
	return out
}

// Disabled перечисляет выключенные функции в порядке Known.
func (s Set) Disabled() []Feature {
	var out []Feature
	for _, f := range Known {
		if !s.Enabled(f) {
			out = append(out, f)
		}
	}
	return out
}
