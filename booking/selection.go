package booking

// Selection is the user's in-progress set of chosen seat ids. Insertion
// order is preserved so reservation order stays deterministic.
type Selection struct {
	ids []string
}

func (s *Selection) Has(seatId string) bool {
	for _, id := range s.ids {
		if id == seatId {
			return true
		}
	}
	return false
}

// Toggle adds the seat if absent, removes it if present, and reports
// whether the seat is selected afterwards.
func (s *Selection) Toggle(seatId string) bool {
	for i, id := range s.ids {
		if id == seatId {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return false
		}
	}
	s.ids = append(s.ids, seatId)
	return true
}

func (s *Selection) Clear() {
	s.ids = nil
}

func (s *Selection) Len() int {
	return len(s.ids)
}

// Ids returns the selected seat ids in insertion order.
func (s *Selection) Ids() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}
