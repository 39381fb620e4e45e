package core

// CardSequence hands out library card numbers. It never goes backwards.
type CardSequence struct {
	last CardNumberInt
}

// Next advances the sequence and returns the new card number.
func (s *CardSequence) Next() CardNumberInt {
	s.last++

	return s.last
}

// Observe raises the sequence to card if card is larger, so Next never hands out a registered number.
func (s *CardSequence) Observe(card CardNumberInt) {
	if card > s.last {
		s.last = card
	}
}

func (s *CardSequence) Last() CardNumberInt {
	return s.last
}
