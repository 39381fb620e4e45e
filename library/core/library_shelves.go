package core

// AddShelf creates and adds a shelf for subject.
func (l *Library) AddShelf(subject SubjectString) error {
	if _, ok := l.shelves[subject]; ok {
		l.logWarn(logMsgShelfRejected, logAttrSubject, subject)

		return failure(ErrShelfExists, subject)
	}

	return l.AddPreparedShelf(NewShelf(subject))
}

// AddPreparedShelf adds shelf with the next free shelf number and places every inventory copy
// of its subject on it. Copies already on the shelf are kept.
func (l *Library) AddPreparedShelf(shelf *Shelf) error {
	if shelf == nil {
		return failure(ErrUnknown, "no shelf given")
	}

	if _, ok := l.shelves[shelf.Subject()]; ok {
		l.logWarn(logMsgShelfRejected, logAttrSubject, shelf.Subject())

		return failure(ErrShelfExists, shelf.Subject())
	}

	shelf.shelfNumber = l.nextShelfNumber()
	l.shelves[shelf.Subject()] = shelf

	reconciled := 0
	for _, key := range l.bookOrder {
		if key.Subject != shelf.Subject() {
			continue
		}

		for range l.inventory[key] {
			if err := shelf.AddBook(l.books[key]); err != nil {
				return err
			}
			reconciled++
		}
	}

	l.logInfo(
		logMsgShelfAdded,
		logAttrSubject, shelf.Subject(),
		logAttrShelfNumber, shelf.ShelfNumber(),
		logAttrReconciledCopies, reconciled,
	)
	l.record(BuildShelfAdded(shelf, reconciled, l.now()))

	return nil
}

func (l *Library) nextShelfNumber() int {
	highest := 0
	for _, shelf := range l.shelves {
		highest = max(highest, shelf.ShelfNumber())
	}

	return highest + 1
}
