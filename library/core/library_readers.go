package core

import (
	"fmt"
	"slices"
)

// AddReader registers reader. An equal reader or another reader with the same card number
// is rejected. The card sequence is raised to the reader's card number.
func (l *Library) AddReader(reader *Reader) error {
	if reader == nil {
		return failure(ErrUnknown, "no reader given")
	}

	if l.isRegistered(reader) {
		l.logWarn(logMsgReaderRejected, logAttrReader, reader.Name(), logAttrCardNumber, reader.CardNumber())

		return failure(ErrReaderAlreadyExists, reader.Name())
	}

	if holder, ok := l.readerWithCard(reader.CardNumber()); ok {
		l.logWarn(logMsgReaderRejected, logAttrReader, reader.Name(), logAttrCardNumber, reader.CardNumber())

		return failure(ErrReaderCardNumber, fmt.Sprintf("%d already used by %s", reader.CardNumber(), holder.Name()))
	}

	l.readers = append(l.readers, reader)
	l.cards.Observe(reader.CardNumber())

	l.logInfo(logMsgReaderAdded, logAttrReader, reader.Name(), logAttrCardNumber, reader.CardNumber())
	l.record(BuildReaderRegistered(reader, l.now()))

	return nil
}

// RemoveReader unregisters reader. A reader still holding books is rejected before registration is checked.
func (l *Library) RemoveReader(reader *Reader) error {
	if reader == nil {
		return failure(ErrUnknown, "no reader given")
	}

	if reader.BookCount() > 0 {
		l.logWarn(logMsgReaderRejected, logAttrReader, reader.Name(), logAttrCardNumber, reader.CardNumber())

		return failure(ErrReaderStillHasBooks, fmt.Sprintf("%s has %d books", reader.Name(), reader.BookCount()))
	}

	idx := slices.IndexFunc(l.readers, reader.Equal)
	if idx < 0 {
		return failure(ErrReaderNotInLibrary, reader.Name())
	}

	l.readers = slices.Delete(l.readers, idx, idx+1)

	l.logInfo(logMsgReaderRemoved, logAttrReader, reader.Name(), logAttrCardNumber, reader.CardNumber())
	l.record(BuildReaderRemoved(reader, l.now()))

	return nil
}

func (l *Library) readerWithCard(cardNumber CardNumberInt) (*Reader, bool) {
	idx := slices.IndexFunc(l.readers, func(r *Reader) bool { return r.CardNumber() == cardNumber })
	if idx < 0 {
		return nil, false
	}

	return l.readers[idx], true
}
