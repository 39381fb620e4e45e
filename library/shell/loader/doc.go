// Package loader reads the positional text format a library is initialized from:
//
//	<N>
//	isbn,title,subject,pageCount,author,dueDate        (N times, dueDate "0000" or YYYY-MM-DD)
//	<M>
//	shelfNumberPlaceholder,subject                      (M times)
//	<K>
//	cardNumber,name,phone,bookCount,isbn,dueDate,...    (K times)
//
// Every record goes through the public core.Library API, exactly like a runtime operation would.
package loader
